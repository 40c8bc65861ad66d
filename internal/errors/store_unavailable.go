package errors

import "net/http"

var ErrStoreUnavailable = &Exception{
	Message:    "database not configured or unreachable",
	StatusCode: http.StatusServiceUnavailable,
}
