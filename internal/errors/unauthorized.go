package errors

import "net/http"

var ErrTokenRequired = &Exception{
	Message:    "access token required",
	StatusCode: http.StatusUnauthorized,
}
