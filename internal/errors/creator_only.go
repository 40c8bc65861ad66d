package errors

import "net/http"

var ErrCreatorOnly = &Exception{
	Message:    "only creators can create tasks",
	StatusCode: http.StatusForbidden,
}
