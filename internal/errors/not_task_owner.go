package errors

import "net/http"

var ErrNotTaskOwner = &Exception{
	Message:    "you can only complete tasks you have accepted",
	StatusCode: http.StatusForbidden,
}
