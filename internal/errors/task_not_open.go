package errors

import "net/http"

var ErrTaskNotOpen = &Exception{
	Message:    "task was already accepted by another worker",
	StatusCode: http.StatusConflict,
}
