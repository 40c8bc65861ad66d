package errors

import "net/http"

var ErrWorkerOnlyAccept = &Exception{
	Message:    "only workers can accept tasks",
	StatusCode: http.StatusForbidden,
}

var ErrWorkerOnlyComplete = &Exception{
	Message:    "only workers can complete tasks",
	StatusCode: http.StatusForbidden,
}
