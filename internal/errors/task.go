package errors

import "net/http"

var (
	ErrTaskNotFound = &Exception{
		Message:    "task not found",
		StatusCode: http.StatusNotFound,
	}

	ErrTaskIDInvalid = &Exception{
		Message:    "task id must be a positive integer",
		StatusCode: http.StatusBadRequest,
	}
)
