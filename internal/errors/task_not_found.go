package errors

import "net/http"

var ErrTaskNotFound = &Exception{
	Message:    "Task not found",
	Code:       "RESOURCE_NOT_FOUND",
	StatusCode: http.StatusNotFound,
}
