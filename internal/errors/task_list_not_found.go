package errors

import "net/http"

var ErrTaskListNotFound = &Exception{
	Message:    "Task list not found",
	Code:       "RESOURCE_NOT_FOUND",
	StatusCode: http.StatusNotFound,
}
