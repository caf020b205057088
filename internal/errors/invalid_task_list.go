package errors

import "net/http"

var ErrInvalidTaskList = &Exception{
	Message:    "Invalid task list",
	Code:       "INVALID_TASK_LIST",
	StatusCode: http.StatusUnprocessableEntity,
}
