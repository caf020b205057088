package errors

import "net/http"

var ErrTagNotFound = &Exception{
	Message:    "Tag not found",
	Code:       "RESOURCE_NOT_FOUND",
	StatusCode: http.StatusNotFound,
}
