package errors

import "net/http"

var ErrInvalidJSON = &Exception{
	Message:    "invalid JSON payload",
	Code:       "INVALID_JSON",
	StatusCode: http.StatusBadRequest,
}
