package errors

import (
	"errors"
	"net/http"
)

type Exception struct {
	Message    string
	Code       string
	StatusCode int
	Details    map[string][]string
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// AsException unwraps err into an *Exception, falling back to ErrInternal.
func AsException(err error) *Exception {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal
}
