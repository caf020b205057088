package errors

import "net/http"

var ErrUnauthenticated = &Exception{
	Message:    "Unauthenticated",
	Code:       "UNAUTHENTICATED",
	StatusCode: http.StatusUnauthorized,
}

var ErrInvalidCredentials = &Exception{
	Message:    "These credentials do not match our records",
	Code:       "INVALID_CREDENTIALS",
	StatusCode: http.StatusUnauthorized,
}
