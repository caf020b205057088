package errors

import "net/http"

var ErrEndpointNotFound = &Exception{
	Message:    "API endpoint not found",
	Code:       "ENDPOINT_NOT_FOUND",
	StatusCode: http.StatusNotFound,
}

var ErrMethodNotAllowed = &Exception{
	Message:    "Method not allowed",
	Code:       "METHOD_NOT_ALLOWED",
	StatusCode: http.StatusMethodNotAllowed,
}

var ErrTooManyRequests = &Exception{
	Message:    "rate limit exceeded",
	Code:       "TOO_MANY_REQUESTS",
	StatusCode: http.StatusTooManyRequests,
}

var ErrCSRFTokenMismatch = &Exception{
	Message:    "CSRF token mismatch",
	Code:       "CSRF_TOKEN_MISMATCH",
	StatusCode: http.StatusForbidden,
}

var ErrInternal = &Exception{
	Message:    "Internal server error",
	Code:       "INTERNAL_ERROR",
	StatusCode: http.StatusInternalServerError,
}
