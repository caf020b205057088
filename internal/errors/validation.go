package errors

import "net/http"

const ValidationCode = "VALIDATION_ERROR"

// FieldErrors collects messages per request field, keyed like "tasks.0.position".
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Err returns nil when no field failed.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return NewValidationError(f)
}

func NewValidationError(details FieldErrors) *Exception {
	return &Exception{
		Message:    "The given data was invalid.",
		Code:       ValidationCode,
		StatusCode: http.StatusUnprocessableEntity,
		Details:    details,
	}
}
