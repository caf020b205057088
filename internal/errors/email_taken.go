package errors

func ErrEmailTaken() *Exception {
	return NewValidationError(FieldErrors{
		"email": {"The email has already been taken."},
	})
}
