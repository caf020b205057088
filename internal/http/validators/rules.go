package validators

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "taskforge.com/taskforge/internal/errors"
)

func label(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

// message renders a failed tag the way the API reports it.
func message(fe validator.FieldError) string {
	name := label(fe.Field())

	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("The %s field is required.", name)
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", name, fe.Param())
	case "min":
		switch fe.Kind() {
		case reflect.Slice:
			return fmt.Sprintf("The %s field must have at least %s items.", name, fe.Param())
		case reflect.String:
			return fmt.Sprintf("The %s field must be at least %s characters.", name, fe.Param())
		}
		return fmt.Sprintf("The %s field must be at least %s.", name, fe.Param())
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", name)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", name)
	case "hexcolor", "len":
		return fmt.Sprintf("The %s field format is invalid.", name)
	}

	return fmt.Sprintf("The %s field is invalid.", name)
}

// requiredWhenPresent rejects an explicit null on a key that may be omitted.
func requiredWhenPresent(errs apperrors.FieldErrors, field string, set, valid bool) {
	if set && !valid {
		errs.Add(field, fmt.Sprintf("The %s field is required.", label(field)))
	}
}

func invalidSelection(errs apperrors.FieldErrors, field string) {
	errs.Add(field, fmt.Sprintf("The selected %s is invalid.", label(field)))
}
