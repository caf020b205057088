package validators

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"

	dto "taskforge.com/taskforge/internal/data_models"
	apperrors "taskforge.com/taskforge/internal/errors"
)

// structs checks the `validate` tags on request DTOs. Errors are keyed by the
// json field path, e.g. "tasks.0.position".
var structs = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	if err := v.RegisterValidation("notblank", nonstandard.NotBlank); err != nil {
		panic(err)
	}
	// Absent and null Nullable values reach the tags as a nil pointer, so
	// omitnil skips them.
	v.RegisterCustomTypeFunc(nullable[string], dto.Nullable[string]{})
	v.RegisterCustomTypeFunc(nullable[uint], dto.Nullable[uint]{})
	v.RegisterCustomTypeFunc(nullable[bool], dto.Nullable[bool]{})
	v.RegisterCustomTypeFunc(nullable[[]uint], dto.Nullable[[]uint]{})
	return v
}

func nullable[T any](field reflect.Value) interface{} {
	n, ok := field.Interface().(dto.Nullable[T])
	if !ok {
		return nil
	}
	return n.Ptr()
}

// checkStruct runs the tag rules and collects failures per field.
func checkStruct(s interface{}) apperrors.FieldErrors {
	errs := apperrors.FieldErrors{}

	var failed validator.ValidationErrors
	if err := structs.Struct(s); errors.As(err, &failed) {
		for _, fe := range failed {
			errs.Add(fieldKey(fe), message(fe))
		}
	}

	return errs
}

func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.NewReplacer("[", ".", "]", "").Replace(ns)
}

// RequestValidator is installed as echo's Validator so handlers call c.Validate.
type RequestValidator struct {
	now func() time.Time
}

func NewRequestValidator(now func() time.Time) *RequestValidator {
	return &RequestValidator{now: now}
}

func (v *RequestValidator) Validate(i interface{}) error {
	switch r := i.(type) {
	case *dto.CreateTaskRequest:
		return ValidateCreateTaskRequest(r, v.now())
	case *dto.UpdateTaskRequest:
		return ValidateUpdateTaskRequest(r, v.now().Location())
	case *dto.UpdateTaskListRequest:
		return ValidateUpdateTaskListRequest(r)
	case *dto.UpdateTagRequest:
		return ValidateUpdateTagRequest(r)
	case *dto.RegisterRequest:
		return ValidateRegisterRequest(r)
	}
	return checkStruct(i).Err()
}
