package validators

import (
	"time"

	dto "taskforge.com/taskforge/internal/data_models"
)

// ValidateCreateTaskRequest checks field shape. The due date must lie strictly
// after now. List ownership is checked by the service.
func ValidateCreateTaskRequest(r *dto.CreateTaskRequest, now time.Time) error {
	errs := checkStruct(r)

	if r.DueDate.Valid {
		due, err := dto.ParseDateTime(r.DueDate.Value, now.Location())
		if err != nil {
			errs.Add("due_date", "The due date field must be a valid date.")
		} else if !due.After(now) {
			errs.Add("due_date", "The due date field must be a date after now.")
		}
	}

	return errs.Err()
}

// ValidateUpdateTaskRequest only checks keys present in the payload. A due date
// in the past is accepted.
func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest, loc *time.Location) error {
	errs := checkStruct(r)

	requiredWhenPresent(errs, "title", r.Title.Set, r.Title.Valid)
	if r.DueDate.Valid {
		if _, err := dto.ParseDateTime(r.DueDate.Value, loc); err != nil {
			errs.Add("due_date", "The due date field must be a valid date.")
		}
	}

	return errs.Err()
}
