package validators

import (
	dto "taskforge.com/taskforge/internal/data_models"
)

func ValidateUpdateTaskListRequest(r *dto.UpdateTaskListRequest) error {
	errs := checkStruct(r)
	requiredWhenPresent(errs, "name", r.Name.Set, r.Name.Valid)
	return errs.Err()
}
