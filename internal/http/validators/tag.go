package validators

import (
	dto "taskforge.com/taskforge/internal/data_models"
)

func ValidateUpdateTagRequest(r *dto.UpdateTagRequest) error {
	errs := checkStruct(r)
	requiredWhenPresent(errs, "name", r.Name.Set, r.Name.Valid)
	return errs.Err()
}
