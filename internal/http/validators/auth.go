package validators

import (
	dto "taskforge.com/taskforge/internal/data_models"
)

// ValidateRegisterRequest reports a confirmation mismatch on the password key,
// next to any length failure.
func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	errs := checkStruct(r)

	if r.Password != "" && r.Password != r.PasswordConfirmation {
		errs.Add("password", "The password field confirmation does not match.")
	}

	return errs.Err()
}
