package dto

type RegisterRequest struct {
	Name                 string `json:"name" validate:"notblank,max=255"`
	Email                string `json:"email" validate:"notblank,max=255,email"`
	Password             string `json:"password" validate:"notblank,min=8"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
	Remember bool   `json:"remember"`
}
