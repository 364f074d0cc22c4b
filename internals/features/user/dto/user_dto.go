package dto

// UpdateUserRequest dikirim ke PUT /update-user.
// Konfirmasi password divalidasi di sisi klien sebelum request keluar.
type UpdateUserRequest struct {
	Name                 string `json:"name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}
