package models

// RegisterRequest is the registration payload accepted by
// POST /api/auth/register. Unknown JSON keys are ignored by decoding;
// constraints are enforced by the validators package, which reports a
// field→messages map instead of failing on the first violation.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email,min=5,max=120"`
	Password    string `json:"password" validate:"required,min=6,max=100"`
	FirstName   string `json:"first_name" validate:"required,min=1,max=50"`
	LastName    string `json:"last_name" validate:"required,min=1,max=50"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
	Gender      string `json:"gender" validate:"required,oneof=male female other"`
}

// LoginRequest is the credentials payload accepted by POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
