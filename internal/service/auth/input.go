package auth

import "github.com/heartmarshall/incident-desk/internal/validate"

// RegisterInput is an operator sign-up request. bcrypt ignores bytes past
// 72, so longer passwords are refused instead of silently truncated.
type RegisterInput struct {
	Email    string `json:"email"    validate:"required,email,max=254"`
	Name     string `json:"name"     validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (i RegisterInput) Validate() error { return validate.Struct(i) }

type LoginPasswordInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

func (i LoginPasswordInput) Validate() error { return validate.Struct(i) }
