package users

import "strings"

type RegisterRequest struct {
	Username  string  `json:"username" validate:"required,min=3,max=64"`
	Email     string  `json:"email" validate:"required,email,max=255"`
	Password  string  `json:"password" validate:"required,strongpassword,max=72"`
	Firstname *string `json:"firstname" validate:"omitempty,max=100"`
	Lastname  *string `json:"lastname" validate:"omitempty,max=100"`
}

func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	trimOptional(r.Firstname)
	trimOptional(r.Lastname)
}

// UpdateMeRequest is what an account holder may change about themselves.
type UpdateMeRequest struct {
	Username  *string `json:"username" validate:"omitempty,min=3,max=64"`
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	Password  *string `json:"password" validate:"omitempty,strongpassword,max=72"`
	Firstname *string `json:"firstname" nullable:"true" validate:"omitempty,max=100"`
	Lastname  *string `json:"lastname" nullable:"true" validate:"omitempty,max=100"`
}

func (r *UpdateMeRequest) Normalize() {
	trimOptional(r.Username)
	if r.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &email
	}
	trimOptional(r.Firstname)
	trimOptional(r.Lastname)
}

type AdminUpdateRequest struct {
	UpdateMeRequest
	IsAdmin *bool `json:"is_admin"`
}

func trimOptional(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
