package auth

import (
	"strings"
	"time"

	"videogame-catalog/internal/domain/users"
)

// LoginRequest identifies the account by username or by email.
type LoginRequest struct {
	Username string `json:"username" validate:"required_without=Email"`
	Email    string `json:"email" validate:"required_without=Username"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
}

func (r *LoginRequest) login() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

type LoginResponse struct {
	Token     string     `json:"token"`
	TokenType string     `json:"token_type"`
	ExpiresAt time.Time  `json:"expires_at"`
	User      users.User `json:"user"`
}
