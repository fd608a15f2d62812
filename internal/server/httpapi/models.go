package httpapi

import (
	"time"

	"github.com/avoronkov/wellfinder/internal/models"
)

// SignUpRequest is the payload for POST /api/v1/auth/signup. The display
// name is optional.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	Password string `json:"password" validate:"required"`
}

// SignInRequest is the payload for POST /api/v1/auth/signin.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse is returned by both auth endpoints on success.
type SessionResponse struct {
	Account     models.Account `json:"account"`
	AccessToken string         `json:"accessToken"`
	ExpiresAt   time.Time      `json:"expiresAt"`
}

// CategoriesResponse wraps the distinct category list.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
