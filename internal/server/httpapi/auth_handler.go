package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/avoronkov/wellfinder/internal/common"
	"github.com/avoronkov/wellfinder/internal/logging"
	"github.com/avoronkov/wellfinder/internal/models"
	"github.com/avoronkov/wellfinder/internal/server/services"
)

// AuthHandler serves the /api/v1/auth endpoints.
type AuthHandler struct {
	auth     *services.AuthService
	validate *validator.Validate
	logger   logging.Logger
}

func NewAuthHandler(auth *services.AuthService, logger logging.Logger) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		validate: validator.New(),
		logger:   logger,
	}
}

// SignUp handles POST /api/v1/auth/signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	session, err := h.auth.SignUp(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateAccount) {
			respondError(w, http.StatusConflict, "account already exists")
			return
		}
		h.logger.Error(r.Context(), "signup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create account")
		return
	}

	respondJSON(w, http.StatusCreated, sessionResponse(session))
}

// SignIn handles POST /api/v1/auth/signin.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	session, err := h.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.Error(r.Context(), "signin failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to authenticate")
		return
	}

	respondJSON(w, http.StatusOK, sessionResponse(session))
}

func sessionResponse(s *models.Session) SessionResponse {
	return SessionResponse{
		Account:     s.Account,
		AccessToken: s.AccessToken,
		ExpiresAt:   s.ExpiresAt,
	}
}
