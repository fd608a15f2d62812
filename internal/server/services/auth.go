// Package services contains server-side business logic. This file implements
// AuthService, which handles account registration and sign-in and mints the
// JWT access tokens the HTTP API hands out.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/avoronkov/wellfinder/internal/common"
	"github.com/avoronkov/wellfinder/internal/models"
	"github.com/avoronkov/wellfinder/internal/server/auth"
	"github.com/avoronkov/wellfinder/internal/server/config"
	"github.com/avoronkov/wellfinder/internal/server/repositories/accounts"
)

// timeNow is a test seam.
var timeNow = time.Now

// dummyHash is compared against when the account does not exist, so that
// sign-in for unknown and known emails takes comparable time.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("wellfinder-dummy"), bcrypt.DefaultCost)

// AuthService provides authentication operations:
//   - SignUp: create an account and mint a session
//   - SignIn: verify credentials and mint a session
type AuthService struct {
	repo            accounts.Repository
	jwtSecret       []byte
	sessionValidity time.Duration
}

// NewAuthService constructs an AuthService using the account repository and
// server config.
func NewAuthService(repo accounts.Repository, cfg *config.Config) *AuthService {
	return &AuthService{
		repo:            repo,
		jwtSecret:       []byte(cfg.SecretKey),
		sessionValidity: cfg.SessionValidityDuration,
	}
}

// SignUp creates an account for the given identity and returns a session for
// it. The email is the unique identity: a taken email yields
// common.ErrDuplicateAccount and no session.
func (s *AuthService) SignUp(ctx context.Context, email, name, password string) (*models.Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account, err := s.repo.Create(ctx, email, name, hash)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateAccount) {
			return nil, common.ErrDuplicateAccount
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	return s.mintSession(account)
}

// SignIn verifies the password against the stored hash and, on success,
// returns a fresh session. Unknown emails and wrong passwords both yield
// common.ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	record, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword(record.PasswordHash, []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	account := record.Account
	return s.mintSession(&account)
}

func (s *AuthService) mintSession(account *models.Account) (*models.Session, error) {
	expiresAt := timeNow().Add(s.sessionValidity)

	token, err := auth.GenerateToken(account.ID, s.jwtSecret, expiresAt)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &models.Session{
		Account:     *account,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
