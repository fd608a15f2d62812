package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/avoronkov/wellfinder/internal/client/repositories/credentials"
	"github.com/avoronkov/wellfinder/internal/client/repositories/sessions"
	"github.com/avoronkov/wellfinder/internal/common"
	"github.com/avoronkov/wellfinder/internal/models"
)

// DefaultSessionValidity is how long a locally minted session lives.
const DefaultSessionValidity = 7 * 24 * time.Hour

const accessTokenBytes = 32

// timeNow is a test seam.
var timeNow = time.Now

// LocalAuthService is the self-contained authentication backend. Credentials
// and the current session live in local stores; no server is involved.
//
// Secrets are stored and compared verbatim, matching the development-mode
// contract this backend implements. The comparison is constant-time, but
// anyone with the store file can read the secrets; see DESIGN.md.
type LocalAuthService struct {
	credentials credentials.Repository
	sessions    sessions.Repository
	subscribers *subscriberRegistry
	validity    time.Duration
	latency     time.Duration
}

func NewLocalAuthService(c credentials.Repository, s sessions.Repository, latency time.Duration) *LocalAuthService {
	return &LocalAuthService{
		credentials: c,
		sessions:    s,
		subscribers: newSubscriberRegistry(),
		validity:    DefaultSessionValidity,
		latency:     latency,
	}
}

func (a *LocalAuthService) SignUp(ctx context.Context, email, secret, name string) (*models.Session, error) {
	if err := a.simulateLatency(ctx); err != nil {
		return nil, err
	}

	existing, err := a.credentials.Find(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("credential lookup error: %w", err)
	}
	if existing != nil {
		return nil, common.ErrDuplicateAccount
	}

	account, err := a.credentials.Insert(ctx, email, secret, name)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateAccount) {
			return nil, common.ErrDuplicateAccount
		}
		return nil, fmt.Errorf("credential insert error: %w", err)
	}

	return a.establishSession(ctx, account)
}

func (a *LocalAuthService) SignIn(ctx context.Context, email, secret string) (*models.Session, error) {
	if err := a.simulateLatency(ctx); err != nil {
		return nil, err
	}

	stored, err := a.credentials.Find(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("credential lookup error: %w", err)
	}
	if stored == nil {
		return nil, common.ErrInvalidCredentials
	}

	if subtle.ConstantTimeCompare([]byte(stored.Secret), []byte(secret)) != 1 {
		return nil, common.ErrInvalidCredentials
	}

	return a.establishSession(ctx, &stored.Account)
}

func (a *LocalAuthService) SignOut(ctx context.Context) error {
	if err := a.simulateLatency(ctx); err != nil {
		return err
	}

	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("session clear error: %w", err)
	}

	a.subscribers.notify(nil)
	return nil
}

func (a *LocalAuthService) GetSession(ctx context.Context) (*models.Session, error) {
	return a.sessions.Get(ctx)
}

func (a *LocalAuthService) Subscribe(listener SessionListener) func() {
	return a.subscribers.add(listener)
}

// establishSession mints a session for the account, persists it as the
// current one, and only then notifies subscribers.
func (a *LocalAuthService) establishSession(ctx context.Context, account *models.Account) (*models.Session, error) {
	token, err := common.MakeRandHexString(accessTokenBytes)
	if err != nil {
		return nil, common.ErrInternal
	}

	session := &models.Session{
		Account:     *account,
		AccessToken: token,
		ExpiresAt:   timeNow().Add(a.validity),
	}

	if err := a.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("session persist error: %w", err)
	}

	a.subscribers.notify(session)
	return session, nil
}

func (a *LocalAuthService) simulateLatency(ctx context.Context) error {
	if a.latency <= 0 {
		return nil
	}

	timer := time.NewTimer(a.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
