package services

import (
	"context"
	"fmt"

	"github.com/avoronkov/wellfinder/internal/client/api"
	"github.com/avoronkov/wellfinder/internal/client/repositories/sessions"
	"github.com/avoronkov/wellfinder/internal/models"
)

// RemoteAuthService authenticates against a wellfinder server. The session
// the server mints is persisted locally so it survives restarts; expiry is
// still enforced lazily on read by the session store.
type RemoteAuthService struct {
	client      api.Client
	sessions    sessions.Repository
	subscribers *subscriberRegistry
}

func NewRemoteAuthService(client api.Client, s sessions.Repository) *RemoteAuthService {
	return &RemoteAuthService{
		client:      client,
		sessions:    s,
		subscribers: newSubscriberRegistry(),
	}
}

func (a *RemoteAuthService) SignUp(ctx context.Context, email, secret, name string) (*models.Session, error) {
	session, err := a.client.SignUp(ctx, email, name, secret)
	if err != nil {
		return nil, err
	}
	return a.establishSession(ctx, session)
}

func (a *RemoteAuthService) SignIn(ctx context.Context, email, secret string) (*models.Session, error) {
	session, err := a.client.SignIn(ctx, email, secret)
	if err != nil {
		return nil, err
	}
	return a.establishSession(ctx, session)
}

func (a *RemoteAuthService) SignOut(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("session clear error: %w", err)
	}

	a.subscribers.notify(nil)
	return nil
}

func (a *RemoteAuthService) GetSession(ctx context.Context) (*models.Session, error) {
	return a.sessions.Get(ctx)
}

func (a *RemoteAuthService) Subscribe(listener SessionListener) func() {
	return a.subscribers.add(listener)
}

func (a *RemoteAuthService) establishSession(ctx context.Context, session *models.Session) (*models.Session, error) {
	if err := a.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("session persist error: %w", err)
	}

	a.subscribers.notify(session)
	return session, nil
}
