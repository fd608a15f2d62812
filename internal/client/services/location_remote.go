package services

import (
	"context"
	"errors"

	"github.com/avoronkov/wellfinder/internal/catalog"
	"github.com/avoronkov/wellfinder/internal/client/api"
	"github.com/avoronkov/wellfinder/internal/client/repositories/sessions"
	"github.com/avoronkov/wellfinder/internal/common"
	"github.com/avoronkov/wellfinder/internal/geo"
)

// RemoteLocationService answers discovery queries through the server API,
// attaching the current session's token to each call. It implements
// discovery.Service.
type RemoteLocationService struct {
	client   api.Client
	sessions sessions.Repository
}

func NewRemoteLocationService(client api.Client, s sessions.Repository) *RemoteLocationService {
	return &RemoteLocationService{client: client, sessions: s}
}

func (s *RemoteLocationService) Search(ctx context.Context, query string) ([]catalog.Location, error) {
	token, err := s.accessToken(ctx)
	if err != nil {
		return nil, err
	}
	return s.client.SearchLocations(ctx, token, query)
}

func (s *RemoteLocationService) GetByID(ctx context.Context, id string) (*catalog.Location, error) {
	token, err := s.accessToken(ctx)
	if err != nil {
		return nil, err
	}
	return s.client.GetLocation(ctx, token, id)
}

func (s *RemoteLocationService) GetNearby(ctx context.Context, origin geo.Coordinate, radiusMiles float64) ([]catalog.Location, error) {
	token, err := s.accessToken(ctx)
	if err != nil {
		return nil, err
	}
	return s.client.GetNearby(ctx, token, origin, radiusMiles)
}

// GetCategories degrades to an empty set when the backend is unreachable:
// the category list is advisory, not critical.
func (s *RemoteLocationService) GetCategories(ctx context.Context) ([]string, error) {
	token, err := s.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.client.GetCategories(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrUnavailable) {
			return []string{}, nil
		}
		return nil, err
	}
	return categories, nil
}

// accessToken returns the current session's token. Without a valid session
// the server would reject the call anyway, so it is reported up front as
// common.ErrInvalidToken.
func (s *RemoteLocationService) accessToken(ctx context.Context) (string, error) {
	session, err := s.sessions.Get(ctx)
	if err != nil {
		return "", err
	}
	if session == nil {
		return "", common.ErrInvalidToken
	}
	return session.AccessToken, nil
}
