// Package api defines the client-side contract for talking to a wellfinder
// server, and its HTTP implementation.
package api

import (
	"context"

	"github.com/avoronkov/wellfinder/internal/catalog"
	"github.com/avoronkov/wellfinder/internal/geo"
	"github.com/avoronkov/wellfinder/internal/models"
)

// Client is the transport contract to the backend server.
//
// Error mapping:
//   - SignUp: common.ErrDuplicateAccount when the email is taken.
//   - SignIn: common.ErrInvalidCredentials on unknown email or wrong password.
//   - Location calls: common.ErrInvalidToken when the server rejects the
//     token; GetLocation returns (nil, nil) for an unknown ID.
//   - Any transport failure or server-side error maps to
//     common.ErrUnavailable.
type Client interface {
	Ping(ctx context.Context) error
	SignUp(ctx context.Context, email, name, password string) (*models.Session, error)
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	SearchLocations(ctx context.Context, token, query string) ([]catalog.Location, error)
	GetLocation(ctx context.Context, token, id string) (*catalog.Location, error)
	GetNearby(ctx context.Context, token string, origin geo.Coordinate, radiusMiles float64) ([]catalog.Location, error)
	GetCategories(ctx context.Context, token string) ([]string, error)
}
