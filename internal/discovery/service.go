// Package discovery implements location discovery: text search, radius
// queries ranked by distance, and category enumeration over a catalog.
package discovery

import (
	"context"

	"github.com/avoronkov/wellfinder/internal/catalog"
	"github.com/avoronkov/wellfinder/internal/geo"
)

// Service defines the location-discovery operations.
//
// Contract:
//   - Search: case-insensitive substring match over name, category and
//     description; an empty (post-trim) query returns the full catalog in
//     catalog order.
//   - GetByID: absent is (nil, nil), not an error.
//   - GetNearby: every result is within radiusMiles of origin (inclusive),
//     sorted ascending by distance with catalog-order tie-break; a negative
//     radius yields an empty result.
//   - GetCategories: distinct categories currently in the catalog.
//
// The catalog-backed implementation never fails; remote implementations may
// return common.ErrUnavailable on transport failures.
type Service interface {
	Search(ctx context.Context, query string) ([]catalog.Location, error)
	GetByID(ctx context.Context, id string) (*catalog.Location, error)
	GetNearby(ctx context.Context, origin geo.Coordinate, radiusMiles float64) ([]catalog.Location, error)
	GetCategories(ctx context.Context) ([]string, error)
}
