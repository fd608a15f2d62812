package discovery

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/avoronkov/wellfinder/internal/catalog"
	"github.com/avoronkov/wellfinder/internal/geo"
)

// CatalogService answers discovery queries from an in-process catalog.
// It backs both the local (mock) client backend and the server API.
//
// An optional latency can be injected to simulate network round trips in
// development; it defaults to zero and must stay zero in production wiring.
type CatalogService struct {
	catalog *catalog.Catalog
	latency time.Duration
}

func NewCatalogService(c *catalog.Catalog, latency time.Duration) *CatalogService {
	return &CatalogService{catalog: c, latency: latency}
}

func (s *CatalogService) Search(ctx context.Context, query string) ([]catalog.Location, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.catalog.All(), nil
	}

	matched := make([]catalog.Location, 0)
	for _, l := range s.catalog.All() {
		if strings.Contains(strings.ToLower(l.Name), q) ||
			strings.Contains(strings.ToLower(l.Category), q) ||
			strings.Contains(strings.ToLower(l.Description), q) {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*catalog.Location, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	return s.catalog.ByID(id), nil
}

func (s *CatalogService) GetNearby(ctx context.Context, origin geo.Coordinate, radiusMiles float64) ([]catalog.Location, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	if radiusMiles < 0 {
		return []catalog.Location{}, nil
	}

	type ranked struct {
		loc  catalog.Location
		dist float64
	}

	within := make([]ranked, 0)
	for _, l := range s.catalog.All() {
		d := geo.DistanceMiles(origin, l.Coordinate())
		if d <= radiusMiles {
			within = append(within, ranked{loc: l, dist: d})
		}
	}

	// stable sort keeps catalog order for equal distances
	sort.SliceStable(within, func(i, j int) bool {
		return within[i].dist < within[j].dist
	})

	out := make([]catalog.Location, len(within))
	for i, r := range within {
		out[i] = r.loc
	}
	return out, nil
}

func (s *CatalogService) GetCategories(ctx context.Context) ([]string, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	return s.catalog.Categories(), nil
}

func (s *CatalogService) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
