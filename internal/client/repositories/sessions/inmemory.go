package sessions

import (
	"context"
	"sync"

	"github.com/avoronkov/wellfinder/internal/models"
)

// InMemoryRepository keeps the session slot in memory. Get takes the write
// lock because lazy expiry may discard the stored session.
type InMemoryRepository struct {
	mu      sync.Mutex
	current *models.Session
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Put(ctx context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *session
	r.current = &copied
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return nil, nil
	}
	if r.current.Expired(timeNow()) {
		r.current = nil
		return nil, nil
	}

	copied := *r.current
	return &copied, nil
}

func (r *InMemoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = nil
	return nil
}
