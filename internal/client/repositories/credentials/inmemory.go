package credentials

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avoronkov/wellfinder/internal/common"
	"github.com/avoronkov/wellfinder/internal/models"
)

// InMemoryRepository is a non-persisted credential store for tests and for
// throwaway local backends. The mutex serializes inserts per store, which is
// enough to keep check-and-set atomic.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]models.StoredCredential
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{records: make(map[string]models.StoredCredential)}
}

func (r *InMemoryRepository) Find(ctx context.Context, email string) (*models.StoredCredential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cred, ok := r.records[email]
	if !ok {
		return nil, nil
	}
	return &cred, nil
}

func (r *InMemoryRepository) Insert(ctx context.Context, email, secret, name string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[email]; ok {
		return nil, common.ErrDuplicateAccount
	}

	account := models.Account{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	r.records[email] = models.StoredCredential{Account: account, Secret: secret}

	return &account, nil
}
