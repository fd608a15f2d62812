package accounts

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avoronkov/wellfinder/internal/common"
	"github.com/avoronkov/wellfinder/internal/models"
)

// InMemoryRepository backs tests and single-process deployments. The mutex
// makes Create a single atomic check-and-set.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{records: make(map[string]Record)}
}

func (r *InMemoryRepository) Create(ctx context.Context, email, name string, passwordHash []byte) (*models.Account, error) {
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

	hash := make([]byte, len(passwordHash))
	copy(hash, passwordHash)
	r.records[email] = Record{Account: account, PasswordHash: hash}

	return &account, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &rec, nil
}
