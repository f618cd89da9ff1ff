package repository

import (
	"context"
	"sync"

	"fisk-dimension/internal/models"
)

// MemoryTransactionRepository keeps the chain log in process memory. The sample set
// comes from generate, which runs at most once, on first use.
type MemoryTransactionRepository struct {
	generate func() []*models.Transaction
	once     sync.Once

	mu      sync.RWMutex
	records []*models.Transaction
}

func NewMemoryTransactionRepository(generate func() []*models.Transaction) *MemoryTransactionRepository {
	return &MemoryTransactionRepository{generate: generate}
}

func (r *MemoryTransactionRepository) load() {
	r.once.Do(func() {
		if r.generate == nil {
			return
		}
		seed := r.generate()
		r.mu.Lock()
		r.records = append(seed, r.records...)
		r.mu.Unlock()
	})
}

func (r *MemoryTransactionRepository) All(ctx context.Context) ([]*models.Transaction, error) {
	r.load()
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Transaction, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *MemoryTransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	r.load()
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, tx)
	return nil
}
