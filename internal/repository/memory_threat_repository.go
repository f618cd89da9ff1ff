package repository

import (
	"context"
	"errors"
	"sync"

	"fisk-dimension/internal/models"
)

var ErrNotFound = errors.New("not found")

// MemoryThreatRepository is the default threat log. Stored values are copies.
type MemoryThreatRepository struct {
	mu      sync.RWMutex
	threats map[string]models.Threat
}

func NewMemoryThreatRepository(seed ...*models.Threat) *MemoryThreatRepository {
	r := &MemoryThreatRepository{threats: make(map[string]models.Threat, len(seed))}
	for _, t := range seed {
		r.threats[t.ID] = *t
	}
	return r
}

func (r *MemoryThreatRepository) Save(ctx context.Context, threat *models.Threat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.threats[threat.ID] = *threat
	return nil
}

func (r *MemoryThreatRepository) Get(ctx context.Context, id string) (*models.Threat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.threats[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (r *MemoryThreatRepository) List(ctx context.Context) ([]*models.Threat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Threat, 0, len(r.threats))
	for _, t := range r.threats {
		t := t
		out = append(out, &t)
	}
	return out, nil
}

func (r *MemoryThreatRepository) UpdateStatus(ctx context.Context, id string, status models.ThreatStatus) (*models.Threat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.threats[id]
	if !ok {
		return nil, ErrNotFound
	}
	t.Status = status
	r.threats[id] = t
	return &t, nil
}
