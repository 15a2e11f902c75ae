package evaluations

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Evaluation // clientId -> evaluations, oldest first
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Evaluation),
	}
}

// Create appends an evaluation for a client.
func (r *MemoryRepo) Create(ctx context.Context, eval Evaluation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	reasoning := append([]string(nil), eval.Reasoning...)
	eval.Reasoning = reasoning
	r.data[eval.ClientID] = append(r.data[eval.ClientID], eval)
	return nil
}

// GetByID returns an evaluation by ID scoped to a client.
func (r *MemoryRepo) GetByID(ctx context.Context, clientID, id string) (Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return Evaluation{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	evals := r.data[clientID]
	for i := range evals {
		if evals[i].ID == id {
			return evals[i], nil
		}
	}
	return Evaluation{}, ErrNotFound
}

// ListByClient returns the most recent evaluations for a client, newest first.
func (r *MemoryRepo) ListByClient(ctx context.Context, clientID string, limit int) ([]Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	evals := r.data[clientID]
	out := make([]Evaluation, 0, len(evals))
	for i := len(evals) - 1; i >= 0; i-- {
		out = append(out, evals[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
