package evaluations

import "context"

// Repo defines persistence operations for evaluations.
type Repo interface {
	Create(ctx context.Context, eval Evaluation) error
	GetByID(ctx context.Context, clientID, id string) (Evaluation, error)
	ListByClient(ctx context.Context, clientID string, limit int) ([]Evaluation, error)
}
