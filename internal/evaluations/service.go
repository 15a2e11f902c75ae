package evaluations

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"advisor-backend/advisor/engine"
	"advisor-backend/advisor/model"
	"advisor-backend/internal/shared/metrics"
)

// Service runs the scoring procedure and records the result.
type Service struct {
	Repo Repo

	now   func() time.Time
	newID func() string
}

// NewService constructs a Service on the given repo.
func NewService(repo Repo) *Service {
	return &Service{
		Repo:  repo,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Evaluate computes a recommendation for the profile and persists the
// evaluation record. The engine call itself never fails; only storage can.
func (s *Service) Evaluate(ctx context.Context, clientID string, profile model.Profile) (Evaluation, error) {
	metrics.IncEvaluationStarted()
	started := s.now()

	rec := engine.Evaluate(profile)

	eval := Evaluation{
		ID:              s.newID(),
		ClientID:        clientID,
		TimeBudget:      profile.TimeBudget,
		KnowledgeLevel:  profile.KnowledgeLevel,
		MonthlyBudget:   profile.MonthlyBudget,
		Urgency:         profile.Urgency,
		LearningStyle:   profile.LearningStyle,
		Recommendation:  rec.Label,
		Confidence:      rec.Confidence,
		Effectiveness:   engine.ExpectedEffectiveness(rec.Label),
		StyleAdaptation: rec.StyleAdaptation,
		Reasoning:       rec.Reasoning,
		CreatedAt:       started,
	}

	if err := s.Repo.Create(ctx, eval); err != nil {
		metrics.IncEvaluationFailed()
		return Evaluation{}, fmt.Errorf("store evaluation: %w", err)
	}

	metrics.IncEvaluationCompleted()
	metrics.ObserveEvaluationDurationMs(float64(s.now().Sub(started).Microseconds()) / 1000.0)
	return eval, nil
}

// Get returns one evaluation scoped to the client.
func (s *Service) Get(ctx context.Context, clientID, id string) (Evaluation, error) {
	return s.Repo.GetByID(ctx, clientID, id)
}

// List returns the client's most recent evaluations.
func (s *Service) List(ctx context.Context, clientID string, limit int) ([]Evaluation, error) {
	return s.Repo.ListByClient(ctx, clientID, limit)
}
