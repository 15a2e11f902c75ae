package evaluations

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"advisor-backend/advisor/model"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new evaluation.
func (r *PGRepo) Create(ctx context.Context, eval Evaluation) error {
	const query = `
INSERT INTO evaluations (
    id,
    client_id,
    time_budget,
    knowledge_level,
    monthly_budget,
    urgency,
    learning_style,
    recommendation,
    confidence,
    effectiveness,
    style_adaptation,
    reasoning,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	reasoning := eval.Reasoning
	if reasoning == nil {
		reasoning = []string{}
	}
	reasoningJSON, err := json.Marshal(reasoning)
	if err != nil {
		return fmt.Errorf("marshal reasoning: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		eval.ID,
		eval.ClientID,
		string(eval.TimeBudget),
		string(eval.KnowledgeLevel),
		eval.MonthlyBudget,
		string(eval.Urgency),
		string(eval.LearningStyle),
		eval.Recommendation,
		eval.Confidence,
		eval.Effectiveness,
		eval.StyleAdaptation,
		reasoningJSON,
		eval.CreatedAt,
	)
	return err
}

// GetByID returns an evaluation by ID scoped to a client.
func (r *PGRepo) GetByID(ctx context.Context, clientID, id string) (Evaluation, error) {
	const query = `
SELECT id, client_id, time_budget, knowledge_level, monthly_budget, urgency, learning_style,
       recommendation, confidence, effectiveness, style_adaptation, reasoning, created_at
FROM evaluations
WHERE id = $1 AND client_id = $2`

	row := r.DB.QueryRowContext(ctx, query, id, clientID)
	eval, err := scanEvaluation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Evaluation{}, ErrNotFound
		}
		return Evaluation{}, err
	}
	return eval, nil
}

// ListByClient returns the most recent evaluations for a client, newest first.
func (r *PGRepo) ListByClient(ctx context.Context, clientID string, limit int) ([]Evaluation, error) {
	const query = `
SELECT id, client_id, time_budget, knowledge_level, monthly_budget, urgency, learning_style,
       recommendation, confidence, effectiveness, style_adaptation, reasoning, created_at
FROM evaluations
WHERE client_id = $1
ORDER BY created_at DESC
LIMIT $2`

	if limit <= 0 {
		limit = 20
	}
	rows, err := r.DB.QueryContext(ctx, query, clientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Evaluation
	for rows.Next() {
		eval, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, eval)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvaluation(row rowScanner) (Evaluation, error) {
	var eval Evaluation
	var timeBudget, knowledgeLevel, urgency, learningStyle string
	var reasoningJSON []byte
	err := row.Scan(
		&eval.ID,
		&eval.ClientID,
		&timeBudget,
		&knowledgeLevel,
		&eval.MonthlyBudget,
		&urgency,
		&learningStyle,
		&eval.Recommendation,
		&eval.Confidence,
		&eval.Effectiveness,
		&eval.StyleAdaptation,
		&reasoningJSON,
		&eval.CreatedAt,
	)
	if err != nil {
		return Evaluation{}, err
	}
	eval.TimeBudget = model.TimeBudget(timeBudget)
	eval.KnowledgeLevel = model.KnowledgeLevel(knowledgeLevel)
	eval.Urgency = model.Urgency(urgency)
	eval.LearningStyle = model.LearningStyle(learningStyle)
	if len(reasoningJSON) > 0 {
		if err := json.Unmarshal(reasoningJSON, &eval.Reasoning); err != nil {
			return Evaluation{}, fmt.Errorf("unmarshal reasoning: %w", err)
		}
	}
	return eval, nil
}
