package evaluations

import (
	"time"

	"advisor-backend/advisor/report"
)

// EvaluationResponse is the outward-facing representation of an evaluation.
type EvaluationResponse struct {
	EvaluationID    string                `json:"evaluationId"`
	Recommendation  string                `json:"recommendation"`
	Confidence      int                   `json:"confidence"`
	Effectiveness   int                   `json:"effectiveness"`
	StyleAdaptation string                `json:"styleAdaptation"`
	Reasoning       []string              `json:"reasoning"`
	Factors         []report.FactorDetail `json:"factors"`
	CreatedAt       time.Time             `json:"createdAt"`
}

func toResponse(eval Evaluation) EvaluationResponse {
	reasoning := eval.Reasoning
	if reasoning == nil {
		reasoning = []string{}
	}
	return EvaluationResponse{
		EvaluationID:    eval.ID,
		Recommendation:  eval.Recommendation,
		Confidence:      eval.Confidence,
		Effectiveness:   eval.Effectiveness,
		StyleAdaptation: eval.StyleAdaptation,
		Reasoning:       reasoning,
		Factors:         report.FactorBreakdown(eval.Profile()),
		CreatedAt:       eval.CreatedAt,
	}
}

func toResponses(evals []Evaluation) []EvaluationResponse {
	out := make([]EvaluationResponse, 0, len(evals))
	for _, eval := range evals {
		out = append(out, toResponse(eval))
	}
	return out
}
