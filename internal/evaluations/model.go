package evaluations

import (
	"time"

	"advisor-backend/advisor/model"
)

// Evaluation is one stored run of the scoring procedure for a client.
type Evaluation struct {
	ID              string
	ClientID        string
	TimeBudget      model.TimeBudget
	KnowledgeLevel  model.KnowledgeLevel
	MonthlyBudget   int
	Urgency         model.Urgency
	LearningStyle   model.LearningStyle
	Recommendation  string
	Confidence      int
	Effectiveness   int
	StyleAdaptation string
	Reasoning       []string
	CreatedAt       time.Time
}

// Profile rebuilds the input tuple this evaluation was computed from.
func (e Evaluation) Profile() model.Profile {
	return model.Profile{
		TimeBudget:     e.TimeBudget,
		KnowledgeLevel: e.KnowledgeLevel,
		MonthlyBudget:  e.MonthlyBudget,
		Urgency:        e.Urgency,
		LearningStyle:  e.LearningStyle,
	}
}
