package model

// TimeBudget is the daily time a learner can commit.
type TimeBudget string

const (
	TimeUnder1h TimeBudget = "under_1h"
	Time1To2h   TimeBudget = "1_2h"
	Time2To4h   TimeBudget = "2_4h"
	TimeOver4h  TimeBudget = "over_4h"
)

// KnowledgeLevel is the learner's current foundation.
type KnowledgeLevel string

const (
	LevelNone         KnowledgeLevel = "none"
	LevelBeginner     KnowledgeLevel = "beginner"
	LevelIntermediate KnowledgeLevel = "intermediate"
	LevelAdvanced     KnowledgeLevel = "advanced"
)

// Urgency is how pressing the learning goal is.
type Urgency string

const (
	UrgencyRelaxed  Urgency = "relaxed"
	UrgencyModerate Urgency = "moderate"
	UrgencyUrgent   Urgency = "urgent"
)

// LearningStyle is the learner's preferred material format.
type LearningStyle string

const (
	StyleVisual   LearningStyle = "visual"
	StyleAuditory LearningStyle = "auditory"
	StyleHandsOn  LearningStyle = "hands_on"
	StyleReading  LearningStyle = "reading"
)

// Monthly budget bounds enforced at the API boundary. The engine itself
// accepts any integer and resolves it through thresholds.
const (
	MinMonthlyBudget = 0
	MaxMonthlyBudget = 2000
)

// Profile is the five-factor input tuple for one evaluation.
type Profile struct {
	TimeBudget     TimeBudget
	KnowledgeLevel KnowledgeLevel
	MonthlyBudget  int
	Urgency        Urgency
	LearningStyle  LearningStyle
}

// Recommendation is the engine output: a composed method label, a
// confidence percentage, the ordered reasoning trail, and the style
// adaptation suffix.
type Recommendation struct {
	Label           string   `json:"label"`
	Confidence      int      `json:"confidence"`
	Reasoning       []string `json:"reasoning"`
	StyleAdaptation string   `json:"styleAdaptation"`
}

// TimeBudgets lists the documented time options in display order.
func TimeBudgets() []TimeBudget {
	return []TimeBudget{TimeUnder1h, Time1To2h, Time2To4h, TimeOver4h}
}

// KnowledgeLevels lists the documented level options in display order.
func KnowledgeLevels() []KnowledgeLevel {
	return []KnowledgeLevel{LevelNone, LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// Urgencies lists the documented urgency options in display order.
func Urgencies() []Urgency {
	return []Urgency{UrgencyRelaxed, UrgencyModerate, UrgencyUrgent}
}

// LearningStyles lists the documented style options in display order.
func LearningStyles() []LearningStyle {
	return []LearningStyle{StyleVisual, StyleAuditory, StyleHandsOn, StyleReading}
}

// BudgetInRange reports whether a monthly budget is inside the
// documented slider range.
func BudgetInRange(budget int) bool {
	return budget >= MinMonthlyBudget && budget <= MaxMonthlyBudget
}
