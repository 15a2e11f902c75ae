// Package report builds the per-factor commentary that accompanies an
// evaluation. Everything here is a pure lookup with a fallback sentence
// for out-of-domain values.
package report

import (
	"fmt"

	"advisor-backend/advisor/model"
)

// FactorDetail is one row of the detailed analysis: which factor, what
// the learner selected, and a short commentary sentence.
type FactorDetail struct {
	Factor    string `json:"factor"`
	Selection string `json:"selection"`
	Analysis  string `json:"analysis"`
}

var timeAnalyses = map[model.TimeBudget]string{
	model.TimeUnder1h: "Very little time available; use spare moments and focus on core concepts",
	model.Time1To2h:   "Moderate time available; set a fixed daily slot and focus on key skills",
	model.Time2To4h:   "Plenty of time available; suited to systematic learning and a complete knowledge base",
	model.TimeOver4h:  "Abundant time available; go deep and combine theory with practice",
}

var levelAnalyses = map[model.KnowledgeLevel]string{
	model.LevelNone:         "Start from basic concepts with plenty of examples and exercises; progress step by step",
	model.LevelBeginner:     "Basics are familiar; review quickly and move on to the core material",
	model.LevelIntermediate: "A reasonable foundation exists; project-driven learning targets the hard parts",
	model.LevelAdvanced:     "Foundation is solid; focus on advanced topics and deep optimization",
}

var styleAnalyses = map[model.LearningStyle]string{
	model.StyleVisual:   "Suits video tutorials, diagrams and mind maps",
	model.StyleAuditory: "Suits audio courses, podcasts and recorded lectures",
	model.StyleHandsOn:  "Suits coding practice, project building and experiments",
	model.StyleReading:  "Suits documentation, e-books and technical articles",
}

var urgencyAnalyses = map[model.Urgency]string{
	model.UrgencyRelaxed:  "Pace can be slow; invest in depth of understanding and solid basics",
	model.UrgencyModerate: "A clear study plan is needed; advance steadily through it",
	model.UrgencyUrgent:   "Intensive training is needed; focus on core skills and improve fast",
}

// Generic fallbacks keep the report total even when a factor value is
// outside its documented set.
const (
	timeFallback    = "Time availability analysis"
	levelFallback   = "Knowledge level analysis"
	styleFallback   = "Learning style analysis"
	urgencyFallback = "Urgency analysis"
)

// FactorBreakdown returns one detail entry per input factor, in the
// fixed factor order.
func FactorBreakdown(p model.Profile) []FactorDetail {
	return []FactorDetail{
		{Factor: "time", Selection: string(p.TimeBudget), Analysis: TimeAnalysis(p.TimeBudget)},
		{Factor: "knowledge", Selection: string(p.KnowledgeLevel), Analysis: LevelAnalysis(p.KnowledgeLevel)},
		{Factor: "budget", Selection: fmt.Sprintf("%d per month", p.MonthlyBudget), Analysis: BudgetAnalysis(p.MonthlyBudget)},
		{Factor: "style", Selection: string(p.LearningStyle), Analysis: StyleAnalysis(p.LearningStyle)},
		{Factor: "urgency", Selection: string(p.Urgency), Analysis: UrgencyAnalysis(p.Urgency)},
	}
}

// TimeAnalysis comments on the daily time selection.
func TimeAnalysis(t model.TimeBudget) string {
	if s, ok := timeAnalyses[t]; ok {
		return s
	}
	return timeFallback
}

// LevelAnalysis comments on the knowledge level selection.
func LevelAnalysis(l model.KnowledgeLevel) string {
	if s, ok := levelAnalyses[l]; ok {
		return s
	}
	return levelFallback
}

// BudgetAnalysis comments on the monthly budget. The thresholds mirror
// the engine's budget rule.
func BudgetAnalysis(budget int) string {
	switch {
	case budget < 300:
		return "Budget is tight, but many quality free resources exist: open tutorials, public courses and more"
	case budget < 1000:
		return "Budget is moderate; buy key courses selectively and combine them with free resources"
	default:
		return "Budget is ample; premium tailored services with personal guidance are an option"
	}
}

// StyleAnalysis comments on the learning style selection.
func StyleAnalysis(s model.LearningStyle) string {
	if v, ok := styleAnalyses[s]; ok {
		return v
	}
	return styleFallback
}

// UrgencyAnalysis comments on the urgency selection.
func UrgencyAnalysis(u model.Urgency) string {
	if s, ok := urgencyAnalyses[u]; ok {
		return s
	}
	return urgencyFallback
}

// StudySuggestions returns the fixed optimization tips shown next to
// every report.
func StudySuggestions() []string {
	return []string{
		"Plan ahead: block out fixed study slots that match your available time",
		"Set targets: define concrete, measurable learning goals",
		"Review often: schedule time to revisit material you already covered",
		"Curate sources: prefer well-reviewed learning material",
		"Learn together: join a study group and keep each other accountable",
		"Apply it: practice immediately after learning something new",
		"Manage time: use focused work intervals to stay efficient",
		"Track progress: record what you studied and what it produced",
	}
}
