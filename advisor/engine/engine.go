package engine

import (
	"fmt"
	"math"
	"strings"

	"advisor-backend/advisor/model"
)

// Method tags composed into the recommendation label.
const (
	MethodMicroLearning     = "micro-learning"
	MethodSystematic        = "systematic"
	MethodIntensiveTraining = "intensive-training"
	MethodLayeredTeaching   = "layered-teaching"
	MethodProjectDriven     = "project-driven"
	MethodFreeResources     = "free-resources"
	MethodPaidCourses       = "paid-courses"
	MethodCustomPlan        = "custom-plan"
)

// Budget thresholds for the budget rule. The paid tier is inclusive at
// its lower bound: exactly 300 selects paid-courses.
const (
	paidCoursesBudget = 300
	customPlanBudget  = 1000
)

const labelSeparator = " + "

// styleAdaptations maps a learning style to its material suffix. Unknown
// styles fall back to a generic suffix instead of failing.
var styleAdaptations = map[model.LearningStyle]string{
	model.StyleVisual:   "+ diagrams and video material",
	model.StyleAuditory: "+ audio courses and podcasts",
	model.StyleHandsOn:  "+ hands-on projects",
	model.StyleReading:  "+ e-books and written guides",
}

const styleAdaptationFallback = "+ mixed-format material"

// outcome accumulates the result of each analysis step.
type outcome struct {
	baseMethod      string
	knowledgeTag    string
	budgetTag       string
	styleAdaptation string
	scores          []float64
	reasoning       []string
}

// Evaluate runs the scoring procedure on a learner profile. It is a pure
// function: no I/O, no mutation of the input, deterministic output. It
// never fails; out-of-domain categorical values take each step's
// fallback branch.
func Evaluate(p model.Profile) model.Recommendation {
	steps := []func(model.Profile, *outcome){
		analyzeTime,
		analyzeKnowledge,
		analyzeBudget,
		analyzeStyle,
		analyzeUrgency,
	}

	var out outcome
	for _, step := range steps {
		step(p, &out)
	}

	label := strings.Join([]string{out.baseMethod, out.knowledgeTag, out.budgetTag}, labelSeparator)

	return model.Recommendation{
		Label:           label,
		Confidence:      confidence(out.scores),
		Reasoning:       out.reasoning,
		StyleAdaptation: out.styleAdaptation,
	}
}

// analyzeTime selects the base method. Limited daily time favors
// fragmented micro-learning; anything else gets the systematic track.
func analyzeTime(p model.Profile, out *outcome) {
	if p.TimeBudget == model.TimeUnder1h || p.TimeBudget == model.Time1To2h {
		out.baseMethod = MethodMicroLearning
		out.scores = append(out.scores, 0.7)
		out.reasoning = append(out.reasoning, "Time: limited daily study time, fragmented micro-learning fits best")
		return
	}
	out.baseMethod = MethodSystematic
	out.scores = append(out.scores, 0.9)
	out.reasoning = append(out.reasoning, "Time: ample daily study time, suited to systematic in-depth learning")
}

func analyzeKnowledge(p model.Profile, out *outcome) {
	if p.KnowledgeLevel == model.LevelNone || p.KnowledgeLevel == model.LevelBeginner {
		out.knowledgeTag = MethodLayeredTeaching
		out.scores = append(out.scores, 0.6)
		out.reasoning = append(out.reasoning, "Foundation: current basics are weak, layered progressive teaching is needed")
		return
	}
	out.knowledgeTag = MethodProjectDriven
	out.scores = append(out.scores, 0.8)
	out.reasoning = append(out.reasoning, "Foundation: solid basics in place, suited to project-driven learning")
}

func analyzeBudget(p model.Profile, out *outcome) {
	switch {
	case p.MonthlyBudget < paidCoursesBudget:
		out.budgetTag = MethodFreeResources
		out.scores = append(out.scores, 0.5)
		out.reasoning = append(out.reasoning, "Budget: limited budget, prioritize quality free resources")
	case p.MonthlyBudget < customPlanBudget:
		out.budgetTag = MethodPaidCourses
		out.scores = append(out.scores, 0.7)
		out.reasoning = append(out.reasoning, "Budget: moderate budget, selectively purchase paid courses")
	default:
		out.budgetTag = MethodCustomPlan
		out.scores = append(out.scores, 0.9)
		out.reasoning = append(out.reasoning, "Budget: ample budget, a tailored premium plan is recommended")
	}
}

// analyzeStyle contributes a reasoning entry and the adaptation suffix
// but no score.
func analyzeStyle(p model.Profile, out *outcome) {
	adaptation, ok := styleAdaptations[p.LearningStyle]
	if !ok {
		adaptation = styleAdaptationFallback
	}
	out.styleAdaptation = adaptation
	out.reasoning = append(out.reasoning, fmt.Sprintf("Style: detected a %s learning preference", p.LearningStyle))
}

// analyzeUrgency may overwrite the base method chosen by analyzeTime.
func analyzeUrgency(p model.Profile, out *outcome) {
	if p.Urgency == model.UrgencyUrgent {
		out.baseMethod = MethodIntensiveTraining
		out.scores = append(out.scores, 0.8)
		out.reasoning = append(out.reasoning, "Urgency: pressing learning goal, intensive training mode is recommended")
		return
	}
	out.scores = append(out.scores, 0.6)
}

// confidence is the mean of the collected scores as a percentage,
// rounded half away from zero.
func confidence(scores []float64) int {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return int(math.Round(sum / float64(len(scores)) * 100))
}
