package engine

import "strings"

// effectivenessScores is the fixed method-to-score table behind
// ExpectedEffectiveness.
var effectivenessScores = map[string]int{
	MethodMicroLearning:     70,
	MethodSystematic:        85,
	MethodIntensiveTraining: 90,
	MethodLayeredTeaching:   80,
	MethodProjectDriven:     85,
	MethodFreeResources:     65,
	MethodPaidCourses:       80,
	MethodCustomPlan:        90,
}

// EffectivenessFloor is returned when no table key appears in the label.
const EffectivenessFloor = 70

// ExpectedEffectiveness scans a composed recommendation label and
// returns the maximum table score among all method names that appear as
// substrings. The scan is deliberately substring-based, not an exact
// match: a composed label carries several method names and the best one
// wins. Labels matching nothing get the floor.
func ExpectedEffectiveness(label string) int {
	score := EffectivenessFloor
	for method, value := range effectivenessScores {
		if strings.Contains(label, method) && value > score {
			score = value
		}
	}
	return score
}
