// Package reference serves the static catalogs shown next to every
// recommendation: the method utility comparison, the decision-node
// details, and the documentation outline of the decision structure. The
// outline is descriptive text only; the scoring procedure is an ordered
// rule list, not an executed tree.
package reference

import "advisor-backend/advisor/engine"

// MethodUtility is one bar of the utility comparison chart.
type MethodUtility struct {
	Method  string `json:"method"`
	Utility int    `json:"utility"`
	Group   string `json:"group"`
}

// DecisionNode describes one evaluation factor as presented in the
// decision-node table.
type DecisionNode struct {
	Node     string `json:"node"`
	Factor   string `json:"factor"`
	Branches string `json:"branches"`
	Weight   string `json:"weight"`
}

const (
	groupTime       = "time plans"
	groupFoundation = "foundation plans"
	groupBudget     = "budget plans"
)

// Service exposes the read-only catalogs.
type Service struct{}

// NewService constructs a reference Service.
func NewService() *Service {
	return &Service{}
}

// MethodUtilities returns the fixed utility score per learning method.
// The figures are illustrative chart values and deliberately differ
// from the effectiveness table used for scoring.
func (s *Service) MethodUtilities() []MethodUtility {
	return []MethodUtility{
		{Method: engine.MethodMicroLearning, Utility: 75, Group: groupTime},
		{Method: engine.MethodSystematic, Utility: 85, Group: groupTime},
		{Method: engine.MethodIntensiveTraining, Utility: 90, Group: groupTime},
		{Method: engine.MethodLayeredTeaching, Utility: 80, Group: groupFoundation},
		{Method: engine.MethodProjectDriven, Utility: 85, Group: groupFoundation},
		{Method: engine.MethodFreeResources, Utility: 65, Group: groupBudget},
		{Method: engine.MethodPaidCourses, Utility: 80, Group: groupBudget},
		{Method: engine.MethodCustomPlan, Utility: 90, Group: groupBudget},
	}
}

// DecisionNodes returns the factor table with illustrative weights.
func (s *Service) DecisionNodes() []DecisionNode {
	return []DecisionNode{
		{Node: "time assessment", Factor: "daily available study time", Branches: "3 time plans", Weight: "30%"},
		{Node: "knowledge assessment", Factor: "current knowledge level", Branches: "3 foundation plans", Weight: "25%"},
		{Node: "budget assessment", Factor: "monthly learning budget", Branches: "3 budget plans", Weight: "25%"},
		{Node: "complexity assessment", Factor: "difficulty of the material", Branches: "3 difficulty plans", Weight: "20%"},
	}
}

// Outline returns the decision structure as display text.
func (s *Service) Outline() string {
	return `learning needs analysis (root)
|
+-- time availability (decision node)
|   +-- <2h        -> micro-learning       [utility: 75]
|   +-- 2-4h       -> systematic           [utility: 85]
|   +-- >4h        -> intensive-training   [utility: 90]
|
+-- knowledge foundation (decision node)
|   +-- none       -> layered-teaching     [utility: 80]
|   +-- grounded   -> project-driven       [utility: 85]
|   +-- advanced   -> topic research       [utility: 88]
|
+-- learning budget (decision node)
|   +-- <300       -> free-resources       [utility: 70]
|   +-- 300-1000   -> paid-courses         [utility: 82]
|   +-- >1000      -> custom-plan          [utility: 92]
|
+-- content complexity (decision node)
    +-- basic      -> illustrated guides   [utility: 78]
    +-- medium     -> case teaching        [utility: 83]
    +-- complex    -> project-driven       [utility: 87]`
}
