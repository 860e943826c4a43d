package analyzer

import (
	"fmt"

	"github.com/framelint/framelint/domain"
)

// ComponentNotUsedRule fires when a plain frame's name matches the
// reusable-element heuristic but the node is not a component or instance.
type ComponentNotUsedRule struct {
	BaseRule
}

// NewComponentNotUsedRule creates the rule
func NewComponentNotUsedRule() *ComponentNotUsedRule {
	return &ComponentNotUsedRule{
		BaseRule: NewBaseRule(domain.RuleDefinition{
			ID:          "COMPONENT_NOT_USED",
			Name:        "Component Not Used",
			Category:    domain.CategoryComponent,
			Severity:    domain.SeverityMinor,
			Description: "Repeating UI elements should be components rather than plain frames",
			Impact:      "Duplicated frames drift apart instead of sharing one component",
			Weight:      3,
		}),
	}
}

// Check evaluates the rule against a single node
func (r *ComponentNotUsedRule) Check(node *domain.DesignNode, _ *CheckContext) RuleCheckResult {
	if !node.IsFrame() {
		return r.Passed()
	}
	if node.IsComponentLike() {
		return r.Passed()
	}
	if !IsReusableElementName(node.Name) {
		return r.Passed()
	}
	return r.Failed(r.NewViolation(node,
		fmt.Sprintf("Frame %q looks reusable but is not a component", node.Name),
		"Each copy must be updated by hand when the design changes",
		WithSuggestion("Convert the frame into a component and place instances"),
	))
}
