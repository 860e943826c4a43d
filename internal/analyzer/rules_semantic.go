package analyzer

import (
	"fmt"

	"github.com/framelint/framelint/domain"
)

// NonSemanticNameRule fires when a frame's name is an auto-generated
// default or fails every semantic naming pattern.
type NonSemanticNameRule struct {
	BaseRule
}

// NewNonSemanticNameRule creates the rule
func NewNonSemanticNameRule() *NonSemanticNameRule {
	return &NonSemanticNameRule{
		BaseRule: NewBaseRule(domain.RuleDefinition{
			ID:          "NON_SEMANTIC_NAME",
			Name:        "Non-Semantic Name",
			Category:    domain.CategorySemantic,
			Severity:    domain.SeverityMinor,
			Description: "Frame names should communicate a UI role (role-prefixed or kebab-case)",
			Impact:      "Generated identifiers inherit meaningless names like Frame123",
			Weight:      3,
		}),
	}
}

// Check evaluates the rule against a single node
func (r *NonSemanticNameRule) Check(node *domain.DesignNode, _ *CheckContext) RuleCheckResult {
	if !node.IsFrame() {
		return r.Passed()
	}
	if IsSemanticName(node.Name) {
		return r.Passed()
	}
	return r.Failed(r.NewViolation(node,
		fmt.Sprintf("Frame name %q is not semantic", node.Name),
		"Generated class and component names carry no meaning",
		WithSuggestion("Rename the frame after its UI role, e.g. hero-section or Card/Product"),
		WithDetected(node.Name),
	))
}
