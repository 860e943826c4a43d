package analyzer

import (
	"fmt"

	"github.com/framelint/framelint/domain"
)

// FixedSizeRule fires when a frame's auto-layout sizing is fixed on either
// axis, or when a frame carries an explicit bounding box while lacking
// auto-layout entirely.
type FixedSizeRule struct {
	BaseRule
}

// NewFixedSizeRule creates the rule
func NewFixedSizeRule() *FixedSizeRule {
	return &FixedSizeRule{
		BaseRule: NewBaseRule(domain.RuleDefinition{
			ID:          "FIXED_SIZE_DETECTED",
			Name:        "Fixed Size Detected",
			Category:    domain.CategorySize,
			Severity:    domain.SeverityMajor,
			Description: "Frames should size to their content or container instead of fixed dimensions",
			Impact:      "Fixed dimensions clip or overflow content on other screen sizes",
			Weight:      6,
		}),
	}
}

// Check evaluates the rule against a single node
func (r *FixedSizeRule) Check(node *domain.DesignNode, _ *CheckContext) RuleCheckResult {
	if !node.IsFrame() {
		return r.Passed()
	}

	if node.HasAutoLayout() {
		if node.PrimaryAxisSizingMode == domain.SizingModeFixed || node.CounterAxisSizingMode == domain.SizingModeFixed {
			axis := "primary"
			if node.PrimaryAxisSizingMode != domain.SizingModeFixed {
				axis = "counter"
			}
			return r.Failed(r.NewViolation(node,
				fmt.Sprintf("Frame %q uses fixed sizing on the %s axis", node.Name, axis),
				"Fixed axis sizing prevents the frame from adapting to content",
				WithSuggestion("Switch the axis to hug contents or fill container"),
				WithDetected("FIXED"),
				WithExpected("AUTO"),
			))
		}
		return r.Passed()
	}

	if node.AbsoluteBoundingBox != nil {
		return r.Failed(r.NewViolation(node,
			fmt.Sprintf("Frame %q has explicit dimensions %gx%g without auto-layout",
				node.Name, node.AbsoluteBoundingBox.Width, node.AbsoluteBoundingBox.Height),
			"Explicit dimensions become hardcoded width/height in generated code",
			WithSuggestion("Enable auto-layout so dimensions derive from content"),
			WithDetected(fmt.Sprintf("%gx%g", node.AbsoluteBoundingBox.Width, node.AbsoluteBoundingBox.Height)),
		))
	}

	return r.Passed()
}
