package analyzer

import (
	"fmt"

	"github.com/framelint/framelint/domain"
)

// AutoLayoutRequiredRule fires when a frame has no auto-layout mode set.
// Frames positioned without auto-layout cannot be translated into flex
// containers.
type AutoLayoutRequiredRule struct {
	BaseRule
}

// NewAutoLayoutRequiredRule creates the rule
func NewAutoLayoutRequiredRule() *AutoLayoutRequiredRule {
	return &AutoLayoutRequiredRule{
		BaseRule: NewBaseRule(domain.RuleDefinition{
			ID:          "AUTO_LAYOUT_REQUIRED",
			Name:        "Auto-Layout Required",
			Category:    domain.CategoryLayout,
			Severity:    domain.SeverityCritical,
			Description: "Frames must use auto-layout so children can be arranged as flex containers",
			Impact:      "Generated code falls back to absolute positioning and breaks on resize",
			Weight:      10,
		}),
	}
}

// Check evaluates the rule against a single node
func (r *AutoLayoutRequiredRule) Check(node *domain.DesignNode, _ *CheckContext) RuleCheckResult {
	if !node.IsFrame() {
		return r.Passed()
	}
	if node.HasAutoLayout() {
		return r.Passed()
	}
	return r.Failed(r.NewViolation(node,
		fmt.Sprintf("Frame %q has no auto-layout mode", node.Name),
		"Children cannot be expressed as a flex layout",
		WithSuggestion("Enable horizontal or vertical auto-layout on this frame"),
		WithDetected(string(node.LayoutMode)),
		WithExpected("HORIZONTAL or VERTICAL"),
	))
}

// AbsolutePositioningRule fires when a frame lacks auto-layout or uses
// scale-based constraints, both of which produce absolutely positioned
// output.
type AbsolutePositioningRule struct {
	BaseRule
}

// NewAbsolutePositioningRule creates the rule
func NewAbsolutePositioningRule() *AbsolutePositioningRule {
	return &AbsolutePositioningRule{
		BaseRule: NewBaseRule(domain.RuleDefinition{
			ID:          "ABSOLUTE_POSITIONING",
			Name:        "Absolute Positioning",
			Category:    domain.CategoryLayout,
			Severity:    domain.SeverityCritical,
			Description: "Frames must not rely on absolute or scale-based positioning",
			Impact:      "Absolutely positioned elements do not adapt to viewport changes",
			Weight:      9,
		}),
	}
}

// Check evaluates the rule against a single node
func (r *AbsolutePositioningRule) Check(node *domain.DesignNode, _ *CheckContext) RuleCheckResult {
	if !node.IsFrame() {
		return r.Passed()
	}
	if node.HasAutoLayout() && !node.UsesScaleConstraints() {
		return r.Passed()
	}

	detected := "no auto-layout"
	if node.UsesScaleConstraints() {
		detected = "scale constraints"
	}
	return r.Failed(r.NewViolation(node,
		fmt.Sprintf("Frame %q is absolutely positioned", node.Name),
		"Position will not track the surrounding layout",
		WithSuggestion("Use auto-layout with MIN/MAX/STRETCH constraints instead"),
		WithDetected(detected),
	))
}

// DepthTooDeepRule fires when a frame is nested deeper than the configured
// maximum. Deep nesting produces deeply nested markup that is hard to
// restructure responsively.
type DepthTooDeepRule struct {
	BaseRule
	maxDepth int
}

// NewDepthTooDeepRule creates the rule with the given nesting limit
func NewDepthTooDeepRule(maxDepth int) *DepthTooDeepRule {
	return &DepthTooDeepRule{
		BaseRule: NewBaseRule(domain.RuleDefinition{
			ID:          "DEPTH_TOO_DEEP",
			Name:        "Depth Too Deep",
			Category:    domain.CategoryLayout,
			Severity:    domain.SeverityMajor,
			Description: fmt.Sprintf("Frames must not be nested deeper than %d levels", maxDepth),
			Impact:      "Deep nesting produces markup that resists responsive restructuring",
			Weight:      5,
		}),
		maxDepth: maxDepth,
	}
}

// Check evaluates the rule against a single node
func (r *DepthTooDeepRule) Check(node *domain.DesignNode, ctx *CheckContext) RuleCheckResult {
	if !node.IsFrame() {
		return r.Passed()
	}
	if ctx.Depth <= r.maxDepth {
		return r.Passed()
	}
	return r.Failed(r.NewViolation(node,
		fmt.Sprintf("Frame %q is nested %d levels deep", node.Name, ctx.Depth),
		"Deeply nested structures complicate generated markup",
		WithSuggestion("Flatten the hierarchy or extract a component"),
		WithDetected(fmt.Sprintf("%d", ctx.Depth)),
		WithExpected(fmt.Sprintf("<= %d", r.maxDepth)),
	))
}

// LayerAbuseRule fires when a container holds more direct children than the
// configured maximum. Unlike the other layout rules it also applies to
// component and instance nodes.
type LayerAbuseRule struct {
	BaseRule
	maxChildren int
}

// NewLayerAbuseRule creates the rule with the given child limit
func NewLayerAbuseRule(maxChildren int) *LayerAbuseRule {
	return &LayerAbuseRule{
		BaseRule: NewBaseRule(domain.RuleDefinition{
			ID:          "LAYER_ABUSE",
			Name:        "Layer Abuse",
			Category:    domain.CategoryLayout,
			Severity:    domain.SeverityMajor,
			Description: fmt.Sprintf("Containers must not hold more than %d direct children", maxChildren),
			Impact:      "Oversized containers indicate missing grouping and slow down generation",
			Weight:      6,
		}),
		maxChildren: maxChildren,
	}
}

// Check evaluates the rule against a single node
func (r *LayerAbuseRule) Check(node *domain.DesignNode, _ *CheckContext) RuleCheckResult {
	if !node.IsFrame() && !node.IsComponentLike() {
		return r.Passed()
	}
	if node.ChildCount() <= r.maxChildren {
		return r.Passed()
	}
	return r.Failed(r.NewViolation(node,
		fmt.Sprintf("%q has %d direct children", node.Name, node.ChildCount()),
		"Flat child lists this large usually hide missing structure",
		WithSuggestion("Group related children into intermediate frames"),
		WithDetected(fmt.Sprintf("%d", node.ChildCount())),
		WithExpected(fmt.Sprintf("<= %d", r.maxChildren)),
	))
}
