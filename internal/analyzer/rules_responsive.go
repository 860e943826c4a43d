package analyzer

import (
	"fmt"

	"github.com/framelint/framelint/domain"
)

// WrapOffRule fires when an auto-layout frame with enough children to
// overflow does not enable wrapping.
type WrapOffRule struct {
	BaseRule
	minChildren int
}

// NewWrapOffRule creates the rule; minChildren is the child count from
// which wrapping is expected
func NewWrapOffRule(minChildren int) *WrapOffRule {
	return &WrapOffRule{
		BaseRule: NewBaseRule(domain.RuleDefinition{
			ID:          "WRAP_OFF",
			Name:        "Wrap Off",
			Category:    domain.CategoryResponsive,
			Severity:    domain.SeverityMajor,
			Description: fmt.Sprintf("Auto-layout frames with %d or more children should enable wrapping", minChildren),
			Impact:      "Children overflow the container instead of reflowing on narrow viewports",
			Weight:      6,
		}),
		minChildren: minChildren,
	}
}

// Check evaluates the rule against a single node
func (r *WrapOffRule) Check(node *domain.DesignNode, _ *CheckContext) RuleCheckResult {
	if !node.IsFrame() || !node.HasAutoLayout() {
		return r.Passed()
	}
	if node.ChildCount() < r.minChildren {
		return r.Passed()
	}
	if node.LayoutWrap == domain.LayoutWrapWrap {
		return r.Passed()
	}
	return r.Failed(r.NewViolation(node,
		fmt.Sprintf("Frame %q has %d children but wrapping is disabled", node.Name, node.ChildCount()),
		"Content overflows instead of reflowing when space runs out",
		WithSuggestion("Enable layout wrap on this auto-layout frame"),
		WithDetected(string(node.LayoutWrap)),
		WithExpected(string(domain.LayoutWrapWrap)),
	))
}

// HugFillRule fires when a crowded auto-layout frame inside another
// auto-layout container hugs its content on the primary axis. Hugging a
// large child list couples the parent's size to every child.
type HugFillRule struct {
	BaseRule
	maxHugChildren int
}

// NewHugFillRule creates the rule; maxHugChildren is the largest child
// count for which hugging is still acceptable
func NewHugFillRule(maxHugChildren int) *HugFillRule {
	return &HugFillRule{
		BaseRule: NewBaseRule(domain.RuleDefinition{
			ID:          "HUG_FILL_VIOLATION",
			Name:        "Hug/Fill Violation",
			Category:    domain.CategoryResponsive,
			Severity:    domain.SeverityMajor,
			Description: fmt.Sprintf("Nested auto-layout frames with more than %d children should fill rather than hug", maxHugChildren),
			Impact:      "Hugging a crowded frame propagates content size through the whole layout",
			Weight:      5,
		}),
		maxHugChildren: maxHugChildren,
	}
}

// Check evaluates the rule against a single node
func (r *HugFillRule) Check(node *domain.DesignNode, ctx *CheckContext) RuleCheckResult {
	if !node.IsFrame() || !node.HasAutoLayout() {
		return r.Passed()
	}
	if ctx.Parent == nil || !ctx.Parent.HasAutoLayout() {
		return r.Passed()
	}
	if node.ChildCount() <= r.maxHugChildren {
		return r.Passed()
	}
	if node.PrimaryAxisSizingMode != domain.SizingModeAuto {
		return r.Passed()
	}
	return r.Failed(r.NewViolation(node,
		fmt.Sprintf("Frame %q hugs %d children inside an auto-layout parent", node.Name, node.ChildCount()),
		"Every child resize ripples up through the parent layout",
		WithSuggestion("Set the primary axis to a fixed size or fill the container"),
		WithDetected("hug"),
		WithExpected("fill or fixed"),
	))
}

// MinWidthRule fires when an interactive element (button/card/input/select
// by name) uses auto-layout without a fixed-with-minimum counter axis, so
// it can collapse below a usable width.
type MinWidthRule struct {
	BaseRule
}

// NewMinWidthRule creates the rule
func NewMinWidthRule() *MinWidthRule {
	return &MinWidthRule{
		BaseRule: NewBaseRule(domain.RuleDefinition{
			ID:          "MIN_WIDTH_MISSING",
			Name:        "Min Width Missing",
			Category:    domain.CategoryResponsive,
			Severity:    domain.SeverityMinor,
			Description: "Interactive elements should constrain their counter axis with a minimum width",
			Impact:      "Buttons and inputs collapse below a usable size on narrow viewports",
			Weight:      3,
		}),
	}
}

// Check evaluates the rule against a single node
func (r *MinWidthRule) Check(node *domain.DesignNode, _ *CheckContext) RuleCheckResult {
	if !node.IsFrame() || !node.HasAutoLayout() {
		return r.Passed()
	}
	if !IsInteractiveElementName(node.Name) {
		return r.Passed()
	}
	if node.CounterAxisSizingMode == domain.SizingModeFixed || node.MinWidth > 0 {
		return r.Passed()
	}
	return r.Failed(r.NewViolation(node,
		fmt.Sprintf("Interactive element %q has no minimum width", node.Name),
		"The element can shrink below its usable size",
		WithSuggestion("Set a minimum width or a fixed counter-axis size"),
		WithDetected(string(node.CounterAxisSizingMode)),
		WithExpected("FIXED or minWidth > 0"),
	))
}
