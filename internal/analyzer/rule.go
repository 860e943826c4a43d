package analyzer

import (
	"github.com/framelint/framelint/domain"
	"github.com/google/uuid"
)

// RuleCheckResult is the outcome of evaluating one rule against one node
type RuleCheckResult struct {
	Passed     bool
	Violations []domain.Violation
}

// Rule is the uniform contract every rule checker implements. Rules are
// stateless and side-effect-free: Check reads only its inputs, so a single
// rule instance is safe to invoke concurrently across nodes.
type Rule interface {
	// Definition returns the rule's immutable static definition
	Definition() domain.RuleDefinition

	// Check evaluates the rule against a single node. Nodes the rule does
	// not apply to always pass with no violations.
	Check(node *domain.DesignNode, ctx *CheckContext) RuleCheckResult
}

// BaseRule supplies the shared result and violation primitives concrete
// rules build on
type BaseRule struct {
	def domain.RuleDefinition
}

// NewBaseRule creates a BaseRule with the given definition
func NewBaseRule(def domain.RuleDefinition) BaseRule {
	return BaseRule{def: def}
}

// Definition returns the rule's immutable static definition
func (r BaseRule) Definition() domain.RuleDefinition {
	return r.def
}

// Passed returns an empty, passing result
func (r BaseRule) Passed() RuleCheckResult {
	return RuleCheckResult{Passed: true}
}

// Failed returns a failing result carrying one or more violations
func (r BaseRule) Failed(violations ...domain.Violation) RuleCheckResult {
	return RuleCheckResult{Passed: false, Violations: violations}
}

// ViolationOption customizes a violation created by NewViolation
type ViolationOption func(*domain.Violation)

// WithSuggestion attaches a remediation suggestion
func WithSuggestion(suggestion string) ViolationOption {
	return func(v *domain.Violation) {
		v.Suggestion = suggestion
	}
}

// WithDetected records the detected value string
func WithDetected(detected string) ViolationOption {
	return func(v *domain.Violation) {
		v.DetectedValue = detected
	}
}

// WithExpected records the expected value string
func WithExpected(expected string) ViolationOption {
	return func(v *domain.Violation) {
		v.ExpectedValue = expected
	}
}

// NewViolation creates a violation against the given node, stamped with the
// rule's own id, name, severity, and category. Each violation carries a
// stable unique id so downstream consumers can reference saved records.
func (r BaseRule) NewViolation(node *domain.DesignNode, description, impact string, opts ...ViolationOption) domain.Violation {
	v := domain.Violation{
		ID:          uuid.NewString(),
		RuleID:      r.def.ID,
		RuleName:    r.def.Name,
		Severity:    r.def.Severity,
		Category:    r.def.Category,
		FrameName:   node.Name,
		FrameID:     node.ID,
		Description: description,
		Impact:      impact,
	}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}
