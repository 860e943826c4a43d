package analyzer

import (
	"fmt"
	"log"

	"github.com/framelint/framelint/domain"
)

// RuleEngine drives a single analysis pass: it flattens the tree, builds
// per-node context, executes every catalogue rule against every eligible
// node, and aggregates violations and document statistics.
//
// The engine holds only the immutable catalogue and an optional logger, so
// one instance may serve concurrent analyses on different trees without
// locking. Each Analyze call is a single-shot, synchronous computation.
type RuleEngine struct {
	rules   []Rule
	builder *ContextBuilder
	logger  *log.Logger
}

// NewRuleEngine creates a rule engine over the given catalogue
func NewRuleEngine(rules []Rule) *RuleEngine {
	return &RuleEngine{
		rules:   rules,
		builder: NewContextBuilder(),
	}
}

// SetLogger sets an optional logger for rule-failure and depth warnings
func (e *RuleEngine) SetLogger(logger *log.Logger) {
	e.logger = logger
	e.builder.SetLogger(logger)
}

// Rules returns the catalogue the engine runs
func (e *RuleEngine) Rules() []Rule {
	return e.rules
}

// Analyze evaluates the whole catalogue against the tree and returns a
// summary carrying violations and statistics. Score fields are left empty;
// scoring is a separate pass (ScoreCalculator) so the two stay
// independently testable. The input tree is never mutated.
func (e *RuleEngine) Analyze(root *domain.DesignNode) domain.AnalysisSummary {
	summary := domain.AnalysisSummary{
		Violations:           []domain.Violation{},
		ViolationsBySeverity: make(map[domain.Severity]int),
	}

	nodes := e.builder.Flatten(root)
	if len(nodes) == 0 {
		return summary
	}
	parentIndex := e.builder.BuildParentIndex(nodes)

	// Frames are full evaluation targets; component/instance nodes only
	// participate in the rules that declare them relevant (layer abuse)
	// and in the statistics.
	var targets []*domain.DesignNode
	for _, node := range nodes {
		if node.IsFrame() || node.IsComponentLike() {
			targets = append(targets, node)
		}
	}

	for _, node := range targets {
		ctx := e.builder.BuildContext(node, root, nodes, parentIndex)
		for _, rule := range e.rules {
			result, err := e.runRule(rule, node, ctx)
			if err != nil {
				// A misbehaving rule contributes zero violations for this
				// node and never aborts the remaining rules or nodes.
				e.logf("rule %s failed on node %s: %v", rule.Definition().ID, node.ID, err)
				continue
			}
			for _, v := range result.Violations {
				summary.Violations = append(summary.Violations, v)
				summary.ViolationsBySeverity[v.Severity]++
			}
		}
	}

	summary.Stats = e.collectStats(nodes)
	return summary
}

// runRule executes one rule against one node, converting a panic into a
// returned error so a single rule failure stays local.
func (e *RuleEngine) runRule(rule Rule, node *domain.DesignNode, ctx *CheckContext) (result RuleCheckResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = RuleCheckResult{Passed: true}
			err = fmt.Errorf("rule panicked: %v", r)
		}
	}()
	return rule.Check(node, ctx), nil
}

// collectStats gathers the coarse document statistics in one pass over the
// flattened list. Average depth uses child count as a proxy rather than a
// re-walk; the approximation is intentional.
func (e *RuleEngine) collectStats(nodes []*domain.DesignNode) domain.DocumentStats {
	stats := domain.DocumentStats{
		TotalNodes: len(nodes),
	}

	childSum := 0
	for _, node := range nodes {
		switch {
		case node.IsFrame():
			stats.TotalFrames++
			childSum += node.ChildCount()
			if node.HasAutoLayout() {
				stats.AutoLayoutFrames++
			}
			if IsSemanticName(node.Name) {
				stats.SemanticNamedFrames++
			}
		case node.IsComponentLike():
			stats.ComponentNodes++
		}
	}

	if stats.TotalFrames > 0 {
		stats.AverageDepth = float64(childSum) / float64(stats.TotalFrames)
	}
	return stats
}

func (e *RuleEngine) logf(format string, args ...interface{}) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}
