package analyzer

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/framelint/framelint/domain"
	"github.com/framelint/framelint/internal/testutil"
)

// Property-based invariants over the scoring and traversal pipeline.

func TestScoreInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	calc := NewScoreCalculator()
	severities := []domain.Severity{
		domain.SeverityCritical,
		domain.SeverityMajor,
		domain.SeverityMinor,
		domain.SeverityInfo,
	}
	categories := domain.Categories()

	makeSummary := func(frames int, picks []int) domain.AnalysisSummary {
		violations := make([]domain.Violation, 0, len(picks))
		for _, p := range picks {
			if p < 0 {
				p = -p
			}
			violations = append(violations, domain.Violation{
				Category: categories[p%len(categories)],
				Severity: severities[(p/len(categories))%len(severities)],
			})
		}
		return domain.AnalysisSummary{
			Violations: violations,
			Stats:      domain.DocumentStats{TotalFrames: frames},
		}
	}

	properties.Property("overall score stays within [0,100]", prop.ForAll(
		func(frames int, picks []int) bool {
			result := calc.Calculate(makeSummary(frames, picks))
			return result.OverallScore >= 0 && result.OverallScore <= 100
		},
		gen.IntRange(0, 500),
		gen.SliceOf(gen.IntRange(0, 1000)),
	))

	properties.Property("category scores stay within [0,100]", prop.ForAll(
		func(frames int, picks []int) bool {
			result := calc.Calculate(makeSummary(frames, picks))
			for _, cs := range result.CategoryScores {
				if cs.Score < 0 || cs.Score > 100 {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 500),
		gen.SliceOf(gen.IntRange(0, 1000)),
	))

	properties.Property("grid gate implies code gate", prop.ForAll(
		func(frames int, picks []int) bool {
			result := calc.Calculate(makeSummary(frames, picks))
			return !result.CanUseGridLayout || result.CanGenerateCode
		},
		gen.IntRange(0, 500),
		gen.SliceOf(gen.IntRange(0, 1000)),
	))

	properties.Property("zero violations means a perfect result", prop.ForAll(
		func(frames int) bool {
			result := calc.Calculate(makeSummary(frames, nil))
			return result.OverallScore == 100 &&
				result.Grade == domain.GradeS &&
				result.CanGenerateCode && result.CanUseGridLayout
		},
		gen.IntRange(0, 500),
	))

	properties.TestingRun(t)
}

// buildUniformTree builds a tree where every node above the leaf level has
// the given branching factor
func buildUniformTree(branching, depth int) (*domain.DesignNode, int) {
	counter := 0
	var build func(level int) *domain.DesignNode
	build = func(level int) *domain.DesignNode {
		counter++
		node := testutil.ConformantFrame(fmt.Sprintf("node-%d", counter), "tree-box")
		if level < depth {
			for i := 0; i < branching; i++ {
				node.Children = append(node.Children, build(level+1))
			}
		}
		return node
	}
	return build(0), counter
}

func TestTraversalInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	builder := NewContextBuilder()

	properties.Property("flatten returns each of N nodes exactly once", prop.ForAll(
		func(branching, depth int) bool {
			root, total := buildUniformTree(branching, depth)
			nodes := builder.Flatten(root)
			if len(nodes) != total {
				return false
			}
			seen := make(map[string]bool, len(nodes))
			for _, n := range nodes {
				if seen[n.ID] {
					return false
				}
				seen[n.ID] = true
			}
			return true
		},
		gen.IntRange(1, 3),
		gen.IntRange(0, 4),
	))

	properties.Property("depth computation terminates within the cap", prop.ForAll(
		func(length int) bool {
			root := testutil.NestedFrames(length)
			nodes := builder.Flatten(root)
			index := builder.BuildParentIndex(nodes)
			deepest := nodes[len(nodes)-1]
			depth := builder.ComputeDepth(deepest, root, index)
			return depth <= MaxDepthIterations
		},
		gen.IntRange(1, 300),
	))

	properties.TestingRun(t)
}
