package analyzer

import (
	"math"

	"github.com/framelint/framelint/domain"
)

// Severity penalties per violation
const (
	PenaltyCritical = 10
	PenaltyMajor    = 5
	PenaltyMinor    = 2
	PenaltyInfo     = 0
)

// Gating thresholds on the overall score
const (
	// CodeGenerationThreshold is the minimum overall score that permits
	// code generation
	CodeGenerationThreshold = 90

	// GridLayoutThreshold is the overall score required to enable grid
	// layout generation; it is strictly stronger than the code gate
	GridLayoutThreshold = 100
)

// categoryWeights is the fixed weight table for the overall score.
// The weights sum to 1.0 exactly so the overall score is a true weighted
// average of the category scores.
var categoryWeights = map[domain.Category]float64{
	domain.CategoryLayout:     0.30,
	domain.CategorySize:       0.20,
	domain.CategoryResponsive: 0.25,
	domain.CategorySemantic:   0.10,
	domain.CategoryComponent:  0.15,
}

// CategoryWeights returns a copy of the fixed weight table
func CategoryWeights() map[domain.Category]float64 {
	weights := make(map[domain.Category]float64, len(categoryWeights))
	for c, w := range categoryWeights {
		weights[c] = w
	}
	return weights
}

// SeverityPenalty returns the score penalty for one violation of the
// given severity
func SeverityPenalty(severity domain.Severity) int {
	switch severity {
	case domain.SeverityCritical:
		return PenaltyCritical
	case domain.SeverityMajor:
		return PenaltyMajor
	case domain.SeverityMinor:
		return PenaltyMinor
	default:
		return PenaltyInfo
	}
}

// ScoreCalculator converts a summary's violation set into category and
// overall scores plus the two gating decisions. It performs no I/O and
// raises no errors; all arithmetic is clamped.
type ScoreCalculator struct{}

// NewScoreCalculator creates a new ScoreCalculator
func NewScoreCalculator() *ScoreCalculator {
	return &ScoreCalculator{}
}

// Calculate returns a copy of the summary with all score fields filled in.
// The violation list itself is not touched.
func (c *ScoreCalculator) Calculate(summary domain.AnalysisSummary) domain.AnalysisSummary {
	penalties := make(map[domain.Category]int)
	counts := make(map[domain.Category]int)
	for _, v := range summary.Violations {
		penalties[v.Category] += SeverityPenalty(v.Severity)
		counts[v.Category]++
	}

	totalFrames := summary.Stats.TotalFrames
	overall := 0.0
	scores := make([]domain.CategoryScore, 0, len(categoryWeights))
	for _, category := range domain.Categories() {
		penalty := float64(penalties[category])
		// Dilute the per-frame impact of a fixed violation count for
		// documents with many frames.
		if totalFrames > 0 {
			penalty = penalty / float64(totalFrames) * 10
		}
		score := int(math.Round(math.Max(0, 100-penalty)))

		weight := categoryWeights[category]
		scores = append(scores, domain.CategoryScore{
			Category:       category,
			Score:          score,
			MaxScore:       100,
			ViolationCount: counts[category],
			Weight:         weight,
		})
		overall += float64(score) * weight
	}

	overallScore := int(math.Round(overall))
	if overallScore < 0 {
		overallScore = 0
	}
	if overallScore > 100 {
		overallScore = 100
	}

	summary.CategoryScores = scores
	summary.OverallScore = overallScore
	summary.CanGenerateCode = overallScore >= CodeGenerationThreshold
	summary.CanUseGridLayout = overallScore >= GridLayoutThreshold
	summary.Grade = GradeForScore(overallScore)
	summary.Label = LabelForScore(overallScore)
	summary.Message = MessageForScore(overallScore)
	return summary
}

// GradeForScore returns the letter grade for an overall score. The
// breakpoints match the gates exactly: S coincides with the grid gate and
// A with the code-generation gate.
func GradeForScore(score int) domain.Grade {
	switch {
	case score >= GridLayoutThreshold:
		return domain.GradeS
	case score >= CodeGenerationThreshold:
		return domain.GradeA
	case score >= 75:
		return domain.GradeB
	case score >= 60:
		return domain.GradeC
	default:
		return domain.GradeD
	}
}

// LabelForScore returns the five-level qualitative label for a score
func LabelForScore(score int) string {
	switch {
	case score >= GridLayoutThreshold:
		return "perfect"
	case score >= CodeGenerationThreshold:
		return "excellent"
	case score >= 75:
		return "good"
	case score >= 60:
		return "needs work"
	default:
		return "poor"
	}
}

// MessageForScore returns a human-readable summary message for a score
func MessageForScore(score int) string {
	switch {
	case score >= GridLayoutThreshold:
		return "Design is fully conformant; code generation and grid layout are available."
	case score >= CodeGenerationThreshold:
		return "Design is ready for code generation; fix remaining issues to unlock grid layout."
	case score >= 75:
		return "Design is close; resolve the reported violations to enable code generation."
	case score >= 60:
		return "Design needs structural work before code can be generated."
	default:
		return "Design has fundamental layout problems; start with the critical violations."
	}
}
