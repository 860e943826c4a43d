package domain

import (
	"context"
	"io"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatCSV  OutputFormat = "csv"
)

// SortCriteria represents the criteria for sorting violations
type SortCriteria string

const (
	SortBySeverity SortCriteria = "severity"
	SortByCategory SortCriteria = "category"
	SortByName     SortCriteria = "name"
)

// Severity represents a violation weight class
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
	SeverityInfo     Severity = "info"
)

// Rank returns an ordering value for sorting (critical first)
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityMajor:
		return 1
	case SeverityMinor:
		return 2
	default:
		return 3
	}
}

// Category represents one of the five violation groupings used for
// weighted scoring
type Category string

const (
	CategoryLayout     Category = "layout"
	CategorySize       Category = "size"
	CategoryResponsive Category = "responsive"
	CategorySemantic   Category = "semantic"
	CategoryComponent  Category = "component"
)

// Categories lists all scoring categories in presentation order
func Categories() []Category {
	return []Category{
		CategoryLayout,
		CategorySize,
		CategoryResponsive,
		CategorySemantic,
		CategoryComponent,
	}
}

// Grade represents the letter grade derived from the overall score
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// RuleDefinition is the immutable static description of a rule.
// One definition exists per rule, created at catalogue construction.
type RuleDefinition struct {
	// ID uniquely identifies the rule (e.g. AUTO_LAYOUT_REQUIRED)
	ID string `json:"id" yaml:"id"`

	// Name is the human-readable rule name
	Name string `json:"name" yaml:"name"`

	// Category is the scoring category the rule contributes to
	Category Category `json:"category" yaml:"category"`

	// Severity drives the penalty magnitude of the rule's violations
	Severity Severity `json:"severity" yaml:"severity"`

	// Description explains what the rule checks
	Description string `json:"description" yaml:"description"`

	// Impact describes the downstream effect of violating the rule
	Impact string `json:"impact" yaml:"impact"`

	// Weight is the rule's score weight (1-10)
	Weight int `json:"weight" yaml:"weight"`
}

// Violation is a single rule failure recorded against one node.
// Violations are immutable once created.
type Violation struct {
	// ID is a stable unique identifier for this violation record
	ID string `json:"id" yaml:"id"`

	RuleID   string   `json:"rule_id" yaml:"rule_id"`
	RuleName string   `json:"rule_name" yaml:"rule_name"`
	Severity Severity `json:"severity" yaml:"severity"`
	Category Category `json:"category" yaml:"category"`

	// FrameName and FrameID identify the violating node
	FrameName string `json:"frame_name" yaml:"frame_name"`
	FrameID   string `json:"frame_id" yaml:"frame_id"`

	Description string `json:"description" yaml:"description"`
	Impact      string `json:"impact" yaml:"impact"`

	Suggestion    string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
	DetectedValue string `json:"detected_value,omitempty" yaml:"detected_value,omitempty"`
	ExpectedValue string `json:"expected_value,omitempty" yaml:"expected_value,omitempty"`
}

// CategoryScore holds the score for a single category
type CategoryScore struct {
	Category       Category `json:"category" yaml:"category"`
	Score          int      `json:"score" yaml:"score"`
	MaxScore       int      `json:"max_score" yaml:"max_score"`
	ViolationCount int      `json:"violation_count" yaml:"violation_count"`
	Weight         float64  `json:"weight" yaml:"weight"`
}

// DocumentStats holds coarse per-document statistics gathered during a pass
type DocumentStats struct {
	// TotalNodes is the number of nodes in the flattened tree
	TotalNodes int `json:"total_nodes" yaml:"total_nodes"`

	// TotalFrames is the number of frame-typed nodes
	TotalFrames int `json:"total_frames" yaml:"total_frames"`

	// AutoLayoutFrames is the number of frames with auto-layout enabled
	AutoLayoutFrames int `json:"auto_layout_frames" yaml:"auto_layout_frames"`

	// ComponentNodes is the number of component/instance nodes
	ComponentNodes int `json:"component_nodes" yaml:"component_nodes"`

	// SemanticNamedFrames is the number of frames with semantic names
	SemanticNamedFrames int `json:"semantic_named_frames" yaml:"semantic_named_frames"`

	// AverageDepth approximates average nesting using child counts as a
	// depth proxy. It is intentionally coarse and not a true depth average.
	AverageDepth float64 `json:"average_depth" yaml:"average_depth"`
}

// AnalysisSummary is the complete result of one analysis pass over a tree.
// It is a pure function of the input tree plus the rule catalogue; the core
// holds no state about it after returning.
type AnalysisSummary struct {
	// OverallScore is the weighted overall score (0-100)
	OverallScore int `json:"overall_score" yaml:"overall_score"`

	// CategoryScores holds one entry per scoring category
	CategoryScores []CategoryScore `json:"category_scores" yaml:"category_scores"`

	// Violations is the flat list of all violations found
	Violations []Violation `json:"violations" yaml:"violations"`

	// ViolationsBySeverity counts violations per severity class
	ViolationsBySeverity map[Severity]int `json:"violations_by_severity" yaml:"violations_by_severity"`

	// CanGenerateCode is true when the overall score passes the
	// code-generation gate
	CanGenerateCode bool `json:"can_generate_code" yaml:"can_generate_code"`

	// CanUseGridLayout is true only for a perfect score; it implies
	// CanGenerateCode
	CanUseGridLayout bool `json:"can_use_grid_layout" yaml:"can_use_grid_layout"`

	// Grade is the letter grade for the overall score
	Grade Grade `json:"grade" yaml:"grade"`

	// Label is the qualitative five-level label for the overall score
	Label string `json:"label" yaml:"label"`

	// Message is a human-readable summary of the result
	Message string `json:"message" yaml:"message"`

	// Stats holds document statistics gathered during the pass
	Stats DocumentStats `json:"stats" yaml:"stats"`
}

// TotalViolations returns the number of violations in the summary
func (s *AnalysisSummary) TotalViolations() int {
	return len(s.Violations)
}

// DocumentAnalysis pairs one analyzed document with its summary
type DocumentAnalysis struct {
	Path    string          `json:"path" yaml:"path"`
	Summary AnalysisSummary `json:"summary" yaml:"summary"`
}

// AnalysisRequest represents a request for design document analysis
type AnalysisRequest struct {
	// Input files or directories containing design exports
	Paths []string

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer
	ShowDetails  bool

	// Sorting of violations within each document
	SortBy SortCriteria

	// Configuration
	ConfigPath string

	// Collection options
	Recursive       bool
	ExcludePatterns []string
}

// AnalysisResponse represents the complete result across all documents
type AnalysisResponse struct {
	Documents []DocumentAnalysis `json:"documents" yaml:"documents"`

	// AverageScore is the mean overall score across documents
	AverageScore int `json:"average_score" yaml:"average_score"`

	// AllGatesPassed is true when every document passed the
	// code-generation gate
	AllGatesPassed bool `json:"all_gates_passed" yaml:"all_gates_passed"`

	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Errors   []string `json:"errors,omitempty" yaml:"errors,omitempty"`

	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	DurationMs  int64  `json:"duration_ms" yaml:"duration_ms"`
	Version     string `json:"version" yaml:"version"`
}

// AnalysisService defines the core business logic for design analysis
type AnalysisService interface {
	// Analyze performs analysis on the given request
	Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResponse, error)

	// AnalyzeFile analyzes a single design export file
	AnalyzeFile(ctx context.Context, filePath string, req AnalysisRequest) (*AnalysisResponse, error)
}

// OutputFormatter defines the interface for formatting analysis results
type OutputFormatter interface {
	// Write writes the formatted output to the writer
	Write(response *AnalysisResponse, format OutputFormat, writer io.Writer) error
}

// ConfigurationLoader defines the interface for loading configuration
type ConfigurationLoader interface {
	// LoadConfig loads configuration from the specified path
	LoadConfig(path string) (*AnalysisRequest, error)

	// LoadDefaultConfig loads the default configuration
	LoadDefaultConfig() *AnalysisRequest

	// MergeConfig merges CLI flags with configuration file
	MergeConfig(base *AnalysisRequest, override *AnalysisRequest) *AnalysisRequest
}
