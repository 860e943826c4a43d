package domain

// CheckResult represents the result of a gate check run
type CheckResult struct {
	Passed      bool             `json:"passed"`
	ExitCode    int              `json:"exit_code"`
	Violations  []CheckViolation `json:"violations"`
	Summary     CheckSummary     `json:"summary"`
	Duration    int64            `json:"duration_ms"`
	GeneratedAt string           `json:"generated_at"`
	Version     string           `json:"version"`
}

// CheckViolation represents a single gate violation
type CheckViolation struct {
	Category  string `json:"category"`            // score, grid, rule
	Rule      string `json:"rule"`                // min-score, grid-layout, etc.
	Severity  string `json:"severity"`            // error, warning
	Message   string `json:"message"`             // Human-readable description
	Document  string `json:"document,omitempty"`  // Document path if applicable
	Actual    string `json:"actual"`              // Actual value
	Threshold string `json:"threshold,omitempty"` // Configured threshold
}

// CheckSummary provides aggregate statistics for a gate check run
type CheckSummary struct {
	DocumentsAnalyzed int `json:"documents_analyzed"`
	TotalViolations   int `json:"total_violations"`
	GatedDocuments    int `json:"gated_documents"`
	CriticalFindings  int `json:"critical_findings"`
	MajorFindings     int `json:"major_findings"`
	MinorFindings     int `json:"minor_findings"`
}
