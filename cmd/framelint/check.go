package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/framelint/framelint/app"
	"github.com/framelint/framelint/domain"
	"github.com/framelint/framelint/internal/config"
	"github.com/framelint/framelint/internal/version"
	"github.com/framelint/framelint/service"
)

// CheckExitError is a custom error type for check command exit codes
type CheckExitError struct {
	Code    int
	Message string
}

func (e *CheckExitError) Error() string {
	return e.Message
}

var (
	checkMinScore      int
	checkRequireGrid   bool
	checkAllowCritical bool
	checkVerbose       bool
	checkJSON          bool
	checkConfigPath    string
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Fast quality gate for CI/CD pipelines",
		Long: `Run design quality gates against configurable thresholds for CI/CD
integration.

Exit codes:
  0 - All gates pass
  1 - Quality gate(s) violated
  2 - Analysis error (file not found, parse error, etc.)

Examples:
  # Basic gate with defaults (code generation requires score >= 90)
  framelint check designs/

  # Require a higher score
  framelint check --min-score 95 designs/

  # Also require the grid-layout gate (score == 100)
  framelint check --require-grid designs/

  # JSON output for machine parsing
  framelint check --json designs/`,
		RunE:          runCheck,
		SilenceUsage:  true, // Don't print usage on errors (we handle our own output)
		SilenceErrors: true, // Don't print error messages (we handle our own output)
	}

	cmd.Flags().IntVar(&checkMinScore, "min-score", 90,
		"Minimum overall score required per document")
	cmd.Flags().BoolVar(&checkRequireGrid, "require-grid", false,
		"Also require the grid-layout gate (score == 100)")
	cmd.Flags().BoolVar(&checkAllowCritical, "allow-critical", false,
		"Allow critical violations without failing")
	cmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false,
		"Show detailed output")
	cmd.Flags().BoolVar(&checkJSON, "json", false,
		"Output results as JSON")
	cmd.Flags().StringVarP(&checkConfigPath, "config", "c", "",
		"Path to config file")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &CheckExitError{Code: 2, Message: "no paths specified"}
	}

	startTime := time.Now()

	cfg, err := config.LoadConfigWithTarget(checkConfigPath, args[0])
	if err != nil {
		return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to load configuration: %v", err)}
	}

	// Progress is auto-disabled for JSON output or non-TTY/CI
	pm := service.NewProgressManager(!checkJSON)
	defer pm.Close()

	svc := service.NewAnalysisServiceWithProgress(cfg, pm)
	uc, err := app.NewAnalyzeUseCaseBuilder().
		WithService(svc).
		WithFormatter(service.NewOutputFormatter()).
		Build()
	if err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}

	response, err := uc.Analyze(context.Background(), domain.AnalysisRequest{
		Paths:           args,
		Recursive:       cfg.Analysis.Recursive,
		ExcludePatterns: cfg.Analysis.ExcludePatterns,
		SortBy:          domain.SortBySeverity,
	})
	if err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}

	result := buildCheckResult(response)

	return outputCheckResult(result, startTime)
}

// buildCheckResult evaluates gates for every analyzed document
func buildCheckResult(response *domain.AnalysisResponse) *domain.CheckResult {
	result := &domain.CheckResult{
		Passed:     true,
		Violations: []domain.CheckViolation{},
		Summary: domain.CheckSummary{
			DocumentsAnalyzed: len(response.Documents),
		},
	}

	for _, doc := range response.Documents {
		summary := doc.Summary

		result.Summary.CriticalFindings += summary.ViolationsBySeverity[domain.SeverityCritical]
		result.Summary.MajorFindings += summary.ViolationsBySeverity[domain.SeverityMajor]
		result.Summary.MinorFindings += summary.ViolationsBySeverity[domain.SeverityMinor]

		docPassed := true

		if summary.OverallScore < checkMinScore {
			docPassed = false
			result.Violations = append(result.Violations, domain.CheckViolation{
				Category:  "score",
				Rule:      "min-score",
				Severity:  "error",
				Message:   fmt.Sprintf("Overall score %d is below the required minimum", summary.OverallScore),
				Document:  doc.Path,
				Actual:    strconv.Itoa(summary.OverallScore),
				Threshold: strconv.Itoa(checkMinScore),
			})
		}

		if !summary.CanGenerateCode {
			docPassed = false
			result.Violations = append(result.Violations, domain.CheckViolation{
				Category:  "gate",
				Rule:      "code-generation",
				Severity:  "error",
				Message:   "Code generation gate is closed",
				Document:  doc.Path,
				Actual:    strconv.Itoa(summary.OverallScore),
				Threshold: "90",
			})
		}

		if checkRequireGrid && !summary.CanUseGridLayout {
			docPassed = false
			result.Violations = append(result.Violations, domain.CheckViolation{
				Category:  "gate",
				Rule:      "grid-layout",
				Severity:  "error",
				Message:   "Grid layout gate is closed",
				Document:  doc.Path,
				Actual:    strconv.Itoa(summary.OverallScore),
				Threshold: "100",
			})
		}

		if !checkAllowCritical {
			if n := summary.ViolationsBySeverity[domain.SeverityCritical]; n > 0 {
				docPassed = false
				result.Violations = append(result.Violations, domain.CheckViolation{
					Category:  "rule",
					Rule:      "no-critical",
					Severity:  "error",
					Message:   fmt.Sprintf("Found %d critical violations", n),
					Document:  doc.Path,
					Actual:    strconv.Itoa(n),
					Threshold: "0",
				})
			}
		}

		if !docPassed {
			result.Passed = false
			result.Summary.GatedDocuments++
		}
	}

	return result
}

func outputCheckResult(result *domain.CheckResult, startTime time.Time) error {
	result.Duration = time.Since(startTime).Milliseconds()
	result.GeneratedAt = time.Now().Format(time.RFC3339)
	result.Version = version.Version
	result.ExitCode = 0
	if !result.Passed {
		result.ExitCode = 1
	}
	result.Summary.TotalViolations = len(result.Violations)

	if checkJSON {
		return outputCheckJSON(result)
	}

	return outputCheckText(result)
}

func outputCheckText(result *domain.CheckResult) error {
	if result.Passed {
		fmt.Println("PASS: All quality gates passed")
		if checkVerbose {
			fmt.Printf("  Documents analyzed: %d\n", result.Summary.DocumentsAnalyzed)
			fmt.Printf("  Duration: %dms\n", result.Duration)
			fmt.Printf("  Minimum score: %d\n", checkMinScore)
			if checkRequireGrid {
				fmt.Printf("  Grid layout gate: required\n")
			}
		}
		return nil
	}

	fmt.Println("FAIL: Quality gate failed")
	fmt.Printf("  Violations: %d\n", result.Summary.TotalViolations)

	for _, v := range result.Violations {
		severity := "ERROR"
		if v.Severity == "warning" {
			severity = "WARN"
		}
		fmt.Printf("  [%s] %s: %s\n", severity, v.Category, v.Message)
		if checkVerbose && v.Document != "" {
			fmt.Printf("         in %s\n", v.Document)
		}
	}

	if checkVerbose {
		fmt.Printf("\nSummary:\n")
		fmt.Printf("  Documents: %d (%d gated)\n", result.Summary.DocumentsAnalyzed, result.Summary.GatedDocuments)
		fmt.Printf("  Critical findings: %d\n", result.Summary.CriticalFindings)
		fmt.Printf("  Major findings: %d\n", result.Summary.MajorFindings)
		fmt.Printf("  Minor findings: %d\n", result.Summary.MinorFindings)
		fmt.Printf("  Duration: %dms\n", result.Duration)
	}

	return &CheckExitError{Code: 1, Message: ""}
}

func outputCheckJSON(result *domain.CheckResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to encode JSON: %v", err)}
	}

	if !result.Passed {
		return &CheckExitError{Code: 1, Message: ""}
	}
	return nil
}
