package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/framelint/framelint/domain"
	"github.com/framelint/framelint/internal/version"
)

// OutputFormatterImpl implements the OutputFormatter interface
type OutputFormatterImpl struct{}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// WriteJSON writes data as JSON to the writer
func WriteJSON(writer io.Writer, data interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// AnalysisResponseJSON wraps AnalysisResponse with JSON metadata
type AnalysisResponseJSON struct {
	Version        string                    `json:"version" yaml:"version"`
	GeneratedAt    string                    `json:"generated_at" yaml:"generated_at"`
	DurationMs     int64                     `json:"duration_ms,omitempty" yaml:"duration_ms,omitempty"`
	Documents      []domain.DocumentAnalysis `json:"documents" yaml:"documents"`
	AverageScore   int                       `json:"average_score" yaml:"average_score"`
	AllGatesPassed bool                      `json:"all_gates_passed" yaml:"all_gates_passed"`
	Warnings       []string                  `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Errors         []string                  `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Write writes the analysis response in the specified format
func (f *OutputFormatterImpl) Write(response *domain.AnalysisResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return f.writeJSON(response, writer)
	case domain.OutputFormatYAML:
		return f.writeYAML(response, writer)
	case domain.OutputFormatCSV:
		return f.writeCSV(response, writer)
	case domain.OutputFormatText, "":
		return f.writeText(response, writer, true)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

// WriteWithDetails writes text output with an explicit detail toggle;
// structured formats always carry full detail
func (f *OutputFormatterImpl) WriteWithDetails(response *domain.AnalysisResponse, format domain.OutputFormat, writer io.Writer, showDetails bool) error {
	if format == domain.OutputFormatText || format == "" {
		return f.writeText(response, writer, showDetails)
	}
	return f.Write(response, format, writer)
}

// buildEnvelope converts a response into the serialization envelope
func (f *OutputFormatterImpl) buildEnvelope(response *domain.AnalysisResponse) AnalysisResponseJSON {
	return AnalysisResponseJSON{
		Version:        version.Version,
		GeneratedAt:    response.GeneratedAt,
		DurationMs:     response.DurationMs,
		Documents:      response.Documents,
		AverageScore:   response.AverageScore,
		AllGatesPassed: response.AllGatesPassed,
		Warnings:       response.Warnings,
		Errors:         response.Errors,
	}
}

// writeJSON writes the analysis response as JSON
func (f *OutputFormatterImpl) writeJSON(response *domain.AnalysisResponse, writer io.Writer) error {
	return WriteJSON(writer, f.buildEnvelope(response))
}

// writeYAML writes the analysis response as YAML
func (f *OutputFormatterImpl) writeYAML(response *domain.AnalysisResponse, writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(f.buildEnvelope(response))
}

// writeCSV writes one row per violation
func (f *OutputFormatterImpl) writeCSV(response *domain.AnalysisResponse, writer io.Writer) error {
	w := csv.NewWriter(writer)

	header := []string{"document", "rule_id", "severity", "category", "frame_name", "frame_id", "description", "suggestion"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, doc := range response.Documents {
		for _, v := range doc.Summary.Violations {
			record := []string{
				doc.Path,
				v.RuleID,
				string(v.Severity),
				string(v.Category),
				v.FrameName,
				v.FrameID,
				v.Description,
				v.Suggestion,
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

// writeText writes the analysis response as plain text
func (f *OutputFormatterImpl) writeText(response *domain.AnalysisResponse, writer io.Writer, showDetails bool) error {
	fmt.Fprintf(writer, "\n=== Design Analysis ===\n\n")
	fmt.Fprintf(writer, "Generated: %s\n", response.GeneratedAt)
	fmt.Fprintf(writer, "Version: %s\n\n", response.Version)

	for _, doc := range response.Documents {
		f.writeDocumentText(doc, writer, showDetails)
	}

	if len(response.Documents) > 1 {
		fmt.Fprintf(writer, "Overall:\n")
		fmt.Fprintf(writer, "  Documents analyzed: %d\n", len(response.Documents))
		fmt.Fprintf(writer, "  Average score: %d\n", response.AverageScore)
		fmt.Fprintf(writer, "  All code generation gates passed: %s\n", yesNo(response.AllGatesPassed))
		fmt.Fprintf(writer, "\n")
	}

	if len(response.Warnings) > 0 {
		fmt.Fprintf(writer, "Warnings:\n")
		for _, w := range response.Warnings {
			fmt.Fprintf(writer, "  - %s\n", w)
		}
		fmt.Fprintf(writer, "\n")
	}

	if len(response.Errors) > 0 {
		fmt.Fprintf(writer, "Errors:\n")
		for _, e := range response.Errors {
			fmt.Fprintf(writer, "  - %s\n", e)
		}
		fmt.Fprintf(writer, "\n")
	}

	return nil
}

// writeDocumentText writes the per-document report section
func (f *OutputFormatterImpl) writeDocumentText(doc domain.DocumentAnalysis, writer io.Writer, showDetails bool) {
	summary := doc.Summary

	fmt.Fprintf(writer, "%s\n", doc.Path)
	fmt.Fprintf(writer, "  Score: %d/100 (%s) %s\n", summary.OverallScore, summary.Grade, summary.Label)
	fmt.Fprintf(writer, "  %s\n", summary.Message)
	fmt.Fprintf(writer, "\n")

	fmt.Fprintf(writer, "  Category Scores:\n")
	for _, cs := range summary.CategoryScores {
		fmt.Fprintf(writer, "    %-11s %3d  (weight %.0f%%)\n", cs.Category, cs.Score, cs.Weight*100)
	}
	fmt.Fprintf(writer, "\n")

	fmt.Fprintf(writer, "  Gates:\n")
	fmt.Fprintf(writer, "    Code generation: %s\n", yesNo(summary.CanGenerateCode))
	fmt.Fprintf(writer, "    Grid layout:     %s\n", yesNo(summary.CanUseGridLayout))
	fmt.Fprintf(writer, "\n")

	fmt.Fprintf(writer, "  Frames: %d  Nodes: %d  Violations: %d",
		summary.Stats.TotalFrames, summary.Stats.TotalNodes, summary.TotalViolations())
	if n := summary.ViolationsBySeverity[domain.SeverityCritical]; n > 0 {
		fmt.Fprintf(writer, "  [%d critical]", n)
	}
	fmt.Fprintf(writer, "\n\n")

	if showDetails && len(summary.Violations) > 0 {
		fmt.Fprintf(writer, "  Violations:\n")
		for _, v := range summary.Violations {
			fmt.Fprintf(writer, "    [%s] %s: %s (%s)\n",
				severityTag(v.Severity), v.RuleID, v.FrameName, v.Description)
			if v.Suggestion != "" {
				fmt.Fprintf(writer, "      -> %s\n", v.Suggestion)
			}
			if v.DetectedValue != "" || v.ExpectedValue != "" {
				fmt.Fprintf(writer, "      detected: %s, expected: %s\n",
					orDash(v.DetectedValue), orDash(v.ExpectedValue))
			}
		}
		fmt.Fprintf(writer, "\n")
	}
}

// severityTag returns the uppercase tag used in text output
func severityTag(severity domain.Severity) string {
	switch severity {
	case domain.SeverityCritical:
		return "CRITICAL"
	case domain.SeverityMajor:
		return "MAJOR"
	case domain.SeverityMinor:
		return "MINOR"
	default:
		return "INFO"
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// FormatScore renders a score for single-value outputs
func FormatScore(score int) string {
	return strconv.Itoa(score) + "/100"
}
