package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/framelint/framelint/domain"
	"github.com/framelint/framelint/internal/config"
)

const conformantExport = `{
  "name": "Landing",
  "version": "1",
  "document": {
    "id": "1:1",
    "name": "page-home",
    "type": "FRAME",
    "layoutMode": "VERTICAL",
    "layoutWrap": "WRAP",
    "primaryAxisSizingMode": "AUTO",
    "counterAxisSizingMode": "AUTO",
    "constraints": {"horizontal": "MIN", "vertical": "MIN"}
  }
}`

const bareFrameExport = `{
  "name": "Draft",
  "version": "1",
  "document": {
    "id": "2:1",
    "name": "Hero",
    "type": "FRAME",
    "absoluteBoundingBox": {"x": 0, "y": 0, "width": 1440, "height": 600}
  }
}`

func writeExport(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write export: %v", err)
	}
	return path
}

func TestAnalysisService_Analyze_ConformantDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeExport(t, dir, "landing.json", conformantExport)

	svc := NewAnalysisService(config.DefaultConfig())
	resp, err := svc.Analyze(context.Background(), domain.AnalysisRequest{
		Paths:  []string{path},
		SortBy: domain.SortBySeverity,
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(resp.Documents) != 1 {
		t.Fatalf("Expected 1 document, got %d", len(resp.Documents))
	}

	summary := resp.Documents[0].Summary
	if summary.OverallScore != 100 {
		t.Errorf("Expected score 100, got %d", summary.OverallScore)
	}
	if !summary.CanGenerateCode || !summary.CanUseGridLayout {
		t.Error("Both gates should be open for a conformant document")
	}
	if !resp.AllGatesPassed {
		t.Error("AllGatesPassed should be true")
	}
	if resp.AverageScore != 100 {
		t.Errorf("Expected average 100, got %d", resp.AverageScore)
	}
	if resp.Version == "" {
		t.Error("Version should be set")
	}
	if resp.GeneratedAt == "" {
		t.Error("GeneratedAt should be set")
	}
}

func TestAnalysisService_Analyze_BareFrame(t *testing.T) {
	dir := t.TempDir()
	path := writeExport(t, dir, "draft.json", bareFrameExport)

	svc := NewAnalysisService(config.DefaultConfig())
	resp, err := svc.Analyze(context.Background(), domain.AnalysisRequest{
		Paths: []string{path},
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	summary := resp.Documents[0].Summary
	if summary.CanGenerateCode {
		t.Error("Code generation gate should be closed")
	}
	if summary.ViolationsBySeverity[domain.SeverityCritical] == 0 {
		t.Error("Bare frame should produce critical violations")
	}
	if resp.AllGatesPassed {
		t.Error("AllGatesPassed should be false")
	}
}

func TestAnalysisService_Analyze_MultipleDocumentsSorted(t *testing.T) {
	dir := t.TempDir()
	pathB := writeExport(t, dir, "b-draft.json", bareFrameExport)
	pathA := writeExport(t, dir, "a-landing.json", conformantExport)

	svc := NewAnalysisService(config.DefaultConfig())
	resp, err := svc.Analyze(context.Background(), domain.AnalysisRequest{
		Paths: []string{pathB, pathA},
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(resp.Documents) != 2 {
		t.Fatalf("Expected 2 documents, got %d", len(resp.Documents))
	}

	// Documents are ordered by path regardless of completion order
	if resp.Documents[0].Path != pathA || resp.Documents[1].Path != pathB {
		t.Errorf("Documents not sorted by path: %s, %s", resp.Documents[0].Path, resp.Documents[1].Path)
	}

	if resp.AllGatesPassed {
		t.Error("AllGatesPassed should be false when one gate is closed")
	}
}

func TestAnalysisService_Analyze_UnreadableFileContinues(t *testing.T) {
	dir := t.TempDir()
	good := writeExport(t, dir, "landing.json", conformantExport)
	bad := filepath.Join(dir, "missing.json")

	svc := NewAnalysisService(config.DefaultConfig())
	resp, err := svc.Analyze(context.Background(), domain.AnalysisRequest{
		Paths: []string{good, bad},
	})
	if err != nil {
		t.Fatalf("Analyze should continue past unreadable files: %v", err)
	}

	if len(resp.Documents) != 1 {
		t.Errorf("Expected 1 analyzed document, got %d", len(resp.Documents))
	}
	if len(resp.Errors) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(resp.Errors))
	}
	if !strings.Contains(resp.Errors[0], "missing.json") {
		t.Errorf("Error should name the failing file, got %q", resp.Errors[0])
	}
}

func TestAnalysisService_Analyze_AllFilesFail(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "missing.json")

	svc := NewAnalysisService(config.DefaultConfig())
	_, err := svc.Analyze(context.Background(), domain.AnalysisRequest{
		Paths: []string{bad},
	})
	if err == nil {
		t.Fatal("Expected error when no documents could be analyzed")
	}

	var domainErr domain.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("Expected DomainError, got %T", err)
	}
	if domainErr.Code != domain.ErrCodeAnalysisError {
		t.Errorf("Expected code %s, got %s", domain.ErrCodeAnalysisError, domainErr.Code)
	}
}

func TestAnalysisService_Analyze_Cancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeExport(t, dir, "landing.json", conformantExport)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewAnalysisService(config.DefaultConfig())
	_, err := svc.Analyze(ctx, domain.AnalysisRequest{
		Paths: []string{path},
	})
	if err == nil {
		t.Fatal("Expected error for cancelled context")
	}
}

func TestAnalysisService_Analyze_DisabledRules(t *testing.T) {
	dir := t.TempDir()
	path := writeExport(t, dir, "draft.json", bareFrameExport)

	cfg := config.DefaultConfig()
	cfg.Rules.Disabled = []string{"AUTO_LAYOUT_REQUIRED", "ABSOLUTE_POSITIONING", "NON_SEMANTIC_NAME"}

	svc := NewAnalysisService(cfg)
	resp, err := svc.Analyze(context.Background(), domain.AnalysisRequest{
		Paths: []string{path},
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	for _, v := range resp.Documents[0].Summary.Violations {
		if v.RuleID == "AUTO_LAYOUT_REQUIRED" || v.RuleID == "ABSOLUTE_POSITIONING" {
			t.Errorf("Disabled rule %s should not fire", v.RuleID)
		}
	}
}

func TestAnalysisService_AnalyzeFile(t *testing.T) {
	dir := t.TempDir()
	path := writeExport(t, dir, "landing.json", conformantExport)

	svc := NewAnalysisService(config.DefaultConfig())
	resp, err := svc.AnalyzeFile(context.Background(), path, domain.AnalysisRequest{
		Paths: []string{"ignored.json"},
	})
	if err != nil {
		t.Fatalf("AnalyzeFile failed: %v", err)
	}

	if len(resp.Documents) != 1 {
		t.Fatalf("Expected 1 document, got %d", len(resp.Documents))
	}
	if resp.Documents[0].Path != path {
		t.Errorf("Expected path %s, got %s", path, resp.Documents[0].Path)
	}
}

func TestSortViolations(t *testing.T) {
	violations := []domain.Violation{
		{RuleID: "B", Severity: domain.SeverityMinor, Category: domain.CategorySemantic, FrameName: "b-frame"},
		{RuleID: "A", Severity: domain.SeverityCritical, Category: domain.CategoryLayout, FrameName: "c-frame"},
		{RuleID: "C", Severity: domain.SeverityMajor, Category: domain.CategorySize, FrameName: "a-frame"},
	}

	sortViolations(violations, domain.SortBySeverity)
	if violations[0].Severity != domain.SeverityCritical {
		t.Errorf("Expected critical first, got %s", violations[0].Severity)
	}
	if violations[2].Severity != domain.SeverityMinor {
		t.Errorf("Expected minor last, got %s", violations[2].Severity)
	}

	sortViolations(violations, domain.SortByName)
	if violations[0].FrameName != "a-frame" {
		t.Errorf("Expected a-frame first, got %s", violations[0].FrameName)
	}

	sortViolations(violations, domain.SortByCategory)
	if violations[0].Category != domain.CategoryLayout {
		t.Errorf("Expected layout first, got %s", violations[0].Category)
	}
}

func TestAverageScore(t *testing.T) {
	docs := []domain.DocumentAnalysis{
		{Summary: domain.AnalysisSummary{OverallScore: 100}},
		{Summary: domain.AnalysisSummary{OverallScore: 95}},
	}

	if got := averageScore(docs); got != 98 {
		t.Errorf("averageScore = %d, expected 98", got)
	}

	if got := averageScore(nil); got != 0 {
		t.Errorf("averageScore(nil) = %d, expected 0", got)
	}
}
