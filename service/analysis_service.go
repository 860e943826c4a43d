package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/framelint/framelint/domain"
	"github.com/framelint/framelint/internal/analyzer"
	"github.com/framelint/framelint/internal/config"
	"github.com/framelint/framelint/internal/parser"
	"github.com/framelint/framelint/internal/version"
)

// AnalysisServiceImpl implements the AnalysisService interface
type AnalysisServiceImpl struct {
	config   *config.Config
	progress domain.ProgressManager
}

// NewAnalysisService creates a new analysis service implementation
func NewAnalysisService(cfg *config.Config) *AnalysisServiceImpl {
	return &AnalysisServiceImpl{
		config: cfg,
	}
}

// NewAnalysisServiceWithProgress creates a new analysis service with progress reporting
func NewAnalysisServiceWithProgress(cfg *config.Config, pm domain.ProgressManager) *AnalysisServiceImpl {
	return &AnalysisServiceImpl{
		config:   cfg,
		progress: pm,
	}
}

// documentTask analyzes a single design export file
type documentTask struct {
	path       string
	engine     *analyzer.RuleEngine
	calculator *analyzer.ScoreCalculator
	sortBy     domain.SortCriteria

	mu     *sync.Mutex
	out    *[]domain.DocumentAnalysis
	warned *[]string
}

// Name returns the file path as the task identifier
func (t *documentTask) Name() string {
	return t.path
}

// IsEnabled always returns true; disabled rules are filtered at catalogue
// construction
func (t *documentTask) IsEnabled() bool {
	return true
}

// Execute parses and analyzes one document
func (t *documentTask) Execute(ctx context.Context) (interface{}, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	doc, err := parser.ParseFile(t.path)
	if err != nil {
		return nil, err
	}

	summary := t.engine.Analyze(doc.Root)
	summary = t.calculator.Calculate(summary)
	sortViolations(summary.Violations, t.sortBy)

	analysis := domain.DocumentAnalysis{
		Path:    t.path,
		Summary: summary,
	}

	t.mu.Lock()
	*t.out = append(*t.out, analysis)
	if summary.Stats.TotalFrames == 0 {
		*t.warned = append(*t.warned, fmt.Sprintf("[%s] document contains no frames", t.path))
	}
	t.mu.Unlock()

	return analysis, nil
}

// Analyze performs rule analysis and scoring on multiple design export files
func (s *AnalysisServiceImpl) Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisResponse, error) {
	startTime := time.Now()

	rules := analyzer.NewCatalogue(s.config.CatalogueConfig())
	engine := analyzer.NewRuleEngine(rules)
	calculator := analyzer.NewScoreCalculator()

	var mu sync.Mutex
	var documents []domain.DocumentAnalysis
	var warnings []string

	tasks := make([]domain.ExecutableTask, 0, len(req.Paths))
	for _, path := range req.Paths {
		tasks = append(tasks, &documentTask{
			path:       path,
			engine:     engine,
			calculator: calculator,
			sortBy:     req.SortBy,
			mu:         &mu,
			out:        &documents,
			warned:     &warnings,
		})
	}

	executor := NewParallelExecutorWithProgress(&s.config.Analysis, s.progress)

	var analysisErrors []string
	if err := executor.Execute(ctx, tasks); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("analysis cancelled: %w", ctx.Err())
		}

		// Per-document failures are reported in the response; the run
		// continues with the documents that parsed
		var aggregated *AggregatedError
		if errors.As(err, &aggregated) {
			for _, taskErr := range aggregated.Errors {
				analysisErrors = append(analysisErrors, taskErr.Error())
			}
		} else {
			analysisErrors = append(analysisErrors, err.Error())
		}
	}

	if len(documents) == 0 {
		return nil, domain.NewAnalysisError("no design documents could be analyzed", nil)
	}

	// Concurrent tasks append in completion order; restore input order
	sort.Slice(documents, func(i, j int) bool {
		return documents[i].Path < documents[j].Path
	})
	sort.Strings(warnings)

	return &domain.AnalysisResponse{
		Documents:      documents,
		AverageScore:   averageScore(documents),
		AllGatesPassed: allGatesPassed(documents),
		Warnings:       warnings,
		Errors:         analysisErrors,
		GeneratedAt:    time.Now().Format(time.RFC3339),
		DurationMs:     time.Since(startTime).Milliseconds(),
		Version:        version.Version,
	}, nil
}

// AnalyzeFile analyzes a single design export file
func (s *AnalysisServiceImpl) AnalyzeFile(ctx context.Context, filePath string, req domain.AnalysisRequest) (*domain.AnalysisResponse, error) {
	singleFileReq := req
	singleFileReq.Paths = []string{filePath}

	return s.Analyze(ctx, singleFileReq)
}

// averageScore returns the rounded mean overall score across documents
func averageScore(documents []domain.DocumentAnalysis) int {
	if len(documents) == 0 {
		return 0
	}

	total := 0
	for _, doc := range documents {
		total += doc.Summary.OverallScore
	}
	return (total + len(documents)/2) / len(documents)
}

// allGatesPassed reports whether every document passed the code-generation gate
func allGatesPassed(documents []domain.DocumentAnalysis) bool {
	for _, doc := range documents {
		if !doc.Summary.CanGenerateCode {
			return false
		}
	}
	return true
}

// sortViolations orders violations in place based on the requested criteria
func sortViolations(violations []domain.Violation, sortBy domain.SortCriteria) {
	switch sortBy {
	case domain.SortByCategory:
		sort.SliceStable(violations, func(i, j int) bool {
			if violations[i].Category != violations[j].Category {
				return violations[i].Category < violations[j].Category
			}
			return violations[i].Severity.Rank() < violations[j].Severity.Rank()
		})
	case domain.SortByName:
		sort.SliceStable(violations, func(i, j int) bool {
			if violations[i].FrameName != violations[j].FrameName {
				return violations[i].FrameName < violations[j].FrameName
			}
			return violations[i].RuleID < violations[j].RuleID
		})
	default:
		// Default: most severe first
		sort.SliceStable(violations, func(i, j int) bool {
			if violations[i].Severity.Rank() != violations[j].Severity.Rank() {
				return violations[i].Severity.Rank() < violations[j].Severity.Rank()
			}
			return violations[i].FrameName < violations[j].FrameName
		})
	}
}
