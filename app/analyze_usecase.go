package app

import (
	"context"
	"fmt"
	"os"

	"github.com/framelint/framelint/domain"
)

// AnalyzeUseCase orchestrates the design analysis workflow
type AnalyzeUseCase struct {
	service      domain.AnalysisService
	formatter    domain.OutputFormatter
	configLoader domain.ConfigurationLoader
	fileHelper   *FileHelper
}

// NewAnalyzeUseCase creates a new analyze use case
func NewAnalyzeUseCase(
	service domain.AnalysisService,
	formatter domain.OutputFormatter,
	configLoader domain.ConfigurationLoader,
) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		service:      service,
		formatter:    formatter,
		configLoader: configLoader,
		fileHelper:   NewFileHelper(),
	}
}

// Execute performs the complete analysis workflow: collect exports, analyze,
// and write formatted output
func (uc *AnalyzeUseCase) Execute(ctx context.Context, req domain.AnalysisRequest) error {
	response, err := uc.Analyze(ctx, req)
	if err != nil {
		return err
	}

	writer := req.OutputWriter
	if writer == nil {
		writer = os.Stdout
	}

	if err := uc.formatter.Write(response, req.OutputFormat, writer); err != nil {
		return domain.NewAnalysisError("failed to write output", err)
	}

	return nil
}

// Analyze runs the analysis and returns the response without formatting
func (uc *AnalyzeUseCase) Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisResponse, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, domain.NewInvalidInputError("invalid request", err)
	}

	files, err := ResolveFilePaths(
		uc.fileHelper,
		req.Paths,
		req.Recursive,
		req.ExcludePatterns,
	)
	if err != nil {
		return nil, domain.NewFileNotFoundError("failed to collect design exports", err)
	}

	if len(files) == 0 {
		return nil, domain.NewInvalidInputError("no design export files found in the specified paths", nil)
	}

	req.Paths = files

	response, err := uc.service.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}

	return response, nil
}

// AnalyzeFile analyzes a single design export file
func (uc *AnalyzeUseCase) AnalyzeFile(ctx context.Context, filePath string, req domain.AnalysisRequest) (*domain.AnalysisResponse, error) {
	if !uc.fileHelper.IsValidExportFile(filePath) {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("not a design export file: %s", filePath), nil)
	}

	exists, err := uc.fileHelper.FileExists(filePath)
	if err != nil {
		return nil, domain.NewFileNotFoundError(filePath, err)
	}
	if !exists {
		return nil, domain.NewFileNotFoundError(filePath, fmt.Errorf("file does not exist"))
	}

	req.Paths = []string{filePath}

	return uc.service.Analyze(ctx, req)
}

// validateRequest validates the analysis request
func (uc *AnalyzeUseCase) validateRequest(req domain.AnalysisRequest) error {
	if len(req.Paths) == 0 {
		return fmt.Errorf("no input paths specified")
	}
	return nil
}

// AnalyzeUseCaseBuilder provides a builder pattern for creating AnalyzeUseCase
type AnalyzeUseCaseBuilder struct {
	service      domain.AnalysisService
	formatter    domain.OutputFormatter
	configLoader domain.ConfigurationLoader
	fileHelper   *FileHelper
}

// NewAnalyzeUseCaseBuilder creates a new builder
func NewAnalyzeUseCaseBuilder() *AnalyzeUseCaseBuilder {
	return &AnalyzeUseCaseBuilder{}
}

// WithService sets the analysis service
func (b *AnalyzeUseCaseBuilder) WithService(service domain.AnalysisService) *AnalyzeUseCaseBuilder {
	b.service = service
	return b
}

// WithFormatter sets the output formatter
func (b *AnalyzeUseCaseBuilder) WithFormatter(formatter domain.OutputFormatter) *AnalyzeUseCaseBuilder {
	b.formatter = formatter
	return b
}

// WithConfigLoader sets the configuration loader
func (b *AnalyzeUseCaseBuilder) WithConfigLoader(loader domain.ConfigurationLoader) *AnalyzeUseCaseBuilder {
	b.configLoader = loader
	return b
}

// WithFileHelper sets the file helper
func (b *AnalyzeUseCaseBuilder) WithFileHelper(fileHelper *FileHelper) *AnalyzeUseCaseBuilder {
	b.fileHelper = fileHelper
	return b
}

// Build creates the AnalyzeUseCase with the configured dependencies
func (b *AnalyzeUseCaseBuilder) Build() (*AnalyzeUseCase, error) {
	if b.service == nil {
		return nil, fmt.Errorf("analysis service is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("output formatter is required")
	}

	uc := &AnalyzeUseCase{
		service:      b.service,
		formatter:    b.formatter,
		configLoader: b.configLoader,
		fileHelper:   b.fileHelper,
	}

	if uc.fileHelper == nil {
		uc.fileHelper = NewFileHelper()
	}

	return uc, nil
}
