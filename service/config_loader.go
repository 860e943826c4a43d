package service

import (
	"github.com/framelint/framelint/domain"
	"github.com/framelint/framelint/internal/config"
)

// ConfigurationLoaderImpl implements the ConfigurationLoader interface
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path
func (c *ConfigurationLoaderImpl) LoadConfig(path string) (*domain.AnalysisRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}

	return c.convertToAnalysisRequest(cfg), nil
}

// LoadDefaultConfig loads the default configuration, discovering a config
// file near the working directory when one exists
func (c *ConfigurationLoaderImpl) LoadDefaultConfig() *domain.AnalysisRequest {
	cfg, err := config.LoadConfigWithTarget("", "")
	if err == nil {
		return c.convertToAnalysisRequest(cfg)
	}

	// Fall back to hardcoded default configuration
	cfg = config.DefaultConfig()
	return c.convertToAnalysisRequest(cfg)
}

// MergeConfig merges CLI flags with configuration file
func (c *ConfigurationLoaderImpl) MergeConfig(base *domain.AnalysisRequest, override *domain.AnalysisRequest) *domain.AnalysisRequest {
	merged := *base

	// Paths always come from command arguments
	if len(override.Paths) > 0 {
		merged.Paths = override.Paths
	}

	if override.OutputFormat != "" {
		merged.OutputFormat = override.OutputFormat
	}

	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}

	if override.ShowDetails {
		merged.ShowDetails = override.ShowDetails
	}

	if override.SortBy != "" && override.SortBy != domain.SortBySeverity {
		merged.SortBy = override.SortBy
	}

	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}

	if override.Recursive {
		merged.Recursive = override.Recursive
	}

	if len(override.ExcludePatterns) > 0 {
		merged.ExcludePatterns = override.ExcludePatterns
	}

	return &merged
}

// convertToAnalysisRequest converts a Config to AnalysisRequest
func (c *ConfigurationLoaderImpl) convertToAnalysisRequest(cfg *config.Config) *domain.AnalysisRequest {
	return &domain.AnalysisRequest{
		// Paths are set by the caller, not from config
		Paths: []string{},

		OutputFormat: domain.OutputFormat(cfg.Output.Format),
		ShowDetails:  cfg.Output.ShowDetails,
		SortBy:       domain.SortCriteria(cfg.Output.SortBy),

		Recursive:       cfg.Analysis.Recursive,
		ExcludePatterns: cfg.Analysis.ExcludePatterns,
	}
}

// ValidateRequest validates a fully merged analysis request
func (c *ConfigurationLoaderImpl) ValidateRequest(req *domain.AnalysisRequest) error {
	validFormats := map[domain.OutputFormat]bool{
		domain.OutputFormatText: true,
		domain.OutputFormatJSON: true,
		domain.OutputFormatYAML: true,
		domain.OutputFormatCSV:  true,
	}
	if req.OutputFormat != "" && !validFormats[req.OutputFormat] {
		return domain.NewUnsupportedFormatError(string(req.OutputFormat))
	}

	validSorts := map[domain.SortCriteria]bool{
		domain.SortBySeverity: true,
		domain.SortByCategory: true,
		domain.SortByName:     true,
	}
	if req.SortBy != "" && !validSorts[req.SortBy] {
		return domain.NewInvalidInputError("invalid sort criteria: "+string(req.SortBy), nil)
	}

	return nil
}
