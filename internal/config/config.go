package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/framelint/framelint/internal/analyzer"
)

// Default rule thresholds; the zero config analyzes with these values
const (
	// DefaultMaxDepth is the deepest accepted frame nesting level.
	// Frames nested deeper trigger DEPTH_TOO_DEEP.
	DefaultMaxDepth = analyzer.DefaultMaxDepth

	// DefaultMaxChildren is the largest accepted direct-child count.
	// Containers above it trigger LAYER_ABUSE.
	DefaultMaxChildren = analyzer.DefaultMaxChildren

	// DefaultWrapMinChildren is the child count from which auto-layout
	// frames are expected to enable wrapping
	DefaultWrapMinChildren = analyzer.DefaultWrapMinChildren

	// DefaultMaxHugChildren is the largest child count for which
	// primary-axis hugging is accepted inside auto-layout parents
	DefaultMaxHugChildren = analyzer.DefaultMaxHugChildren
)

// Default output settings
const (
	// DefaultOutputFormat is the output format used when none is requested
	DefaultOutputFormat = "text"

	// DefaultSortBy is the default violation sort criteria
	DefaultSortBy = "severity"
)

// Config represents the main configuration structure
type Config struct {
	// Rules holds rule catalogue configuration
	Rules RulesConfig `json:"rules" mapstructure:"rules" yaml:"rules"`

	// Output holds output formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Analysis holds file collection and execution configuration
	Analysis AnalysisConfig `json:"analysis,omitempty" mapstructure:"analysis" yaml:"analysis"`
}

// RulesConfig holds configuration for the rule catalogue
type RulesConfig struct {
	// MaxDepth is the deepest accepted frame nesting level
	MaxDepth int `json:"maxDepth" mapstructure:"max_depth" yaml:"max_depth"`

	// MaxChildren is the largest accepted direct-child count
	MaxChildren int `json:"maxChildren" mapstructure:"max_children" yaml:"max_children"`

	// WrapMinChildren is the child count from which wrapping is expected
	WrapMinChildren int `json:"wrapMinChildren" mapstructure:"wrap_min_children" yaml:"wrap_min_children"`

	// MaxHugChildren is the largest child count allowed to hug
	MaxHugChildren int `json:"maxHugChildren" mapstructure:"max_hug_children" yaml:"max_hug_children"`

	// Disabled lists rule ids excluded from the catalogue
	Disabled []string `json:"disabled,omitempty" mapstructure:"disabled" yaml:"disabled,omitempty"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml, csv
	Format string `json:"format" mapstructure:"format" yaml:"format"`

	// ShowDetails controls whether to show the per-violation breakdown
	ShowDetails bool `json:"showDetails" mapstructure:"show_details" yaml:"show_details"`

	// SortBy specifies violation ordering: severity, category, name
	SortBy string `json:"sortBy" mapstructure:"sort_by" yaml:"sort_by"`
}

// AnalysisConfig holds general analysis configuration
type AnalysisConfig struct {
	// Recursive controls whether directories are walked recursively
	Recursive bool `json:"recursive" mapstructure:"recursive" yaml:"recursive"`

	// ExcludePatterns lists gitignore-style patterns for files to skip
	ExcludePatterns []string `json:"excludePatterns,omitempty" mapstructure:"exclude_patterns" yaml:"exclude_patterns,omitempty"`

	// MaxWorkers bounds concurrent document analyses (0 = number of CPUs)
	MaxWorkers int `json:"maxWorkers" mapstructure:"max_workers" yaml:"max_workers"`
}

// DefaultConfig returns the baseline configuration
func DefaultConfig() *Config {
	return &Config{
		Rules: RulesConfig{
			MaxDepth:        DefaultMaxDepth,
			MaxChildren:     DefaultMaxChildren,
			WrapMinChildren: DefaultWrapMinChildren,
			MaxHugChildren:  DefaultMaxHugChildren,
		},
		Output: OutputConfig{
			Format:      DefaultOutputFormat,
			ShowDetails: true,
			SortBy:      DefaultSortBy,
		},
		Analysis: AnalysisConfig{
			Recursive: true,
			ExcludePatterns: []string{
				"node_modules/",
				"dist/",
				"build/",
				"*.backup.json",
			},
		},
	}
}

// CatalogueConfig converts the rules section into the analyzer's
// catalogue configuration
func (c *Config) CatalogueConfig() analyzer.CatalogueConfig {
	return analyzer.CatalogueConfig{
		MaxDepth:        c.Rules.MaxDepth,
		MaxChildren:     c.Rules.MaxChildren,
		WrapMinChildren: c.Rules.WrapMinChildren,
		MaxHugChildren:  c.Rules.MaxHugChildren,
		DisabledRules:   c.Rules.Disabled,
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Rules.MaxDepth < 0 {
		return fmt.Errorf("rules.max_depth must not be negative, got %d", c.Rules.MaxDepth)
	}
	if c.Rules.MaxChildren < 0 {
		return fmt.Errorf("rules.max_children must not be negative, got %d", c.Rules.MaxChildren)
	}
	if c.Analysis.MaxWorkers < 0 {
		return fmt.Errorf("analysis.max_workers must not be negative, got %d", c.Analysis.MaxWorkers)
	}
	switch c.Output.Format {
	case "", "text", "json", "yaml", "csv":
	default:
		return fmt.Errorf("output.format must be one of text, json, yaml, csv; got %q", c.Output.Format)
	}
	return nil
}

// LoadConfig loads configuration from file or returns the default config
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// LoadConfigWithTarget loads configuration with target path context: when
// no explicit path is given, config files are discovered starting from the
// analyzed path and walking up to the root.
func LoadConfigWithTarget(configPath string, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig(targetPath)
	}
	return loadConfigFromFile(configPath)
}

// loadConfigFromFile reads and parses a configuration file
func loadConfigFromFile(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// A fresh viper instance per call avoids shared state between loads
	v := viper.New()
	config := DefaultConfig()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix("FRAMELINT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// configFileCandidates are the recognized config file names, in order of
// preference
var configFileCandidates = []string{
	"framelint.yaml",
	"framelint.yml",
	".framelintrc.yaml",
	".framelintrc.yml",
	"framelint.json",
	".framelintrc.json",
}

// searchConfigInDirectory searches for configuration files in a directory
func searchConfigInDirectory(dir string) string {
	for _, candidate := range configFileCandidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findDefaultConfig looks for configuration files in common locations,
// starting at the analyzed path and walking parent directories
func findDefaultConfig(targetPath string) string {
	if targetPath != "" {
		absPath, err := filepath.Abs(targetPath)
		if err == nil {
			info, err := os.Stat(absPath)
			if err == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}

			for dir := absPath; ; dir = filepath.Dir(dir) {
				if config := searchConfigInDirectory(dir); config != "" {
					return config
				}
				if parent := filepath.Dir(dir); parent == dir {
					break
				}
			}
		}
	}

	if config := searchConfigInDirectory("."); config != "" {
		return config
	}

	if home, err := os.UserHomeDir(); err == nil {
		if config := searchConfigInDirectory(filepath.Join(home, ".config", "framelint")); config != "" {
			return config
		}
	}

	return ""
}
