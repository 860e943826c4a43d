package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/framelint/framelint/app"
	"github.com/framelint/framelint/domain"
	"github.com/framelint/framelint/internal/config"
	"github.com/framelint/framelint/service"
)

var (
	analyzeOutputFormat string
	analyzeJSONOutput   bool
	analyzeOutputPath   string
	analyzeConfigPath   string
	analyzeSortBy       string
	analyzeNoDetails    bool
	analyzeNoRecursive  bool
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [path...]",
		Short: "Analyze design export files",
		Long: `Analyze design document exports for structural quality issues.

Each document receives per-category scores (layout, size, responsive,
semantic, component), a weighted overall score, and code-generation gates.

Examples:
  framelint analyze designs/
  framelint analyze --format json designs/landing.json
  framelint analyze --json --sort-by category designs/
  framelint analyze -o report.yaml --format yaml designs/`,
		RunE: runAnalyze,
	}

	cmd.Flags().StringVarP(&analyzeOutputFormat, "format", "f", "text",
		"Output format: text, json, yaml, csv")
	cmd.Flags().BoolVar(&analyzeJSONOutput, "json", false,
		"Output results as JSON (shorthand for --format json)")
	cmd.Flags().StringVarP(&analyzeOutputPath, "output", "o", "",
		"Output file path (default: stdout)")
	cmd.Flags().StringVarP(&analyzeConfigPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().StringVar(&analyzeSortBy, "sort-by", "",
		"Violation ordering: severity, category, name")
	cmd.Flags().BoolVar(&analyzeNoDetails, "no-details", false,
		"Hide the per-violation breakdown in text output")
	cmd.Flags().BoolVar(&analyzeNoRecursive, "no-recursive", false,
		"Do not walk directories recursively")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) (err error) {
	if len(args) == 0 {
		return fmt.Errorf("no paths specified")
	}

	// Load configuration, discovering a config file near the analyzed path
	cfg, err := config.LoadConfigWithTarget(analyzeConfigPath, args[0])
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	format := domain.OutputFormat(cfg.Output.Format)
	if cmd.Flags().Changed("format") {
		format = domain.OutputFormat(analyzeOutputFormat)
	}
	if analyzeJSONOutput {
		format = domain.OutputFormatJSON
	}

	sortBy := domain.SortCriteria(cfg.Output.SortBy)
	if analyzeSortBy != "" {
		sortBy = domain.SortCriteria(analyzeSortBy)
	}

	recursive := cfg.Analysis.Recursive
	if analyzeNoRecursive {
		recursive = false
	}

	// Progress bars are pointless when the report goes to a pipe
	pm := service.NewProgressManager(format == domain.OutputFormatText && analyzeOutputPath == "")
	defer pm.Close()

	// Determine output writer
	var writer *os.File
	if analyzeOutputPath != "" {
		f, createErr := os.Create(analyzeOutputPath)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", closeErr)
			}
		}()
		writer = f
	} else {
		writer = os.Stdout
	}

	svc := service.NewAnalysisServiceWithProgress(cfg, pm)
	formatter := service.NewOutputFormatter()

	uc, err := app.NewAnalyzeUseCaseBuilder().
		WithService(svc).
		WithFormatter(formatter).
		WithConfigLoader(service.NewConfigurationLoader()).
		Build()
	if err != nil {
		return err
	}

	req := domain.AnalysisRequest{
		Paths:           args,
		OutputFormat:    format,
		OutputWriter:    writer,
		ShowDetails:     cfg.Output.ShowDetails && !analyzeNoDetails,
		SortBy:          sortBy,
		ConfigPath:      analyzeConfigPath,
		Recursive:       recursive,
		ExcludePatterns: cfg.Analysis.ExcludePatterns,
	}

	response, err := uc.Analyze(context.Background(), req)
	if err != nil {
		return err
	}

	if err := formatter.WriteWithDetails(response, format, writer, req.ShowDetails); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if analyzeOutputPath != "" {
		absPath, _ := filepath.Abs(analyzeOutputPath)
		fmt.Printf("Output saved to: %s\n", absPath)
	}

	return nil
}
