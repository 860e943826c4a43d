package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/framelint/framelint/app"
	"github.com/framelint/framelint/domain"
	"github.com/framelint/framelint/internal/config"
	"github.com/framelint/framelint/service"
)

var (
	watchConfigPath string
	watchDebounceMs int
	watchClearTerm  bool
)

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [path...]",
		Short: "Re-analyze design exports whenever they change",
		Long: `Watch directories for changes to design export files and re-run the
analysis automatically. Useful while iterating on a design export pipeline.

Press Ctrl+C to stop watching.

Examples:
  # Watch the designs directory
  framelint watch designs/

  # Watch with a custom config and longer debounce
  framelint watch --config team.yaml --debounce 1000 designs/`,
		RunE: runWatch,
	}

	cmd.Flags().StringVarP(&watchConfigPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().IntVar(&watchDebounceMs, "debounce", 300,
		"Debounce interval in milliseconds before re-analyzing")
	cmd.Flags().BoolVar(&watchClearTerm, "clear", false,
		"Clear the terminal before each report")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no paths specified")
	}

	cfg, err := config.LoadConfigWithTarget(watchConfigPath, args[0])
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range args {
		if err := addWatchRecursive(watcher, path); err != nil {
			return err
		}
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	fmt.Printf("Watching %s for changes (debounce %dms)\n", strings.Join(args, ", "), watchDebounceMs)

	// Initial run so the user sees the current state right away
	runWatchAnalysis(cfg, args)

	debounce := time.Duration(watchDebounceMs) * time.Millisecond
	var mu sync.Mutex
	var timer *time.Timer

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isWatchRelevant(event) {
				continue
			}
			// New directories need to be picked up as they appear
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addWatchRecursive(watcher, event.Name)
				}
			}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				runWatchAnalysis(cfg, args)
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)

		case <-stop:
			fmt.Println("\nStopped watching.")
			return nil
		}
	}
}

// addWatchRecursive registers path and all of its subdirectories with the
// watcher. fsnotify does not watch recursively on its own.
func addWatchRecursive(watcher *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", path, err)
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(path))
	}

	return filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			if strings.HasPrefix(fi.Name(), ".") && p != path {
				return filepath.SkipDir
			}
			if fi.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return watcher.Add(p)
		}
		return nil
	})
}

// isWatchRelevant filters events down to changes on design export files and
// directory creation.
func isWatchRelevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	if filepath.Ext(event.Name) == ".json" {
		return true
	}
	if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
		return true
	}
	return false
}

func runWatchAnalysis(cfg *config.Config, paths []string) {
	if watchClearTerm {
		fmt.Print("\033[H\033[2J")
	}
	fmt.Printf("--- %s ---\n", time.Now().Format("15:04:05"))

	uc, err := app.NewAnalyzeUseCaseBuilder().
		WithService(service.NewAnalysisService(cfg)).
		WithFormatter(service.NewOutputFormatter()).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}

	req := domain.AnalysisRequest{
		Paths:           paths,
		OutputFormat:    domain.OutputFormatText,
		OutputWriter:    os.Stdout,
		ShowDetails:     cfg.Output.ShowDetails,
		SortBy:          domain.SortCriteria(cfg.Output.SortBy),
		Recursive:       true,
		ExcludePatterns: cfg.Analysis.ExcludePatterns,
	}

	if err := uc.Execute(context.Background(), req); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}
