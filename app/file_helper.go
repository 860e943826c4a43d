package app

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// FileHelper provides file operation utilities for design export collection
type FileHelper struct{}

// NewFileHelper creates a new FileHelper
func NewFileHelper() *FileHelper {
	return &FileHelper{}
}

// CollectExportFiles collects design export files (.json) from paths.
// Exclude patterns use gitignore syntax.
func (h *FileHelper) CollectExportFiles(paths []string, recursive bool, excludePatterns []string) ([]string, error) {
	matcher := gitignore.CompileIgnoreLines(excludePatterns...)

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if h.isExportFile(path) && !matcher.MatchesPath(path) {
				files = append(files, path)
			}
			continue
		}

		if recursive {
			err = filepath.Walk(path, func(filePath string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}

				if info.IsDir() {
					// Skip excluded directories early
					if filePath != path && matcher.MatchesPath(filePath+string(filepath.Separator)) {
						return filepath.SkipDir
					}
					return nil
				}

				if h.isExportFile(filePath) && !matcher.MatchesPath(filePath) {
					files = append(files, filePath)
				}

				return nil
			})
		} else {
			var entries []os.DirEntry
			entries, err = os.ReadDir(path)
			if err == nil {
				for _, entry := range entries {
					if !entry.IsDir() {
						filePath := filepath.Join(path, entry.Name())
						if h.isExportFile(filePath) && !matcher.MatchesPath(filePath) {
							files = append(files, filePath)
						}
					}
				}
			}
		}

		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// IsValidExportFile checks if a file looks like a design export
func (h *FileHelper) IsValidExportFile(path string) bool {
	return h.isExportFile(path)
}

// FileExists checks if a file exists
func (h *FileHelper) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// ReadFile reads file content
func (h *FileHelper) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// isExportFile checks the file extension
func (h *FileHelper) isExportFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".json"
}

// ResolveFilePaths resolves file paths, returning existing files directly
// or collecting exports from directories
func ResolveFilePaths(
	fileHelper *FileHelper,
	paths []string,
	recursive bool,
	excludePatterns []string,
) ([]string, error) {
	// Check if all paths are already files
	allFiles := true
	for _, path := range paths {
		exists, err := fileHelper.FileExists(path)
		if err != nil || !exists {
			allFiles = false
			break
		}
	}

	if allFiles {
		return paths, nil
	}

	return fileHelper.CollectExportFiles(paths, recursive, excludePatterns)
}
