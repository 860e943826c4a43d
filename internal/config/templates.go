package config

import "strconv"

// ProjectType represents the kind of design project being linted
type ProjectType string

const (
	ProjectTypeGeneric      ProjectType = "generic"
	ProjectTypeDesignSystem ProjectType = "design-system"
	ProjectTypeMarketing    ProjectType = "marketing"
)

// Strictness represents the analysis strictness level
type Strictness string

const (
	StrictnessRelaxed  Strictness = "relaxed"
	StrictnessStandard Strictness = "standard"
	StrictnessStrict   Strictness = "strict"
)

// ProjectPreset holds file collection presets for different project types
type ProjectPreset struct {
	ExcludePatterns []string
}

// StrictnessPreset holds threshold values for different strictness levels
type StrictnessPreset struct {
	MaxDepth      int
	MaxChildren   int
	DisabledRules []string
}

// GetProjectPresets returns presets for different project types
func GetProjectPresets() map[ProjectType]ProjectPreset {
	return map[ProjectType]ProjectPreset{
		ProjectTypeGeneric: {
			ExcludePatterns: []string{
				"node_modules/",
				"dist/",
				"build/",
				"*.backup.json",
			},
		},
		ProjectTypeDesignSystem: {
			ExcludePatterns: []string{
				"node_modules/",
				"dist/",
				"build/",
				"*.backup.json",
				"deprecated/",
			},
		},
		ProjectTypeMarketing: {
			ExcludePatterns: []string{
				"node_modules/",
				"dist/",
				"build/",
				"*.backup.json",
				"drafts/",
			},
		},
	}
}

// GetStrictnessPresets returns presets for different strictness levels
func GetStrictnessPresets() map[Strictness]StrictnessPreset {
	return map[Strictness]StrictnessPreset{
		StrictnessRelaxed: {
			MaxDepth:    12,
			MaxChildren: 80,
			DisabledRules: []string{
				"NON_SEMANTIC_NAME",
				"COMPONENT_NOT_USED",
			},
		},
		StrictnessStandard: {
			MaxDepth:    DefaultMaxDepth,
			MaxChildren: DefaultMaxChildren,
		},
		StrictnessStrict: {
			MaxDepth:    6,
			MaxChildren: 30,
		},
	}
}

// GetFullConfigTemplate returns the documented config template as YAML
func GetFullConfigTemplate(projectType ProjectType, strictness Strictness) string {
	projectPresets := GetProjectPresets()
	strictnessPresets := GetStrictnessPresets()

	preset := projectPresets[projectType]
	strict := strictnessPresets[strictness]

	return `# framelint configuration
# Documentation: https://github.com/framelint/framelint

# ==============================================================================
# RULE THRESHOLDS
# ==============================================================================
rules:
  # Deepest accepted frame nesting level (DEPTH_TOO_DEEP fires above it)
  max_depth: ` + strconv.Itoa(strict.MaxDepth) + `

  # Largest accepted direct-child count (LAYER_ABUSE fires above it)
  max_children: ` + strconv.Itoa(strict.MaxChildren) + `

  # Child count from which auto-layout frames must enable wrapping
  wrap_min_children: ` + strconv.Itoa(DefaultWrapMinChildren) + `

  # Largest child count allowed on a frame that hugs its content
  max_hug_children: ` + strconv.Itoa(DefaultMaxHugChildren) + `

  # Rule ids to skip entirely
  disabled:` + formatYAMLList(strict.DisabledRules, "    ") + `

# ==============================================================================
# OUTPUT SETTINGS
# ==============================================================================
output:
  # Output format: "text", "json", "yaml", "csv"
  format: text

  # Show the per-violation breakdown in text output
  show_details: true

  # Violation ordering: "severity", "category", "name"
  sort_by: severity

# ==============================================================================
# ANALYSIS SCOPE
# ==============================================================================
analysis:
  # Walk directories recursively when collecting design exports
  recursive: true

  # Gitignore-style patterns for files and directories to skip
  exclude_patterns:` + formatYAMLList(preset.ExcludePatterns, "    ") + `

  # Number of parallel workers (0 = auto-detect based on CPU)
  max_workers: 0
`
}

// GetMinimalConfigTemplate returns a minimal config template
func GetMinimalConfigTemplate() string {
	return `# framelint configuration (minimal)
# See full options: https://github.com/framelint/framelint

rules:
  max_depth: ` + strconv.Itoa(DefaultMaxDepth) + `
  max_children: ` + strconv.Itoa(DefaultMaxChildren) + `

output:
  format: text

analysis:
  exclude_patterns:
    - node_modules/
    - dist/
`
}

// formatYAMLList formats a string slice as an indented YAML sequence
func formatYAMLList(items []string, indent string) string {
	if len(items) == 0 {
		return " []"
	}

	result := ""
	for _, item := range items {
		result += "\n" + indent + "- \"" + item + "\""
	}
	return result
}
