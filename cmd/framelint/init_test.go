package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/framelint/framelint/internal/config"
)

func TestInitCommand_BasicConfigCreation(t *testing.T) {
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "framelint.yaml")

	cmd := initCmd()
	cmd.SetArgs([]string{"--config", configPath})
	err := cmd.Execute()
	if err != nil {
		t.Fatalf("init command failed: %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	// Verify content
	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	// Check for expected sections
	contentStr := string(content)
	expectedSections := []string{
		"rules:",
		"output:",
		"analysis:",
		"max_depth",
		"max_children",
		"exclude_patterns",
	}

	for _, section := range expectedSections {
		if !strings.Contains(contentStr, section) {
			t.Errorf("Config file missing expected section: %s", section)
		}
	}
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "framelint.yaml")

	// Create an existing file
	existingContent := []byte("existing: true\n")
	if err := os.WriteFile(configPath, existingContent, 0644); err != nil {
		t.Fatalf("Failed to create existing file: %v", err)
	}

	// Try to create without force - should fail
	cmd := initCmd()
	cmd.SetArgs([]string{"--config", configPath})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected error when file exists without --force")
	}

	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Expected 'already exists' error, got: %v", err)
	}

	// Now try with force - should succeed
	cmd = initCmd()
	cmd.SetArgs([]string{"--config", configPath, "--force"})
	err = cmd.Execute()
	if err != nil {
		t.Fatalf("init --force failed: %v", err)
	}

	// Verify file was overwritten
	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	if !strings.Contains(string(content), "rules:") {
		t.Error("Config file was not overwritten with new content")
	}
}

func TestInitCommand_MinimalConfig(t *testing.T) {
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "framelint.yaml")

	cmd := initCmd()
	cmd.SetArgs([]string{"--config", configPath, "--minimal"})
	err := cmd.Execute()
	if err != nil {
		t.Fatalf("init --minimal failed: %v", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	contentStr := string(content)

	if !strings.Contains(contentStr, "rules:") {
		t.Error("Minimal config missing rules section")
	}

	if !strings.Contains(contentStr, "analysis:") {
		t.Error("Minimal config missing analysis section")
	}

	// Minimal config should have the minimal comment
	if !strings.Contains(contentStr, "minimal") {
		t.Error("Minimal config should indicate it's minimal")
	}
}

func TestInitCommand_CustomOutputPath(t *testing.T) {
	tmpDir := t.TempDir()

	customPath := filepath.Join(tmpDir, "custom-config.yaml")

	cmd := initCmd()
	cmd.SetArgs([]string{"--config", customPath})
	err := cmd.Execute()
	if err != nil {
		t.Fatalf("init with custom path failed: %v", err)
	}

	if _, err := os.Stat(customPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created at custom path")
	}
}

func TestInitCommand_InvalidDirectory(t *testing.T) {
	cmd := initCmd()
	cmd.SetArgs([]string{"--config", "/nonexistent/directory/framelint.yaml"})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected error when directory doesn't exist")
	}

	if !strings.Contains(err.Error(), "directory does not exist") {
		t.Errorf("Expected 'directory does not exist' error, got: %v", err)
	}
}

func TestInitCommand_FullConfigSize(t *testing.T) {
	tmpDir := t.TempDir()

	fullPath := filepath.Join(tmpDir, "full.yaml")
	cmd := initCmd()
	cmd.SetArgs([]string{"--config", fullPath})
	err := cmd.Execute()
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}

	fullContent, _ := os.ReadFile(fullPath)

	minimalPath := filepath.Join(tmpDir, "minimal.yaml")
	cmd = initCmd()
	cmd.SetArgs([]string{"--config", minimalPath, "--minimal"})
	err = cmd.Execute()
	if err != nil {
		t.Fatalf("init --minimal failed: %v", err)
	}

	minimalContent, _ := os.ReadFile(minimalPath)

	// Full config should be larger than minimal
	if len(fullContent) <= len(minimalContent) {
		t.Error("Full config should be larger than minimal config")
	}
}

func TestGetFullConfigTemplate(t *testing.T) {
	tests := []struct {
		projectType  config.ProjectType
		strictness   config.Strictness
		wantDepth    string
		wantChildren string
		wantExclude  string
	}{
		{
			projectType:  config.ProjectTypeGeneric,
			strictness:   config.StrictnessStandard,
			wantDepth:    "max_depth: 8",
			wantChildren: "max_children: 50",
			wantExclude:  `- "node_modules/"`,
		},
		{
			projectType:  config.ProjectTypeDesignSystem,
			strictness:   config.StrictnessStrict,
			wantDepth:    "max_depth: 6",
			wantChildren: "max_children: 30",
			wantExclude:  `- "deprecated/"`,
		},
		{
			projectType:  config.ProjectTypeMarketing,
			strictness:   config.StrictnessRelaxed,
			wantDepth:    "max_depth: 12",
			wantChildren: "max_children: 80",
			wantExclude:  `- "drafts/"`,
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.projectType)+"_"+string(tt.strictness), func(t *testing.T) {
			template := config.GetFullConfigTemplate(tt.projectType, tt.strictness)

			if !strings.Contains(template, tt.wantDepth) {
				t.Errorf("Template missing expected max_depth: %s", tt.wantDepth)
			}

			if !strings.Contains(template, tt.wantChildren) {
				t.Errorf("Template missing expected max_children: %s", tt.wantChildren)
			}

			if !strings.Contains(template, tt.wantExclude) {
				t.Errorf("Template missing expected exclude pattern: %s", tt.wantExclude)
			}
		})
	}
}

func TestGetFullConfigTemplate_RelaxedDisablesRules(t *testing.T) {
	template := config.GetFullConfigTemplate(config.ProjectTypeGeneric, config.StrictnessRelaxed)

	if !strings.Contains(template, `- "NON_SEMANTIC_NAME"`) {
		t.Error("Relaxed template should disable NON_SEMANTIC_NAME")
	}
	if !strings.Contains(template, `- "COMPONENT_NOT_USED"`) {
		t.Error("Relaxed template should disable COMPONENT_NOT_USED")
	}

	standard := config.GetFullConfigTemplate(config.ProjectTypeGeneric, config.StrictnessStandard)
	if !strings.Contains(standard, "disabled: []") {
		t.Error("Standard template should have an empty disabled list")
	}
}

func TestGetMinimalConfigTemplate(t *testing.T) {
	template := config.GetMinimalConfigTemplate()

	requiredSections := []string{
		"rules:",
		"output:",
		"analysis:",
		"max_depth",
		"max_children",
		"exclude_patterns",
	}

	for _, section := range requiredSections {
		if !strings.Contains(template, section) {
			t.Errorf("Minimal template missing required section: %s", section)
		}
	}

	// Verify it's smaller than full template
	fullTemplate := config.GetFullConfigTemplate(config.ProjectTypeGeneric, config.StrictnessStandard)
	if len(template) >= len(fullTemplate) {
		t.Error("Minimal template should be smaller than full template")
	}
}

func TestProjectPresets(t *testing.T) {
	presets := config.GetProjectPresets()

	projectTypes := []config.ProjectType{
		config.ProjectTypeGeneric,
		config.ProjectTypeDesignSystem,
		config.ProjectTypeMarketing,
	}

	for _, pt := range projectTypes {
		preset, ok := presets[pt]
		if !ok {
			t.Errorf("Missing preset for project type: %s", pt)
			continue
		}

		if len(preset.ExcludePatterns) == 0 {
			t.Errorf("Project type %s has no exclude patterns", pt)
		}

		// All should exclude node_modules
		hasNodeModules := false
		for _, pattern := range preset.ExcludePatterns {
			if strings.Contains(pattern, "node_modules") {
				hasNodeModules = true
				break
			}
		}
		if !hasNodeModules {
			t.Errorf("Project type %s should exclude node_modules", pt)
		}
	}
}

func TestStrictnessPresets(t *testing.T) {
	presets := config.GetStrictnessPresets()

	strictnessLevels := []config.Strictness{
		config.StrictnessRelaxed,
		config.StrictnessStandard,
		config.StrictnessStrict,
	}

	for _, s := range strictnessLevels {
		preset, ok := presets[s]
		if !ok {
			t.Errorf("Missing preset for strictness: %s", s)
			continue
		}

		if preset.MaxDepth <= 0 {
			t.Errorf("Strictness %s has invalid maxDepth: %d", s, preset.MaxDepth)
		}

		if preset.MaxChildren <= 0 {
			t.Errorf("Strictness %s has invalid maxChildren: %d", s, preset.MaxChildren)
		}
	}

	// Verify strictness ordering (relaxed > standard > strict thresholds)
	relaxed := presets[config.StrictnessRelaxed]
	standard := presets[config.StrictnessStandard]
	strict := presets[config.StrictnessStrict]

	if relaxed.MaxDepth <= standard.MaxDepth {
		t.Error("Relaxed should have higher thresholds than standard")
	}

	if standard.MaxDepth <= strict.MaxDepth {
		t.Error("Standard should have higher thresholds than strict")
	}

	// Only relaxed disables rules
	if len(relaxed.DisabledRules) == 0 {
		t.Error("Relaxed mode should disable noisy rules")
	}
	if len(strict.DisabledRules) != 0 {
		t.Error("Strict mode should not disable any rules")
	}
}

func TestConfigTemplateHasComments(t *testing.T) {
	template := config.GetFullConfigTemplate(config.ProjectTypeGeneric, config.StrictnessStandard)

	if !strings.Contains(template, "#") {
		t.Error("Full template should contain YAML comments")
	}

	expectedComments := []string{
		"RULE THRESHOLDS",
		"OUTPUT SETTINGS",
		"ANALYSIS SCOPE",
		"github.com/framelint/framelint",
	}

	for _, comment := range expectedComments {
		if !strings.Contains(template, comment) {
			t.Errorf("Template missing expected comment/section: %s", comment)
		}
	}
}

func TestInitCmd_FlagsExist(t *testing.T) {
	cmd := initCmd()

	expectedFlags := []string{"config", "force", "minimal", "interactive"}
	for _, flagName := range expectedFlags {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("Missing expected flag: --%s", flagName)
		}
	}

	shortFlags := map[string]string{
		"c": "config",
		"f": "force",
		"i": "interactive",
	}

	for short, long := range shortFlags {
		flag := cmd.Flags().ShorthandLookup(short)
		if flag == nil {
			t.Errorf("Missing short flag -%s for --%s", short, long)
		}
	}
}

func TestInitCmd_DefaultConfigPath(t *testing.T) {
	cmd := initCmd()

	configFlag := cmd.Flags().Lookup("config")
	if configFlag == nil {
		t.Fatal("config flag not found")
	}

	if configFlag.DefValue != "framelint.yaml" {
		t.Errorf("Expected default config path to be 'framelint.yaml', got '%s'", configFlag.DefValue)
	}
}
