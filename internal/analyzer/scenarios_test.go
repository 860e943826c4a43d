package analyzer

import (
	"testing"

	"github.com/framelint/framelint/domain"
	"github.com/framelint/framelint/internal/testutil"
)

// End-to-end scenarios: engine and calculator run back to back the way the
// analysis service drives them.

func analyzeTree(t *testing.T, root *domain.DesignNode) domain.AnalysisSummary {
	t.Helper()
	engine := NewRuleEngine(NewCatalogue(DefaultCatalogueConfig()))
	calc := NewScoreCalculator()
	return calc.Calculate(engine.Analyze(root))
}

func ruleIDs(summary domain.AnalysisSummary) map[string]int {
	ids := make(map[string]int)
	for _, v := range summary.Violations {
		ids[v.RuleID]++
	}
	return ids
}

func TestScenario_BareHeroFrame(t *testing.T) {
	// Single frame, no auto-layout, no children: both critical layout
	// rules fire and the code gate closes
	root := testutil.Frame("f1", "Hero")

	summary := analyzeTree(t, root)
	ids := ruleIDs(summary)

	if ids["AUTO_LAYOUT_REQUIRED"] != 1 {
		t.Error("AUTO_LAYOUT_REQUIRED should fire")
	}
	if ids["ABSOLUTE_POSITIONING"] != 1 {
		t.Error("ABSOLUTE_POSITIONING should fire")
	}
	if len(summary.Violations) != 2 {
		t.Errorf("Expected exactly 2 violations, got %d: %v", len(summary.Violations), ids)
	}

	var layout domain.CategoryScore
	for _, cs := range summary.CategoryScores {
		if cs.Category == domain.CategoryLayout {
			layout = cs
		}
	}
	if layout.Score != 0 {
		t.Errorf("Expected layout score 0, got %d", layout.Score)
	}
	if summary.OverallScore >= 90 {
		t.Errorf("Expected overall < 90, got %d", summary.OverallScore)
	}
	if summary.CanGenerateCode {
		t.Error("Code gate must be closed")
	}
}

func TestScenario_WrapDisabledRow(t *testing.T) {
	// Horizontal auto-layout with 4 conformant children and wrap off:
	// only WRAP_OFF fires and the perfect score is gone
	row := testutil.AutoLayoutFrame("row", "gallery-row", domain.LayoutModeHorizontal,
		testutil.ConformantFrame("c1", "step-one"),
		testutil.ConformantFrame("c2", "step-two"),
		testutil.ConformantFrame("c3", "step-three"),
		testutil.ConformantFrame("c4", "step-four"),
	)
	row.LayoutWrap = domain.LayoutWrapNone

	summary := analyzeTree(t, row)
	ids := ruleIDs(summary)

	if ids["WRAP_OFF"] != 1 {
		t.Error("WRAP_OFF should fire")
	}
	if len(summary.Violations) != 1 {
		t.Errorf("Expected only WRAP_OFF, got %v", ids)
	}
	if summary.OverallScore >= 100 {
		t.Errorf("Expected overall < 100, got %d", summary.OverallScore)
	}
	if !summary.CanGenerateCode {
		t.Errorf("A single major violation over 5 frames should keep the code gate open (score %d)", summary.OverallScore)
	}
	if summary.CanUseGridLayout {
		t.Error("Grid gate must be closed")
	}
}

func TestScenario_DefaultFrameName(t *testing.T) {
	// "Frame 12" with auto-layout and few children: only the naming rule
	// fires, with minimal score impact
	root := testutil.ConformantFrame("f1", "Frame 12",
		testutil.ConformantFrame("c1", "content-area"),
	)

	summary := analyzeTree(t, root)
	ids := ruleIDs(summary)

	if ids["NON_SEMANTIC_NAME"] != 1 {
		t.Error("NON_SEMANTIC_NAME should fire")
	}
	if len(summary.Violations) != 1 {
		t.Errorf("Expected only NON_SEMANTIC_NAME, got %v", ids)
	}
	if !summary.CanGenerateCode {
		t.Errorf("A single minor violation should keep the code gate open (score %d)", summary.OverallScore)
	}
}

func TestScenario_DeepNesting(t *testing.T) {
	// A frame at depth 9 under otherwise conformant ancestors
	root := testutil.NestedFrames(9)

	summary := analyzeTree(t, root)
	ids := ruleIDs(summary)

	if ids["DEPTH_TOO_DEEP"] != 1 {
		t.Errorf("DEPTH_TOO_DEEP should fire exactly once, got %v", ids)
	}
	for _, v := range summary.Violations {
		if v.RuleID == "DEPTH_TOO_DEEP" && v.FrameID != "n9" {
			t.Errorf("Expected the depth violation on n9, got %s", v.FrameID)
		}
	}
}

func TestScenario_FullyConformantTree(t *testing.T) {
	root := testutil.ConformantFrame("root", "page-root",
		testutil.ConformantFrame("a", "hero-section",
			testutil.TextNode("t1", "headline"),
		),
		testutil.ConformantFrame("b", "content-area"),
	)

	summary := analyzeTree(t, root)

	if len(summary.Violations) != 0 {
		t.Fatalf("Expected no violations, got %v", ruleIDs(summary))
	}
	if summary.OverallScore != 100 {
		t.Errorf("Expected 100, got %d", summary.OverallScore)
	}
	if !summary.CanGenerateCode || !summary.CanUseGridLayout {
		t.Error("Both gates must be open")
	}
	if summary.Grade != domain.GradeS {
		t.Errorf("Expected grade S, got %s", summary.Grade)
	}
	if summary.Label != "perfect" {
		t.Errorf("Expected label 'perfect', got %q", summary.Label)
	}
}

func TestScenario_MinWidthAndComponentHeuristics(t *testing.T) {
	// An interactive-named frame without a minimum width fires only
	// MIN_WIDTH_MISSING (input/select are not in the reusable list)
	input := testutil.ConformantFrame("f1", "input-email")

	summary := analyzeTree(t, input)
	ids := ruleIDs(summary)
	if ids["MIN_WIDTH_MISSING"] != 1 || len(summary.Violations) != 1 {
		t.Errorf("Expected only MIN_WIDTH_MISSING, got %v", ids)
	}

	// A reusable-named plain frame fires only COMPONENT_NOT_USED
	// (tag/item/badge/chip are not in the interactive list)
	tag := testutil.ConformantFrame("f2", "tag-label")

	summary = analyzeTree(t, tag)
	ids = ruleIDs(summary)
	if ids["COMPONENT_NOT_USED"] != 1 || len(summary.Violations) != 1 {
		t.Errorf("Expected only COMPONENT_NOT_USED, got %v", ids)
	}

	// Names in both lists (button/card) fire both minor rules
	button := testutil.ConformantFrame("f3", "button-primary")

	summary = analyzeTree(t, button)
	ids = ruleIDs(summary)
	if ids["MIN_WIDTH_MISSING"] != 1 || ids["COMPONENT_NOT_USED"] != 1 {
		t.Errorf("Expected both minor rules for a button frame, got %v", ids)
	}
}
