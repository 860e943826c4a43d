package analyzer

// Default rule thresholds
const (
	// DefaultMaxDepth is the deepest nesting level accepted before
	// DEPTH_TOO_DEEP fires
	DefaultMaxDepth = 8

	// DefaultMaxChildren is the largest direct-child count accepted before
	// LAYER_ABUSE fires
	DefaultMaxChildren = 50

	// DefaultWrapMinChildren is the child count from which WRAP_OFF
	// expects wrapping to be enabled
	DefaultWrapMinChildren = 3

	// DefaultMaxHugChildren is the largest child count for which
	// HUG_FILL_VIOLATION still accepts primary-axis hugging
	DefaultMaxHugChildren = 3
)

// CatalogueConfig holds the tunable rule thresholds and the set of
// disabled rule ids
type CatalogueConfig struct {
	MaxDepth        int
	MaxChildren     int
	WrapMinChildren int
	MaxHugChildren  int
	DisabledRules   []string
}

// DefaultCatalogueConfig returns the baseline thresholds
func DefaultCatalogueConfig() CatalogueConfig {
	return CatalogueConfig{
		MaxDepth:        DefaultMaxDepth,
		MaxChildren:     DefaultMaxChildren,
		WrapMinChildren: DefaultWrapMinChildren,
		MaxHugChildren:  DefaultMaxHugChildren,
	}
}

// NewCatalogue builds the fixed, ordered rule set. Rules are independent
// and order-insensitive; the order here only controls presentation. The
// returned slice and every rule in it are immutable after construction and
// safe to share across concurrent analyses.
func NewCatalogue(cfg CatalogueConfig) []Rule {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.MaxChildren <= 0 {
		cfg.MaxChildren = DefaultMaxChildren
	}
	if cfg.WrapMinChildren <= 0 {
		cfg.WrapMinChildren = DefaultWrapMinChildren
	}
	if cfg.MaxHugChildren <= 0 {
		cfg.MaxHugChildren = DefaultMaxHugChildren
	}

	all := []Rule{
		NewAutoLayoutRequiredRule(),
		NewAbsolutePositioningRule(),
		NewFixedSizeRule(),
		NewWrapOffRule(cfg.WrapMinChildren),
		NewNonSemanticNameRule(),
		NewDepthTooDeepRule(cfg.MaxDepth),
		NewHugFillRule(cfg.MaxHugChildren),
		NewMinWidthRule(),
		NewComponentNotUsedRule(),
		NewLayerAbuseRule(cfg.MaxChildren),
	}

	if len(cfg.DisabledRules) == 0 {
		return all
	}

	disabled := make(map[string]bool, len(cfg.DisabledRules))
	for _, id := range cfg.DisabledRules {
		disabled[id] = true
	}

	rules := make([]Rule, 0, len(all))
	for _, rule := range all {
		if !disabled[rule.Definition().ID] {
			rules = append(rules, rule)
		}
	}
	return rules
}
