package analyzer

import (
	"regexp"
	"strings"
)

// Name predicates are pure functions over the name string and fixed
// pattern tables. They carry no state beyond the compiled patterns.

// nonSemanticDefaults matches the design tool's auto-generated layer names
// ("Frame 123", "Group 7", bare "Rectangle", ...)
var nonSemanticDefaults = regexp.MustCompile(`^(Frame|Group|Rectangle|Ellipse|Line|Vector|Polygon|Star|Component|Instance)\s*\d*$`)

// kebabCaseName matches multi-word kebab-case names like "hero-section"
var kebabCaseName = regexp.MustCompile(`^[a-z][a-z0-9]*(?:-[a-z0-9]+)+$`)

// rolePrefixedName matches names starting with a recognized UI role,
// optionally followed by a separator and qualifier ("Button/Primary",
// "card_compact", "Nav Desktop")
var rolePrefixedName = regexp.MustCompile(`(?i)^(button|btn|card|nav|navbar|header|footer|hero|section|sidebar|form|input|select|list|item|label|badge|tag|chip|modal|dialog|banner|avatar|icon|menu|tab|table|grid|row|col|container|wrapper|content|title|text)([-_/ ].*)?$`)

// interactiveElementName matches names of interactive elements expected to
// carry a minimum width
var interactiveElementName = regexp.MustCompile(`(?i)(^|[-_/ ])(button|btn|card|input|select)([-_/ ]|$)`)

// reusableElementName matches names that suggest the node should be a
// component rather than a plain frame
var reusableElementName = regexp.MustCompile(`(?i)(^|[-_/ ])(button|btn|card|item|tag|badge|chip)([-_/ ]|$)`)

// IsSemanticName reports whether a layer name communicates a UI role:
// either role-prefixed or kebab-case, and not an auto-generated default
func IsSemanticName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false
	}
	if nonSemanticDefaults.MatchString(trimmed) {
		return false
	}
	return rolePrefixedName.MatchString(trimmed) || kebabCaseName.MatchString(trimmed)
}

// IsInteractiveElementName reports whether the name suggests an interactive
// element (button/card/input/select)
func IsInteractiveElementName(name string) bool {
	return interactiveElementName.MatchString(name)
}

// IsReusableElementName reports whether the name matches the
// reusable-component heuristic (button/card/item/tag/badge/chip)
func IsReusableElementName(name string) bool {
	return reusableElementName.MatchString(name)
}
