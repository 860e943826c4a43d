// Package testutil provides helper functions for testing framelint components
package testutil

import (
	"fmt"
	"testing"

	"github.com/framelint/framelint/domain"
)

// Frame creates a frame node with the given id, name, and children
func Frame(id, name string, children ...*domain.DesignNode) *domain.DesignNode {
	return &domain.DesignNode{
		ID:       id,
		Name:     name,
		Type:     domain.NodeTypeFrame,
		Children: children,
	}
}

// AutoLayoutFrame creates a frame with the given auto-layout direction
func AutoLayoutFrame(id, name string, mode domain.LayoutMode, children ...*domain.DesignNode) *domain.DesignNode {
	node := Frame(id, name, children...)
	node.LayoutMode = mode
	node.PrimaryAxisSizingMode = domain.SizingModeAuto
	node.CounterAxisSizingMode = domain.SizingModeAuto
	return node
}

// ConformantFrame creates a frame that passes every baseline rule: vertical
// auto-layout, wrap enabled, semantic kebab-case name, non-scale constraints
func ConformantFrame(id, name string, children ...*domain.DesignNode) *domain.DesignNode {
	node := AutoLayoutFrame(id, name, domain.LayoutModeVertical, children...)
	node.LayoutWrap = domain.LayoutWrapWrap
	node.Constraints = &domain.Constraints{
		Horizontal: domain.ConstraintMin,
		Vertical:   domain.ConstraintMin,
	}
	return node
}

// TextNode creates a text node
func TextNode(id, name string) *domain.DesignNode {
	return &domain.DesignNode{ID: id, Name: name, Type: domain.NodeTypeText}
}

// ComponentNode creates a component node
func ComponentNode(id, name string, children ...*domain.DesignNode) *domain.DesignNode {
	return &domain.DesignNode{
		ID:       id,
		Name:     name,
		Type:     domain.NodeTypeComponent,
		Children: children,
	}
}

// NestedFrames creates a chain of conformant frames with the given depth,
// returning the root. Each level holds exactly one child frame; ids are
// "n0" through "n<depth>".
func NestedFrames(depth int) *domain.DesignNode {
	node := ConformantFrame(fmt.Sprintf("n%d", depth), fmt.Sprintf("level-%d", depth))
	for i := depth - 1; i >= 0; i-- {
		node = ConformantFrame(fmt.Sprintf("n%d", i), fmt.Sprintf("level-%d", i), node)
	}
	return node
}

// WideFrame creates a conformant frame with n leaf text children
func WideFrame(id, name string, n int) *domain.DesignNode {
	children := make([]*domain.DesignNode, n)
	for i := 0; i < n; i++ {
		children[i] = TextNode(fmt.Sprintf("%s-c%d", id, i), fmt.Sprintf("text-%d", i))
	}
	return ConformantFrame(id, name, children...)
}

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertEqual fails the test if expected != actual
func AssertEqual(t *testing.T, expected, actual any) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}

// AssertTrue fails the test if condition is false
func AssertTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Error(msg)
	}
}

// AssertFalse fails the test if condition is true
func AssertFalse(t *testing.T, condition bool, msg string) {
	t.Helper()
	if condition {
		t.Error(msg)
	}
}
