package analyzer

import (
	"log"

	"github.com/framelint/framelint/domain"
)

// MaxDepthIterations caps the number of parent hops during depth
// computation. Trees deeper than this report a clamped under-count
// rather than failing the analysis.
const MaxDepthIterations = 100

// CheckContext carries the per-node evaluation context handed to rules.
// It is ephemeral: built fresh for each node visited and discarded after
// the node's rules have run.
type CheckContext struct {
	// Depth is the node's distance from the root (0 for the root itself),
	// clamped at MaxDepthIterations
	Depth int

	// Parent is the resolved parent node, nil for the root.
	// This is a derived relation, not ownership.
	Parent *domain.DesignNode

	// Root is the root of the tree under analysis
	Root *domain.DesignNode

	// AllNodes is the flattened node list for ancestry queries
	AllNodes []*domain.DesignNode
}

// ContextBuilder flattens trees and resolves ancestry for rule evaluation.
// A single builder is stateless and safe for concurrent use; the per-analysis
// parent index is built and owned by the caller.
type ContextBuilder struct {
	logger *log.Logger
}

// NewContextBuilder creates a new ContextBuilder
func NewContextBuilder() *ContextBuilder {
	return &ContextBuilder{}
}

// SetLogger sets an optional logger for depth-cap warnings
func (b *ContextBuilder) SetLogger(logger *log.Logger) {
	b.logger = logger
}

// Flatten returns every node of the tree exactly once in depth-first
// pre-order, root first. Nodes whose id was already visited are skipped,
// so traversal terminates even on malformed input that aliases a node
// under multiple parents.
func (b *ContextBuilder) Flatten(root *domain.DesignNode) []*domain.DesignNode {
	if root == nil {
		return nil
	}

	visited := make(map[string]bool)
	var nodes []*domain.DesignNode

	var walk func(node *domain.DesignNode)
	walk = func(node *domain.DesignNode) {
		if node == nil || visited[node.ID] {
			return
		}
		visited[node.ID] = true
		nodes = append(nodes, node)
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(root)

	return nodes
}

// BuildParentIndex builds a child-id to parent map in one pass over the
// flattened list. Depth and parent lookups against the index are O(1)
// instead of a repeated scan of all nodes.
func (b *ContextBuilder) BuildParentIndex(nodes []*domain.DesignNode) map[string]*domain.DesignNode {
	index := make(map[string]*domain.DesignNode, len(nodes))
	for _, node := range nodes {
		for _, child := range node.Children {
			if child == nil {
				continue
			}
			if _, seen := index[child.ID]; !seen {
				index[child.ID] = node
			}
		}
	}
	return index
}

// ResolveParent returns the first node whose direct children contain the
// target by id, or nil when the target is the root or unknown. This is the
// index-free fallback; the analysis path uses BuildParentIndex instead.
func (b *ContextBuilder) ResolveParent(node *domain.DesignNode, allNodes []*domain.DesignNode) *domain.DesignNode {
	if node == nil {
		return nil
	}
	for _, candidate := range allNodes {
		for _, child := range candidate.Children {
			if child != nil && child.ID == node.ID {
				return candidate
			}
		}
	}
	return nil
}

// ComputeDepth walks the parent index from the node up to the root,
// counting hops. The walk is capped at MaxDepthIterations; on overflow the
// clamped count is returned and a warning is logged. An under-count for a
// pathologically deep tree is a deliberate safety valve, not an error.
func (b *ContextBuilder) ComputeDepth(node, root *domain.DesignNode, parentIndex map[string]*domain.DesignNode) int {
	if node == nil || root == nil || node.ID == root.ID {
		return 0
	}

	depth := 0
	current := node
	for current != nil && current.ID != root.ID {
		if depth >= MaxDepthIterations {
			b.logf("depth computation capped at %d iterations for node %s", MaxDepthIterations, node.ID)
			break
		}
		current = parentIndex[current.ID]
		depth++
	}
	return depth
}

// BuildContext assembles the CheckContext for one node
func (b *ContextBuilder) BuildContext(node, root *domain.DesignNode, allNodes []*domain.DesignNode, parentIndex map[string]*domain.DesignNode) *CheckContext {
	return &CheckContext{
		Depth:    b.ComputeDepth(node, root, parentIndex),
		Parent:   parentIndex[node.ID],
		Root:     root,
		AllNodes: allNodes,
	}
}

func (b *ContextBuilder) logf(format string, args ...interface{}) {
	if b.logger != nil {
		b.logger.Printf(format, args...)
	}
}
