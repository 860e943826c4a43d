package domain

// NodeType represents the type of a design node as exported by the design tool
type NodeType string

const (
	// NodeTypeDocument is the top-level document node
	NodeTypeDocument NodeType = "DOCUMENT"

	// NodeTypeCanvas is a page/canvas node directly under the document
	NodeTypeCanvas NodeType = "CANVAS"

	// NodeTypeFrame is a container node that can carry auto-layout
	NodeTypeFrame NodeType = "FRAME"

	// NodeTypeGroup is a plain grouping node without layout behavior
	NodeTypeGroup NodeType = "GROUP"

	// NodeTypeVector is a vector shape node
	NodeTypeVector NodeType = "VECTOR"

	// NodeTypeRectangle is a rectangle shape node
	NodeTypeRectangle NodeType = "RECTANGLE"

	// NodeTypeText is a text node
	NodeTypeText NodeType = "TEXT"

	// NodeTypeComponent is a reusable component definition
	NodeTypeComponent NodeType = "COMPONENT"

	// NodeTypeInstance is an instance of a component
	NodeTypeInstance NodeType = "INSTANCE"
)

// LayoutMode represents a node's auto-layout arrangement mode
type LayoutMode string

const (
	LayoutModeNone       LayoutMode = "NONE"
	LayoutModeHorizontal LayoutMode = "HORIZONTAL"
	LayoutModeVertical   LayoutMode = "VERTICAL"
)

// LayoutWrap represents whether auto-layout children reflow onto new lines
type LayoutWrap string

const (
	LayoutWrapNone LayoutWrap = "NO_WRAP"
	LayoutWrapWrap LayoutWrap = "WRAP"
)

// SizingMode represents an axis sizing mode ("FIXED" = explicit size,
// "AUTO" = hug contents)
type SizingMode string

const (
	SizingModeFixed SizingMode = "FIXED"
	SizingModeAuto  SizingMode = "AUTO"
)

// ConstraintType represents a positioning constraint relative to the parent
type ConstraintType string

const (
	ConstraintMin     ConstraintType = "MIN"
	ConstraintCenter  ConstraintType = "CENTER"
	ConstraintMax     ConstraintType = "MAX"
	ConstraintStretch ConstraintType = "STRETCH"
	ConstraintScale   ConstraintType = "SCALE"
)

// BoundingBox is a node's absolute bounding box in canvas coordinates
type BoundingBox struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Constraints holds a node's horizontal and vertical positioning constraints
type Constraints struct {
	Horizontal ConstraintType `json:"horizontal" yaml:"horizontal"`
	Vertical   ConstraintType `json:"vertical" yaml:"vertical"`
}

// DesignNode is a single node in a design document tree.
//
// The tree is strictly parent-owned: children are reachable only through
// their parent and no reverse pointers are stored. Analysis code treats the
// tree as read-only and derives parent relations on its own.
type DesignNode struct {
	// ID uniquely identifies the node within a document
	ID string `json:"id" yaml:"id"`

	// Name is the user-assigned layer name
	Name string `json:"name" yaml:"name"`

	// Type is the node type (FRAME, TEXT, COMPONENT, ...)
	Type NodeType `json:"type" yaml:"type"`

	// Children are the ordered child nodes, owned by this node
	Children []*DesignNode `json:"children,omitempty" yaml:"children,omitempty"`

	// LayoutMode is the auto-layout direction (NONE, HORIZONTAL, VERTICAL)
	LayoutMode LayoutMode `json:"layoutMode,omitempty" yaml:"layout_mode,omitempty"`

	// LayoutWrap controls child reflow in auto-layout containers
	LayoutWrap LayoutWrap `json:"layoutWrap,omitempty" yaml:"layout_wrap,omitempty"`

	// PrimaryAxisSizingMode is the sizing mode along the layout direction
	PrimaryAxisSizingMode SizingMode `json:"primaryAxisSizingMode,omitempty" yaml:"primary_axis_sizing_mode,omitempty"`

	// CounterAxisSizingMode is the sizing mode across the layout direction
	CounterAxisSizingMode SizingMode `json:"counterAxisSizingMode,omitempty" yaml:"counter_axis_sizing_mode,omitempty"`

	// ItemSpacing is the gap between auto-layout children
	ItemSpacing float64 `json:"itemSpacing,omitempty" yaml:"item_spacing,omitempty"`

	PaddingLeft   float64 `json:"paddingLeft,omitempty" yaml:"padding_left,omitempty"`
	PaddingRight  float64 `json:"paddingRight,omitempty" yaml:"padding_right,omitempty"`
	PaddingTop    float64 `json:"paddingTop,omitempty" yaml:"padding_top,omitempty"`
	PaddingBottom float64 `json:"paddingBottom,omitempty" yaml:"padding_bottom,omitempty"`

	// MinWidth is the explicit minimum width, 0 when unset
	MinWidth float64 `json:"minWidth,omitempty" yaml:"min_width,omitempty"`

	// AbsoluteBoundingBox is the node's absolute position and size
	AbsoluteBoundingBox *BoundingBox `json:"absoluteBoundingBox,omitempty" yaml:"absolute_bounding_box,omitempty"`

	// Constraints are the node's positioning constraints
	Constraints *Constraints `json:"constraints,omitempty" yaml:"constraints,omitempty"`
}

// HasAutoLayout reports whether the node has an auto-layout mode set
func (n *DesignNode) HasAutoLayout() bool {
	return n.LayoutMode == LayoutModeHorizontal || n.LayoutMode == LayoutModeVertical
}

// IsFrame reports whether the node is a frame container
func (n *DesignNode) IsFrame() bool {
	return n.Type == NodeTypeFrame
}

// IsComponentLike reports whether the node is a component or an instance
func (n *DesignNode) IsComponentLike() bool {
	return n.Type == NodeTypeComponent || n.Type == NodeTypeInstance
}

// UsesScaleConstraints reports whether either constraint axis uses
// scale-based positioning
func (n *DesignNode) UsesScaleConstraints() bool {
	if n.Constraints == nil {
		return false
	}
	return n.Constraints.Horizontal == ConstraintScale || n.Constraints.Vertical == ConstraintScale
}

// ChildCount returns the number of direct children
func (n *DesignNode) ChildCount() int {
	return len(n.Children)
}
