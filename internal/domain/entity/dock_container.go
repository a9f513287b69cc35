package entity

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
)

// Attach and detach precondition failures. The container methods report
// them as nil/false results; ValidateAttach and ValidateDetach expose the
// reason.
var (
	ErrNilWidget         = errors.New("widget is nil")
	ErrWidgetDocked      = errors.New("widget is already docked")
	ErrWidgetNotDocked   = errors.New("widget is not docked")
	ErrContainerMismatch = errors.New("widget belongs to another dock container")
	ErrNilLeaf           = errors.New("leaf is nil")
	ErrNotLeaf           = errors.New("node is not a leaf")
	ErrNodeNotOwned      = errors.New("node does not belong to this dock container")
)

const (
	// DefaultSplitRatio is the ratio used when splitting a leaf without an explicit one.
	DefaultSplitRatio = 0.5
	// DefaultMinSplitRatio keeps both children of a split from collapsing to zero size.
	DefaultMinSplitRatio = 0.05
	// DefaultSplitterWidth is the hit-test width of a splitter strip.
	DefaultSplitterWidth = 8.0
)

// IDGenerator produces unique node and container ids.
type IDGenerator func() string

// DockContainerOption configures a DockContainer at construction.
type DockContainerOption func(*DockContainer)

// WithIDGenerator sets the id source for the container and its nodes.
func WithIDGenerator(gen IDGenerator) DockContainerOption {
	return func(c *DockContainer) {
		if gen != nil {
			c.newID = gen
		}
	}
}

// WithMinSplitRatio sets the clamp margin applied to every split ratio.
// Values outside [0, 0.5) are ignored.
func WithMinSplitRatio(eps float64) DockContainerOption {
	return func(c *DockContainer) {
		if eps >= 0 && eps < 0.5 {
			c.minRatio = eps
		}
	}
}

// DockContainer owns a dock tree and is the only code allowed to edit it.
// The root is never nil; a fresh container holds a single empty leaf.
type DockContainer struct {
	id       string
	name     string
	root     *DockNode
	bounds   Rect
	newID    IDGenerator
	minRatio float64
	drag     splitterDrag
}

// NewDockContainer creates a container with a single empty root leaf.
func NewDockContainer(name string, opts ...DockContainerOption) *DockContainer {
	c := &DockContainer{
		name:     name,
		newID:    sequentialIDs(name),
		minRatio: DefaultMinSplitRatio,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.id = c.newID()
	c.root = newLeafNode(c.newID(), nil)
	return c
}

// idSeq is shared by every container so default ids never collide.
var idSeq atomic.Uint64

func sequentialIDs(prefix string) IDGenerator {
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, idSeq.Add(1))
	}
}

// ID returns the unique container id written into widget back-references.
func (c *DockContainer) ID() string {
	return c.id
}

// Name returns the name widgets declare to dock into this container.
func (c *DockContainer) Name() string {
	return c.name
}

// Root returns the tree root.
func (c *DockContainer) Root() *DockNode {
	return c.root
}

// Bounds returns the container's desktop rectangle.
func (c *DockContainer) Bounds() Rect {
	return c.bounds
}

// MinSplitRatio returns the clamp margin for split ratios.
func (c *DockContainer) MinSplitRatio() float64 {
	return c.minRatio
}

// SetBounds moves or resizes the container and repropagates geometry.
func (c *DockContainer) SetBounds(r Rect) {
	c.bounds = r
	c.UpdateDocks()
}

// UpdateDocks re-runs the geometry pass from the container's rectangle.
func (c *DockContainer) UpdateDocks() {
	c.root.updateRect(c.bounds)
}

// Owns reports whether node is part of this container's tree.
func (c *DockContainer) Owns(node *DockNode) bool {
	if node == nil {
		return false
	}
	return node == c.root || c.root.FindParent(node) != nil
}

// Parent returns the parent of node, or nil for the root or a foreign node.
func (c *DockContainer) Parent(node *DockNode) *DockNode {
	return c.root.FindParent(node)
}

// Widgets returns every docked widget in depth-first, left-to-right order.
func (c *DockContainer) Widgets() []DockWidget {
	return c.root.AppendWidgets(nil)
}

// Leaves returns every leaf in depth-first, left-to-right order.
func (c *DockContainer) Leaves() []*DockNode {
	var leaves []*DockNode
	c.root.Walk(func(node *DockNode) bool {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
		return true
	})
	return leaves
}

// Walk traverses the whole tree depth-first, child 0 before child 1.
func (c *DockContainer) Walk(fn func(*DockNode) bool) {
	c.root.Walk(fn)
}

// LeafCount returns the number of leaves in the tree.
func (c *DockContainer) LeafCount() int {
	return c.root.LeafCount()
}

// TraceLeaf returns the leaf under (x, y), or nil outside the container.
func (c *DockContainer) TraceLeaf(x, y float64) *DockNode {
	return c.root.TraceLeaf(x, y)
}

// TraceSeparator returns the split whose splitter strip of the given width
// contains (x, y).
func (c *DockContainer) TraceSeparator(x, y, width float64) *DockNode {
	return c.root.TraceSeparator(x, y, width)
}

// ValidateAttach reports why AttachWidget would refuse widget on leaf.
func (c *DockContainer) ValidateAttach(widget DockWidget, leaf *DockNode) error {
	if widget == nil {
		return ErrNilWidget
	}
	if widget.DockState().IsDocked() {
		return ErrWidgetDocked
	}
	if widget.DockContainerName() != c.name {
		return ErrContainerMismatch
	}
	if leaf == nil {
		return ErrNilLeaf
	}
	if !leaf.IsLeaf() {
		return ErrNotLeaf
	}
	if !c.Owns(leaf) {
		return ErrNodeNotOwned
	}
	return nil
}

// AttachWidget docks widget into leaf. A center zone or an empty leaf puts
// the widget in the leaf itself, undocking any previous occupant. A
// directional zone on an occupied leaf turns the leaf into a split whose
// near child receives the widget and whose far child keeps the occupant.
// Returns the leaf now holding widget, or nil if a precondition failed.
func (c *DockContainer) AttachWidget(widget DockWidget, leaf *DockNode, zone DockZone, ratio float64) *DockNode {
	if err := c.ValidateAttach(widget, leaf); err != nil {
		return nil
	}

	lp := leaf.leaf()
	layout, directional := zoneSplits[zone]
	if !directional || lp.widget == nil {
		if previous := lp.widget; previous != nil {
			previous.DockState().clear()
		}
		lp.widget = widget
		widget.DockState().bind(leaf, c.id)
		leaf.refresh()
		return leaf
	}

	occupant := lp.widget
	near, far := layout.near, 1-layout.near

	var children [2]*DockNode
	children[near] = newLeafNode(c.newID(), widget)
	children[far] = newLeafNode(c.newID(), occupant)
	leaf.setPayload(&splitPayload{
		axis:     layout.kind,
		ratio:    c.clampRatio(ratio),
		children: children,
	})

	widget.DockState().bind(children[near], c.id)
	occupant.DockState().bind(children[far], c.id)
	leaf.refresh()
	return children[near]
}

// ValidateDetach reports why DetachWidget would refuse widget.
func (c *DockContainer) ValidateDetach(widget DockWidget) error {
	if widget == nil {
		return ErrNilWidget
	}
	state := widget.DockState()
	if !state.IsDocked() {
		return ErrWidgetNotDocked
	}
	if state.ContainerID() != c.id {
		return ErrContainerMismatch
	}
	return c.validateLeaf(state.Leaf())
}

func (c *DockContainer) validateLeaf(leaf *DockNode) error {
	if leaf == nil {
		return ErrNilLeaf
	}
	if !leaf.IsLeaf() {
		return ErrNotLeaf
	}
	if !c.Owns(leaf) {
		return ErrNodeNotOwned
	}
	return nil
}

// DetachWidget undocks widget and compacts the tree around its leaf.
func (c *DockContainer) DetachWidget(widget DockWidget) bool {
	if err := c.ValidateDetach(widget); err != nil {
		return false
	}
	_, ok := c.DetachLeaf(widget.DockState().Leaf())
	return ok
}

// DetachLeaf removes leaf from the tree and returns its former occupant.
// The root leaf is emptied in place. Any other leaf's parent adopts the
// sibling's payload, so no split is ever left with a single child.
func (c *DockContainer) DetachLeaf(leaf *DockNode) (DockWidget, bool) {
	if err := c.validateLeaf(leaf); err != nil {
		return nil, false
	}

	widget := leaf.Widget()
	if widget != nil {
		widget.DockState().clear()
	}

	parent := c.root.FindParent(leaf)
	if parent == nil {
		leaf.setPayload(&leafPayload{})
		leaf.refresh()
		return widget, true
	}

	first, second := parent.split().mustChildren()
	sibling := first
	if sibling == leaf {
		sibling = second
	}

	parent.setPayload(sibling.payload)
	if adopted := parent.Widget(); adopted != nil {
		adopted.DockState().bind(parent, c.id)
	}
	sibling.retire()
	leaf.retire()

	parent.refresh()
	return widget, true
}

// retire empties a node that has left the tree and invalidates its handles.
func (n *DockNode) retire() {
	n.setPayload(&leafPayload{})
}

// SetSplitRatio assigns a clamped ratio to a split owned by this container
// and repropagates the split's geometry.
func (c *DockContainer) SetSplitRatio(node *DockNode, ratio float64) bool {
	if node == nil || !node.IsSplit() || !c.Owns(node) {
		return false
	}
	node.split().ratio = c.clampRatio(ratio)
	node.refresh()
	return true
}

// PlacementAt classifies (x, y) against the leaf under it. A container
// holding a single leaf only offers the center zone.
func (c *DockContainer) PlacementAt(x, y float64) Placement {
	leaf := c.root.TraceLeaf(x, y)
	if leaf == nil {
		return Placement{}
	}
	if leaf == c.root {
		return Placement{Leaf: leaf, Zone: ZoneCenter, Polygon: leaf.bounds.Corners()}
	}
	zone, polygon := ClassifyPlacement(x, y, leaf.bounds)
	return Placement{Leaf: leaf, Zone: zone, Polygon: polygon}
}

func (c *DockContainer) clampRatio(ratio float64) float64 {
	if math.IsNaN(ratio) {
		ratio = DefaultSplitRatio
	}
	return clampFloat64(ratio, c.minRatio, 1-c.minRatio)
}

func clampFloat64(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
