package entity

import "fmt"

// DockNodeKind classifies a dock tree node.
type DockNodeKind int

const (
	DockLeaf            DockNodeKind = iota // Holds at most one widget
	DockSplitVertical                       // Children side by side, divided on X
	DockSplitHorizontal                     // Children stacked, divided on Y
)

// String returns a short kind name.
func (k DockNodeKind) String() string {
	switch k {
	case DockLeaf:
		return "leaf"
	case DockSplitVertical:
		return "split_vertical"
	case DockSplitHorizontal:
		return "split_horizontal"
	default:
		return "unknown"
	}
}

// dockPayload is the variant part of a node. A node changes kind only by
// having its payload replaced.
type dockPayload interface {
	kind() DockNodeKind
}

type leafPayload struct {
	widget DockWidget
}

func (*leafPayload) kind() DockNodeKind { return DockLeaf }

type splitPayload struct {
	axis     DockNodeKind
	ratio    float64
	children [2]*DockNode
}

func (p *splitPayload) kind() DockNodeKind { return p.axis }

// DockNode is a node of the dock layout tree: either a leaf optionally
// holding one widget, or a split with exactly two children.
type DockNode struct {
	id         string
	generation uint64
	payload    dockPayload
	bounds     Rect
}

func newLeafNode(id string, widget DockWidget) *DockNode {
	return &DockNode{id: id, payload: &leafPayload{widget: widget}}
}

// ID returns the node id assigned at creation.
func (n *DockNode) ID() string {
	return n.id
}

// Generation changes every time the node's payload is replaced or the node
// leaves the tree. Handles compare it to detect stale references.
func (n *DockNode) Generation() uint64 {
	return n.generation
}

// Kind returns the node kind.
func (n *DockNode) Kind() DockNodeKind {
	return n.payload.kind()
}

// IsLeaf returns true if this node holds no children.
func (n *DockNode) IsLeaf() bool {
	return n.Kind() == DockLeaf
}

// IsSplit returns true if this node divides its area between two children.
func (n *DockNode) IsSplit() bool {
	return !n.IsLeaf()
}

// Bounds returns the rectangle computed by the last geometry pass.
func (n *DockNode) Bounds() Rect {
	return n.bounds
}

// Widget returns the attached widget of a leaf, nil otherwise.
func (n *DockNode) Widget() DockWidget {
	if p, ok := n.payload.(*leafPayload); ok {
		return p.widget
	}
	return nil
}

// SplitRatio returns the fraction of the split axis given to child 0.
// Leaves return 0.
func (n *DockNode) SplitRatio() float64 {
	if p := n.split(); p != nil {
		return p.ratio
	}
	return 0
}

// Child returns child i (0 or 1) of a split, nil for leaves.
func (n *DockNode) Child(i int) *DockNode {
	p := n.split()
	if p == nil || i < 0 || i > 1 {
		return nil
	}
	return p.children[i]
}

func (n *DockNode) split() *splitPayload {
	p, _ := n.payload.(*splitPayload)
	return p
}

func (n *DockNode) leaf() *leafPayload {
	p, _ := n.payload.(*leafPayload)
	return p
}

// mustChildren panics if the split breaks the two-children invariant.
func (p *splitPayload) mustChildren() (*DockNode, *DockNode) {
	if p.children[0] == nil || p.children[1] == nil {
		panic(fmt.Sprintf("dock: %s node with missing child", p.axis))
	}
	return p.children[0], p.children[1]
}

func (n *DockNode) setPayload(p dockPayload) {
	n.payload = p
	n.generation++
}

// UpdateRecursive assigns bounds (x, y, w, h) to this node and propagates
// them down the subtree, pushing position and size to attached widgets.
func (n *DockNode) UpdateRecursive(x, y, w, h float64) {
	n.updateRect(NewRect(x, y, w, h))
}

// updateRect splits r at the ratio point so both children share the exact
// same edge coordinate.
func (n *DockNode) updateRect(r Rect) {
	n.bounds = r

	switch p := n.payload.(type) {
	case *leafPayload:
		if p.widget != nil {
			p.widget.SetDesktopPosition(r.Mins.X, r.Mins.Y)
			p.widget.SetSize(r.Width(), r.Height())
		}
	case *splitPayload:
		first, second := p.mustChildren()
		if p.axis == DockSplitVertical {
			edge := r.Mins.X + p.ratio*r.Width()
			first.updateRect(Rect{Mins: r.Mins, Maxs: Vec2{X: edge, Y: r.Maxs.Y}})
			second.updateRect(Rect{Mins: Vec2{X: edge, Y: r.Mins.Y}, Maxs: r.Maxs})
			return
		}
		edge := r.Mins.Y + p.ratio*r.Height()
		first.updateRect(Rect{Mins: r.Mins, Maxs: Vec2{X: r.Maxs.X, Y: edge}})
		second.updateRect(Rect{Mins: Vec2{X: r.Mins.X, Y: edge}, Maxs: r.Maxs})
	}
}

// refresh re-runs the geometry pass on the node's cached bounds.
func (n *DockNode) refresh() {
	n.updateRect(n.bounds)
}

// TraceLeaf returns the leaf containing (x, y), or nil if the point is
// outside this subtree.
func (n *DockNode) TraceLeaf(x, y float64) *DockNode {
	if !n.bounds.Contains(x, y) {
		return nil
	}
	p := n.split()
	if p == nil {
		return n
	}
	first, second := p.mustChildren()
	if hit := first.TraceLeaf(x, y); hit != nil {
		return hit
	}
	return second.TraceLeaf(x, y)
}

// SplitterBounds returns the strip of the given width centred on the split
// line, spanning the node's full extent on the other axis. Leaves return an
// empty rect.
func (n *DockNode) SplitterBounds(width float64) Rect {
	p := n.split()
	if p == nil {
		return Rect{}
	}
	half := width / 2
	b := n.bounds
	if p.axis == DockSplitVertical {
		x := lerp(b.Mins.X, b.Maxs.X, p.ratio)
		return Rect{
			Mins: Vec2{X: x - half, Y: b.Mins.Y},
			Maxs: Vec2{X: x + half, Y: b.Maxs.Y},
		}
	}
	y := lerp(b.Mins.Y, b.Maxs.Y, p.ratio)
	return Rect{
		Mins: Vec2{X: b.Mins.X, Y: y - half},
		Maxs: Vec2{X: b.Maxs.X, Y: y + half},
	}
}

// TraceSeparator returns the split whose splitter strip contains (x, y).
// A node's own strip wins over splitters deeper in its subtree.
func (n *DockNode) TraceSeparator(x, y, width float64) *DockNode {
	p := n.split()
	if p == nil || !n.bounds.Contains(x, y) {
		return nil
	}
	if n.SplitterBounds(width).Contains(x, y) {
		return n
	}
	first, second := p.mustChildren()
	if hit := first.TraceSeparator(x, y, width); hit != nil {
		return hit
	}
	return second.TraceSeparator(x, y, width)
}

// FindParent returns the node whose direct child is target, or nil when
// target is this node or not in the subtree.
func (n *DockNode) FindParent(target *DockNode) *DockNode {
	p := n.split()
	if p == nil || target == nil {
		return nil
	}
	for _, child := range p.children {
		if child == target {
			return n
		}
	}
	for _, child := range p.children {
		if child == nil {
			continue
		}
		if parent := child.FindParent(target); parent != nil {
			return parent
		}
	}
	return nil
}

// Walk traverses the subtree depth-first, child 0 before child 1.
// Returns early if fn returns false.
func (n *DockNode) Walk(fn func(*DockNode) bool) {
	n.walk(fn)
}

func (n *DockNode) walk(fn func(*DockNode) bool) bool {
	if !fn(n) {
		return false
	}
	if p := n.split(); p != nil {
		for _, child := range p.children {
			if child != nil && !child.walk(fn) {
				return false
			}
		}
	}
	return true
}

// AppendWidgets appends every attached widget in depth-first, left-to-right
// order and returns the extended slice.
func (n *DockNode) AppendWidgets(dst []DockWidget) []DockWidget {
	n.Walk(func(node *DockNode) bool {
		if w := node.Widget(); w != nil {
			dst = append(dst, w)
		}
		return true
	})
	return dst
}

// LeafCount returns the number of leaves in the subtree.
func (n *DockNode) LeafCount() int {
	count := 0
	n.Walk(func(node *DockNode) bool {
		if node.IsLeaf() {
			count++
		}
		return true
	})
	return count
}
