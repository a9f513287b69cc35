package entity

// NodeHandle is a generation-checked reference to a dock node. It resolves
// to nil once the node's payload has been replaced or the node has left
// the tree.
type NodeHandle struct {
	node       *DockNode
	generation uint64
}

// Handle returns a handle to node.
func (c *DockContainer) Handle(node *DockNode) NodeHandle {
	if node == nil {
		return NodeHandle{}
	}
	return NodeHandle{node: node, generation: node.generation}
}

// Resolve returns the node behind h, or nil if the handle is stale.
func (c *DockContainer) Resolve(h NodeHandle) *DockNode {
	if h.node == nil || h.node.generation != h.generation || !c.Owns(h.node) {
		return nil
	}
	return h.node
}

// splitterDrag is the state of an interactive splitter resize.
type splitterDrag struct {
	handle       NodeHandle
	anchorCursor Vec2
	anchorRatio  float64
}

// BeginSplitterDrag starts resizing split from the given cursor position.
func (c *DockContainer) BeginSplitterDrag(split *DockNode, cursor Vec2) bool {
	if split == nil || !split.IsSplit() || !c.Owns(split) {
		return false
	}
	c.drag = splitterDrag{
		handle:       c.Handle(split),
		anchorCursor: cursor,
		anchorRatio:  split.SplitRatio(),
	}
	return true
}

// DraggedSplitter returns the split being dragged, or nil. A drag whose
// target was restructured since it began is cancelled here.
func (c *DockContainer) DraggedSplitter() *DockNode {
	if c.drag.handle.node == nil {
		return nil
	}
	node := c.Resolve(c.drag.handle)
	if node == nil {
		c.EndSplitterDrag()
	}
	return node
}

// UpdateSplitterDrag moves the dragged splitter by the cursor delta along
// the split axis, relative to where the drag began.
func (c *DockContainer) UpdateSplitterDrag(cursor Vec2) bool {
	node := c.DraggedSplitter()
	if node == nil {
		return false
	}

	delta := cursor.Sub(c.drag.anchorCursor)
	size := node.bounds.Size()
	var offset, extent float64
	if node.Kind() == DockSplitVertical {
		offset, extent = delta.X, size.X
	} else {
		offset, extent = delta.Y, size.Y
	}
	if extent <= 0 {
		return false
	}
	return c.SetSplitRatio(node, c.drag.anchorRatio+offset/extent)
}

// EndSplitterDrag clears the drag session. Ratio writes already applied
// stay in place.
func (c *DockContainer) EndSplitterDrag() {
	c.drag = splitterDrag{}
}
