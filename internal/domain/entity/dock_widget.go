package entity

// DockWidget is an externally owned panel that can occupy a dock leaf.
// The dock tree only references it; position and size are pushed to it on
// every geometry pass.
type DockWidget interface {
	// SetDesktopPosition moves the widget's top-left corner.
	SetDesktopPosition(x, y float64)
	// SetSize resizes the widget.
	SetSize(w, h float64)
	// DockContainerName is the name of the container this widget may dock into.
	DockContainerName() string
	// DockState returns the widget's back-references into the dock tree.
	// Implementations must return the same pointer on every call.
	DockState() *DockState
}

// DockState holds a widget's back-references to the leaf it occupies and
// the id of the container owning that leaf. Embed or hold one per widget.
type DockState struct {
	leaf        *DockNode
	containerID string
}

// Leaf returns the leaf currently occupied, or nil.
func (s *DockState) Leaf() *DockNode {
	if s == nil {
		return nil
	}
	return s.leaf
}

// ContainerID returns the id of the owning container, or "".
func (s *DockState) ContainerID() string {
	if s == nil {
		return ""
	}
	return s.containerID
}

// IsDocked reports whether the widget occupies a leaf.
func (s *DockState) IsDocked() bool {
	return s != nil && s.leaf != nil
}

func (s *DockState) bind(leaf *DockNode, containerID string) {
	s.leaf = leaf
	s.containerID = containerID
}

func (s *DockState) clear() {
	s.leaf = nil
	s.containerID = ""
}
