package layout

import "github.com/bnema/docking/internal/domain/entity"

// Panel is a titled dockable widget that records the geometry pushed to it.
type Panel struct {
	title         string
	containerName string
	state         entity.DockState
	position      entity.Vec2
	size          entity.Vec2
}

var _ entity.DockWidget = (*Panel)(nil)

// NewPanel creates an undocked panel that may dock into the named container.
func NewPanel(title, containerName string) *Panel {
	return &Panel{title: title, containerName: containerName}
}

// Title is the label drawn in the panel header.
func (p *Panel) Title() string { return p.title }

// DockContainerName names the only container the panel may dock into.
func (p *Panel) DockContainerName() string { return p.containerName }

// DockState returns the panel's docking record, owned by the dock tree.
func (p *Panel) DockState() *entity.DockState { return &p.state }

// SetDesktopPosition stores the top-left corner pushed by the dock tree.
func (p *Panel) SetDesktopPosition(x, y float64) {
	p.position = entity.Vec2{X: x, Y: y}
}

// SetSize stores the extent pushed by the dock tree.
func (p *Panel) SetSize(w, h float64) {
	p.size = entity.Vec2{X: w, Y: h}
}

// Rect returns the last geometry pushed by the dock tree.
func (p *Panel) Rect() entity.Rect {
	return entity.NewRect(p.position.X, p.position.Y, p.size.X, p.size.Y)
}

// IsDocked reports whether the panel occupies a leaf.
func (p *Panel) IsDocked() bool {
	return p.state.IsDocked()
}
