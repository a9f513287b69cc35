package entity

// testPanel records the geometry pushed to it by the dock tree.
type testPanel struct {
	name      string
	container string
	state     DockState
	pos       Vec2
	size      Vec2
	pushes    int
}

func newTestPanel(name, container string) *testPanel {
	return &testPanel{name: name, container: container}
}

func (p *testPanel) SetDesktopPosition(x, y float64) {
	p.pos = Vec2{X: x, Y: y}
	p.pushes++
}

func (p *testPanel) SetSize(w, h float64) {
	p.size = Vec2{X: w, Y: h}
}

func (p *testPanel) DockContainerName() string { return p.container }

func (p *testPanel) DockState() *DockState { return &p.state }

// rect returns the last geometry pushed to the panel.
func (p *testPanel) rect() Rect {
	return NewRect(p.pos.X, p.pos.Y, p.size.X, p.size.Y)
}

// newSizedContainer returns a "main" container laid out at (0, 0, w, h).
func newSizedContainer(w, h float64) *DockContainer {
	c := NewDockContainer("main")
	c.SetBounds(NewRect(0, 0, w, h))
	return c
}
