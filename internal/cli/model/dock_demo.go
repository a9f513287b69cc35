// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/docking/internal/application/usecase"
	"github.com/bnema/docking/internal/cli/styles"
	"github.com/bnema/docking/internal/domain/entity"
	"github.com/bnema/docking/internal/infrastructure/config"
	"github.com/bnema/docking/internal/logging"
	"github.com/bnema/docking/internal/ui/layout"
)

// DemoContainerName is the dock container every demo panel docks into.
const DemoContainerName = "demo"

// chromeHeight is the rows below the dock area: status line and help.
const chromeHeight = 2

// ConfigChangedMsg carries a reloaded configuration into the editor.
type ConfigChangedMsg struct {
	Config *config.Config
}

// mouseCursor is the CursorSource fed by terminal mouse events.
type mouseCursor struct {
	pos entity.Vec2
}

func (c *mouseCursor) CursorPosition() entity.Vec2 {
	return c.pos
}

// cellCentre maps a terminal cell to container space.
func cellCentre(x, y int) entity.Vec2 {
	return entity.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// DockDemoConfig holds configuration for the dock editor model.
type DockDemoConfig struct {
	Docks  *usecase.ManageDocksUseCase
	Dock   config.DockConfig
	Panels []string // titles docked at start
}

// DockDemoModel is an interactive dock editor. Splitters are dragged with
// the mouse, panels are moved by dragging their title bar, and the
// keyboard docks, detaches and resizes panels.
type DockDemoModel struct {
	// UI components
	help  help.Model
	keys  styles.DockKeyMap
	theme *styles.Theme

	// Dock engine
	ctx       context.Context
	docks     *usecase.ManageDocksUseCase
	container *entity.DockContainer
	renderer  *layout.DockRenderer
	splitters *layout.SplitterDragController
	drops     *layout.DropSession
	cursor    *mouseCursor

	// State
	focused     *layout.Panel
	shelf       []*layout.Panel // undocked panels, most recent last
	nextID      int
	stepPercent float64
	width       int
	height      int
	status      string
	err         error
}

// NewDockDemoModel creates the editor and docks the initial panels.
func NewDockDemoModel(ctx context.Context, theme *styles.Theme, cfg DockDemoConfig) *DockDemoModel {
	ctx = logging.WithComponent(ctx, "dock-demo")
	const initialWidth, initialHeight = 80, 24

	container := cfg.Docks.NewContainer(ctx, DemoContainerName,
		entity.NewRect(0, 0, initialWidth, initialHeight-chromeHeight))
	cursor := &mouseCursor{}
	renderer := layout.NewDockRenderer(ctx, cfg.Dock.SplitterWidth)

	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc

	m := &DockDemoModel{
		help:        h,
		keys:        styles.DefaultDockKeyMap(),
		theme:       theme,
		ctx:         ctx,
		docks:       cfg.Docks,
		container:   container,
		renderer:    renderer,
		splitters:   layout.NewSplitterDragController(ctx, container, cursor, renderer),
		drops:       layout.NewDropSession(cfg.Docks, container, cursor, 0),
		cursor:      cursor,
		stepPercent: cfg.Dock.ResizeStepPercent,
		width:       initialWidth,
		height:      initialHeight,
	}

	for _, title := range cfg.Panels {
		m.dockPanel(layout.NewPanel(title, DemoContainerName))
	}
	return m
}

// Container returns the dock container being edited.
func (m *DockDemoModel) Container() *entity.DockContainer {
	return m.container
}

// Focused returns the focused panel, or nil.
func (m *DockDemoModel) Focused() *layout.Panel {
	return m.focused
}

// Init implements tea.Model.
func (m *DockDemoModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *DockDemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		m.handleMouseMsg(msg)
		return m, nil

	case ConfigChangedMsg:
		m.applyConfig(msg.Config)
		return m, nil
	}

	return m, nil
}

func (m *DockDemoModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.container.SetBounds(entity.NewRect(0, 0, float64(width), float64(max(height-chromeHeight, 1))))
}

func (m *DockDemoModel) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.theme = styles.NewTheme(cfg)
	m.renderer.SetSplitterWidth(cfg.Dock.SplitterWidth)
	m.stepPercent = cfg.Dock.ResizeStepPercent
	m.status = "configuration reloaded"
	logging.FromContext(m.ctx).Info().Msg("applied reloaded configuration")
}

func (m *DockDemoModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.splitters.Cancel()
		m.drops.Cancel(m.ctx)
		m.status = "drag cancelled"

	case key.Matches(msg, m.keys.NextPanel):
		m.cycleFocus(1)

	case key.Matches(msg, m.keys.PrevPanel):
		m.cycleFocus(-1)

	case key.Matches(msg, m.keys.NewPanel):
		m.dockNext()

	case key.Matches(msg, m.keys.Detach):
		m.detachFocused()

	case key.Matches(msg, m.keys.Grow):
		m.resizeFocused(usecase.ResizeIncrease)

	case key.Matches(msg, m.keys.Shrink):
		m.resizeFocused(usecase.ResizeDecrease)

	case key.Matches(msg, m.keys.ResizeLeft):
		m.resizeFocused(usecase.ResizeIncreaseLeft)

	case key.Matches(msg, m.keys.ResizeRight):
		m.resizeFocused(usecase.ResizeIncreaseRight)

	case key.Matches(msg, m.keys.ResizeUp):
		m.resizeFocused(usecase.ResizeIncreaseUp)

	case key.Matches(msg, m.keys.ResizeDown):
		m.resizeFocused(usecase.ResizeIncreaseDown)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *DockDemoModel) handleMouseMsg(msg tea.MouseMsg) {
	m.cursor.pos = cellCentre(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if m.splitters.Press() {
			m.status = "resizing"
			return
		}
		panel := m.panelAt(m.cursor.pos)
		if panel == nil {
			return
		}
		m.focused = panel
		if m.onTitleBar(panel, msg.Y) && m.drops.Begin(m.ctx, panel) {
			m.drops.Hover()
			m.status = "moving " + panel.Title()
		}

	case tea.MouseActionMotion:
		switch {
		case m.splitters.Active():
			m.splitters.Tick()
		case m.drops.Active():
			m.drops.Hover()
		}

	case tea.MouseActionRelease:
		switch {
		case m.splitters.Active():
			m.splitters.Release()
			m.status = ""
		case m.drops.Active():
			m.finishDrop()
		}
	}
}

func (m *DockDemoModel) finishDrop() {
	out, err := m.drops.Drop(m.ctx)
	if err != nil {
		m.setError(err)
		return
	}
	m.err = nil
	if !out.Moved {
		m.status = ""
		return
	}
	m.status = fmt.Sprintf("docked %s", out.Placement.Zone)
	if displaced, ok := out.Displaced.(*layout.Panel); ok && displaced != nil {
		m.shelf = append(m.shelf, displaced)
		m.status = fmt.Sprintf("replaced %s", displaced.Title())
	}
}

func (m *DockDemoModel) panelAt(p entity.Vec2) *layout.Panel {
	leaf := m.container.TraceLeaf(p.X, p.Y)
	if leaf == nil {
		return nil
	}
	panel, _ := leaf.Widget().(*layout.Panel)
	return panel
}

func (m *DockDemoModel) onTitleBar(panel *layout.Panel, row int) bool {
	r := panel.Rect()
	top, _ := cellSpan(r.Mins.Y, r.Maxs.Y, m.height)
	return row == top
}

func (m *DockDemoModel) dockedPanels() []*layout.Panel {
	widgets := m.container.Widgets()
	panels := make([]*layout.Panel, 0, len(widgets))
	for _, w := range widgets {
		if p, ok := w.(*layout.Panel); ok {
			panels = append(panels, p)
		}
	}
	return panels
}

func (m *DockDemoModel) cycleFocus(step int) {
	panels := m.dockedPanels()
	if len(panels) == 0 {
		m.focused = nil
		return
	}
	idx := -1
	for i, p := range panels {
		if p == m.focused {
			idx = i
			break
		}
	}
	idx = (idx + step + len(panels)) % len(panels)
	m.focused = panels[idx]
}

// dockNext docks the most recently shelved panel, or a new one, next to
// the focused panel.
func (m *DockDemoModel) dockNext() {
	var panel *layout.Panel
	if n := len(m.shelf); n > 0 {
		panel = m.shelf[n-1]
		m.shelf = m.shelf[:n-1]
	} else {
		m.nextID++
		panel = layout.NewPanel(fmt.Sprintf("panel %d", m.nextID), DemoContainerName)
	}
	m.dockPanel(panel)
}

// dockPanel splits the focused panel along its longer side. Terminal
// cells are about twice as tall as wide.
func (m *DockDemoModel) dockPanel(panel *layout.Panel) {
	input := usecase.AttachInput{Container: m.container, Widget: panel}
	if m.focused != nil && m.focused.IsDocked() {
		r := m.focused.Rect()
		input.Target = m.focused.DockState().Leaf()
		input.Zone = entity.ZoneBottom
		if r.Width() >= 2*r.Height() {
			input.Zone = entity.ZoneRight
		}
	}

	if _, err := m.docks.Attach(m.ctx, input); err != nil {
		m.setError(err)
		return
	}
	m.err = nil
	m.focused = panel
	m.status = "docked " + panel.Title()
}

func (m *DockDemoModel) detachFocused() {
	if m.focused == nil {
		return
	}
	panel := m.focused
	if err := m.docks.Detach(m.ctx, m.container, panel); err != nil {
		m.setError(err)
		return
	}
	m.shelf = append(m.shelf, panel)
	m.focused = nil
	m.cycleFocus(1)
	m.status = "detached " + panel.Title()
}

func (m *DockDemoModel) resizeFocused(dir usecase.ResizeDirection) {
	if m.focused == nil {
		return
	}
	err := m.docks.Resize(m.ctx, m.container, m.focused.DockState().Leaf(), dir, m.stepPercent)
	if errors.Is(err, usecase.ErrNothingToResize) {
		m.status = "nothing to resize"
		return
	}
	if err != nil {
		m.setError(err)
		return
	}
	m.err = nil
}

func (m *DockDemoModel) setError(err error) {
	m.err = err
	logging.FromContext(m.ctx).Warn().Err(err).Msg("dock edit rejected")
}

// View implements tea.Model.
func (m *DockDemoModel) View() string {
	canvas := NewCellCanvas(m.width, max(m.height-chromeHeight, 0), m.theme)

	for _, p := range m.dockedPanels() {
		canvas.DrawPanel(p.Rect(), p.Title(), p == m.focused)
	}
	if len(m.dockedPanels()) == 0 {
		canvas.DrawText(canvas.height/2, "press n to dock a panel")
	}

	var hot *entity.DockNode
	if !m.splitters.Active() && !m.drops.Active() {
		hot = m.splitters.Hot()
	}
	m.renderer.Render(canvas, m.container, layout.Overlay{Hot: hot, Preview: m.drops.Preview()})

	var b strings.Builder
	b.WriteString(canvas.String())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *DockDemoModel) statusLine() string {
	t := m.theme
	if m.err != nil {
		return t.ErrorStyle.Render(fmt.Sprintf("%s %v", styles.IconX, m.err))
	}

	parts := []string{fmt.Sprintf("%d panels", len(m.dockedPanels()))}
	if n := len(m.shelf); n > 0 {
		parts = append(parts, fmt.Sprintf("%d shelved", n))
	}
	if m.focused != nil {
		parts = append(parts, "focus: "+m.focused.Title())
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return t.StatusBar.Render(strings.Join(parts, "  ·  "))
}
