package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/docking/internal/application/usecase"
	"github.com/bnema/docking/internal/cli/styles"
	"github.com/bnema/docking/internal/domain/entity"
	"github.com/bnema/docking/internal/infrastructure/config"
	"github.com/bnema/docking/internal/ui/layout"
)

func newTestDemo(t *testing.T, panels ...string) *DockDemoModel {
	t.Helper()
	docks := usecase.NewManageDocksUseCase(nil, usecase.DockDefaults{
		SplitRatio:    entity.DefaultSplitRatio,
		MinSplitRatio: entity.DefaultMinSplitRatio,
	})
	return NewDockDemoModel(context.Background(), styles.NewTheme(nil), DockDemoConfig{
		Docks:  docks,
		Dock:   config.DefaultConfig().Dock,
		Panels: panels,
	})
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func panelTitles(c *entity.DockContainer) []string {
	var titles []string
	for _, w := range c.Widgets() {
		titles = append(titles, w.(*layout.Panel).Title())
	}
	return titles
}

func TestNewDockDemoModel_DocksInitialPanels(t *testing.T) {
	m := newTestDemo(t, "a", "b")

	root := m.Container().Root()
	require.True(t, root.IsSplit())
	assert.Equal(t, entity.DockSplitVertical, root.Kind())
	assert.Equal(t, []string{"a", "b"}, panelTitles(m.Container()))
	assert.Equal(t, "b", m.Focused().Title())
}

func TestDockDemoModel_WindowSize(t *testing.T) {
	m := newTestDemo(t, "a")

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, entity.NewRect(0, 0, 120, 38), m.Container().Bounds())
}

func TestDockDemoModel_SplitterDrag(t *testing.T) {
	m := newTestDemo(t, "a", "b")
	root := m.Container().Root()

	// The 1-cell splitter of an 80 cell split sits in column 39.
	m.Update(mouse(tea.MouseActionPress, 39, 10))
	require.True(t, m.splitters.Active())

	m.Update(mouse(tea.MouseActionMotion, 44, 10))
	assert.InDelta(t, 0.5625, root.SplitRatio(), 1e-9)

	m.Update(mouse(tea.MouseActionRelease, 49, 10))

	assert.False(t, m.splitters.Active())
	assert.InDelta(t, 0.625, root.SplitRatio(), 1e-9)
}

func TestDockDemoModel_TitleDragMovesPanel(t *testing.T) {
	m := newTestDemo(t, "a", "b")

	m.Update(mouse(tea.MouseActionPress, 5, 0))
	require.True(t, m.drops.Active())
	assert.Equal(t, "a", m.Focused().Title())

	m.Update(mouse(tea.MouseActionMotion, 60, 21))
	assert.Equal(t, entity.ZoneBottom, m.drops.Preview().Zone)
	assert.Contains(t, m.View(), "b")

	m.Update(mouse(tea.MouseActionRelease, 60, 21))

	assert.False(t, m.drops.Active())
	root := m.Container().Root()
	assert.Equal(t, entity.DockSplitHorizontal, root.Kind())
	assert.Equal(t, []string{"b", "a"}, panelTitles(m.Container()))
}

func TestDockDemoModel_BodyPressOnlyFocuses(t *testing.T) {
	m := newTestDemo(t, "a", "b")

	m.Update(mouse(tea.MouseActionPress, 5, 5))

	assert.False(t, m.drops.Active())
	assert.Equal(t, "a", m.Focused().Title())
}

func TestDockDemoModel_Keys(t *testing.T) {
	t.Run("n docks a new panel", func(t *testing.T) {
		m := newTestDemo(t)

		m.Update(runes("n"))
		m.Update(runes("n"))

		assert.Equal(t, 2, m.Container().LeafCount())
		assert.Equal(t, "panel 2", m.Focused().Title())
	})

	t.Run("x shelves the focused panel and n brings it back", func(t *testing.T) {
		m := newTestDemo(t, "a", "b")

		m.Update(runes("x"))

		assert.Equal(t, []string{"a"}, panelTitles(m.Container()))
		require.Len(t, m.shelf, 1)
		assert.Equal(t, "a", m.Focused().Title())

		m.Update(runes("n"))

		assert.Empty(t, m.shelf)
		assert.Equal(t, []string{"a", "b"}, panelTitles(m.Container()))
	})

	t.Run("tab cycles focus", func(t *testing.T) {
		m := newTestDemo(t, "a", "b")

		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, "a", m.Focused().Title())

		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, "b", m.Focused().Title())
	})

	t.Run("grow widens the focused panel", func(t *testing.T) {
		m := newTestDemo(t, "a", "b")
		m.Update(tea.KeyMsg{Type: tea.KeyTab})

		m.Update(runes("+"))

		assert.InDelta(t, 0.55, m.Container().Root().SplitRatio(), 1e-9)
	})

	t.Run("resize with a single panel reports nothing to resize", func(t *testing.T) {
		m := newTestDemo(t, "a")

		m.Update(runes("-"))

		assert.Contains(t, m.statusLine(), "nothing to resize")
	})

	t.Run("q quits", func(t *testing.T) {
		m := newTestDemo(t, "a")

		_, cmd := m.Update(runes("q"))

		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	})
}

func TestDockDemoModel_ConfigChanged(t *testing.T) {
	m := newTestDemo(t, "a", "b")
	cfg := config.DefaultConfig()
	cfg.Dock.SplitterWidth = 3
	cfg.Dock.ResizeStepPercent = 10

	m.Update(ConfigChangedMsg{Config: cfg})

	assert.Equal(t, 3.0, m.renderer.SplitterWidth())
	assert.Equal(t, 10.0, m.stepPercent)
	assert.Contains(t, m.statusLine(), "configuration reloaded")
}

func TestDockDemoModel_View(t *testing.T) {
	t.Run("shows panel titles", func(t *testing.T) {
		m := newTestDemo(t, "editor", "console")

		view := m.View()

		assert.Contains(t, view, "editor")
		assert.Contains(t, view, "console")
		assert.Contains(t, view, "2 panels")
	})

	t.Run("empty container shows a hint", func(t *testing.T) {
		m := newTestDemo(t)

		assert.Contains(t, m.View(), "press n to dock a panel")
	})
}
