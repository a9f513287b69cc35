package styles

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// DockKeyMap defines keybindings for the interactive dock editor.
type DockKeyMap struct {
	NextPanel   key.Binding
	PrevPanel   key.Binding
	NewPanel    key.Binding
	Detach      key.Binding
	Grow        key.Binding
	Shrink      key.Binding
	ResizeLeft  key.Binding
	ResizeRight key.Binding
	ResizeUp    key.Binding
	ResizeDown  key.Binding
	Cancel      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k DockKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPanel, k.NewPanel, k.Detach, k.Grow, k.Shrink, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k DockKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPanel, k.PrevPanel, k.NewPanel, k.Detach},
		{k.Grow, k.Shrink},
		{k.ResizeLeft, k.ResizeRight, k.ResizeUp, k.ResizeDown},
		{k.Cancel, k.Help, k.Quit},
	}
}

// DefaultDockKeyMap returns the default dock editor keybindings.
func DefaultDockKeyMap() DockKeyMap {
	return DockKeyMap{
		NextPanel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		PrevPanel: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev panel"),
		),
		NewPanel: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new panel"),
		),
		Detach: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "detach"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shrink"),
		),
		ResizeLeft: key.NewBinding(
			key.WithKeys("H", "shift+left"),
			key.WithHelp("H", "splitter left"),
		),
		ResizeRight: key.NewBinding(
			key.WithKeys("L", "shift+right"),
			key.WithHelp("L", "splitter right"),
		),
		ResizeUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "splitter up"),
		),
		ResizeDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "splitter down"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
