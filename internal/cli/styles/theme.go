// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/docking/internal/infrastructure/config"
	"github.com/bnema/docking/internal/ui/layout"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Dock colors (from config.AppearanceConfig)
	Splitter       lipgloss.Color
	SplitterActive lipgloss.Color
	Preview        lipgloss.Color
	Border         lipgloss.Color
	Focus          lipgloss.Color

	// Text colors
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Error  lipgloss.Color
	Warn   lipgloss.Color

	// Pre-built styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box       lipgloss.Style
	StatusBar lipgloss.Style
}

// NewTheme creates a Theme from config.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return NewThemeFromAppearance(cfg.Appearance)
}

// NewThemeFromAppearance creates a Theme from the appearance section.
func NewThemeFromAppearance(a config.AppearanceConfig) *Theme {
	t := &Theme{
		Splitter:       lipgloss.Color(a.SplitterColor),
		SplitterActive: lipgloss.Color(a.SplitterActiveColor),
		Preview:        lipgloss.Color(a.PreviewColor),
		Border:         lipgloss.Color(a.BorderColor),
		Focus:          lipgloss.Color(a.FocusColor),

		// Not configurable
		Text:  lipgloss.Color("#cdd6f4"),
		Muted: lipgloss.Color("#7f849c"),
		Error: lipgloss.Color("#f38ba8"),
		Warn:  lipgloss.Color("#fab387"),
	}
	t.Accent = t.SplitterActive

	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warn)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Preview)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted)
}

// PaintColor maps a dock paint role to its configured color.
func (t *Theme) PaintColor(p layout.Paint) lipgloss.Color {
	switch p {
	case layout.PaintSplitterHot, layout.PaintSplitterDragged:
		return t.SplitterActive
	case layout.PaintPreview:
		return t.Preview
	default:
		return t.Splitter
	}
}
