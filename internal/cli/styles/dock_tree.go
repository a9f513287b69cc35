package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/bnema/docking/internal/domain/entity"
)

// TitledWidget is a dock widget with a display name.
type TitledWidget interface {
	Title() string
}

// DockTreeRenderer prints a dock container as a tree.
type DockTreeRenderer struct {
	theme *Theme
}

// NewDockTreeRenderer creates a new DockTreeRenderer.
func NewDockTreeRenderer(theme *Theme) *DockTreeRenderer {
	return &DockTreeRenderer{theme: theme}
}

// Render returns the container header followed by its node tree.
func (r *DockTreeRenderer) Render(c *entity.DockContainer) string {
	if c == nil {
		return r.theme.Subtle.Render("no dock container")
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	header := fmt.Sprintf("%s %s %s",
		iconStyle.Render(IconLayout),
		r.theme.Title.Render(c.Name()),
		r.theme.Subtle.Render(fmt.Sprintf("(%d leaves, %s)", c.LeafCount(), FormatRect(c.Bounds()))),
	)

	t := r.subtree(c.Root()).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(lipgloss.NewStyle().Foreground(r.theme.Border).MarginRight(1))
	return header + "\n" + t.String()
}

func (r *DockTreeRenderer) subtree(node *entity.DockNode) *tree.Tree {
	t := tree.Root(r.label(node))
	if node.IsSplit() {
		t.Child(r.subtree(node.Child(0)), r.subtree(node.Child(1)))
	}
	return t
}

func (r *DockTreeRenderer) label(node *entity.DockNode) string {
	bounds := r.theme.Subtle.Render(FormatRect(node.Bounds()))
	if node.IsSplit() {
		return fmt.Sprintf("%s %s %s",
			r.theme.Highlight.Render(node.Kind().String()),
			r.theme.Normal.Render(fmt.Sprintf("%.2f", node.SplitRatio())),
			bounds,
		)
	}

	name := r.theme.Subtle.Render("(empty)")
	if w := node.Widget(); w != nil {
		name = r.theme.Title.Render(WidgetTitle(w))
	}
	return fmt.Sprintf("%s %s", name, bounds)
}

// WidgetTitle returns the widget's title, or its type when it has none.
func WidgetTitle(w entity.DockWidget) string {
	if titled, ok := w.(TitledWidget); ok {
		return titled.Title()
	}
	return fmt.Sprintf("%T", w)
}

// FormatRect renders r as "x,y wxh".
func FormatRect(r entity.Rect) string {
	return fmt.Sprintf("%g,%g %gx%g", r.Mins.X, r.Mins.Y, r.Width(), r.Height())
}
