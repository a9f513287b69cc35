package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/docking/internal/cli/styles"
	"github.com/bnema/docking/internal/domain/entity"
	"github.com/bnema/docking/internal/ui/layout"
)

func TestDockTreeRenderer_Render(t *testing.T) {
	// Arrange
	c := entity.NewDockContainer("main")
	c.SetBounds(entity.NewRect(0, 0, 800, 600))
	a := layout.NewPanel("editor", "main")
	b := layout.NewPanel("terminal", "main")
	require.NotNil(t, c.AttachWidget(a, c.Root(), entity.ZoneCenter, 0.5))
	require.NotNil(t, c.AttachWidget(b, a.DockState().Leaf(), entity.ZoneRight, 0.25))
	r := styles.NewDockTreeRenderer(styles.NewTheme(nil))

	// Act
	out := r.Render(c)

	// Assert
	assert.Contains(t, out, "main")
	assert.Contains(t, out, "2 leaves")
	assert.Contains(t, out, "split_vertical 0.25 0,0 800x600")
	assert.Contains(t, out, "editor 0,0 200x600")
	assert.Contains(t, out, "terminal 200,0 600x600")
}

func TestDockTreeRenderer_EmptyRoot(t *testing.T) {
	c := entity.NewDockContainer("main")
	r := styles.NewDockTreeRenderer(styles.NewTheme(nil))

	assert.Contains(t, r.Render(c), "(empty)")
	assert.Contains(t, r.Render(nil), "no dock container")
}

func TestFormatRect(t *testing.T) {
	assert.Equal(t, "10,20 30.5x40", styles.FormatRect(entity.NewRect(10, 20, 30.5, 40)))
}
