package layout_test

import (
	"testing"

	"github.com/bnema/docking/internal/domain/entity"
	"github.com/bnema/docking/internal/ui/layout"
	"github.com/bnema/docking/internal/ui/layout/mocks"
	"github.com/stretchr/testify/require"
)

// newSideBySide builds an 800x300 "main" container holding left | right.
func newSideBySide(t *testing.T) (*entity.DockContainer, *layout.Panel, *layout.Panel) {
	t.Helper()
	c := entity.NewDockContainer("main")
	c.SetBounds(entity.NewRect(0, 0, 800, 300))

	left := layout.NewPanel("left", "main")
	right := layout.NewPanel("right", "main")
	require.NotNil(t, c.AttachWidget(left, c.Root(), entity.ZoneCenter, 0.5))
	require.NotNil(t, c.AttachWidget(right, left.DockState().Leaf(), entity.ZoneRight, 0.5))
	return c, left, right
}

// fakeCursor wires a mock cursor to a position the test can move.
func fakeCursor(t *testing.T, pos *entity.Vec2) *mocks.MockCursorSource {
	t.Helper()
	cursor := mocks.NewMockCursorSource(t)
	cursor.EXPECT().CursorPosition().RunAndReturn(func() entity.Vec2 { return *pos }).Maybe()
	return cursor
}
