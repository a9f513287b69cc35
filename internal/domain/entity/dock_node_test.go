package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDockNodeKind_String(t *testing.T) {
	assert.Equal(t, "leaf", DockLeaf.String())
	assert.Equal(t, "split_vertical", DockSplitVertical.String())
	assert.Equal(t, "split_horizontal", DockSplitHorizontal.String())
	assert.Equal(t, "unknown", DockNodeKind(42).String())
}

func TestDockNode_UpdateRecursive_SharesSplitEdge(t *testing.T) {
	// Arrange
	first := newLeafNode("a", nil)
	second := newLeafNode("b", nil)
	node := &DockNode{id: "s", payload: &splitPayload{
		axis:     DockSplitVertical,
		ratio:    1.0 / 3.0,
		children: [2]*DockNode{first, second},
	}}

	// Act
	node.UpdateRecursive(7, 3, 100, 40)

	// Assert
	assert.Equal(t, NewRect(7, 3, 100, 40), node.Bounds())
	assert.Equal(t, first.Bounds().Maxs.X, second.Bounds().Mins.X)
	assert.Equal(t, 7.0, first.Bounds().Mins.X)
	assert.Equal(t, 107.0, second.Bounds().Maxs.X)
	assert.Equal(t, 3.0, second.Bounds().Mins.Y)
	assert.Equal(t, 43.0, first.Bounds().Maxs.Y)
}

func TestDockNode_UpdateRecursive_Horizontal(t *testing.T) {
	top := newTestPanel("top", "main")
	bottom := newTestPanel("bottom", "main")
	node := &DockNode{id: "s", payload: &splitPayload{
		axis:  DockSplitHorizontal,
		ratio: 0.25,
		children: [2]*DockNode{
			newLeafNode("a", top),
			newLeafNode("b", bottom),
		},
	}}

	node.UpdateRecursive(0, 0, 400, 200)

	assert.Equal(t, NewRect(0, 0, 400, 50), top.rect())
	assert.Equal(t, NewRect(0, 50, 400, 150), bottom.rect())
}

func TestDockNode_UpdateRecursive_PanicsOnMissingChild(t *testing.T) {
	node := &DockNode{id: "broken", payload: &splitPayload{
		axis:     DockSplitVertical,
		ratio:    0.5,
		children: [2]*DockNode{newLeafNode("a", nil), nil},
	}}

	assert.Panics(t, func() {
		node.UpdateRecursive(0, 0, 10, 10)
	})
}

func TestDockNode_SplitterBounds(t *testing.T) {
	c := newSizedContainer(800, 600)
	a := newTestPanel("a", "main")
	b := newTestPanel("b", "main")
	leafA := c.AttachWidget(a, c.Root(), ZoneCenter, DefaultSplitRatio)
	require.NotNil(t, leafA)
	require.NotNil(t, c.AttachWidget(b, leafA, ZoneRight, 0.25))

	assert.Equal(t, Rect{Mins: Vec2{196, 0}, Maxs: Vec2{204, 600}}, c.Root().SplitterBounds(8))
	assert.Equal(t, Rect{}, c.Root().Child(0).SplitterBounds(8))
}

func TestDockNode_SplitterBounds_Horizontal(t *testing.T) {
	c := newSizedContainer(800, 600)
	a := newTestPanel("a", "main")
	b := newTestPanel("b", "main")
	leafA := c.AttachWidget(a, c.Root(), ZoneCenter, DefaultSplitRatio)
	require.NotNil(t, c.AttachWidget(b, leafA, ZoneBottom, 0.5))

	assert.Equal(t, Rect{Mins: Vec2{0, 295}, Maxs: Vec2{800, 305}}, c.Root().SplitterBounds(10))
}

func TestDockNode_TraceSeparator(t *testing.T) {
	// Arrange: A | (B over C)
	c := newSizedContainer(800, 600)
	a := newTestPanel("a", "main")
	b := newTestPanel("b", "main")
	d := newTestPanel("c", "main")
	leafA := c.AttachWidget(a, c.Root(), ZoneCenter, DefaultSplitRatio)
	leafB := c.AttachWidget(b, leafA, ZoneRight, 0.5)
	require.NotNil(t, c.AttachWidget(d, leafB, ZoneBottom, 0.5))
	root := c.Root()
	right := root.Child(1)
	require.True(t, right.IsSplit())

	tests := []struct {
		name     string
		x, y     float64
		expected *DockNode
	}{
		{name: "root splitter", x: 401, y: 100, expected: root},
		{name: "root splitter wins where strips cross", x: 400, y: 300, expected: root},
		{name: "nested splitter", x: 600, y: 302, expected: right},
		{name: "inside a leaf", x: 100, y: 100, expected: nil},
		{name: "outside the container", x: 900, y: 300, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.expected, root.TraceSeparator(tt.x, tt.y, 8))
		})
	}
}

func TestDockNode_TraceLeaf_Totality(t *testing.T) {
	// Arrange
	c := newSizedContainer(800, 600)
	panels := []*testPanel{
		newTestPanel("a", "main"),
		newTestPanel("b", "main"),
		newTestPanel("c", "main"),
		newTestPanel("d", "main"),
	}
	leafA := c.AttachWidget(panels[0], c.Root(), ZoneCenter, DefaultSplitRatio)
	leafB := c.AttachWidget(panels[1], leafA, ZoneRight, 0.3)
	leafC := c.AttachWidget(panels[2], leafB, ZoneTop, 0.6)
	require.NotNil(t, c.AttachWidget(panels[3], leafC, ZoneLeft, 0.45))
	leaves := c.Leaves()
	require.Len(t, leaves, 4)

	// Act / Assert
	for x := 0.0; x < 800; x += 13.7 {
		for y := 0.0; y < 600; y += 11.3 {
			hit := c.TraceLeaf(x, y)
			require.NotNil(t, hit, "point (%v, %v)", x, y)
			assert.True(t, hit.IsLeaf())
			assert.True(t, hit.Bounds().Contains(x, y))

			containing := 0
			for _, leaf := range leaves {
				if leaf.Bounds().Contains(x, y) {
					containing++
				}
			}
			assert.Equal(t, 1, containing, "point (%v, %v)", x, y)
		}
	}

	assert.Nil(t, c.TraceLeaf(-1, 10))
	assert.Nil(t, c.TraceLeaf(800, 10))
	assert.Nil(t, c.TraceLeaf(10, 600))
}

func TestDockNode_FindParent(t *testing.T) {
	c := newSizedContainer(800, 600)
	a := newTestPanel("a", "main")
	b := newTestPanel("b", "main")
	d := newTestPanel("c", "main")
	leafA := c.AttachWidget(a, c.Root(), ZoneCenter, DefaultSplitRatio)
	leafB := c.AttachWidget(b, leafA, ZoneRight, 0.5)
	leafC := c.AttachWidget(d, leafB, ZoneBottom, 0.5)
	root := c.Root()

	assert.Nil(t, root.FindParent(root))
	assert.Nil(t, root.FindParent(nil))
	assert.Same(t, root, root.FindParent(root.Child(0)))
	assert.Same(t, root.Child(1), root.FindParent(leafC))
	assert.Nil(t, root.FindParent(newLeafNode("stray", nil)))
	assert.Nil(t, leafC.FindParent(root))
}

func TestDockNode_Walk_StopsEarly(t *testing.T) {
	c := newSizedContainer(800, 600)
	a := newTestPanel("a", "main")
	b := newTestPanel("b", "main")
	leafA := c.AttachWidget(a, c.Root(), ZoneCenter, DefaultSplitRatio)
	require.NotNil(t, c.AttachWidget(b, leafA, ZoneRight, 0.5))

	var visited []*DockNode
	c.Root().Walk(func(node *DockNode) bool {
		visited = append(visited, node)
		return !node.IsLeaf()
	})

	require.Len(t, visited, 2)
	assert.Same(t, c.Root(), visited[0])
	assert.Same(t, c.Root().Child(0), visited[1])
	assert.Equal(t, 2, c.Root().LeafCount())
}

func TestDockNode_LeafAccessors(t *testing.T) {
	panel := newTestPanel("a", "main")
	leaf := newLeafNode("leaf-1", panel)

	assert.Equal(t, "leaf-1", leaf.ID())
	assert.True(t, leaf.IsLeaf())
	assert.False(t, leaf.IsSplit())
	assert.Equal(t, DockLeaf, leaf.Kind())
	assert.Equal(t, DockWidget(panel), leaf.Widget())
	assert.Equal(t, 0.0, leaf.SplitRatio())
	assert.Nil(t, leaf.Child(0))
	assert.Equal(t, uint64(0), leaf.Generation())
}
