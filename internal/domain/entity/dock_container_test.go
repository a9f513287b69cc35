package entity

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDockContainer(t *testing.T) {
	c := NewDockContainer("main")

	require.NotNil(t, c.Root())
	assert.True(t, c.Root().IsLeaf())
	assert.Nil(t, c.Root().Widget())
	assert.Equal(t, "main", c.Name())
	assert.True(t, strings.HasPrefix(c.ID(), "main-"))
	assert.True(t, strings.HasPrefix(c.Root().ID(), "main-"))
	assert.NotEqual(t, c.ID(), c.Root().ID())
	assert.NotEqual(t, c.ID(), NewDockContainer("main").ID())
	assert.Equal(t, DefaultMinSplitRatio, c.MinSplitRatio())
	assert.Empty(t, c.Widgets())
}

func TestNewDockContainer_Options(t *testing.T) {
	ids := []string{"container", "root", "near", "far"}
	next := 0
	gen := func() string {
		id := ids[next]
		next++
		return id
	}

	c := NewDockContainer("main", WithIDGenerator(gen), WithMinSplitRatio(0.1), WithMinSplitRatio(0.7))
	c.SetBounds(NewRect(0, 0, 100, 100))
	a := newTestPanel("a", "main")
	b := newTestPanel("b", "main")
	leafA := c.AttachWidget(a, c.Root(), ZoneCenter, DefaultSplitRatio)
	leafB := c.AttachWidget(b, leafA, ZoneLeft, 0.01)

	assert.Equal(t, "container", c.ID())
	assert.Equal(t, "root", c.Root().ID())
	assert.Equal(t, "near", leafB.ID())
	assert.Equal(t, "far", c.Root().Child(1).ID())
	assert.Equal(t, 0.1, c.MinSplitRatio())
	assert.Equal(t, 0.1, c.Root().SplitRatio())
}

func TestDockContainer_AttachDetachScenario(t *testing.T) {
	// Arrange
	c := newSizedContainer(800, 600)
	a := newTestPanel("A", "main")
	b := newTestPanel("B", "main")

	// Act: A fills the root
	leafA := c.AttachWidget(a, c.Root(), ZoneCenter, DefaultSplitRatio)

	// Assert
	require.Same(t, c.Root(), leafA)
	assert.True(t, c.Root().IsLeaf())
	assert.Equal(t, NewRect(0, 0, 800, 600), c.Root().Bounds())
	assert.Equal(t, NewRect(0, 0, 800, 600), a.rect())
	assert.Same(t, leafA, a.DockState().Leaf())
	assert.Equal(t, c.ID(), a.DockState().ContainerID())

	// Act: B docks right of A with a quarter ratio
	leafB := c.AttachWidget(b, leafA, ZoneRight, 0.25)

	// Assert
	root := c.Root()
	require.NotNil(t, leafB)
	assert.Equal(t, DockSplitVertical, root.Kind())
	assert.Equal(t, 0.25, root.SplitRatio())
	assert.Same(t, DockWidget(a), root.Child(0).Widget())
	assert.Same(t, DockWidget(b), root.Child(1).Widget())
	assert.Same(t, leafB, root.Child(1))
	assert.Equal(t, Rect{Mins: Vec2{0, 0}, Maxs: Vec2{200, 600}}, root.Child(0).Bounds())
	assert.Equal(t, Rect{Mins: Vec2{200, 0}, Maxs: Vec2{800, 600}}, root.Child(1).Bounds())
	assert.Equal(t, NewRect(0, 0, 200, 600), a.rect())
	assert.Equal(t, NewRect(200, 0, 600, 600), b.rect())
	assert.Same(t, root.Child(0), a.DockState().Leaf())
	assert.Same(t, root.Child(1), b.DockState().Leaf())

	// Act: B leaves again
	ok := c.DetachWidget(b)

	// Assert
	require.True(t, ok)
	assert.True(t, c.Root().IsLeaf())
	assert.Same(t, DockWidget(a), c.Root().Widget())
	assert.Equal(t, NewRect(0, 0, 800, 600), c.Root().Bounds())
	assert.Equal(t, NewRect(0, 0, 800, 600), a.rect())
	assert.Same(t, c.Root(), a.DockState().Leaf())
	assert.False(t, b.DockState().IsDocked())
	assert.Empty(t, b.DockState().ContainerID())
}

func TestDockContainer_AttachWidget_Zones(t *testing.T) {
	tests := []struct {
		zone     DockZone
		kind     DockNodeKind
		nearIdx  int
		nearRect Rect
		farRect  Rect
	}{
		{ZoneLeft, DockSplitVertical, 0, NewRect(0, 0, 300, 400), NewRect(300, 0, 700, 400)},
		{ZoneRight, DockSplitVertical, 1, NewRect(300, 0, 700, 400), NewRect(0, 0, 300, 400)},
		{ZoneTop, DockSplitHorizontal, 0, NewRect(0, 0, 1000, 120), NewRect(0, 120, 1000, 280)},
		{ZoneBottom, DockSplitHorizontal, 1, NewRect(0, 120, 1000, 280), NewRect(0, 0, 1000, 120)},
	}

	for _, tt := range tests {
		t.Run(tt.zone.String(), func(t *testing.T) {
			// Arrange
			c := newSizedContainer(1000, 400)
			occupant := newTestPanel("occupant", "main")
			incoming := newTestPanel("incoming", "main")
			leaf := c.AttachWidget(occupant, c.Root(), ZoneCenter, DefaultSplitRatio)
			generation := leaf.Generation()

			// Act
			near := c.AttachWidget(incoming, leaf, tt.zone, 0.3)

			// Assert
			require.NotNil(t, near)
			assert.Same(t, leaf, c.Root(), "split happens in place")
			assert.Greater(t, leaf.Generation(), generation)
			assert.Equal(t, tt.kind, leaf.Kind())
			assert.Nil(t, leaf.Widget())
			assert.Same(t, near, leaf.Child(tt.nearIdx))
			assert.Same(t, DockWidget(incoming), near.Widget())
			far := leaf.Child(1 - tt.nearIdx)
			assert.Same(t, DockWidget(occupant), far.Widget())
			assert.Same(t, far, occupant.DockState().Leaf())
			assert.Equal(t, tt.nearRect, incoming.rect())
			assert.Equal(t, tt.farRect, occupant.rect())
		})
	}
}

func TestDockContainer_AttachWidget_DirectionalOnEmptyLeafFills(t *testing.T) {
	c := newSizedContainer(800, 600)
	a := newTestPanel("a", "main")

	leaf := c.AttachWidget(a, c.Root(), ZoneLeft, 0.3)

	require.Same(t, c.Root(), leaf)
	assert.True(t, leaf.IsLeaf())
	assert.Equal(t, NewRect(0, 0, 800, 600), a.rect())
}

func TestDockContainer_AttachWidget_CenterReplacesOccupant(t *testing.T) {
	c := newSizedContainer(800, 600)
	a := newTestPanel("a", "main")
	b := newTestPanel("b", "main")
	leaf := c.AttachWidget(a, c.Root(), ZoneCenter, DefaultSplitRatio)

	got := c.AttachWidget(b, leaf, ZoneCenter, DefaultSplitRatio)

	assert.Same(t, leaf, got)
	assert.Same(t, DockWidget(b), leaf.Widget())
	assert.False(t, a.DockState().IsDocked())
	assert.Same(t, leaf, b.DockState().Leaf())
	assert.Equal(t, []DockWidget{b}, c.Widgets())
}

func TestDockContainer_AttachWidget_Preconditions(t *testing.T) {
	c := newSizedContainer(800, 600)
	other := NewDockContainer("main")
	docked := newTestPanel("docked", "main")
	sibling := newTestPanel("sibling", "main")
	leaf := c.AttachWidget(docked, c.Root(), ZoneCenter, DefaultSplitRatio)
	require.NotNil(t, c.AttachWidget(sibling, leaf, ZoneRight, 0.5))
	split := c.Root()

	tests := []struct {
		name     string
		widget   DockWidget
		leaf     *DockNode
		expected error
	}{
		{name: "nil widget", widget: nil, leaf: split.Child(0), expected: ErrNilWidget},
		{name: "already docked", widget: docked, leaf: split.Child(1), expected: ErrWidgetDocked},
		{name: "other container name", widget: newTestPanel("x", "side"), leaf: split.Child(0), expected: ErrContainerMismatch},
		{name: "nil leaf", widget: newTestPanel("x", "main"), leaf: nil, expected: ErrNilLeaf},
		{name: "split node", widget: newTestPanel("x", "main"), leaf: split, expected: ErrNotLeaf},
		{name: "foreign leaf", widget: newTestPanel("x", "main"), leaf: other.Root(), expected: ErrNodeNotOwned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generation := split.Generation()
			before := c.Widgets()

			assert.ErrorIs(t, c.ValidateAttach(tt.widget, tt.leaf), tt.expected)
			assert.Nil(t, c.AttachWidget(tt.widget, tt.leaf, ZoneLeft, 0.5))

			assert.Equal(t, generation, split.Generation())
			assert.Equal(t, before, c.Widgets())
			assert.Equal(t, 2, c.LeafCount())
		})
	}
}

func TestDockContainer_DetachWidget_Preconditions(t *testing.T) {
	c := newSizedContainer(800, 600)
	other := NewDockContainer("main")
	docked := newTestPanel("docked", "main")
	elsewhere := newTestPanel("elsewhere", "main")
	require.NotNil(t, c.AttachWidget(docked, c.Root(), ZoneCenter, DefaultSplitRatio))
	require.NotNil(t, other.AttachWidget(elsewhere, other.Root(), ZoneCenter, DefaultSplitRatio))

	assert.ErrorIs(t, c.ValidateDetach(nil), ErrNilWidget)
	assert.ErrorIs(t, c.ValidateDetach(newTestPanel("loose", "main")), ErrWidgetNotDocked)
	assert.ErrorIs(t, c.ValidateDetach(elsewhere), ErrContainerMismatch)
	assert.NoError(t, c.ValidateDetach(docked))

	assert.False(t, c.DetachWidget(elsewhere))
	assert.True(t, elsewhere.DockState().IsDocked())
	assert.Same(t, DockWidget(elsewhere), other.Root().Widget())
}

func TestDockContainer_DetachLeaf(t *testing.T) {
	t.Run("root leaf is emptied in place", func(t *testing.T) {
		c := newSizedContainer(800, 600)
		a := newTestPanel("a", "main")
		root := c.AttachWidget(a, c.Root(), ZoneCenter, DefaultSplitRatio)

		widget, ok := c.DetachLeaf(root)

		assert.True(t, ok)
		assert.Same(t, DockWidget(a), widget)
		assert.Same(t, root, c.Root())
		assert.True(t, root.IsLeaf())
		assert.Nil(t, root.Widget())
		assert.False(t, a.DockState().IsDocked())
	})

	t.Run("empty root leaf", func(t *testing.T) {
		c := newSizedContainer(800, 600)

		widget, ok := c.DetachLeaf(c.Root())

		assert.True(t, ok)
		assert.Nil(t, widget)
	})

	t.Run("split node is rejected", func(t *testing.T) {
		c := newSizedContainer(800, 600)
		a := newTestPanel("a", "main")
		b := newTestPanel("b", "main")
		leaf := c.AttachWidget(a, c.Root(), ZoneCenter, DefaultSplitRatio)
		require.NotNil(t, c.AttachWidget(b, leaf, ZoneTop, 0.5))

		widget, ok := c.DetachLeaf(c.Root())

		assert.False(t, ok)
		assert.Nil(t, widget)
		assert.Equal(t, 2, c.LeafCount())
	})

	t.Run("parent adopts a split sibling", func(t *testing.T) {
		// Arrange: A | (B over C)
		c := newSizedContainer(800, 600)
		a := newTestPanel("a", "main")
		b := newTestPanel("b", "main")
		d := newTestPanel("c", "main")
		leafA := c.AttachWidget(a, c.Root(), ZoneCenter, DefaultSplitRatio)
		leafB := c.AttachWidget(b, leafA, ZoneRight, 0.5)
		leafC := c.AttachWidget(d, leafB, ZoneBottom, 0.5)
		root := c.Root()
		removed := root.Child(0)

		// Act
		widget, ok := c.DetachLeaf(a.DockState().Leaf())

		// Assert
		require.True(t, ok)
		assert.Same(t, DockWidget(a), widget)
		assert.Same(t, root, c.Root())
		assert.Equal(t, DockSplitHorizontal, root.Kind())
		assert.Same(t, leafC, root.Child(1))
		assert.Same(t, leafC, d.DockState().Leaf())
		assert.True(t, c.Owns(b.DockState().Leaf()))
		assert.False(t, c.Owns(removed))
		assert.Equal(t, NewRect(0, 0, 800, 300), b.rect())
		assert.Equal(t, NewRect(0, 300, 800, 300), d.rect())
		assert.Equal(t, []DockWidget{b, d}, c.Widgets())
	})
}

func TestDockContainer_Widgets_DepthFirstOrder(t *testing.T) {
	c := newSizedContainer(800, 600)
	a := newTestPanel("a", "main")
	b := newTestPanel("b", "main")
	d := newTestPanel("c", "main")
	e := newTestPanel("d", "main")

	leafA := c.AttachWidget(a, c.Root(), ZoneCenter, DefaultSplitRatio)
	leafB := c.AttachWidget(b, leafA, ZoneRight, 0.5)
	require.NotNil(t, c.AttachWidget(d, a.DockState().Leaf(), ZoneLeft, 0.5))
	require.NotNil(t, c.AttachWidget(e, leafB, ZoneBottom, 0.5))

	assert.Equal(t, []DockWidget{d, a, b, e}, c.Widgets())
	assert.Equal(t, 4, c.LeafCount())
	assert.Len(t, c.Leaves(), 4)
}

func TestDockContainer_RoundTrip(t *testing.T) {
	for _, zone := range []DockZone{ZoneLeft, ZoneRight, ZoneTop, ZoneBottom} {
		t.Run(zone.String(), func(t *testing.T) {
			// Arrange
			c := newSizedContainer(640, 480)
			a := newTestPanel("a", "main")
			b := newTestPanel("b", "main")
			leafA := c.AttachWidget(a, c.Root(), ZoneCenter, DefaultSplitRatio)
			leafB := c.AttachWidget(b, leafA, ZoneBottom, 0.4)
			before := c.Widgets()
			rectA, rectB := a.rect(), b.rect()
			w := newTestPanel("w", "main")

			// Act
			require.NotNil(t, c.AttachWidget(w, leafB, zone, 0.3))
			require.True(t, c.DetachWidget(w))

			// Assert
			assert.Equal(t, before, c.Widgets())
			assert.Equal(t, 2, c.LeafCount())
			assert.Equal(t, rectA, a.rect())
			assert.Equal(t, rectB, b.rect())
			assert.False(t, w.DockState().IsDocked())
		})
	}
}

func TestDockContainer_BoundsPartition(t *testing.T) {
	// Arrange
	c := newSizedContainer(1024, 768)
	leaf := c.AttachWidget(newTestPanel("p0", "main"), c.Root(), ZoneCenter, DefaultSplitRatio)
	zones := []DockZone{ZoneRight, ZoneBottom, ZoneLeft, ZoneTop, ZoneRight, ZoneBottom}
	ratios := []float64{0.3, 0.7, 0.45, 0.2, 0.9, 0.5}
	for i, zone := range zones {
		leaf = c.AttachWidget(newTestPanel("p", "main"), leaf, zone, ratios[i])
		require.NotNil(t, leaf)
	}

	// Act
	leaves := c.Leaves()

	// Assert
	area := 0.0
	for i, l := range leaves {
		area += l.Bounds().Width() * l.Bounds().Height()
		assert.False(t, l.Bounds().IsEmpty())
		for _, other := range leaves[i+1:] {
			assert.False(t, l.Bounds().Overlaps(other.Bounds()))
		}
	}
	assert.InDelta(t, 1024.0*768.0, area, 1e-6)

	c.Walk(func(node *DockNode) bool {
		if node.IsSplit() {
			first, second := node.Child(0).Bounds(), node.Child(1).Bounds()
			if node.Kind() == DockSplitVertical {
				assert.Equal(t, first.Maxs.X, second.Mins.X)
			} else {
				assert.Equal(t, first.Maxs.Y, second.Mins.Y)
			}
		}
		return true
	})
}

func TestDockContainer_UpdateDocks_Idempotent(t *testing.T) {
	c := newSizedContainer(800, 600)
	a := newTestPanel("a", "main")
	b := newTestPanel("b", "main")
	leafA := c.AttachWidget(a, c.Root(), ZoneCenter, DefaultSplitRatio)
	require.NotNil(t, c.AttachWidget(b, leafA, ZoneTop, 1.0/3.0))

	c.UpdateDocks()
	first := []Rect{a.rect(), b.rect(), c.Root().Child(0).Bounds(), c.Root().Child(1).Bounds()}
	c.UpdateDocks()
	second := []Rect{a.rect(), b.rect(), c.Root().Child(0).Bounds(), c.Root().Child(1).Bounds()}

	assert.Equal(t, first, second)
}

func TestDockContainer_SetBounds_Repropagates(t *testing.T) {
	c := newSizedContainer(800, 600)
	a := newTestPanel("a", "main")
	b := newTestPanel("b", "main")
	leafA := c.AttachWidget(a, c.Root(), ZoneCenter, DefaultSplitRatio)
	require.NotNil(t, c.AttachWidget(b, leafA, ZoneRight, 0.25))

	c.SetBounds(NewRect(100, 50, 400, 200))

	assert.Equal(t, NewRect(100, 50, 400, 200), c.Bounds())
	assert.Equal(t, NewRect(100, 50, 100, 200), a.rect())
	assert.Equal(t, NewRect(200, 50, 300, 200), b.rect())
}

func TestDockContainer_SetSplitRatio(t *testing.T) {
	c := newSizedContainer(800, 600)
	a := newTestPanel("a", "main")
	b := newTestPanel("b", "main")
	leafA := c.AttachWidget(a, c.Root(), ZoneCenter, DefaultSplitRatio)
	leafB := c.AttachWidget(b, leafA, ZoneRight, 0.25)
	root := c.Root()

	tests := []struct {
		name     string
		ratio    float64
		expected float64
	}{
		{name: "in range", ratio: 0.6, expected: 0.6},
		{name: "below minimum", ratio: -2, expected: DefaultMinSplitRatio},
		{name: "above maximum", ratio: 1, expected: 1 - DefaultMinSplitRatio},
		{name: "not a number", ratio: math.NaN(), expected: DefaultSplitRatio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, c.SetSplitRatio(root, tt.ratio))
			assert.InDelta(t, tt.expected, root.SplitRatio(), 1e-12)
			assert.InDelta(t, 800*tt.expected, a.size.X, 1e-9)
		})
	}

	assert.False(t, c.SetSplitRatio(leafB, 0.5))
	assert.False(t, c.SetSplitRatio(nil, 0.5))
}

func TestDockContainer_PlacementAt(t *testing.T) {
	t.Run("single root leaf only offers center", func(t *testing.T) {
		c := newSizedContainer(400, 300)
		require.NotNil(t, c.AttachWidget(newTestPanel("a", "main"), c.Root(), ZoneCenter, DefaultSplitRatio))

		p := c.PlacementAt(0, 150)

		assert.True(t, p.OK())
		assert.Same(t, c.Root(), p.Leaf)
		assert.Equal(t, ZoneCenter, p.Zone)
		assert.Equal(t, c.Root().Bounds().Corners(), p.Polygon)
	})

	t.Run("outside the container", func(t *testing.T) {
		c := newSizedContainer(400, 300)

		p := c.PlacementAt(500, 150)

		assert.False(t, p.OK())
	})

	t.Run("split container classifies against the leaf under the cursor", func(t *testing.T) {
		c := newSizedContainer(800, 300)
		a := newTestPanel("a", "main")
		b := newTestPanel("b", "main")
		leafA := c.AttachWidget(a, c.Root(), ZoneCenter, DefaultSplitRatio)
		leafB := c.AttachWidget(b, leafA, ZoneRight, 0.5)

		left := c.PlacementAt(0, 150)
		center := c.PlacementAt(200, 150)
		right := c.PlacementAt(799, 150)

		assert.Same(t, a.DockState().Leaf(), left.Leaf)
		assert.Equal(t, ZoneLeft, left.Zone)
		assert.Equal(t, ZoneCenter, center.Zone)
		assert.Same(t, leafB, right.Leaf)
		assert.Equal(t, ZoneRight, right.Zone)
		assert.InDelta(t, 800.0, right.Polygon[0].X, 1e-9)
	})
}
