package layout

import (
	"context"
	"sync"

	"github.com/bnema/docking/internal/domain/entity"
	"github.com/bnema/docking/internal/logging"
	"github.com/rs/zerolog"
)

// Overlay carries the transient interaction state painted over the tree.
type Overlay struct {
	// Hot is the splitter under the cursor, or nil.
	Hot *entity.DockNode
	// Preview is the pending drop placement; ignored unless Preview.OK().
	Preview entity.Placement
}

// DockRenderer paints the splitters of a dock container and the drop
// preview of a panel drag. It keeps the strips of the last pass so hosts
// can look them up by split id.
type DockRenderer struct {
	splitterWidth float64
	logger        zerolog.Logger
	splitterRects map[string]entity.Rect
	mu            sync.RWMutex
}

// NewDockRenderer creates a renderer painting splitters splitterWidth wide.
// Non-positive widths fall back to entity.DefaultSplitterWidth.
func NewDockRenderer(ctx context.Context, splitterWidth float64) *DockRenderer {
	log := logging.FromContext(ctx)
	log.Debug().Float64("splitter_width", splitterWidth).Msg("creating dock renderer")

	if splitterWidth <= 0 {
		splitterWidth = entity.DefaultSplitterWidth
	}
	return &DockRenderer{
		splitterWidth: splitterWidth,
		logger:        log.With().Str("component", "dock-renderer").Logger(),
		splitterRects: make(map[string]entity.Rect),
	}
}

// SplitterWidth returns the hit-test and paint width of splitter strips.
func (r *DockRenderer) SplitterWidth() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.splitterWidth
}

// SetSplitterWidth changes the strip width used by later passes.
func (r *DockRenderer) SetSplitterWidth(width float64) {
	if width <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.splitterWidth = width
}

// Render paints every splitter of c, then the drop preview. The dragged
// splitter wins over the hot one.
func (r *DockRenderer) Render(canvas Canvas, c *entity.DockContainer, overlay Overlay) {
	if canvas == nil || c == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dragged := c.DraggedSplitter()
	rects := make(map[string]entity.Rect, len(r.splitterRects))

	c.Walk(func(node *entity.DockNode) bool {
		if !node.IsSplit() {
			return true
		}
		strip := node.SplitterBounds(r.splitterWidth)
		rects[node.ID()] = strip

		paint := PaintSplitter
		switch node {
		case dragged:
			paint = PaintSplitterDragged
		case overlay.Hot:
			paint = PaintSplitterHot
		}
		canvas.FillRect(strip, paint)
		return true
	})
	r.splitterRects = rects

	if overlay.Preview.OK() {
		canvas.FillQuad(overlay.Preview.Polygon, PaintPreview)
	}

	r.logger.Trace().
		Int("splitters", len(rects)).
		Bool("preview", overlay.Preview.OK()).
		Msg("rendered dock overlay")
}

// SplitterAt returns the split whose strip contains p, or nil.
func (r *DockRenderer) SplitterAt(c *entity.DockContainer, p entity.Vec2) *entity.DockNode {
	if c == nil {
		return nil
	}
	r.mu.RLock()
	width := r.splitterWidth
	r.mu.RUnlock()
	return c.TraceSeparator(p.X, p.Y, width)
}

// Lookup returns the strip painted for a split in the last pass.
func (r *DockRenderer) Lookup(splitID string) (entity.Rect, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rect, ok := r.splitterRects[splitID]
	return rect, ok
}

// SplitterCount returns the number of strips painted in the last pass.
func (r *DockRenderer) SplitterCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.splitterRects)
}
