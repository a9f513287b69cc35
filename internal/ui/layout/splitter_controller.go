package layout

import (
	"context"

	"github.com/bnema/docking/internal/domain/entity"
	"github.com/bnema/docking/internal/logging"
	"github.com/rs/zerolog"
)

// SplitterDragController turns pointer press, motion and release into a
// splitter drag on a dock container. The host calls Tick once per frame
// while the button is held.
type SplitterDragController struct {
	container *entity.DockContainer
	cursor    CursorSource
	width     func() float64
	logger    zerolog.Logger
}

// NewSplitterDragController creates a controller hit-testing splitters
// with the renderer's strip width.
func NewSplitterDragController(
	ctx context.Context,
	container *entity.DockContainer,
	cursor CursorSource,
	renderer *DockRenderer,
) *SplitterDragController {
	log := logging.FromContext(ctx)
	width := func() float64 { return entity.DefaultSplitterWidth }
	if renderer != nil {
		width = renderer.SplitterWidth
	}
	return &SplitterDragController{
		container: container,
		cursor:    cursor,
		width:     width,
		logger:    log.With().Str("component", "splitter-drag").Logger(),
	}
}

// Hot returns the splitter under the cursor, or nil.
func (sc *SplitterDragController) Hot() *entity.DockNode {
	p := sc.cursor.CursorPosition()
	return sc.container.TraceSeparator(p.X, p.Y, sc.width())
}

// Active reports whether a drag is in progress.
func (sc *SplitterDragController) Active() bool {
	return sc.container.DraggedSplitter() != nil
}

// Press starts a drag if the cursor is over a splitter.
func (sc *SplitterDragController) Press() bool {
	p := sc.cursor.CursorPosition()
	split := sc.container.TraceSeparator(p.X, p.Y, sc.width())
	if split == nil {
		return false
	}
	if !sc.container.BeginSplitterDrag(split, p) {
		return false
	}
	sc.logger.Debug().
		Str("split_id", split.ID()).
		Float64("ratio", split.SplitRatio()).
		Msg("splitter drag started")
	return true
}

// Tick applies the current cursor position to the dragged splitter. It
// returns true when the layout changed.
func (sc *SplitterDragController) Tick() bool {
	return sc.container.UpdateSplitterDrag(sc.cursor.CursorPosition())
}

// Release applies the final cursor position and ends the drag.
func (sc *SplitterDragController) Release() bool {
	split := sc.container.DraggedSplitter()
	if split == nil {
		return false
	}
	changed := sc.Tick()
	sc.container.EndSplitterDrag()
	sc.logger.Debug().
		Str("split_id", split.ID()).
		Float64("ratio", split.SplitRatio()).
		Msg("splitter drag finished")
	return changed
}

// Cancel ends the drag. Ratios already applied stay in place.
func (sc *SplitterDragController) Cancel() {
	if sc.container.DraggedSplitter() == nil {
		return
	}
	sc.container.EndSplitterDrag()
	sc.logger.Debug().Msg("splitter drag cancelled")
}
