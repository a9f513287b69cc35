package layout

import (
	"context"
	"errors"

	"github.com/bnema/docking/internal/application/usecase"
	"github.com/bnema/docking/internal/domain/entity"
	"github.com/bnema/docking/internal/logging"
)

// ErrNoDragInProgress is returned by Drop when no panel is being dragged.
var ErrNoDragInProgress = errors.New("no panel drag in progress")

// DropSession tracks one panel drag from pick-up to drop. While active,
// Hover recomputes the placement preview under the cursor.
type DropSession struct {
	docks     *usecase.ManageDocksUseCase
	container *entity.DockContainer
	cursor    CursorSource
	ratio     float64

	widget  entity.DockWidget
	preview entity.Placement
}

// NewDropSession creates an idle session. ratio is passed to every drop;
// zero selects the use case default.
func NewDropSession(
	docks *usecase.ManageDocksUseCase,
	container *entity.DockContainer,
	cursor CursorSource,
	ratio float64,
) *DropSession {
	return &DropSession{
		docks:     docks,
		container: container,
		cursor:    cursor,
		ratio:     ratio,
	}
}

// Begin picks up widget. It fails if a drag is already running or the
// widget may not dock into this container.
func (s *DropSession) Begin(ctx context.Context, widget entity.DockWidget) bool {
	log := logging.FromContext(ctx)
	if widget == nil || s.widget != nil {
		return false
	}
	if widget.DockContainerName() != s.container.Name() {
		log.Warn().
			Str("container", s.container.Name()).
			Str("widget_container", widget.DockContainerName()).
			Msg("panel cannot dock into this container")
		return false
	}
	s.widget = widget
	s.preview = entity.Placement{}
	log.Debug().Msg("panel drag started")
	return true
}

// Active reports whether a panel is being dragged.
func (s *DropSession) Active() bool {
	return s.widget != nil
}

// Widget returns the dragged panel, or nil.
func (s *DropSession) Widget() entity.DockWidget {
	return s.widget
}

// Hover updates and returns the placement preview under the cursor.
func (s *DropSession) Hover() entity.Placement {
	if s.widget == nil {
		return entity.Placement{}
	}
	p := s.cursor.CursorPosition()
	s.preview = s.container.PlacementAt(p.X, p.Y)
	return s.preview
}

// Preview returns the placement computed by the last Hover.
func (s *DropSession) Preview() entity.Placement {
	return s.preview
}

// Drop docks the dragged panel at the cursor and ends the session. The
// session ends even when the drop fails.
func (s *DropSession) Drop(ctx context.Context) (*usecase.DropOutput, error) {
	if s.widget == nil {
		return nil, ErrNoDragInProgress
	}
	widget := s.widget
	s.reset()

	return s.docks.DropAt(ctx, usecase.DropInput{
		Container: s.container,
		Widget:    widget,
		Cursor:    s.cursor.CursorPosition(),
		Ratio:     s.ratio,
	})
}

// Cancel abandons the drag without touching the tree.
func (s *DropSession) Cancel(ctx context.Context) {
	if s.widget == nil {
		return
	}
	s.reset()
	logging.FromContext(ctx).Debug().Msg("panel drag cancelled")
}

func (s *DropSession) reset() {
	s.widget = nil
	s.preview = entity.Placement{}
}
