// Package layout drives a dock container from a host: it paints splitters
// and drop previews onto a Canvas and turns cursor input into splitter
// drags and panel drops.
package layout

import "github.com/bnema/docking/internal/domain/entity"

// Paint selects the colour role of a filled shape. The host maps roles to
// actual colours.
type Paint int

const (
	PaintSplitter Paint = iota
	PaintSplitterHot
	PaintSplitterDragged
	PaintPreview
)

func (p Paint) String() string {
	switch p {
	case PaintSplitter:
		return "splitter"
	case PaintSplitterHot:
		return "splitter-hot"
	case PaintSplitterDragged:
		return "splitter-dragged"
	case PaintPreview:
		return "preview"
	default:
		return "unknown"
	}
}

// Canvas receives the shapes produced by a render pass, in container
// coordinates.
type Canvas interface {
	FillRect(r entity.Rect, paint Paint)
	FillQuad(quad [4]entity.Vec2, paint Paint)
}

// CursorSource reports the pointer position in container coordinates.
type CursorSource interface {
	CursorPosition() entity.Vec2
}
