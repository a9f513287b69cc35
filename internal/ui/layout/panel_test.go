package layout_test

import (
	"testing"

	"github.com/bnema/docking/internal/domain/entity"
	"github.com/bnema/docking/internal/ui/layout"
	"github.com/stretchr/testify/assert"
)

func TestPanel_ReceivesGeometry(t *testing.T) {
	_, left, right := newSideBySide(t)

	assert.Equal(t, entity.NewRect(0, 0, 400, 300), left.Rect())
	assert.Equal(t, entity.NewRect(400, 0, 400, 300), right.Rect())
	assert.True(t, left.IsDocked())
	assert.Equal(t, "left", left.Title())
}

func TestPanel_Undocked(t *testing.T) {
	p := layout.NewPanel("log", "side")

	assert.False(t, p.IsDocked())
	assert.Equal(t, "side", p.DockContainerName())
	assert.Same(t, p.DockState(), p.DockState())
	assert.True(t, p.Rect().IsEmpty())
}

func TestPaint_String(t *testing.T) {
	tests := []struct {
		paint layout.Paint
		want  string
	}{
		{layout.PaintSplitter, "splitter"},
		{layout.PaintSplitterHot, "splitter-hot"},
		{layout.PaintSplitterDragged, "splitter-dragged"},
		{layout.PaintPreview, "preview"},
		{layout.Paint(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.paint.String())
		})
	}
}
