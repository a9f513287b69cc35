package model

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/docking/internal/cli/styles"
	"github.com/bnema/docking/internal/domain/entity"
	"github.com/bnema/docking/internal/ui/layout"
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellBorder
	cellBorderFocused
	cellTitle
	cellTitleFocused
	cellPaint
	cellHint
)

type cell struct {
	r     rune
	kind  cellKind
	paint layout.Paint
	tint  bool
}

// CellCanvas rasterises dock geometry onto a terminal grid. One unit of
// container space is one cell; a cell belongs to a shape when its centre
// does.
type CellCanvas struct {
	width  int
	height int
	cells  []cell
	theme  *styles.Theme
}

var _ layout.Canvas = (*CellCanvas)(nil)

// NewCellCanvas creates a blank width x height canvas.
func NewCellCanvas(width, height int, theme *styles.Theme) *CellCanvas {
	width = max(width, 0)
	height = max(height, 0)
	cells := make([]cell, width*height)
	for i := range cells {
		cells[i].r = ' '
	}
	return &CellCanvas{width: width, height: height, cells: cells, theme: theme}
}

func (c *CellCanvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return nil
	}
	return &c.cells[y*c.width+x]
}

func (c *CellCanvas) set(x, y int, r rune, kind cellKind) {
	if dst := c.at(x, y); dst != nil {
		dst.r = r
		dst.kind = kind
	}
}

// cellSpan returns the half-open index range of cells whose centres lie in
// [lo, hi), clipped to [0, limit).
func cellSpan(lo, hi float64, limit int) (int, int) {
	first := int(math.Ceil(lo - 0.5))
	last := int(math.Ceil(hi - 0.5))
	return max(first, 0), min(last, limit)
}

// FillRect draws a splitter strip as a line along its long side.
func (c *CellCanvas) FillRect(r entity.Rect, paint layout.Paint) {
	x0, x1 := cellSpan(r.Mins.X, r.Maxs.X, c.width)
	y0, y1 := cellSpan(r.Mins.Y, r.Maxs.Y, c.height)

	vertical := r.Height() >= r.Width()
	heavy := paint == layout.PaintSplitterHot || paint == layout.PaintSplitterDragged
	glyph := '─'
	switch {
	case vertical && heavy:
		glyph = '┃'
	case vertical:
		glyph = '│'
	case heavy:
		glyph = '━'
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst := c.at(x, y)
			dst.r = glyph
			dst.kind = cellPaint
			dst.paint = paint
		}
	}
}

// FillQuad tints every cell whose centre lies inside quad.
func (c *CellCanvas) FillQuad(quad [4]entity.Vec2, _ layout.Paint) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range quad {
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}

	x0, x1 := cellSpan(minX, maxX, c.width)
	y0, y1 := cellSpan(minY, maxY, c.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			centre := entity.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			if pointInPolygon(centre, quad[:]) {
				c.at(x, y).tint = true
			}
		}
	}
}

// pointInPolygon is the even-odd rule; vertex order does not matter.
func pointInPolygon(p entity.Vec2, poly []entity.Vec2) bool {
	inside := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			crossX := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// DrawPanel draws a rounded box over r with the title in its top edge.
func (c *CellCanvas) DrawPanel(r entity.Rect, title string, focused bool) {
	x0, x1 := cellSpan(r.Mins.X, r.Maxs.X, c.width)
	y0, y1 := cellSpan(r.Mins.Y, r.Maxs.Y, c.height)
	if x1-x0 < 2 || y1-y0 < 2 {
		return
	}

	border, titleKind := cellBorder, cellTitle
	if focused {
		border, titleKind = cellBorderFocused, cellTitleFocused
	}

	right, bottom := x1-1, y1-1
	for x := x0 + 1; x < right; x++ {
		c.set(x, y0, '─', border)
		c.set(x, bottom, '─', border)
	}
	for y := y0 + 1; y < bottom; y++ {
		c.set(x0, y, '│', border)
		c.set(right, y, '│', border)
	}
	c.set(x0, y0, '╭', border)
	c.set(right, y0, '╮', border)
	c.set(x0, bottom, '╰', border)
	c.set(right, bottom, '╯', border)

	room := right - x0 - 3
	if room <= 0 || title == "" {
		return
	}
	label := []rune(" " + title + " ")
	if len(label) > room {
		label = append(label[:room-1], '…')
	}
	for i, r := range label {
		c.set(x0+2+i, y0, r, titleKind)
	}
}

// DrawText writes s centred on row y.
func (c *CellCanvas) DrawText(y int, s string) {
	runes := []rune(s)
	x := (c.width - len(runes)) / 2
	for i, r := range runes {
		c.set(x+i, y, r, cellHint)
	}
}

func (c *CellCanvas) style(cl cell) lipgloss.Style {
	s := lipgloss.NewStyle()
	switch cl.kind {
	case cellBorder:
		s = s.Foreground(c.theme.Border)
	case cellBorderFocused:
		s = s.Foreground(c.theme.Focus)
	case cellTitle:
		s = c.theme.Normal
	case cellTitleFocused:
		s = s.Foreground(c.theme.Focus).Bold(true)
	case cellPaint:
		s = s.Foreground(c.theme.PaintColor(cl.paint))
	case cellHint:
		s = c.theme.Subtle
	}
	if cl.tint {
		s = s.Background(c.theme.Preview)
	}
	return s
}

// String renders the grid, one styled run per group of alike cells.
func (c *CellCanvas) String() string {
	rows := make([]string, 0, c.height)
	for y := 0; y < c.height; y++ {
		var b strings.Builder
		row := c.cells[y*c.width : (y+1)*c.width]
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && sameLook(row[start], row[end]) {
				end++
			}
			run := make([]rune, 0, end-start)
			for _, cl := range row[start:end] {
				run = append(run, cl.r)
			}
			b.WriteString(c.style(row[start]).Render(string(run)))
			start = end
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}

func sameLook(a, b cell) bool {
	return a.kind == b.kind && a.paint == b.paint && a.tint == b.tint
}
