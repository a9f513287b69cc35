package entity

// DockZone is the region of a leaf a dragged panel is dropped onto.
type DockZone int

const (
	ZoneCenter DockZone = iota // Replace or fill the leaf
	ZoneLeft
	ZoneRight
	ZoneTop
	ZoneBottom
)

// String returns the lowercase zone name.
func (z DockZone) String() string {
	switch z {
	case ZoneCenter:
		return "center"
	case ZoneLeft:
		return "left"
	case ZoneRight:
		return "right"
	case ZoneTop:
		return "top"
	case ZoneBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// ParseDockZone parses a zone name as produced by String.
func ParseDockZone(s string) (DockZone, bool) {
	switch s {
	case "center", "":
		return ZoneCenter, true
	case "left":
		return ZoneLeft, true
	case "right":
		return ZoneRight, true
	case "top":
		return ZoneTop, true
	case "bottom":
		return ZoneBottom, true
	default:
		return ZoneCenter, false
	}
}

// zoneSplit describes how a directional zone splits an occupied leaf.
type zoneSplit struct {
	kind DockNodeKind
	near int // child index receiving the incoming widget
}

var zoneSplits = map[DockZone]zoneSplit{
	ZoneLeft:   {kind: DockSplitVertical, near: 0},
	ZoneRight:  {kind: DockSplitVertical, near: 1},
	ZoneTop:    {kind: DockSplitHorizontal, near: 0},
	ZoneBottom: {kind: DockSplitHorizontal, near: 1},
}
