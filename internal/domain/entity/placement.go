package entity

// Placement is the preview of where a dragged panel would dock.
type Placement struct {
	Leaf    *DockNode
	Zone    DockZone
	Polygon [4]Vec2 // highlight quad in container coordinates
}

// OK reports whether the cursor was over a leaf.
func (p Placement) OK() bool {
	return p.Leaf != nil
}

// Edge band widths of the drop zones, in leaf-normalized units.
const (
	placementEdgeMin = 0.2
	placementEdgeMax = 0.8
)

// ClassifyPlacement maps (x, y) to a drop zone of a leaf with the given
// bounds and returns the zone's highlight quad in container coordinates.
// The leaf is cut along its diagonals; a point in a triangle selects that
// side's zone only if it lies within the edge band, otherwise Center.
func ClassifyPlacement(x, y float64, bounds Rect) (DockZone, [4]Vec2) {
	size := bounds.Size()
	if size.X <= 0 || size.Y <= 0 {
		return ZoneCenter, bounds.Corners()
	}

	nx := (x - bounds.Mins.X) / size.X
	ny := (y - bounds.Mins.Y) / size.Y

	aspect := size.X / size.Y
	xmin := placementEdgeMin
	xmax := placementEdgeMax
	ymin := placementEdgeMin * aspect
	ymax := 1 - ymin

	zone := ZoneCenter
	if nx > ny {
		if 1-nx < ny {
			if nx > xmax {
				zone = ZoneRight
			}
		} else if ny < ymin {
			zone = ZoneTop
		}
	} else {
		if 1-nx > ny {
			if nx < xmin {
				zone = ZoneLeft
			}
		} else if ny > ymax {
			zone = ZoneBottom
		}
	}

	var quad [4]Vec2
	switch zone {
	case ZoneLeft:
		quad = [4]Vec2{{0, 0}, {xmin, ymin}, {xmin, ymax}, {0, 1}}
	case ZoneRight:
		quad = [4]Vec2{{1, 0}, {1, 1}, {xmax, ymax}, {xmax, ymin}}
	case ZoneTop:
		quad = [4]Vec2{{0, 0}, {1, 0}, {xmax, ymin}, {xmin, ymin}}
	case ZoneBottom:
		quad = [4]Vec2{{xmin, ymax}, {xmax, ymax}, {1, 1}, {0, 1}}
	default:
		quad = [4]Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	}

	for i, v := range quad {
		quad[i] = v.Scale(size).Add(bounds.Mins)
	}
	return zone, quad
}
