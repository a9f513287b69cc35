// Package entity defines domain entities for the docking engine.
package entity

// Vec2 is a point or extent in container (desktop) coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies v component-wise by s.
func (v Vec2) Scale(s Vec2) Vec2 {
	return Vec2{X: v.X * s.X, Y: v.Y * s.Y}
}

// Rect is an axis-aligned rectangle stored as its min and max corners.
// Containment is half-open: Mins is inside, Maxs is not, so two rectangles
// sharing an edge never both contain a point on it.
type Rect struct {
	Mins, Maxs Vec2
}

// NewRect builds a rect from a top-left position and a size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{
		Mins: Vec2{X: x, Y: y},
		Maxs: Vec2{X: x + w, Y: y + h},
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Maxs.X - r.Mins.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Maxs.Y - r.Mins.Y
}

// Size returns the extent as a vector.
func (r Rect) Size() Vec2 {
	return r.Maxs.Sub(r.Mins)
}

// IsEmpty reports whether the rect has no area.
func (r Rect) IsEmpty() bool {
	return r.Maxs.X <= r.Mins.X || r.Maxs.Y <= r.Mins.Y
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Mins.X && x < r.Maxs.X && y >= r.Mins.Y && y < r.Maxs.Y
}

// Overlaps reports whether r and o share any area.
func (r Rect) Overlaps(o Rect) bool {
	return r.Mins.X < o.Maxs.X && o.Mins.X < r.Maxs.X &&
		r.Mins.Y < o.Maxs.Y && o.Mins.Y < r.Maxs.Y
}

// Corners returns the four corners clockwise from the top-left.
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		r.Mins,
		{X: r.Maxs.X, Y: r.Mins.Y},
		r.Maxs,
		{X: r.Mins.X, Y: r.Maxs.Y},
	}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: lerp(r.Mins.X, r.Maxs.X, 0.5), Y: lerp(r.Mins.Y, r.Maxs.Y, 0.5)}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
