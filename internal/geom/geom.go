// Package geom holds the screen-space primitives shared by the simulation and
// the frontends.
package geom

// Vec is a 2D pair in screen units. It is used both for positions (x, y) and
// for sizes (width, height).
type Vec struct {
	X float64 `toml:"x" yaml:"x"`
	Y float64 `toml:"y" yaml:"y"`
}

// V is shorthand for building a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Half returns the vector scaled by one half.
func (v Vec) Half() Vec {
	return Vec{X: v.X / 2, Y: v.Y / 2}
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	Pos  Vec
	Size Vec
}

// R builds a Rect from a position and a size.
func R(pos, size Vec) Rect {
	return Rect{Pos: pos, Size: size}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Pos.X + r.Size.X
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Pos.Y + r.Size.Y
}

// Center returns the centre point of the rectangle.
func (r Rect) Center() Vec {
	return r.Pos.Add(r.Size.Half())
}

// Overlaps reports whether the two rectangles intersect. The test is strict:
// rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Right() > o.Pos.X &&
		r.Pos.X < o.Right() &&
		r.Bottom() > o.Pos.Y &&
		r.Pos.Y < o.Bottom()
}
