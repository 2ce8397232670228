package gamemath

import "math"

// Vec is a 2D vector in pixels.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Mul(o Vec) Vec { return Vec{v.X * o.X, v.Y * o.Y} }
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }
func (v Vec) Length() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec) Lerp(o Vec, t float64) Vec { return Vec{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t)} }

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Overlaps reports whether r and o share any area. Touching edges do not
// overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{r.X + d, r.Y + d, r.W - 2*d, r.H - 2*d}
}

// Scale divides every component by unit, converting pixels to tiles.
func (r Rect) Scale(unit float64) Rect {
	return Rect{r.X / unit, r.Y / unit, r.W / unit, r.H / unit}
}

// Center returns the middle point of r.
func (r Rect) Center() Vec {
	return Vec{r.X + r.W/2, r.Y + r.H/2}
}

// TileSpan returns the inclusive tile range covered by r, which must already
// be in tile units. Bounds are truncated toward zero.
func (r Rect) TileSpan() (x0, y0, x1, y1 int) {
	return int(r.X), int(r.Y), int(r.X + r.W), int(r.Y + r.H)
}
