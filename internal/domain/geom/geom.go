// Package geom provides world-space geometry shared by movement, targeting and
// rendering: rectangles, points and the two collision queries the game relies on.
package geom

import "math"

// Point is a world-space (or screen-space) position in pixels.
type Point struct {
	X, Y float64
}

// Add returns p translated by v.
func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec {
	return Vec{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec is a displacement or direction.
type Vec struct {
	X, Y float64
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Normalize returns the unit vector of v and false when v has zero length.
func (v Vec) Normalize() (Vec, bool) {
	l := v.Len()
	if l == 0 {
		return Vec{}, false
	}
	return Vec{X: v.X / l, Y: v.Y / l}, true
}

// Rect is an axis-aligned box. X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the centre point of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// TopLeft returns the position of r.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// Translate returns r moved by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inflate grows r by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// ContainsPoint reports whether p lies inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive, so a point on a shared edge
// belongs to exactly one of two adjacent rects.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersects reports whether a and b share any area. Rects that only touch along
// an edge or a corner do not intersect.
func Intersects(a, b Rect) bool {
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// LineOfSightBlocked reports whether the segment from -> to touches any of the
// obstacles, edges included.
func LineOfSightBlocked(from, to Point, obstacles []Rect) bool {
	for _, o := range obstacles {
		if SegmentTouchesRect(from, to, o) {
			return true
		}
	}
	return false
}

// SegmentTouchesRect clips the segment a -> b against the closed rectangle r
// (Liang-Barsky) and reports whether any part of it remains.
func SegmentTouchesRect(a, b Point, r Rect) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{a.X - r.X, r.Right() - a.X, a.Y - r.Y, r.Bottom() - a.Y}

	t0, t1 := 0.0, 1.0
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			// Parallel to this edge: outside means no intersection at all
			if q[i] < 0 {
				return false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return t0 <= t1
}
