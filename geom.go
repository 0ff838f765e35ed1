package plot

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used when comparing pixel coordinates.
const Epsilon = 1e-10

var nan = math.NaN()

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

////////////////////////////////////////////////////////////////

// Point is a pixel coordinate in the plot's own frame, with the origin in the bottom-left corner.
type Point struct {
	X, Y float64
}

// IsFinite returns true if both coordinates are finite numbers. Data with non-finite positions cannot be drawn or hit-tested.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Dist returns the Euclidean distance between P and Q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle with the origin in its bottom-left corner. A zero width and height rectangle is a point box.
type Rect struct {
	X, Y, W, H float64
}

// RectFromPoint returns the point box at P.
func RectFromPoint(p Point) Rect {
	return Rect{p.X, p.Y, 0.0, 0.0}
}

// Center returns the center position of the rectangle.
func (r Rect) Center() Point {
	return Point{r.X + r.W/2.0, r.Y + r.H/2.0}
}

// Move translates the rectangle by P.
func (r Rect) Move(p Point) Rect {
	r.X += p.X
	r.Y += p.Y
	return r
}

// Add returns the union of both rectangles.
func (r Rect) Add(q Rect) Rect {
	x0 := math.Min(r.X, q.X)
	y0 := math.Min(r.Y, q.Y)
	x1 := math.Max(r.X+r.W, q.X+q.W)
	y1 := math.Max(r.Y+r.H, q.Y+q.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// AddPoint returns the union of the rectangle and the point box at P.
func (r Rect) AddPoint(p Point) Rect {
	return r.Add(RectFromPoint(p))
}

// Contains returns true if the rectangle contains P, including its edges.
func (r Rect) Contains(p Point) bool {
	return r.X <= p.X && p.X <= r.X+r.W && r.Y <= p.Y && p.Y <= r.Y+r.H
}

// OverlapsX returns true if both rectangles overlap on the x axis, including edge contact.
func (r Rect) OverlapsX(q Rect) bool {
	return r.X <= q.X+q.W && q.X <= r.X+r.W
}

// OverlapsY returns true if both rectangles overlap on the y axis, including edge contact.
func (r Rect) OverlapsY(q Rect) bool {
	return r.Y <= q.Y+q.H && q.Y <= r.Y+r.H
}

// Overlaps returns true if both rectangles overlap on both axes.
func (r Rect) Overlaps(q Rect) bool {
	return r.OverlapsX(q) && r.OverlapsY(q)
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0.0 || r.H <= 0.0
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X, r.Y, r.X+r.W, r.Y+r.H)
}
