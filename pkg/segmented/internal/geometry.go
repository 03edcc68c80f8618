package internal

import "fmt"

// Point is a position in layout units.
type Point struct {
	X int32
	Y int32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle in layout units.
// A rectangle contains the points [X, X+W) x [Y, Y+H).
type Rect struct {
	X int32
	Y int32
	W int32
	H int32
}

// Contains reports whether p lies inside r. Empty rectangles contain nothing.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W &&
		p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// CenterX returns the horizontal center of r, rounded down.
func (r Rect) CenterX() int32 {
	return r.X + r.W/2
}

// CenterY returns the vertical center of r, rounded down.
func (r Rect) CenterY() int32 {
	return r.Y + r.H/2
}

// Center returns the center point of r.
func (r Rect) Center() Point {
	return Point{X: r.CenterX(), Y: r.CenterY()}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// RectF is a rectangle with fractional coordinates, used while a rectangle
// is being interpolated.
type RectF struct {
	X float64
	Y float64
	W float64
	H float64
}

// ToRectF converts r to fractional coordinates.
func (r Rect) ToRectF() RectF {
	return RectF{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}

// Lerp interpolates between from and to. t is not clamped so spring
// overshoot carries through.
func (from RectF) Lerp(to RectF, t float64) RectF {
	return RectF{
		X: from.X + (to.X-from.X)*t,
		Y: from.Y + (to.Y-from.Y)*t,
		W: from.W + (to.W-from.W)*t,
		H: from.H + (to.H-from.H)*t,
	}
}

// Insets defines spacing on all four sides of an element.
type Insets struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformInsets creates Insets with the same value on all sides.
func UniformInsets(value int32) Insets {
	return Insets{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Apply shrinks r by the insets. The result never has a negative size.
func (in Insets) Apply(r Rect) Rect {
	out := Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: r.W - in.Left - in.Right,
		H: r.H - in.Top - in.Bottom,
	}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}
