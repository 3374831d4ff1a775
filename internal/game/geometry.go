package game

import "math"

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a width/height pair in design units.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside the rectangle. The left and top
// edges are inside, the right and bottom edges are not.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// CanvasTransform maps between screen pixels and canvas-local design units.
// Origin is the canvas container's screen position, Back the drawing
// surface's offset inside it.
type CanvasTransform struct {
	Origin Point
	Back   Point
	Factor float64
	Scale  float64
}

// ToLocal converts a screen point into canvas-local coordinates.
func (ct CanvasTransform) ToLocal(sx, sy float64) Point {
	f, k := ct.nonZero()
	return Point{
		X: (sx - ct.Origin.X - ct.Back.X*f) / f / k,
		Y: (sy - ct.Origin.Y - ct.Back.Y*f) / f / k,
	}
}

// ToScreen is the inverse of ToLocal.
func (ct CanvasTransform) ToScreen(p Point) (float64, float64) {
	f, k := ct.nonZero()
	return p.X*f*k + ct.Origin.X + ct.Back.X*f,
		p.Y*f*k + ct.Origin.Y + ct.Back.Y*f
}

// Length converts a canvas-local distance to screen pixels.
func (ct CanvasTransform) Length(d float64) float64 {
	f, k := ct.nonZero()
	return d * f * k
}

func (ct CanvasTransform) nonZero() (float64, float64) {
	f, k := ct.Factor, ct.Scale
	if f == 0 {
		f = 1
	}
	if k == 0 {
		k = 1
	}
	return f, k
}

func dist(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// approxEqual compares floats with an absolute tolerance.
func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
