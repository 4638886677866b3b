// Package geom provides the plane-geometry primitives shared by the outline,
// containment, and placement packages.
//
// All coordinates are double precision and live in the same frame as the
// outline path strings supplied by calling applications. The package has no
// opinion about units; signage tooling typically works in millimeters.
package geom

import "math"

// Epsilon values used across the geometry code.
const (
	// CollinearEps is the cross-product tolerance below which three points
	// are treated as collinear during intersection testing.
	CollinearEps = 1e-9

	// DuplicateEps is the distance below which two consecutive contour
	// points are collapsed into one at insertion time.
	DuplicateEps = 1e-6
)

// Point is a plane coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Lerp returns the linear interpolation between p and q at parameter t.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Rotate returns p rotated by theta radians around the origin.
func (p Point) Rotate(theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Rect is an axis-aligned rectangle given by its min corner and size.
// Callers use it both as an allowed region (character bounding box) and as
// the computed extent of an outline.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge of the rectangle (y grows downward in the
// path coordinate frame, matching the host canvas).
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Diagonal returns the length of the rectangle's diagonal.
func (r Rect) Diagonal() float64 { return math.Hypot(r.Width, r.Height) }

// Expand returns the rectangle grown by m on every side.
func (r Rect) Expand(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, Width: r.Width + 2*m, Height: r.Height + 2*m}
}

// ContainsRect reports whether inner lies fully within r.
func (r Rect) ContainsRect(inner Rect) bool {
	return inner.X >= r.X && inner.Y >= r.Y &&
		inner.MaxX() <= r.MaxX() && inner.MaxY() <= r.MaxY()
}

// IsFinite reports whether all four fields are finite numbers.
func (r Rect) IsFinite() bool {
	for _, v := range [4]float64{r.X, r.Y, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// =============================================================================
// Bounding-Box Accumulation
// =============================================================================

// BBox accumulates an axis-aligned bounding box over a stream of points.
// The zero value is empty; Add the points, then call Rect.
type BBox struct {
	minX, minY float64
	maxX, maxY float64
	any        bool
}

// Add extends the box to include p.
func (b *BBox) Add(p Point) {
	if !b.any {
		b.minX, b.maxX = p.X, p.X
		b.minY, b.maxY = p.Y, p.Y
		b.any = true
		return
	}
	if p.X < b.minX {
		b.minX = p.X
	}
	if p.X > b.maxX {
		b.maxX = p.X
	}
	if p.Y < b.minY {
		b.minY = p.Y
	}
	if p.Y > b.maxY {
		b.maxY = p.Y
	}
}

// Empty reports whether no points have been added.
func (b *BBox) Empty() bool { return !b.any }

// Rect returns the accumulated box. An empty accumulator returns the zero Rect.
func (b *BBox) Rect() Rect {
	if !b.any {
		return Rect{}
	}
	return Rect{X: b.minX, Y: b.minY, Width: b.maxX - b.minX, Height: b.maxY - b.minY}
}
