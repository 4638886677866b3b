package contain

import (
	"github.com/mklettner/ledsmith/pkg/geom"
	"github.com/mklettner/ledsmith/pkg/outline"
)

// Winding is the default Provider: a nonzero-winding point-in-path test
// over the outline's flattened contours, matching the fill rule of host
// canvas implementations. Open contours are treated as implicitly closed,
// the way fill operations treat unclosed subpaths.
//
// Counter contours (letter holes) must wind opposite to the outer contour
// to read as holes, which is how font-derived outlines arrive.
type Winding struct{}

// Contains implements Provider. It never returns an error; the error slot
// exists for providers backed by fallible host environments.
func (Winding) Contains(o *outline.Outline, x, y float64) (bool, error) {
	if o == nil || o.Empty() {
		return false, nil
	}
	pt := geom.Point{X: x, Y: y}
	wn := 0
	for i := range o.Contours {
		wn += windingNumber(&o.Contours[i], pt)
	}
	return wn != 0, nil
}

// windingNumber accumulates crossings of the contour around pt, closing the
// polyline implicitly.
func windingNumber(c *outline.Contour, pt geom.Point) int {
	n := len(c.Points)
	if n < 3 {
		return 0
	}
	wn := 0
	for i := 0; i < n; i++ {
		a := c.Points[i]
		b := c.Points[(i+1)%n]
		if a.Y <= pt.Y {
			if b.Y > pt.Y && isLeft(a, b, pt) > 0 {
				wn++
			}
		} else {
			if b.Y <= pt.Y && isLeft(a, b, pt) < 0 {
				wn--
			}
		}
	}
	return wn
}

// isLeft returns >0 when p is left of the infinite line a→b, <0 right, 0 on.
func isLeft(a, b, p geom.Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
}
