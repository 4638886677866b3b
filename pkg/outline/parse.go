package outline

import (
	"github.com/mklettner/ledsmith/pkg/geom"
)

// CurveSteps is the number of uniform parametric samples used to flatten a
// cubic or quadratic curve command into line points.
const CurveSteps = 12

// Contour is one closed-or-open polyline extracted from a path string.
// Contours are separated by move commands. Consecutive points closer than
// geom.DuplicateEps are collapsed at insertion time, so a contour that
// survives parsing always has at least two distinct points.
type Contour struct {
	Points []geom.Point `json:"points"`
	Closed bool         `json:"closed"`
}

// Edges returns the contour's edge list: consecutive point pairs, plus the
// wrap-around edge when the contour is closed.
func (c *Contour) Edges() [][2]geom.Point {
	n := len(c.Points)
	if n < 2 {
		return nil
	}
	edges := make([][2]geom.Point, 0, n)
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]geom.Point{c.Points[i], c.Points[i+1]})
	}
	if c.Closed {
		edges = append(edges, [2]geom.Point{c.Points[n-1], c.Points[0]})
	}
	return edges
}

// Length returns the total arc length of the contour polyline, including
// the closing edge when the contour is closed.
func (c *Contour) Length() float64 {
	var total float64
	for _, e := range c.Edges() {
		total += e[0].Dist(e[1])
	}
	return total
}

// PointAt returns the point at arc-length distance s along the contour.
// Distances are clamped to [0, Length].
func (c *Contour) PointAt(s float64) geom.Point {
	edges := c.Edges()
	if len(edges) == 0 {
		if len(c.Points) == 1 {
			return c.Points[0]
		}
		return geom.Point{}
	}
	if s <= 0 {
		return edges[0][0]
	}
	for _, e := range edges {
		l := e[0].Dist(e[1])
		if s <= l {
			if l == 0 {
				return e[0]
			}
			return e[0].Lerp(e[1], s/l)
		}
		s -= l
	}
	last := edges[len(edges)-1]
	return last[1]
}

// Parse turns a path-description string into ordered contours by flattening
// the absolute command stream. Parse is permissive and never fails; see the
// package documentation.
func Parse(d string) []Contour {
	return FromCommands(ToCommands(d))
}

// argCount maps an uppercase command letter to its argument count.
var argCount = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2,
	'A': 7, 'Z': 0,
}

// FromCommands flattens an absolute command stream into contours. The
// anchor model uses this to re-derive test geometry from mutated commands
// without a round-trip through a string.
func FromCommands(cmds []Command) []Contour {
	b := contourBuilder{}
	for _, cmd := range cmds {
		switch cmd.Op {
		case OpMove:
			b.flush()
			b.cur = geom.Point{X: cmd.Args[0], Y: cmd.Args[1]}
			b.start = b.cur
			b.building = true
			b.pts = append(b.pts, b.cur)

		case OpLine:
			b.add(geom.Point{X: cmd.Args[0], Y: cmd.Args[1]})

		case OpCubic:
			c1 := geom.Point{X: cmd.Args[0], Y: cmd.Args[1]}
			c2 := geom.Point{X: cmd.Args[2], Y: cmd.Args[3]}
			end := geom.Point{X: cmd.Args[4], Y: cmd.Args[5]}
			p0 := b.cur
			for i := 1; i <= CurveSteps; i++ {
				t := float64(i) / CurveSteps
				u := 1 - t
				b.add(geom.Point{
					X: u*u*u*p0.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*end.X,
					Y: u*u*u*p0.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*end.Y,
				})
			}
			b.cur = end

		case OpQuad:
			c1 := geom.Point{X: cmd.Args[0], Y: cmd.Args[1]}
			end := geom.Point{X: cmd.Args[2], Y: cmd.Args[3]}
			p0 := b.cur
			for i := 1; i <= CurveSteps; i++ {
				t := float64(i) / CurveSteps
				u := 1 - t
				b.add(geom.Point{
					X: u*u*p0.X + 2*u*t*c1.X + t*t*end.X,
					Y: u*u*p0.Y + 2*u*t*c1.Y + t*t*end.Y,
				})
			}
			b.cur = end

		case OpArc:
			// Deliberate simplification: the arc is approximated by straight
			// interpolation between its endpoints. See the package docs.
			end := geom.Point{X: cmd.Args[5], Y: cmd.Args[6]}
			p0 := b.cur
			for i := 1; i <= CurveSteps; i++ {
				b.add(p0.Lerp(end, float64(i)/CurveSteps))
			}
			b.cur = end

		case OpClose:
			b.closed = true
			b.cur = b.start
		}
	}
	b.flush()
	return b.contours
}

// contourBuilder accumulates flattened points into contours, collapsing
// consecutive duplicates and dropping degenerate results.
type contourBuilder struct {
	contours []Contour

	cur, start geom.Point
	building   bool
	pts        []geom.Point
	closed     bool
}

func (b *contourBuilder) add(pt geom.Point) {
	if !b.building {
		// Drawing data before any move starts an implicit contour at the
		// origin, mirroring how host canvases treat it.
		b.building = true
		b.pts = append(b.pts, b.start)
	}
	if n := len(b.pts); n > 0 && b.pts[n-1].Dist(pt) <= geom.DuplicateEps {
		b.cur = pt
		return
	}
	b.pts = append(b.pts, pt)
	b.cur = pt
}

func (b *contourBuilder) flush() {
	if b.building && len(b.pts) >= 2 {
		b.contours = append(b.contours, Contour{Points: b.pts, Closed: b.closed})
	}
	b.pts = nil
	b.closed = false
	b.building = false
}
