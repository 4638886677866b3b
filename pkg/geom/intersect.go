package geom

import "math"

// cross returns the z-component of (b-a) × (c-a). Positive means c is to the
// left of a→b, negative to the right, near zero collinear.
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// onSegment reports whether c, already known to be collinear with a→b, lies
// within the segment's bounding box.
func onSegment(a, b, c Point) bool {
	return math.Min(a.X, b.X)-CollinearEps <= c.X && c.X <= math.Max(a.X, b.X)+CollinearEps &&
		math.Min(a.Y, b.Y)-CollinearEps <= c.Y && c.Y <= math.Max(a.Y, b.Y)+CollinearEps
}

// SegmentsIntersect reports whether segments p1-p2 and p3-p4 intersect.
//
// The test is the standard orientation cross-product test with a collinearity
// epsilon. Endpoint contact counts as an intersection here; callers that
// allow shared vertices (adjacent polygon edges) must filter those pairs
// with SharesEndpoint before calling.
func SegmentsIntersect(p1, p2, p3, p4 Point) bool {
	d1 := cross(p3, p4, p1)
	d2 := cross(p3, p4, p2)
	d3 := cross(p1, p2, p3)
	d4 := cross(p1, p2, p4)

	if ((d1 > CollinearEps && d2 < -CollinearEps) || (d1 < -CollinearEps && d2 > CollinearEps)) &&
		((d3 > CollinearEps && d4 < -CollinearEps) || (d3 < -CollinearEps && d4 > CollinearEps)) {
		return true
	}

	// Collinear overlap cases.
	if math.Abs(d1) <= CollinearEps && onSegment(p3, p4, p1) {
		return true
	}
	if math.Abs(d2) <= CollinearEps && onSegment(p3, p4, p2) {
		return true
	}
	if math.Abs(d3) <= CollinearEps && onSegment(p1, p2, p3) {
		return true
	}
	if math.Abs(d4) <= CollinearEps && onSegment(p1, p2, p4) {
		return true
	}
	return false
}

// SharesEndpoint reports whether the two segments touch at a shared vertex
// within tol. Adjacent edges of a polygon legitimately meet this way and the
// contact must not be reported as a self-intersection.
func SharesEndpoint(p1, p2, p3, p4 Point, tol float64) bool {
	return p1.Dist(p3) <= tol || p1.Dist(p4) <= tol ||
		p2.Dist(p3) <= tol || p2.Dist(p4) <= tol
}
