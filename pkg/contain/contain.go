// Package contain answers "is this point / module inside the outline"
// queries for the placement engine and the quality evaluator.
//
// The actual fill-containment decision is delegated to a Provider — host
// environments bring their own native point-in-path test. This package
// frames the query: a module's rounded-rectangle body is approximated by
// the two end-cap centers of its medial axis, which avoids false "outside"
// results when a rounded tip merely grazes a curved outline edge.
//
// Both tests fail closed: any provider error reads as "not inside", the
// conservative answer for placement decisions.
package contain

import (
	"math"

	"github.com/mklettner/ledsmith/pkg/outline"
)

// Provider is the external geometry oracle for fill containment.
type Provider interface {
	// Contains reports whether (x, y) lies inside the outline's filled
	// region under the provider's fill rule.
	Contains(o *outline.Outline, x, y float64) (bool, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(o *outline.Outline, x, y float64) (bool, error)

// Contains implements Provider.
func (f ProviderFunc) Contains(o *outline.Outline, x, y float64) (bool, error) {
	return f(o, x, y)
}

// PointInside reports whether the point is inside the outline, failing
// closed on provider errors. A nil provider means the winding test.
func PointInside(p Provider, o *outline.Outline, x, y float64) bool {
	if p == nil {
		p = Winding{}
	}
	inside, err := p.Contains(o, x, y)
	if err != nil {
		return false
	}
	return inside
}

// CapsuleInside reports whether a rotated capsule centered at (cx, cy) lies
// inside the outline. The capsule is represented by its two medial end-cap
// centers: a line segment of the given half-length through the center at
// rotationDeg. Both end caps must report inside.
//
// With halfLength zero the test degenerates to PointInside at the center.
func CapsuleInside(p Provider, o *outline.Outline, cx, cy, rotationDeg, halfLength float64) bool {
	rad := rotationDeg * math.Pi / 180
	dx := math.Cos(rad) * halfLength
	dy := math.Sin(rad) * halfLength

	if !PointInside(p, o, cx+dx, cy+dy) {
		return false
	}
	if halfLength == 0 {
		return true
	}
	return PointInside(p, o, cx-dx, cy-dy)
}
