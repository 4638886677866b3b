// Package validate gates outline geometry with typed accept/reject verdicts.
//
// The parser is permissive by design; this package is the strict half of the
// pair. Checks run in a fixed priority order and short-circuit on the first
// failure, so a path that is both self-intersecting and escaping its bounds
// always reports the intersection.
//
// Every rejection carries one code from the closed taxonomy in pkg/errors:
// SHAPE_INVALID_DEGENERATE, SHAPE_INVALID_SELF_INTERSECTION,
// SHAPE_INVALID_BBOX_ESCAPE, SHAPE_INVALID_CURVATURE_SPIKE.
package validate

import (
	"fmt"

	"github.com/mklettner/ledsmith/pkg/errors"
	"github.com/mklettner/ledsmith/pkg/geom"
	"github.com/mklettner/ledsmith/pkg/outline"
)

const (
	// minDimension is the smallest usable outline width or height.
	minDimension = 0.001

	// spikeFactor rejects any single edge longer than this multiple of the
	// outline's bbox diagonal — a proxy for one wildly misplaced point.
	spikeFactor = 20.0

	// endpointTol is the distance within which two edges are considered to
	// share a vertex, which is legitimate contact rather than a crossing.
	endpointTol = 1e-9

	// boundsSlackMin and boundsSlackRatio define the tolerance band added
	// around caller-supplied bounds: max(boundsSlackMin, diagonal*ratio).
	boundsSlackMin   = 3.0
	boundsSlackRatio = 0.08
)

// Result is the validator's terminal verdict.
type Result struct {
	OK      bool        `json:"ok"`
	Code    errors.Code `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
}

// reject builds a failing Result.
func reject(code errors.Code, format string, args ...any) Result {
	return Result{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Err converts a failing Result into a structured error, or nil when OK.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	return errors.New(r.Code, "%s", r.Message)
}

// Check validates a raw path string against the fixed rule set, optionally
// constrained to stay near bounds. It never panics and never errors on
// malformed input: unusable input is a DEGENERATE verdict.
func Check(d string, bounds *geom.Rect) Result {
	if len(d) > errors.MaxPathStringLen {
		return reject(errors.ErrCodeShapeDegenerate,
			"path string too long (%d bytes, max %d)", len(d), errors.MaxPathStringLen)
	}

	return CheckOutline(outline.FromPath(d), bounds)
}

// CheckOutline validates an already-parsed outline. Callers that hold a
// parsed outline (the anchor model, the placement pipeline) use this to
// avoid re-parsing.
func CheckOutline(o *outline.Outline, bounds *geom.Rect) Result {
	if o.Empty() {
		return reject(errors.ErrCodeShapeDegenerate, "path yields no usable contours")
	}

	for i := range o.Contours {
		if crossed, a, b := selfIntersects(&o.Contours[i]); crossed {
			return reject(errors.ErrCodeShapeSelfIntersection,
				"contour %d crosses itself (edges %d and %d)", i, a, b)
		}
	}

	// Bbox and longest-edge scan.
	var bb geom.BBox
	var longest float64
	for i := range o.Contours {
		c := &o.Contours[i]
		for _, p := range c.Points {
			if !p.IsFinite() {
				return reject(errors.ErrCodeShapeDegenerate, "contour %d contains non-finite coordinates", i)
			}
			bb.Add(p)
		}
		for _, e := range c.Edges() {
			if l := e[0].Dist(e[1]); l > longest {
				longest = l
			}
		}
	}

	box := bb.Rect()
	if !box.IsFinite() || box.Width <= minDimension || box.Height <= minDimension {
		return reject(errors.ErrCodeShapeDegenerate,
			"outline extent %.4f x %.4f below minimum %.3f", box.Width, box.Height, minDimension)
	}

	if diag := box.Diagonal(); longest > spikeFactor*diag {
		return reject(errors.ErrCodeShapeCurvatureSpike,
			"edge length %.2f exceeds %.0fx the outline diagonal %.2f", longest, spikeFactor, diag)
	}

	if bounds != nil {
		slack := boundsSlackMin
		if s := bounds.Diagonal() * boundsSlackRatio; s > slack {
			slack = s
		}
		if !bounds.Expand(slack).ContainsRect(box) {
			return reject(errors.ErrCodeShapeBBoxEscape,
				"outline bbox (%.1f,%.1f %.1fx%.1f) escapes allowed region (%.1f,%.1f %.1fx%.1f) beyond slack %.1f",
				box.X, box.Y, box.Width, box.Height,
				bounds.X, bounds.Y, bounds.Width, bounds.Height, slack)
		}
	}

	return Result{OK: true}
}

// selfIntersects reports the first true crossing between non-adjacent edges
// of a single contour. Adjacent edges and the wrap-around pair touch at
// shared vertices by construction and are skipped; any other contact that
// merely shares an endpoint within tolerance is also legitimate.
//
// The test is O(edges²), which is acceptable at the point counts letter
// outlines produce (tens to low hundreds) and keeps interactive edits
// within the sub-frame budget without an acceleration structure.
func selfIntersects(c *outline.Contour) (bool, int, int) {
	edges := c.Edges()
	n := len(edges)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 && c.Closed {
				continue // wrap-around adjacency
			}
			a, b := edges[i], edges[j]
			if !geom.SegmentsIntersect(a[0], a[1], b[0], b[1]) {
				continue
			}
			if geom.SharesEndpoint(a[0], a[1], b[0], b[1], endpointTol) {
				continue
			}
			return true, i, j
		}
	}
	return false, 0, 0
}
