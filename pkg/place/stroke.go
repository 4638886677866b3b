package place

import (
	"math"

	"github.com/mklettner/ledsmith/pkg/contain"
	"github.com/mklettner/ledsmith/pkg/outline"
)

// tangentStep is the arc-length half-window for the finite-difference
// tangent estimate at a sample point.
const tangentStep = 0.1

// strokeFill walks each contour at even arc-length intervals and lays one
// module per sample, long axis flush with the stroke, offset inward along
// the normal. Samples whose capsule escapes the outline are dropped, as
// are samples that crowd an already accepted module.
func (e *Engine) strokeFill(o *outline.Outline, cfg Config) []Module {
	pitch := cfg.long() + cfg.Spacing
	offset := strokeOffset(cfg)
	minDist := cfg.short() * packingFactor
	w, h := cfg.long(), cfg.short()

	mods := make([]Module, 0, 64)
	for _, c := range o.Contours {
		length := c.Length()
		n := int(length / pitch)
		if n < 1 {
			continue
		}
		step := length / float64(n)
		for i := 0; i < n; i++ {
			s := (float64(i) + 0.5) * step

			// Central difference around s; clamp keeps the window on the
			// contour near the endpoints of open paths.
			ahead := c.PointAt(math.Min(s+tangentStep, length))
			behind := c.PointAt(math.Max(s-tangentStep, 0))
			tx, ty := ahead.X-behind.X, ahead.Y-behind.Y
			norm := math.Hypot(tx, ty)
			if norm == 0 {
				continue
			}
			tx, ty = tx/norm, ty/norm

			// Tangent rotated a quarter turn; probe decides which of the
			// two rotations points into the shape.
			nx, ny := -ty, tx
			p := c.PointAt(s)
			if !contain.PointInside(e.provider, o, p.X+nx*offset, p.Y+ny*offset) {
				nx, ny = -nx, -ny
			}

			cx, cy := p.X+nx*offset, p.Y+ny*offset
			rot := math.Atan2(ty, tx) * 180 / math.Pi
			if !contain.CapsuleInside(e.provider, o, cx, cy, rot, cfg.halfLen()) {
				continue
			}
			if tooClose(mods, cx, cy, minDist) {
				continue
			}
			mods = append(mods, Module{X: cx, Y: cy, Rotation: rot, W: w, H: h})
			if len(mods) >= MaxModules {
				return mods
			}
		}
	}
	return mods
}

// estimateStroke bounds the stroke yield by pure arc-length budgeting:
// containment and crowding only ever remove samples.
func (e *Engine) estimateStroke(o *outline.Outline, cfg Config) int {
	pitch := cfg.long() + cfg.Spacing
	n := 0
	for _, c := range o.Contours {
		n += int(c.Length() / pitch)
		if n > MaxModules {
			return n
		}
	}
	return n
}

// strokeOffset resolves how far module centers sit in from the stroke. An
// unset inset defaults to the short dimension so the footprint clears the
// edge; large insets are capped so modules stay near the stroke they
// follow.
func strokeOffset(cfg Config) float64 {
	offset := cfg.Inset
	if offset == 0 {
		offset = cfg.short()
	}
	if max := cfg.long() * 0.8; offset > max {
		offset = max
	}
	return offset
}
