package place

import (
	"github.com/mklettner/ledsmith/pkg/contain"
	"github.com/mklettner/ledsmith/pkg/outline"
)

// gridFill scans a regular lattice across the outline's bounding box and
// keeps the cells whose module capsule fits inside. The lattice pitch is
// the module footprint plus spacing; the inset widens the capsule so
// accepted modules keep their distance from the stroke. The center must
// be inside too: on a concave outline both end caps can land in the
// material while the middle of the module hangs over a notch.
func (e *Engine) gridFill(o *outline.Outline, cfg Config) []Module {
	w, h, rot := gridFootprint(cfg)
	half := cfg.halfLen() + cfg.Inset
	minDist := cfg.short() * packingFactor

	bounds := o.BBox()
	mods := make([]Module, 0, 64)
	for y := bounds.Y + cfg.Inset + h/2; y <= bounds.MaxY(); y += h + cfg.Spacing {
		for x := bounds.X + cfg.Inset + w/2; x <= bounds.MaxX(); x += w + cfg.Spacing {
			if !contain.PointInside(e.provider, o, x, y) {
				continue
			}
			if !contain.CapsuleInside(e.provider, o, x, y, rot, half) {
				continue
			}
			if tooClose(mods, x, y, minDist) {
				continue
			}
			mods = append(mods, Module{X: x, Y: y, Rotation: rot, W: w, H: h})
			if len(mods) >= MaxModules {
				return mods
			}
		}
	}
	return mods
}

// estimateGrid counts lattice cells whose center lies inside the outline.
// gridFill requires the same center test before the stricter capsule one,
// so the count is an upper bound on the real yield, and shrinking the
// spacing only densifies the lattice.
func (e *Engine) estimateGrid(o *outline.Outline, cfg Config) int {
	w, h, _ := gridFootprint(cfg)

	bounds := o.BBox()
	n := 0
	for y := bounds.Y + cfg.Inset + h/2; y <= bounds.MaxY(); y += h + cfg.Spacing {
		for x := bounds.X + cfg.Inset + w/2; x <= bounds.MaxX(); x += w + cfg.Spacing {
			if contain.PointInside(e.provider, o, x, y) {
				n++
			}
			if n > MaxModules {
				return n
			}
		}
	}
	return n
}

// gridFootprint resolves the axis-aligned module footprint and rotation
// for the configured orientation.
func gridFootprint(cfg Config) (w, h, rot float64) {
	if cfg.Orientation == Vertical {
		return cfg.short(), cfg.long(), 90
	}
	return cfg.long(), cfg.short(), 0
}
