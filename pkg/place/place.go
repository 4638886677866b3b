// Package place generates non-overlapping LED module positions inside an
// outline.
//
// Two strategies exist in this domain and both are supported:
//
//   - stroke: walk the outline at even arc-length intervals and lay modules
//     flush with the stroke, offset inward — the classic channel-letter
//     border fill.
//   - grid: scan a regular lattice over the outline's interior and keep
//     the positions whose capsule passes containment — interior area fill.
//
// Autofill is bounded: the engine never emits more than MaxModules and
// callers are expected to pre-reject configurations with EstimateCount,
// which runs a cheaper dry pass. Unconstrained density is a correctness
// hazard, not a feature.
package place

import (
	"math"

	"github.com/mklettner/ledsmith/pkg/contain"
	"github.com/mklettner/ledsmith/pkg/errors"
	"github.com/mklettner/ledsmith/pkg/outline"
)

// MaxModules is the hard ceiling on generated module counts. Exceeding it
// produces a reduced or empty result, never unbounded output.
const MaxModules = 2000

// Module base dimensions at scale 1, long axis by short axis. The working
// dimensions are these times Config.Scale.
const (
	BaseLength = 3.0
	BaseWidth  = 1.0
)

// packingFactor scales the minimum center-to-center distance between
// accepted modules, expressed in multiples of the short dimension.
const packingFactor = 1.1

// Orientation selects the module long-axis direction for grid placement.
type Orientation string

// Supported orientations.
const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Strategy selects the placement algorithm.
type Strategy string

// Supported strategies.
const (
	StrategyStroke Strategy = "stroke"
	StrategyGrid   Strategy = "grid"
)

// Config is a module-style configuration.
type Config struct {
	Orientation Orientation `json:"orientation" toml:"orientation"`
	Scale       float64     `json:"scale" toml:"scale"`
	Spacing     float64     `json:"spacing" toml:"spacing"`
	Inset       float64     `json:"inset" toml:"inset"`
	Strategy    Strategy    `json:"strategy" toml:"strategy"`
}

// Validate checks the configuration and applies no defaults; use
// WithDefaults first when accepting partial configs.
func (c Config) Validate() error {
	if err := errors.ValidateOrientation(string(c.Orientation)); err != nil {
		return err
	}
	if err := errors.ValidateStrategy(string(c.Strategy)); err != nil {
		return err
	}
	if c.Scale <= 0 || math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be positive, got %v", c.Scale)
	}
	if c.Spacing < 0 || math.IsNaN(c.Spacing) {
		return errors.New(errors.ErrCodeInvalidConfig, "spacing must be non-negative, got %v", c.Spacing)
	}
	if c.Inset < 0 || math.IsNaN(c.Inset) {
		return errors.New(errors.ErrCodeInvalidConfig, "inset must be non-negative, got %v", c.Inset)
	}
	return nil
}

// WithDefaults fills unset fields with the standard preset.
func (c Config) WithDefaults() Config {
	if c.Orientation == "" {
		c.Orientation = Horizontal
	}
	if c.Strategy == "" {
		c.Strategy = StrategyGrid
	}
	if c.Scale == 0 {
		c.Scale = 1
	}
	return c
}

// long and short return the working module dimensions.
func (c Config) long() float64  { return BaseLength * c.Scale }
func (c Config) short() float64 { return BaseWidth * c.Scale }

// halfLen is the capsule half-length for containment tests: the medial
// axis end caps sit half the short dimension in from the module's ends.
func (c Config) halfLen() float64 { return (c.long() - c.short()) / 2 }

// Module is one placed rectangular LED unit. Positions are the unit's
// center in the outline's coordinate frame; rotation is degrees
// counterclockwise from the +x axis.
type Module struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	W        float64 `json:"w"`
	H        float64 `json:"h"`
}

// Engine places modules inside outlines using an injected containment
// provider. A nil provider means the built-in winding test.
type Engine struct {
	provider contain.Provider
}

// New creates a placement engine. Pass nil to use contain.Winding.
func New(p contain.Provider) *Engine {
	if p == nil {
		p = contain.Winding{}
	}
	return &Engine{provider: p}
}

// Autofill generates module positions for the outline under cfg. The
// result is bounded by MaxModules: configurations whose dry-pass estimate
// exceeds the cap yield nil, and generation truncates at the cap. Callers
// pre-reject with EstimateCount.
func (e *Engine) Autofill(o *outline.Outline, cfg Config) []Module {
	cfg = cfg.WithDefaults()
	if cfg.Validate() != nil || o == nil || o.Empty() {
		return nil
	}
	if e.EstimateCount(o, cfg) > MaxModules {
		return nil
	}

	switch cfg.Strategy {
	case StrategyStroke:
		return e.strokeFill(o, cfg)
	default:
		return e.gridFill(o, cfg)
	}
}

// EstimateCount runs the cheap dry pass bounding Autofill's output size: no
// module construction, no overlap dedup, point tests instead of capsule
// tests. The estimate is non-decreasing as spacing decreases.
func (e *Engine) EstimateCount(o *outline.Outline, cfg Config) int {
	cfg = cfg.WithDefaults()
	if cfg.Validate() != nil || o == nil || o.Empty() {
		return 0
	}

	switch cfg.Strategy {
	case StrategyStroke:
		return e.estimateStroke(o, cfg)
	default:
		return e.estimateGrid(o, cfg)
	}
}

// tooClose reports whether the candidate center crowds an accepted module.
func tooClose(mods []Module, x, y, minDist float64) bool {
	for _, m := range mods {
		if math.Hypot(m.X-x, m.Y-y) < minDist {
			return true
		}
	}
	return false
}
