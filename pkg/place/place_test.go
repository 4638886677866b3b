package place

import (
	"math"
	"testing"

	"github.com/mklettner/ledsmith/pkg/contain"
	"github.com/mklettner/ledsmith/pkg/outline"
)

func mustOutline(t *testing.T, d string) *outline.Outline {
	t.Helper()
	o := outline.FromPath(d)
	if o.Empty() {
		t.Fatalf("fixture outline %q parsed empty", d)
	}
	return o
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults pass", Config{}.WithDefaults(), false},
		{"vertical stroke", Config{Orientation: Vertical, Strategy: StrategyStroke, Scale: 2, Spacing: 1, Inset: 0.5}, false},
		{"bad orientation", Config{Orientation: "diagonal", Strategy: StrategyGrid, Scale: 1}, true},
		{"bad strategy", Config{Orientation: Horizontal, Strategy: "spiral", Scale: 1}, true},
		{"zero scale", Config{Orientation: Horizontal, Strategy: StrategyGrid}, true},
		{"negative spacing", Config{Orientation: Horizontal, Strategy: StrategyGrid, Scale: 1, Spacing: -1}, true},
		{"negative inset", Config{Orientation: Horizontal, Strategy: StrategyGrid, Scale: 1, Inset: -0.1}, true},
		{"nan scale", Config{Orientation: Horizontal, Strategy: StrategyGrid, Scale: math.NaN()}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGridFillSquare(t *testing.T) {
	o := mustOutline(t, "M 0 0 L 40 0 L 40 40 L 0 40 Z")
	e := New(nil)
	cfg := Config{Strategy: StrategyGrid, Spacing: 1}.WithDefaults()

	mods := e.Autofill(o, cfg)
	if len(mods) == 0 {
		t.Fatal("expected modules inside 40x40 square, got none")
	}
	for _, m := range mods {
		if m.W != BaseLength || m.H != BaseWidth {
			t.Errorf("module footprint = %vx%v, want %vx%v", m.W, m.H, BaseLength, BaseWidth)
		}
		if m.Rotation != 0 {
			t.Errorf("horizontal grid module rotation = %v, want 0", m.Rotation)
		}
		if !contain.PointInside(nil, o, m.X, m.Y) {
			t.Errorf("module center (%v, %v) not inside outline", m.X, m.Y)
		}
	}
}

func TestGridFillVerticalOrientation(t *testing.T) {
	o := mustOutline(t, "M 0 0 L 40 0 L 40 40 L 0 40 Z")
	e := New(nil)

	mods := e.Autofill(o, Config{Strategy: StrategyGrid, Orientation: Vertical, Scale: 1, Spacing: 1})
	if len(mods) == 0 {
		t.Fatal("expected modules, got none")
	}
	for _, m := range mods {
		if m.W != BaseWidth || m.H != BaseLength {
			t.Errorf("vertical footprint = %vx%v, want %vx%v", m.W, m.H, BaseWidth, BaseLength)
		}
		if m.Rotation != 90 {
			t.Errorf("vertical rotation = %v, want 90", m.Rotation)
		}
	}
}

func TestGridFillRespectsHole(t *testing.T) {
	// Ring: 40x40 outer, 10..30 hole. No module center may land in the hole.
	o := mustOutline(t, "M 0 0 L 40 0 L 40 40 L 0 40 Z M 10 10 L 10 30 L 30 30 L 30 10 Z")
	e := New(nil)

	mods := e.Autofill(o, Config{Strategy: StrategyGrid, Orientation: Horizontal, Scale: 1, Spacing: 0.5})
	if len(mods) == 0 {
		t.Fatal("expected modules in the ring band, got none")
	}
	for _, m := range mods {
		if m.X > 10 && m.X < 30 && m.Y > 10 && m.Y < 30 {
			t.Errorf("module center (%v, %v) landed inside the hole", m.X, m.Y)
		}
	}
}

func TestGridFillNotchedOutlineKeepsCentersInside(t *testing.T) {
	// U shape: two 10-wide arms joined by a 10-tall base. A 30-long module
	// across the opening would have both end caps in the arms but its
	// center over the notch; it must be rejected, and the estimate must
	// stay an upper bound on the fill.
	o := mustOutline(t, "M 0 0 L 30 0 L 30 40 L 20 40 L 20 10 L 10 10 L 10 40 L 0 40 Z")
	e := New(nil)
	cfg := Config{Strategy: StrategyGrid, Orientation: Horizontal, Scale: 10, Spacing: 2}

	mods := e.Autofill(o, cfg)
	if len(mods) != 1 {
		t.Fatalf("modules = %d, want exactly the one row inside the base", len(mods))
	}
	for _, m := range mods {
		if !contain.PointInside(nil, o, m.X, m.Y) {
			t.Errorf("module center (%v, %v) outside the outline", m.X, m.Y)
		}
	}
	if est := e.EstimateCount(o, cfg); est < len(mods) {
		t.Errorf("EstimateCount = %d, below actual yield %d", est, len(mods))
	}
}

func TestGridFillTooSmall(t *testing.T) {
	// A 1x1 square cannot host a 3x1 module.
	o := mustOutline(t, "M 0 0 L 1 0 L 1 1 L 0 1 Z")
	e := New(nil)
	if mods := e.Autofill(o, Config{Strategy: StrategyGrid, Orientation: Horizontal, Scale: 1}); len(mods) != 0 {
		t.Errorf("expected no modules in undersized shape, got %d", len(mods))
	}
}

func TestStrokeFillSquare(t *testing.T) {
	o := mustOutline(t, "M 0 0 L 40 0 L 40 40 L 0 40 Z")
	e := New(nil)

	mods := e.Autofill(o, Config{Strategy: StrategyStroke, Orientation: Horizontal, Scale: 1, Spacing: 1})
	if len(mods) == 0 {
		t.Fatal("expected stroke modules along 40x40 perimeter, got none")
	}
	for _, m := range mods {
		if !contain.PointInside(nil, o, m.X, m.Y) {
			t.Errorf("stroke module center (%v, %v) not inside outline", m.X, m.Y)
		}
		// Centers hug the stroke: within the capped offset of some edge.
		d := math.Min(math.Min(m.X, 40-m.X), math.Min(m.Y, 40-m.Y))
		if d > BaseLength {
			t.Errorf("stroke module center (%v, %v) drifted %v from the stroke", m.X, m.Y, d)
		}
	}
}

func TestStrokeFillRotationFollowsTangent(t *testing.T) {
	// A wide flat bar: every stroke sample on the long edges runs
	// horizontally, so rotations stay at 0 or 180 there.
	o := mustOutline(t, "M 0 0 L 60 0 L 60 4 L 0 4 Z")
	e := New(nil)

	mods := e.Autofill(o, Config{Strategy: StrategyStroke, Orientation: Horizontal, Scale: 1, Spacing: 1})
	if len(mods) == 0 {
		t.Fatal("expected stroke modules, got none")
	}
	horizontal := 0
	for _, m := range mods {
		r := math.Abs(math.Mod(m.Rotation, 180))
		if r < 1 || r > 179 {
			horizontal++
		}
	}
	if horizontal == 0 {
		t.Error("expected horizontally rotated modules along the long edges")
	}
}

func TestEstimateBoundsAutofill(t *testing.T) {
	o := mustOutline(t, "M 0 0 L 40 0 L 40 40 L 0 40 Z")
	e := New(nil)
	for _, strat := range []Strategy{StrategyGrid, StrategyStroke} {
		cfg := Config{Strategy: strat, Orientation: Horizontal, Scale: 1, Spacing: 1}
		est := e.EstimateCount(o, cfg)
		got := len(e.Autofill(o, cfg))
		if got > est {
			t.Errorf("%s: Autofill yielded %d modules, estimate was %d", strat, got, est)
		}
	}
}

func TestEstimateMonotonicInSpacing(t *testing.T) {
	o := mustOutline(t, "M 0 0 L 40 0 L 40 40 L 0 40 Z")
	e := New(nil)
	for _, strat := range []Strategy{StrategyGrid, StrategyStroke} {
		prev := -1
		for _, spacing := range []float64{8, 4, 2, 1, 0.5, 0} {
			n := e.EstimateCount(o, Config{Strategy: strat, Orientation: Horizontal, Scale: 1, Spacing: spacing})
			if prev >= 0 && n < prev {
				t.Errorf("%s: estimate dropped from %d to %d when spacing shrank to %v", strat, prev, n, spacing)
			}
			prev = n
		}
	}
}

func TestAutofillRefusesOverflow(t *testing.T) {
	// 300x300 at scale 1 estimates tens of thousands of grid cells.
	o := mustOutline(t, "M 0 0 L 300 0 L 300 300 L 0 300 Z")
	e := New(nil)
	cfg := Config{Strategy: StrategyGrid, Orientation: Horizontal, Scale: 1}
	if est := e.EstimateCount(o, cfg); est <= MaxModules {
		t.Fatalf("fixture too small for overflow test, estimate = %d", est)
	}
	if mods := e.Autofill(o, cfg); len(mods) != 0 {
		t.Errorf("expected empty result for over-cap configuration, got %d modules", len(mods))
	}
}

func TestAutofillNilAndEmpty(t *testing.T) {
	e := New(nil)
	cfg := Config{}.WithDefaults()
	if mods := e.Autofill(nil, cfg); mods != nil {
		t.Errorf("nil outline: got %v, want nil", mods)
	}
	if n := e.EstimateCount(nil, cfg); n != 0 {
		t.Errorf("nil outline estimate = %d, want 0", n)
	}
	empty := outline.FromPath("")
	if mods := e.Autofill(empty, cfg); mods != nil {
		t.Errorf("empty outline: got %v, want nil", mods)
	}
}

func TestAutofillMinimumSeparation(t *testing.T) {
	o := mustOutline(t, "M 0 0 L 40 0 L 40 40 L 0 40 Z")
	e := New(nil)
	for _, strat := range []Strategy{StrategyGrid, StrategyStroke} {
		cfg := Config{Strategy: strat, Orientation: Horizontal, Scale: 1}
		mods := e.Autofill(o, cfg)
		minDist := BaseWidth * packingFactor
		for i := range mods {
			for j := i + 1; j < len(mods); j++ {
				d := math.Hypot(mods[i].X-mods[j].X, mods[i].Y-mods[j].Y)
				if d < minDist-1e-9 {
					t.Fatalf("%s: modules %d and %d only %v apart, want >= %v", strat, i, j, d, minDist)
				}
			}
		}
	}
}
