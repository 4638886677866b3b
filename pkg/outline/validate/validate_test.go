package validate

import (
	"strings"
	"testing"

	"github.com/mklettner/ledsmith/pkg/errors"
	"github.com/mklettner/ledsmith/pkg/geom"
)

func TestCheckAcceptsSimpleShapes(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"convex square", "M 0 0 L 10 0 L 10 10 L 0 10 Z"},
		{"triangle", "M 0 0 L 10 0 L 5 8 Z"},
		{"open polyline", "M 0 0 L 10 0 L 10 10"},
		{"curved letter bowl", "M 0 0 C 0 10 10 10 10 0 L 10 -2 L 0 -2 Z"},
		{"two contours", "M 0 0 L 10 0 L 10 10 L 0 10 Z M 2 2 L 8 2 L 8 8 L 2 8 Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Check(tt.path, nil)
			if !res.OK {
				t.Errorf("Check rejected: %s (%s)", res.Code, res.Message)
			}
			if res.Err() != nil {
				t.Errorf("Err() = %v, want nil", res.Err())
			}
		})
	}
}

func TestCheckDegenerate(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty string", ""},
		{"whitespace only", "   \t\n"},
		{"single point", "M 5 5"},
		{"zero-height sliver", "M 0 0 L 10 0 L 20 0"},
		{"oversized input", "M 0 0 L 1 1 " + strings.Repeat("L 2 2 ", 20000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Check(tt.path, nil)
			if res.OK {
				t.Fatal("Check accepted, want rejection")
			}
			if res.Code != errors.ErrCodeShapeDegenerate {
				t.Errorf("code = %s, want %s", res.Code, errors.ErrCodeShapeDegenerate)
			}
		})
	}
}

func TestCheckSelfIntersection(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool // true = reject
	}{
		{"figure eight", "M 0 0 L 10 10 L 10 0 L 0 10 Z", true},
		{"open crossing", "M 0 0 L 10 10 L 10 0 L 0 10", true},
		{"bowtie", "M 0 0 L 4 4 L 0 4 L 4 0 Z", true},
		{"convex square ok", "M 0 0 L 10 0 L 10 10 L 0 10 Z", false},
		{"concave L-shape ok", "M 0 0 L 10 0 L 10 4 L 4 4 L 4 10 L 0 10 Z", false},
		{"star-like concave ok", "M 0 0 L 10 1 L 20 0 L 18 10 L 10 8 L 2 10 Z", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Check(tt.path, nil)
			if tt.want {
				if res.OK || res.Code != errors.ErrCodeShapeSelfIntersection {
					t.Errorf("got ok=%v code=%s, want %s", res.OK, res.Code, errors.ErrCodeShapeSelfIntersection)
				}
			} else if !res.OK {
				t.Errorf("rejected: %s (%s)", res.Code, res.Message)
			}
		})
	}
}

func TestCheckSelfIntersectionSecondContour(t *testing.T) {
	// First contour clean, second one crosses itself.
	res := Check("M 0 0 L 10 0 L 10 10 L 0 10 Z M 20 0 L 30 10 L 30 0 L 20 10 Z", nil)
	if res.OK || res.Code != errors.ErrCodeShapeSelfIntersection {
		t.Errorf("got ok=%v code=%s", res.OK, res.Code)
	}
}

func TestCheckNoSpuriousSpike(t *testing.T) {
	// Elongated but legitimate shapes must not trip the spike guard: any
	// finite edge fits inside the point bbox, so only non-finite input can
	// exceed the 20x ceiling (the guard backstops the degenerate checks).
	tests := []string{
		"M 0 0 L 1000 0 L 1000 1 L 0 1 Z",   // thin slab
		"M 0 0 L 10000 1 L 10000 3 L 0 6 Z", // one far excursion
		"M 0 0 L 1 0 L 1 0.01 L 0 0.01 Z",   // tiny shape
	}
	for _, d := range tests {
		if res := Check(d, nil); res.Code == errors.ErrCodeShapeCurvatureSpike {
			t.Errorf("spurious spike for %q: %s", d, res.Message)
		}
	}
}

func TestCheckOverflowingCoordinates(t *testing.T) {
	// Coordinates beyond float range fail number parsing, the command is
	// dropped, and what remains is degenerate. Typed rejection, no panic.
	res := Check("M 0 0 L 1e400 0 L 1e400 1e400", nil)
	if res.OK {
		t.Fatal("accepted overflowing input")
	}
	if res.Code != errors.ErrCodeShapeDegenerate {
		t.Errorf("code = %s, want %s", res.Code, errors.ErrCodeShapeDegenerate)
	}
}

func TestCheckBBoxEscape(t *testing.T) {
	square := "M 0 0 L 10 0 L 10 10 L 0 10 Z"

	tight := &geom.Rect{X: 0, Y: 0, Width: 5, Height: 5}
	res := Check(square, tight)
	if res.OK || res.Code != errors.ErrCodeShapeBBoxEscape {
		t.Errorf("tight bounds: ok=%v code=%s, want %s", res.OK, res.Code, errors.ErrCodeShapeBBoxEscape)
	}

	roomy := &geom.Rect{X: -1, Y: -1, Width: 12, Height: 12}
	if res := Check(square, roomy); !res.OK {
		t.Errorf("roomy bounds rejected: %s (%s)", res.Code, res.Message)
	}

	// Slack band: a 10x10 outline against its exact box passes because the
	// minimum slack is 3 units.
	exact := &geom.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if res := Check(square, exact); !res.OK {
		t.Errorf("exact bounds rejected: %s (%s)", res.Code, res.Message)
	}
}

func TestCheckPriorityOrder(t *testing.T) {
	// Self-intersecting AND escaping bounds: intersection wins.
	bounds := &geom.Rect{X: 100, Y: 100, Width: 1, Height: 1}
	res := Check("M 0 0 L 10 10 L 10 0 L 0 10 Z", bounds)
	if res.Code != errors.ErrCodeShapeSelfIntersection {
		t.Errorf("code = %s, want %s", res.Code, errors.ErrCodeShapeSelfIntersection)
	}
}
