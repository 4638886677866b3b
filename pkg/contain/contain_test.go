package contain

import (
	"fmt"
	"testing"

	"github.com/mklettner/ledsmith/pkg/outline"
)

var square = outline.FromPath("M 0 0 L 10 0 L 10 10 L 0 10 Z")

// ring is a 10x10 square with a reverse-wound 4x4 counter, like a letter O.
var ring = outline.FromPath("M 0 0 L 10 0 L 10 10 L 0 10 Z M 3 3 L 3 7 L 7 7 L 7 3 Z")

func TestWindingSquare(t *testing.T) {
	tests := []struct {
		x, y float64
		want bool
	}{
		{5, 5, true},
		{0.1, 0.1, true},
		{9.9, 9.9, true},
		{-1, 5, false},
		{11, 5, false},
		{5, -0.5, false},
		{5, 10.5, false},
	}
	p := Winding{}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v_%v", tt.x, tt.y), func(t *testing.T) {
			if got := PointInside(p, square, tt.x, tt.y); got != tt.want {
				t.Errorf("PointInside(%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestWindingCounterHole(t *testing.T) {
	p := Winding{}
	if PointInside(p, ring, 5, 5) {
		t.Error("center of the counter should be outside the filled region")
	}
	if !PointInside(p, ring, 1.5, 5) {
		t.Error("ring body should be inside")
	}
}

func TestWindingEmptyOutline(t *testing.T) {
	p := Winding{}
	if PointInside(p, outline.FromPath(""), 0, 0) {
		t.Error("empty outline contains nothing")
	}
	if PointInside(p, nil, 0, 0) {
		t.Error("nil outline contains nothing")
	}
}

func TestCapsuleInside(t *testing.T) {
	p := Winding{}
	tests := []struct {
		name               string
		cx, cy, rot, half  float64
		want               bool
	}{
		{"flat capsule fits", 5, 5, 0, 4, true},
		{"flat capsule pokes out", 5, 5, 0, 6, false},
		{"vertical capsule fits", 5, 5, 90, 4, true},
		{"diagonal capsule fits", 5, 5, 45, 3, true},
		{"center outside", 15, 5, 0, 1, false},
		{"near edge angled out", 9, 5, 0, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CapsuleInside(p, square, tt.cx, tt.cy, tt.rot, tt.half)
			if got != tt.want {
				t.Errorf("CapsuleInside = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCapsuleZeroHalfLengthMatchesPoint(t *testing.T) {
	// Containment monotonicity anchor: a zero-length capsule is exactly the
	// point test at its center, for any outline and position.
	p := Winding{}
	outlines := []*outline.Outline{square, ring}
	coords := [][2]float64{{5, 5}, {1.5, 5}, {-3, 2}, {0, 0}, {9.99, 9.99}}
	for _, o := range outlines {
		for _, c := range coords {
			pi := PointInside(p, o, c[0], c[1])
			ci := CapsuleInside(p, o, c[0], c[1], 37, 0)
			if pi != ci {
				t.Errorf("outline=%p (%v,%v): point=%v capsule=%v", o, c[0], c[1], pi, ci)
			}
		}
	}
}

func TestFailClosed(t *testing.T) {
	boom := ProviderFunc(func(o *outline.Outline, x, y float64) (bool, error) {
		return true, fmt.Errorf("provider exploded")
	})
	if PointInside(boom, square, 5, 5) {
		t.Error("provider error must read as outside")
	}
	if CapsuleInside(boom, square, 5, 5, 0, 1) {
		t.Error("provider error must read as outside for capsules too")
	}
}
