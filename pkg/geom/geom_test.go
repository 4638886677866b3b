package geom

import (
	"math"
	"testing"
)

func TestPointOps(t *testing.T) {
	p := Point{3, 4}
	if got := p.Dist(Point{}); got != 5 {
		t.Errorf("Dist = %v, want 5", got)
	}
	if got := p.Add(Point{1, -1}); got != (Point{4, 3}) {
		t.Errorf("Add = %v, want {4 3}", got)
	}
	if got := p.Sub(Point{3, 4}); got != (Point{0, 0}) {
		t.Errorf("Sub = %v, want origin", got)
	}
	if got := p.Lerp(Point{5, 6}, 0.5); got != (Point{4, 5}) {
		t.Errorf("Lerp = %v, want {4 5}", got)
	}

	r := Point{1, 0}.Rotate(math.Pi / 2)
	if math.Abs(r.X) > 1e-12 || math.Abs(r.Y-1) > 1e-12 {
		t.Errorf("Rotate = %v, want {0 1}", r)
	}

	if (Point{math.NaN(), 0}).IsFinite() {
		t.Error("IsFinite(NaN) = true, want false")
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 3, Height: 4}
	if r.Diagonal() != 5 {
		t.Errorf("Diagonal = %v, want 5", r.Diagonal())
	}
	if !r.ContainsRect(Rect{X: 1, Y: 1, Width: 1, Height: 1}) {
		t.Error("ContainsRect(inner) = false, want true")
	}
	if r.ContainsRect(Rect{X: 2, Y: 2, Width: 5, Height: 1}) {
		t.Error("ContainsRect(overflowing) = true, want false")
	}
	e := r.Expand(1)
	if e.X != -1 || e.Y != -1 || e.Width != 5 || e.Height != 6 {
		t.Errorf("Expand = %+v", e)
	}
}

func TestBBox(t *testing.T) {
	var b BBox
	if !b.Empty() {
		t.Fatal("zero BBox not empty")
	}
	if b.Rect() != (Rect{}) {
		t.Errorf("empty Rect = %+v, want zero", b.Rect())
	}

	for _, p := range []Point{{1, 2}, {-3, 4}, {5, -6}} {
		b.Add(p)
	}
	got := b.Rect()
	want := Rect{X: -3, Y: -6, Width: 8, Height: 10}
	if got != want {
		t.Errorf("Rect = %+v, want %+v", got, want)
	}
}

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		a, b, c, d     Point
		want           bool
		sharedEndpoint bool
	}{
		{
			name: "crossing X",
			a:    Point{0, 0}, b: Point{10, 10},
			c: Point{0, 10}, d: Point{10, 0},
			want: true,
		},
		{
			name: "parallel",
			a:    Point{0, 0}, b: Point{10, 0},
			c: Point{0, 1}, d: Point{10, 1},
			want: false,
		},
		{
			name: "far apart",
			a:    Point{0, 0}, b: Point{1, 0},
			c: Point{5, 5}, d: Point{6, 5},
			want: false,
		},
		{
			name: "touching at shared vertex",
			a:    Point{0, 0}, b: Point{5, 0},
			c: Point{5, 0}, d: Point{5, 5},
			want:           true, // raw test reports contact
			sharedEndpoint: true, // but the pair is filterable
		},
		{
			name: "collinear overlap",
			a:    Point{0, 0}, b: Point{10, 0},
			c: Point{5, 0}, d: Point{15, 0},
			want: true,
		},
		{
			name: "T junction midpoint",
			a:    Point{0, 0}, b: Point{10, 0},
			c: Point{5, -5}, d: Point{5, 0},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentsIntersect(tt.a, tt.b, tt.c, tt.d); got != tt.want {
				t.Errorf("SegmentsIntersect = %v, want %v", got, tt.want)
			}
			if got := SharesEndpoint(tt.a, tt.b, tt.c, tt.d, 1e-6); got != tt.sharedEndpoint {
				t.Errorf("SharesEndpoint = %v, want %v", got, tt.sharedEndpoint)
			}
		})
	}
}
