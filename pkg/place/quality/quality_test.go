package quality

import (
	"math"
	"strings"
	"testing"

	"github.com/mklettner/ledsmith/pkg/outline"
	"github.com/mklettner/ledsmith/pkg/place"
)

func square40(t *testing.T) *outline.Outline {
	t.Helper()
	o := outline.FromPath("M 0 0 L 40 0 L 40 40 L 0 40 Z")
	if o.Empty() {
		t.Fatal("fixture outline parsed empty")
	}
	return o
}

// lattice builds a 3x3 module grid centered in the 40x40 square.
func lattice() []place.Module {
	var mods []place.Module
	for _, y := range []float64{10, 20, 30} {
		for _, x := range []float64{10, 20, 30} {
			mods = append(mods, place.Module{X: x, Y: y, W: 3, H: 1})
		}
	}
	return mods
}

func TestEvaluateLatticePasses(t *testing.T) {
	o := square40(t)
	r := Evaluate(nil, o, lattice())

	if r.Count != 9 {
		t.Fatalf("Count = %d, want 9", r.Count)
	}
	if r.InsideRate != 1 {
		t.Errorf("InsideRate = %v, want 1", r.InsideRate)
	}
	// Edge modules sit 10 units from the boundary.
	if r.MinClearance < 9.5 || r.MinClearance > 10.5 {
		t.Errorf("MinClearance = %v, want about 10", r.MinClearance)
	}
	// Uniform 10-unit pitch.
	if math.Abs(r.NNMean-10) > 0.01 {
		t.Errorf("NNMean = %v, want 10", r.NNMean)
	}
	if r.NNCV > 0.001 {
		t.Errorf("NNCV = %v, want about 0 for a uniform lattice", r.NNCV)
	}
	if r.SymmetryMean < 0.7 {
		t.Errorf("SymmetryMean = %v, want a balanced lattice to score high", r.SymmetryMean)
	}

	if ok, failures := r.Grade(DefaultThresholds()); !ok {
		t.Errorf("lattice failed grading: %v", failures)
	}
}

func TestEvaluateCenteredModuleSymmetry(t *testing.T) {
	o := square40(t)
	r := Evaluate(nil, o, []place.Module{{X: 20, Y: 20, W: 3, H: 1}})
	if r.SymmetryMean < 0.98 {
		t.Errorf("SymmetryMean = %v, want near 1 for a centered module", r.SymmetryMean)
	}
	if r.MinClearance < 19 || r.MinClearance > 21 {
		t.Errorf("MinClearance = %v, want about 20", r.MinClearance)
	}
}

func TestEvaluateStrayModuleFailsInsideGate(t *testing.T) {
	o := square40(t)
	mods := append(lattice(), place.Module{X: 100, Y: 100, W: 3, H: 1})
	r := Evaluate(nil, o, mods)

	if r.InsideRate >= 1 {
		t.Fatalf("InsideRate = %v, want below 1 with a stray module", r.InsideRate)
	}
	ok, failures := r.Grade(DefaultThresholds())
	if ok {
		t.Fatal("expected grading failure for stray module")
	}
	if !containsFailure(failures, "inside rate") {
		t.Errorf("failures = %v, want an inside rate breach", failures)
	}
}

func TestEvaluateOverhangingModuleFailsInsideGate(t *testing.T) {
	// The center is inside but the module body is far longer than the
	// letter: both end caps land outside, so the module must not count.
	o := outline.FromPath("M 0 0 L 4 0 L 4 4 L 0 4 Z")
	if o.Empty() {
		t.Fatal("fixture outline parsed empty")
	}
	r := Evaluate(nil, o, []place.Module{{X: 2, Y: 2, W: 20, H: 1}})

	if r.InsideRate != 0 {
		t.Fatalf("InsideRate = %v, want 0 for an overhanging module", r.InsideRate)
	}
	ok, failures := r.Grade(DefaultThresholds())
	if ok {
		t.Fatal("expected grading failure for overhanging module")
	}
	if !containsFailure(failures, "inside rate") {
		t.Errorf("failures = %v, want an inside rate breach", failures)
	}
}

func TestEvaluateFlushModuleFailsClearanceGate(t *testing.T) {
	o := square40(t)
	mods := append(lattice(), place.Module{X: 0.2, Y: 20, W: 3, H: 1})
	r := Evaluate(nil, o, mods)

	if r.MinClearance >= 0.6 {
		t.Fatalf("MinClearance = %v, want below 0.6 with a flush module", r.MinClearance)
	}
	ok, failures := r.Grade(DefaultThresholds())
	if ok {
		t.Fatal("expected grading failure for flush module")
	}
	if !containsFailure(failures, "clearance") {
		t.Errorf("failures = %v, want a clearance breach", failures)
	}
}

func TestEvaluateUnevenPitchFailsCVGate(t *testing.T) {
	o := square40(t)
	mods := []place.Module{
		{X: 5, Y: 20, W: 3, H: 1},
		{X: 6, Y: 20, W: 3, H: 1},
		{X: 30, Y: 20, W: 3, H: 1},
	}
	r := Evaluate(nil, o, mods)

	if r.NNCV <= DefaultThresholds().MaxNNCV {
		t.Fatalf("NNCV = %v, want above threshold for clustered modules", r.NNCV)
	}
	if ok, _ := r.Grade(DefaultThresholds()); ok {
		t.Error("expected grading failure for uneven pitch")
	}
}

func TestEvaluateEmptyPlacement(t *testing.T) {
	o := square40(t)
	r := Evaluate(nil, o, nil)
	if r.Count != 0 || r.InsideRate != 0 {
		t.Errorf("empty placement report = %+v, want zero", r)
	}
	ok, failures := r.Grade(DefaultThresholds())
	if ok {
		t.Fatal("empty placement must fail grading")
	}
	if len(failures) != 1 || !containsFailure(failures, "empty") {
		t.Errorf("failures = %v, want the empty placement reason", failures)
	}
}

func TestEvaluateSingleModuleNeighborStats(t *testing.T) {
	o := square40(t)
	r := Evaluate(nil, o, []place.Module{{X: 20, Y: 20, W: 3, H: 1}})
	if r.NNMean != 0 || r.NNCV != 0 {
		t.Errorf("single module NN stats = (%v, %v), want zeros", r.NNMean, r.NNCV)
	}
}

func containsFailure(failures []string, substr string) bool {
	for _, f := range failures {
		if strings.Contains(f, substr) {
			return true
		}
	}
	return false
}
