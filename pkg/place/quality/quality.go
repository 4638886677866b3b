// Package quality scores a finished module placement. The metrics are the
// ones sign builders actually argue about: are all modules inside the
// letter, how much breathing room does the tightest module have, does the
// layout look balanced, and is the pitch even.
package quality

import (
	"fmt"
	"math"

	"github.com/mklettner/ledsmith/pkg/contain"
	"github.com/mklettner/ledsmith/pkg/outline"
	"github.com/mklettner/ledsmith/pkg/place"
)

// raySteps is the resolution of the clearance march: the bbox diagonal is
// divided into this many steps per direction.
const raySteps = 400

// Report holds the placement metrics for one layout.
type Report struct {
	Count         int     `json:"count"`
	InsideRate    float64 `json:"inside_rate"`
	MinClearance  float64 `json:"min_clearance"`
	MeanClearance float64 `json:"mean_clearance"`
	SymmetryMean  float64 `json:"symmetry_mean"`
	NNMean        float64 `json:"nn_mean"`
	NNCV          float64 `json:"nn_cv"`
}

// Thresholds is a pass/fail gate over a Report.
type Thresholds struct {
	MinInsideRate float64 `json:"min_inside_rate" toml:"min_inside_rate"`
	MinClearance  float64 `json:"min_clearance" toml:"min_clearance"`
	MinSymmetry   float64 `json:"min_symmetry" toml:"min_symmetry"`
	MaxNNCV       float64 `json:"max_nn_cv" toml:"max_nn_cv"`
}

// DefaultThresholds gates production layouts.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinInsideRate: 0.98,
		MinClearance:  0.6,
		MinSymmetry:   0.45,
		MaxNNCV:       0.45,
	}
}

// Evaluate measures the placement against the outline. A nil provider
// means the built-in winding test. Empty placements yield a zero report.
func Evaluate(p contain.Provider, o *outline.Outline, mods []place.Module) Report {
	if p == nil {
		p = contain.Winding{}
	}
	r := Report{Count: len(mods)}
	if o == nil || o.Empty() || len(mods) == 0 {
		return r
	}

	diag := o.BBox().Diagonal()
	step := diag / raySteps

	inside := 0
	minClear := math.Inf(1)
	var clearSum, symSum float64
	for _, m := range mods {
		// Same containment question the placement engine asks: the module
		// body as a capsule, both medial end caps inside.
		long := math.Max(m.W, m.H)
		short := math.Min(m.W, m.H)
		if contain.CapsuleInside(p, o, m.X, m.Y, m.Rotation, (long-short)/2) {
			inside++
		}

		right := marchClearance(p, o, m.X, m.Y, 1, 0, step, diag)
		left := marchClearance(p, o, m.X, m.Y, -1, 0, step, diag)
		up := marchClearance(p, o, m.X, m.Y, 0, 1, step, diag)
		down := marchClearance(p, o, m.X, m.Y, 0, -1, step, diag)

		c := math.Min(math.Min(right, left), math.Min(up, down))
		clearSum += c
		if c < minClear {
			minClear = c
		}

		// Per-axis balance; a module is symmetric enough if it is
		// centered along at least one axis of the stroke around it.
		symSum += math.Max(axisSymmetry(right, left), axisSymmetry(up, down))
	}

	r.InsideRate = float64(inside) / float64(len(mods))
	r.MinClearance = minClear
	r.MeanClearance = clearSum / float64(len(mods))
	r.SymmetryMean = symSum / float64(len(mods))
	r.NNMean, r.NNCV = nearestNeighborStats(mods)
	return r
}

// Grade checks the report against the thresholds and returns every
// breached gate. An empty placement fails outright.
func (r Report) Grade(t Thresholds) (bool, []string) {
	var failures []string
	if r.Count == 0 {
		return false, []string{"placement is empty"}
	}
	if r.InsideRate < t.MinInsideRate {
		failures = append(failures, fmt.Sprintf("inside rate %.3f below %.3f", r.InsideRate, t.MinInsideRate))
	}
	if r.MinClearance < t.MinClearance {
		failures = append(failures, fmt.Sprintf("min clearance %.3f below %.3f", r.MinClearance, t.MinClearance))
	}
	if r.SymmetryMean < t.MinSymmetry {
		failures = append(failures, fmt.Sprintf("mean symmetry %.3f below %.3f", r.SymmetryMean, t.MinSymmetry))
	}
	if r.NNCV > t.MaxNNCV {
		failures = append(failures, fmt.Sprintf("neighbor distance CV %.3f above %.3f", r.NNCV, t.MaxNNCV))
	}
	return len(failures) == 0, failures
}

// marchClearance ray-marches from (x, y) along (dx, dy) until the march
// exits the outline, returning the distance covered. The march is capped
// at the bbox diagonal so escaped start points cost a bounded number of
// containment calls.
func marchClearance(p contain.Provider, o *outline.Outline, x, y, dx, dy, step, max float64) float64 {
	for d := step; d <= max; d += step {
		if !contain.PointInside(p, o, x+dx*d, y+dy*d) {
			return d - step
		}
	}
	return max
}

// axisSymmetry scores how evenly (x, y) sits between the two opposing
// clearances: 1 means perfectly centered, 0 means flush against one side.
func axisSymmetry(pos, neg float64) float64 {
	sum := pos + neg
	if sum == 0 {
		return 1
	}
	return 1 - math.Abs(pos-neg)/sum
}

// nearestNeighborStats returns the mean nearest-neighbor center distance
// and its coefficient of variation. Fewer than two modules have no
// neighbor structure and report zeros.
func nearestNeighborStats(mods []place.Module) (mean, cv float64) {
	if len(mods) < 2 {
		return 0, 0
	}
	dists := make([]float64, len(mods))
	for i := range mods {
		best := math.Inf(1)
		for j := range mods {
			if i == j {
				continue
			}
			d := math.Hypot(mods[i].X-mods[j].X, mods[i].Y-mods[j].Y)
			if d < best {
				best = d
			}
		}
		dists[i] = best
		mean += best
	}
	mean /= float64(len(dists))
	if mean == 0 {
		return 0, 0
	}
	var varSum float64
	for _, d := range dists {
		varSum += (d - mean) * (d - mean)
	}
	return mean, math.Sqrt(varSum/float64(len(dists))) / mean
}
