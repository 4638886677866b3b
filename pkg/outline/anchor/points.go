package anchor

import (
	"fmt"

	"github.com/mklettner/ledsmith/pkg/geom"
	"github.com/mklettner/ledsmith/pkg/outline"
)

// LinkTol is the distance within which two anchors on the same contour are
// treated as one logical joint (a closing join) and must move together.
const LinkTol = 0.01

// Kind distinguishes on-curve anchors from Bézier control handles.
type Kind string

// Editable point kinds.
const (
	KindAnchor   Kind = "anchor"
	KindControl1 Kind = "control1"
	KindControl2 Kind = "control2"
)

// Point is one manipulable handle derived from a command, carrying the
// back-references needed to write a move back losslessly.
type Point struct {
	ID      string  `json:"id"`
	Kind    Kind    `json:"kind"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Seg     int     `json:"seg"`     // command index
	Slot    int     `json:"slot"`    // index of the x coordinate in Args
	Contour int     `json:"contour"` // contour ordinal (move commands delimit)
}

// Pos returns the point's coordinates.
func (p Point) Pos() geom.Point { return geom.Point{X: p.X, Y: p.Y} }

// pointID derives the opaque identifier from structural position.
func pointID(seg, slot int) string {
	return fmt.Sprintf("s%d.%d", seg, slot)
}

// BuildPoints re-derives the editable point index from a path string.
//
// One point is emitted per anchor/control coordinate pair, except that
// anchors coincident within LinkTol on the same contour deduplicate to the
// first occurrence, so a closing join reports as a single logical point
// rather than two overlapping handles.
func BuildPoints(d string) []Point {
	return buildPoints(outline.ToCommands(d))
}

func buildPoints(cmds []outline.Command) []Point {
	var out []Point
	contour := -1
	// Anchor positions already emitted, per contour, for dedup.
	seen := make(map[int][]geom.Point)

	emitAnchor := func(seg, slot, contour int, x, y float64) {
		p := geom.Point{X: x, Y: y}
		for _, q := range seen[contour] {
			if p.Dist(q) <= LinkTol {
				return
			}
		}
		seen[contour] = append(seen[contour], p)
		out = append(out, Point{
			ID: pointID(seg, slot), Kind: KindAnchor,
			X: x, Y: y, Seg: seg, Slot: slot, Contour: contour,
		})
	}
	emitControl := func(seg, slot, contour int, kind Kind, x, y float64) {
		out = append(out, Point{
			ID: pointID(seg, slot), Kind: kind,
			X: x, Y: y, Seg: seg, Slot: slot, Contour: contour,
		})
	}

	for i, cmd := range cmds {
		if cmd.Op == outline.OpMove {
			contour++
		} else if contour < 0 {
			contour = 0
		}
		switch cmd.Op {
		case outline.OpMove, outline.OpLine:
			emitAnchor(i, 0, contour, cmd.Args[0], cmd.Args[1])
		case outline.OpCubic:
			emitControl(i, 0, contour, KindControl1, cmd.Args[0], cmd.Args[1])
			emitControl(i, 2, contour, KindControl2, cmd.Args[2], cmd.Args[3])
			emitAnchor(i, 4, contour, cmd.Args[4], cmd.Args[5])
		case outline.OpQuad:
			emitControl(i, 0, contour, KindControl1, cmd.Args[0], cmd.Args[1])
			emitAnchor(i, 2, contour, cmd.Args[2], cmd.Args[3])
		case outline.OpArc:
			emitAnchor(i, 5, contour, cmd.Args[5], cmd.Args[6])
		case outline.OpClose:
			// no coordinates
		}
	}
	return out
}
