package anchor

import (
	"github.com/mklettner/ledsmith/pkg/errors"
	"github.com/mklettner/ledsmith/pkg/geom"
	"github.com/mklettner/ledsmith/pkg/outline"
)

// Severity is the strength of a move verdict.
type Severity string

// Verdict severities. Error reverts the move; warn commits it but surfaces
// the reason as a non-blocking notice; ok commits silently.
const (
	SeverityOK    Severity = "ok"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// Verdict is the outcome of validating a candidate path against the
// previous one.
type Verdict struct {
	Severity Severity
	Reason   string
}

// Validator decides whether a candidate path produced by a move is
// committed. It is injected rather than hard-coded so the geometry-mutation
// logic and the accept/reject policy can be tested independently.
type Validator interface {
	ValidateMove(prev, candidate string, bounds *geom.Rect) Verdict
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(prev, candidate string, bounds *geom.Rect) Verdict

// ValidateMove implements Validator.
func (f ValidatorFunc) ValidateMove(prev, candidate string, bounds *geom.Rect) Verdict {
	return f(prev, candidate, bounds)
}

// MoveResult is the outcome of MoveAnchorSafe.
type MoveResult struct {
	Accepted bool     `json:"accepted"`
	Severity Severity `json:"severity"`
	Reason   string   `json:"reason,omitempty"`
	Path     string   `json:"pathData"`
	Points   []Point  `json:"points"`
}

// MoveAnchorSafe applies the interactive edit protocol: locate the point,
// move it (and its linked anchors) to target, re-serialize, validate, and
// commit or revert.
//
// On rejection the returned Path is the input d unchanged — byte-identical —
// so the caller's last-accepted snapshot is always a safe state to render.
func MoveAnchorSafe(d, pointID string, target geom.Point, bounds *geom.Rect, v Validator) (MoveResult, error) {
	cmds := outline.ToCommands(d)
	pts := buildPoints(cmds)

	var pt *Point
	for i := range pts {
		if pts[i].ID == pointID {
			pt = &pts[i]
			break
		}
	}
	if pt == nil {
		return MoveResult{}, errors.New(errors.ErrCodeInvalidPoint, "unknown point id %q", pointID)
	}

	if pt.Kind != KindAnchor {
		// Control handles move alone; no linking applies.
		cmds[pt.Seg].Args[pt.Slot] = target.X
		cmds[pt.Seg].Args[pt.Slot+1] = target.Y
	} else {
		moveLinkedAnchors(cmds, *pt, target)
	}

	candidate := Serialize(cmds)
	verdict := v.ValidateMove(d, candidate, bounds)

	if verdict.Severity == SeverityError {
		return MoveResult{
			Accepted: false,
			Severity: SeverityError,
			Reason:   verdict.Reason,
			Path:     d,
			Points:   BuildPoints(d),
		}, nil
	}

	return MoveResult{
		Accepted: true,
		Severity: verdict.Severity,
		Reason:   verdict.Reason,
		Path:     candidate,
		Points:   BuildPoints(candidate),
	}, nil
}

// anchorRef names one anchor coordinate pair inside a command stream.
type anchorRef struct {
	seg, slot int
}

// moveLinkedAnchors translates the targeted anchor and every anchor linked
// to it (same contour, coincident before the move) in lock-step, so a
// closed contour's join never splits.
func moveLinkedAnchors(cmds []outline.Command, pt Point, target geom.Point) {
	orig := pt.Pos()
	delta := target.Sub(orig)

	for _, ref := range linkedAnchors(cmds, pt.Contour, orig) {
		cmd := &cmds[ref.seg]

		// Incoming control: the control of the same curve command ending at
		// this anchor.
		switch cmd.Op {
		case outline.OpCubic:
			cmd.Args[2] += delta.X
			cmd.Args[3] += delta.Y
		case outline.OpQuad:
			cmd.Args[0] += delta.X
			cmd.Args[1] += delta.Y
		}

		// Leading control of the curve starting at this anchor.
		if next := ref.seg + 1; next < len(cmds) {
			switch cmds[next].Op {
			case outline.OpCubic, outline.OpQuad:
				cmds[next].Args[0] += delta.X
				cmds[next].Args[1] += delta.Y
			}
		}

		// The anchor itself. The targeted anchor snaps exactly to target;
		// linked partners translate by delta to avoid double-snapping.
		if ref.seg == pt.Seg && ref.slot == pt.Slot {
			cmd.Args[ref.slot] = target.X
			cmd.Args[ref.slot+1] = target.Y
		} else {
			cmd.Args[ref.slot] += delta.X
			cmd.Args[ref.slot+1] += delta.Y
		}
	}
}

// linkedAnchors returns every anchor coordinate pair in the given contour
// coincident with pos within LinkTol, in command order. The targeted anchor
// itself is included.
func linkedAnchors(cmds []outline.Command, contour int, pos geom.Point) []anchorRef {
	var refs []anchorRef
	cur := -1
	for i, cmd := range cmds {
		if cmd.Op == outline.OpMove {
			cur++
		} else if cur < 0 {
			cur = 0
		}
		if cur != contour {
			continue
		}
		seg, slot := i, -1
		switch cmd.Op {
		case outline.OpMove, outline.OpLine:
			slot = 0
		case outline.OpCubic:
			slot = 4
		case outline.OpQuad:
			slot = 2
		case outline.OpArc:
			slot = 5
		}
		if slot < 0 {
			continue
		}
		p := geom.Point{X: cmd.Args[slot], Y: cmd.Args[slot+1]}
		if p.Dist(pos) <= LinkTol {
			refs = append(refs, anchorRef{seg: seg, slot: slot})
		}
	}
	return refs
}
