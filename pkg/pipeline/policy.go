package pipeline

import (
	"github.com/mklettner/ledsmith/pkg/geom"
	"github.com/mklettner/ledsmith/pkg/outline"
	"github.com/mklettner/ledsmith/pkg/outline/anchor"
	"github.com/mklettner/ledsmith/pkg/outline/validate"
)

// MoveValidator is the production policy for interactive anchor edits.
//
// Structural failures from the outline validator reject the move outright,
// which makes [anchor.MoveAnchorSafe] roll the path back. A move that
// passes but grows the outline's bounding box only warns: the edit commits,
// and the caller surfaces the warning to the user.
func MoveValidator() anchor.Validator {
	return anchor.ValidatorFunc(func(prev, candidate string, bounds *geom.Rect) anchor.Verdict {
		if res := validate.Check(candidate, bounds); !res.OK {
			return anchor.Verdict{Severity: anchor.SeverityError, Reason: res.Message}
		}

		prevBox := outline.FromPath(prev).BBox()
		candBox := outline.FromPath(candidate).BBox()
		if !prevBox.ContainsRect(candBox) {
			return anchor.Verdict{Severity: anchor.SeverityWarn, Reason: "move grows the outline bounding box"}
		}
		return anchor.Verdict{Severity: anchor.SeverityOK}
	})
}
