package plan

import (
	"time"

	"github.com/mklettner/ledsmith/pkg/errors"
	"github.com/mklettner/ledsmith/pkg/geom"
	"github.com/mklettner/ledsmith/pkg/place"
	"github.com/mklettner/ledsmith/pkg/place/quality"
)

// Version is the current plan format version. Readers reject anything
// newer than what they understand.
const Version = 1

// Plan is one complete fill result, ready for fabrication or re-grading.
type Plan struct {
	Version   int             `json:"version"`
	RunID     string          `json:"run_id,omitempty"`
	Letter    string          `json:"letter,omitempty"`
	Path      string          `json:"path"`
	Bounds    geom.Rect       `json:"bounds"`
	Config    place.Config    `json:"config"`
	Modules   []place.Module  `json:"modules"`
	Report    *quality.Report `json:"report,omitempty"`
	CreatedAt time.Time       `json:"created_at,omitempty"`
}

// Validate checks structural invariants common to freshly built and
// imported plans.
func (p *Plan) Validate() error {
	if p.Version <= 0 || p.Version > Version {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported plan version %d", p.Version)
	}
	if err := errors.ValidatePathString(p.Path); err != nil {
		return err
	}
	if err := p.Config.Validate(); err != nil {
		return err
	}
	if len(p.Modules) > place.MaxModules {
		return errors.New(errors.ErrCodeInvalidFormat, "plan holds %d modules, limit is %d", len(p.Modules), place.MaxModules)
	}
	return nil
}
