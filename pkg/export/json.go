package export

import (
	"bytes"

	"github.com/mklettner/ledsmith/pkg/plan"
)

// RenderJSON renders the plan as its canonical JSON document.
func RenderJSON(p *plan.Plan) ([]byte, error) {
	var buf bytes.Buffer
	if err := plan.WriteJSON(p, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
