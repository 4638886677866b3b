package anchor

import (
	"math"
	"strconv"
	"strings"

	"github.com/mklettner/ledsmith/pkg/outline"
)

// fmtNum renders a coordinate rounded to two decimals, trimming trailing
// zeros. Two decimals is the model's round-trip tolerance: serialized
// geometry re-parses within 1e-2 of the mutated commands.
func fmtNum(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // normalize negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Serialize renders an absolute command stream back to a path string.
func Serialize(cmds []outline.Command) string {
	var b strings.Builder
	for i, cmd := range cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(cmd.Op.String())
		for _, a := range cmd.Args {
			b.WriteByte(' ')
			b.WriteString(fmtNum(a))
		}
	}
	return b.String()
}
