package outline

import (
	"testing"

	"github.com/mklettner/ledsmith/pkg/geom"
)

func ops(cmds []Command) []Op {
	out := make([]Op, len(cmds))
	for i, c := range cmds {
		out[i] = c.Op
	}
	return out
}

func TestToCommandsNormalization(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []Op
	}{
		{"square", "M 0 0 L 10 0 L 10 10 L 0 10 Z", []Op{OpMove, OpLine, OpLine, OpLine, OpClose}},
		{"h and v become lines", "M 0 0 H 10 V 10 h -10 v -10", []Op{OpMove, OpLine, OpLine, OpLine, OpLine}},
		{"shorthand cubic becomes cubic", "M 0 0 C 0 5 10 5 10 0 S 20 -5 20 0", []Op{OpMove, OpCubic, OpCubic}},
		{"shorthand quad becomes quad", "M 0 0 Q 5 5 10 0 T 20 0", []Op{OpMove, OpQuad, OpQuad}},
		{"arc preserved", "M 0 0 A 5 5 0 0 1 10 0", []Op{OpMove, OpArc}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ops(ToCommands(tt.path))
			if len(got) != len(tt.want) {
				t.Fatalf("ops = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("ops = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestToCommandsTrailingTokensAfterClose(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []Op
	}{
		{"number after close dropped", "M 0 0 L 10 0 L 10 10 Z 5", []Op{OpMove, OpLine, OpLine, OpClose}},
		{"lowercase close", "m 0 0 l 10 0 z 1", []Op{OpMove, OpLine, OpClose}},
		{"commands resume after junk", "M 0 0 L 10 0 Z 5 7 M 20 20 L 30 20", []Op{OpMove, OpLine, OpClose, OpMove, OpLine}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ops(ToCommands(tt.path))
			if len(got) != len(tt.want) {
				t.Fatalf("ops = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("ops = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestToCommandsAbsolutization(t *testing.T) {
	cmds := ToCommands("m 1 1 l 2 0 c 1 1 2 1 3 0")
	if len(cmds) != 3 {
		t.Fatalf("commands = %d, want 3", len(cmds))
	}
	if p, _ := cmds[1].End(); p != (geom.Point{X: 3, Y: 1}) {
		t.Errorf("line end = %v, want {3 1}", p)
	}
	c := cmds[2]
	wantArgs := []float64{4, 2, 5, 2, 6, 1}
	for i, v := range wantArgs {
		if c.Args[i] != v {
			t.Errorf("cubic args = %v, want %v", c.Args, wantArgs)
			break
		}
	}
}

func TestToCommandsReflectedControl(t *testing.T) {
	// Prior cubic's second control is (10,5); reflecting through the
	// endpoint (10,0) gives (10,-5) as the shorthand's first control.
	cmds := ToCommands("M 0 0 C 0 5 10 5 10 0 S 20 -5 20 0")
	c := cmds[2]
	if c.Args[0] != 10 || c.Args[1] != -5 {
		t.Errorf("reflected control = (%v,%v), want (10,-5)", c.Args[0], c.Args[1])
	}

	// No prior curve: the reflected control collapses onto the current point.
	cmds = ToCommands("M 3 4 S 6 0 9 4")
	c = cmds[1]
	if c.Args[0] != 3 || c.Args[1] != 4 {
		t.Errorf("fallback control = (%v,%v), want (3,4)", c.Args[0], c.Args[1])
	}
}

func TestCommandEnd(t *testing.T) {
	if _, ok := (Command{Op: OpClose}).End(); ok {
		t.Error("Close should report no endpoint")
	}
	if p, ok := (Command{Op: OpArc, Args: []float64{5, 5, 0, 0, 1, 7, 8}}).End(); !ok || p != (geom.Point{X: 7, Y: 8}) {
		t.Errorf("arc end = %v", p)
	}
}
