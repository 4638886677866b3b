package outline

import "github.com/mklettner/ledsmith/pkg/geom"

// Op identifies one absolute drawing instruction kind.
type Op byte

// Command kinds. Relative commands, horizontal/vertical lines, and the
// shorthand curve variants are normalized away during scanning: H/V become
// lines, S/T become full cubic/quadratic commands with their reflected
// control point materialized.
const (
	OpMove Op = iota
	OpLine
	OpCubic
	OpQuad
	OpArc
	OpClose
)

// String returns the command letter used when serializing the op.
func (op Op) String() string {
	switch op {
	case OpMove:
		return "M"
	case OpLine:
		return "L"
	case OpCubic:
		return "C"
	case OpQuad:
		return "Q"
	case OpArc:
		return "A"
	case OpClose:
		return "Z"
	}
	return "?"
}

// Command is a single absolute-coordinate drawing instruction.
//
// Args layout by op:
//
//	OpMove, OpLine  [x y]
//	OpCubic         [c1x c1y c2x c2y x y]
//	OpQuad          [cx cy x y]
//	OpArc           [rx ry rot largeArc sweep x y]  (x y absolute)
//	OpClose         []
//
// Commands are the authoritative, order-preserving representation the
// anchor model mutates; contours are a derived, read-only flattening.
type Command struct {
	Op   Op
	Args []float64
}

// End returns the command's endpoint. Close commands have no coordinates;
// the caller tracks the contour start.
func (c Command) End() (geom.Point, bool) {
	switch c.Op {
	case OpMove, OpLine:
		return geom.Point{X: c.Args[0], Y: c.Args[1]}, true
	case OpCubic:
		return geom.Point{X: c.Args[4], Y: c.Args[5]}, true
	case OpQuad:
		return geom.Point{X: c.Args[2], Y: c.Args[3]}, true
	case OpArc:
		return geom.Point{X: c.Args[5], Y: c.Args[6]}, true
	}
	return geom.Point{}, false
}

// ToCommands scans a path string into absolute commands. Like Parse it is
// permissive: malformed or truncated trailing tokens are dropped, unknown
// letters are skipped, and numbers before any command are discarded.
func ToCommands(d string) []Command {
	s := newScanner(d)
	var out []Command

	var cur, start geom.Point
	var cubicCtrl, quadCtrl *geom.Point
	var cmd byte

	for {
		if c, ok := s.peekCommand(); ok {
			s.next()
			cmd = c
		} else if cmd == 0 {
			if !s.skipToken() {
				return out
			}
			continue
		} else {
			// Implicit repetition; a repeated move turns into a line.
			// Close takes no arguments and never repeats implicitly, so a
			// stray token after it is skipped like any leading junk.
			switch cmd {
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			case 'Z', 'z':
				cmd = 0
				continue
			}
		}

		upper := cmd &^ 0x20
		n, known := argCount[upper]
		if !known {
			cmd = 0
			continue
		}
		if s.done() && upper != 'Z' {
			return out
		}
		args, ok := s.numbers(n)
		if !ok {
			return out
		}
		rel := cmd >= 'a'

		abs := func(x, y float64) geom.Point {
			if rel {
				return geom.Point{X: cur.X + x, Y: cur.Y + y}
			}
			return geom.Point{X: x, Y: y}
		}
		reflect := func(last *geom.Point) geom.Point {
			if last == nil {
				return cur
			}
			return cur.Add(cur.Sub(*last))
		}

		switch upper {
		case 'M':
			cur = abs(args[0], args[1])
			start = cur
			out = append(out, Command{Op: OpMove, Args: []float64{cur.X, cur.Y}})
			cubicCtrl, quadCtrl = nil, nil

		case 'L':
			cur = abs(args[0], args[1])
			out = append(out, Command{Op: OpLine, Args: []float64{cur.X, cur.Y}})
			cubicCtrl, quadCtrl = nil, nil

		case 'H':
			if rel {
				cur = geom.Point{X: cur.X + args[0], Y: cur.Y}
			} else {
				cur = geom.Point{X: args[0], Y: cur.Y}
			}
			out = append(out, Command{Op: OpLine, Args: []float64{cur.X, cur.Y}})
			cubicCtrl, quadCtrl = nil, nil

		case 'V':
			if rel {
				cur = geom.Point{X: cur.X, Y: cur.Y + args[0]}
			} else {
				cur = geom.Point{X: cur.X, Y: args[0]}
			}
			out = append(out, Command{Op: OpLine, Args: []float64{cur.X, cur.Y}})
			cubicCtrl, quadCtrl = nil, nil

		case 'C':
			c1 := abs(args[0], args[1])
			c2 := abs(args[2], args[3])
			end := abs(args[4], args[5])
			out = append(out, Command{Op: OpCubic, Args: []float64{c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y}})
			cur = end
			cubicCtrl, quadCtrl = &c2, nil

		case 'S':
			c1 := reflect(cubicCtrl)
			c2 := abs(args[0], args[1])
			end := abs(args[2], args[3])
			out = append(out, Command{Op: OpCubic, Args: []float64{c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y}})
			cur = end
			cubicCtrl, quadCtrl = &c2, nil

		case 'Q':
			c1 := abs(args[0], args[1])
			end := abs(args[2], args[3])
			out = append(out, Command{Op: OpQuad, Args: []float64{c1.X, c1.Y, end.X, end.Y}})
			cur = end
			quadCtrl, cubicCtrl = &c1, nil

		case 'T':
			c1 := reflect(quadCtrl)
			end := abs(args[0], args[1])
			out = append(out, Command{Op: OpQuad, Args: []float64{c1.X, c1.Y, end.X, end.Y}})
			cur = end
			quadCtrl, cubicCtrl = &c1, nil

		case 'A':
			end := abs(args[5], args[6])
			out = append(out, Command{Op: OpArc, Args: []float64{args[0], args[1], args[2], args[3], args[4], end.X, end.Y}})
			cur = end
			cubicCtrl, quadCtrl = nil, nil

		case 'Z':
			out = append(out, Command{Op: OpClose})
			cur = start
			cubicCtrl, quadCtrl = nil, nil
		}

		if s.done() {
			return out
		}
	}
}
