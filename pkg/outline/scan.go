package outline

import "strconv"

// scanner is the token reader behind Parse: a position over the raw string
// yielding command letters and numbers, skipping whitespace and commas.
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner {
	s := &scanner{src: src}
	s.skipSeparators()
	return s
}

func isSeparator(b byte) bool {
	return b == ' ' || b == ',' || b == '\t' || b == '\n' || b == '\r'
}

func isCommand(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func (s *scanner) skipSeparators() {
	for s.pos < len(s.src) && isSeparator(s.src[s.pos]) {
		s.pos++
	}
}

// done reports whether the scanner has consumed all tokens.
func (s *scanner) done() bool { return s.pos >= len(s.src) }

// peekCommand reports the command letter at the current position without
// consuming it. It returns false when the next token is a number or the
// input is exhausted.
func (s *scanner) peekCommand() (byte, bool) {
	if s.done() {
		return 0, false
	}
	b := s.src[s.pos]
	if isCommand(b) {
		return b, true
	}
	return 0, false
}

// next consumes the command letter at the current position.
func (s *scanner) next() {
	if !s.done() && isCommand(s.src[s.pos]) {
		s.pos++
		s.skipSeparators()
	}
}

// number consumes one signed decimal or scientific number. A sign character
// terminates the preceding number, so compact streams like "1-2" split into
// two tokens.
func (s *scanner) number() (float64, bool) {
	if s.done() || isCommand(s.src[s.pos]) {
		return 0, false
	}

	start := s.pos
	i := s.pos
	if i < len(s.src) && (s.src[i] == '+' || s.src[i] == '-') {
		i++
	}
	seenDot := false
	for i < len(s.src) {
		b := s.src[i]
		switch {
		case b >= '0' && b <= '9':
			i++
		case b == '.' && !seenDot:
			seenDot = true
			i++
		case b == 'e' || b == 'E':
			// Exponent: optional sign then digits. Bail to ParseFloat's
			// judgement on whether what follows is digits.
			j := i + 1
			if j < len(s.src) && (s.src[j] == '+' || s.src[j] == '-') {
				j++
			}
			if j < len(s.src) && s.src[j] >= '0' && s.src[j] <= '9' {
				i = j + 1
				for i < len(s.src) && s.src[i] >= '0' && s.src[i] <= '9' {
					i++
				}
			}
			goto parse
		default:
			goto parse
		}
	}

parse:
	if i == start {
		// Not a number at all (stray symbol); consume one byte so the
		// caller makes progress.
		s.pos++
		s.skipSeparators()
		return 0, false
	}
	v, err := strconv.ParseFloat(s.src[start:i], 64)
	s.pos = i
	s.skipSeparators()
	if err != nil {
		return 0, false
	}
	return v, true
}

// numbers consumes exactly n numbers, reporting failure when the stream
// runs short or yields a non-number token.
func (s *scanner) numbers(n int) ([]float64, bool) {
	if n == 0 {
		return nil, true
	}
	out := make([]float64, 0, n)
	for len(out) < n {
		v, ok := s.number()
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

// skipToken discards one token of any kind, reporting whether anything
// remained to skip.
func (s *scanner) skipToken() bool {
	if s.done() {
		return false
	}
	if isCommand(s.src[s.pos]) {
		s.next()
		return true
	}
	s.number()
	return true
}
