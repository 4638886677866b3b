// Package outline parses path-description strings into polyline contours.
//
// The input mini-language is the familiar vector path format: a whitespace
// and comma tolerant token stream of command letters and signed decimal or
// scientific numbers. Uppercase commands are absolute, lowercase relative:
//
//	M/m (2)  move            L/l (2)  line
//	H/h (1)  horizontal line V/v (1)  vertical line
//	C/c (6)  cubic curve     S/s (4)  shorthand cubic
//	Q/q (4)  quadratic curve T/t (2)  shorthand quadratic
//	A/a (7)  elliptical arc  Z/z (0)  close
//
// A command letter followed by extra coordinate groups repeats implicitly;
// extra pairs after a move are treated as lines (polyline shorthand).
//
// Curves are flattened into fixed-count polyline samples because every
// downstream consumer (validation, containment, placement) works on
// polylines. The elliptical arc command is approximated by straight
// interpolation between its endpoints; arcs are rare in letter outlines and
// the validator tolerances were tuned against this approximation, so it
// must not be silently upgraded to true elliptical sampling.
//
// # Permissive parsing
//
// Parse never returns an error. Malformed or truncated trailing tokens are
// dropped, degenerate contours (one distinct point or fewer) are discarded,
// and consecutive near-duplicate points are collapsed. Partial path strings
// are expected during interactive editing; rejecting geometry is the job of
// the validate package, not the parser.
package outline
