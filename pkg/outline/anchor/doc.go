// Package anchor implements the editable-point model over a path string and
// the safe single-anchor move protocol used during interactive drags.
//
// The model works on the absolute command stream from the outline package:
// commands are the authoritative, order-preserving representation that gets
// mutated, re-serialized, and re-validated; flattened contours are only a
// derived sampling for geometry tests.
//
// # Point identity
//
// Every editable point carries an opaque ID derived from its structural
// position (command index plus argument slot). IDs are stable across
// re-serialization as long as command order is unchanged, and must be
// treated as invalidated whenever the caller replaces the path string —
// rebuild the index with BuildPoints after any external change.
//
// # The move protocol
//
// MoveAnchorSafe is two-phase: compute a candidate path, hand the previous
// and candidate strings to an injected validator, then commit or revert.
// The geometry visible to the user can therefore never reach an invalid
// state, even transiently mid-drag: a rejection returns the input string
// byte-identical, not a partially-mutated one.
package anchor
