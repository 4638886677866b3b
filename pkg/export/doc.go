// Package export renders placement plans to output formats.
//
// Two sinks exist: SVG for humans (the letter outline with every module
// drawn in place, ready for a browser or a vector editor) and JSON for
// machines (the full plan document, identical to [plan.WriteJSON] output).
//
// The SVG sink emits the plan's original path string verbatim as the
// outline element. The path mini-language is a subset of SVG path data,
// so no conversion is needed and the preview stays faithful to the source
// rather than to the flattened polyline.
package export
