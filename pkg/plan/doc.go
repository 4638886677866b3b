// Package plan provides JSON import and export for placement plans.
//
// # Overview
//
// A plan is the durable artifact of a fill run: the letter outline it was
// computed for, the module-style configuration, the placed modules, and
// optionally the quality report. The format is designed for:
//
//   - Handing layouts to fabrication tooling that drills and wires letters
//   - Re-grading an existing layout against different thresholds
//   - Round-trip preservation: export, inspect, re-import identically
//
// # JSON Format
//
//	{
//	  "version": 1,
//	  "letter": "R",
//	  "path": "M 0 0 L 40 0 L 40 40 L 0 40 Z",
//	  "config": {"orientation": "horizontal", "scale": 1, ...},
//	  "modules": [{"x": 10, "y": 10, "rotation": 0, "w": 3, "h": 1}]
//	}
//
// The path field stores the original outline source, not the flattened
// polyline, so a re-import can re-derive geometry at current precision.
//
// # Import
//
// Use [ImportJSON] to read a plan from a file path, or [ReadJSON] to read
// from any io.Reader. Both validate the version, the path string, and the
// configuration before returning.
//
// # Export
//
// Use [ExportJSON] to write a plan to a file, or [WriteJSON] to write to
// any io.Writer. The export includes every module and the quality report
// when one was computed.
package plan
