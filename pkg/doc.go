// Package pkg provides the core libraries for Ledsmith LED module placement.
//
// # Overview
//
// Ledsmith takes a channel-letter outline (an SVG-style path string),
// validates it against fabrication rules, fills it with LED modules, and
// grades the result. The pkg directory is organized into four main areas:
//
//  1. Geometry and containment ([geom], [contain])
//  2. Outline handling ([outline], [outline/validate], [outline/anchor])
//  3. Placement and grading ([place], [place/quality])
//  4. Orchestration and output ([pipeline], [plan], [export], [config])
//
// # Architecture
//
// The typical data flow through Ledsmith:
//
//	Outline path string
//	         ↓
//	    [outline/validate] package (fabrication rules)
//	         ↓
//	    [outline] package (parse into contours)
//	         ↓
//	    [place] package (stroke or grid fill)
//	         ↓
//	    [place/quality] package (grade against thresholds)
//	         ↓
//	    SVG/JSON output via [export] and [plan]
//
// # Main Packages
//
// [geom] - Points, rectangles, and segment intersection tests shared by
// every geometric package.
//
// [contain] - Containment primitives: the Provider interface, the winding
// number point test, and the sampled capsule test modules are checked with.
//
// [outline] - Path scanning, command parsing, and the Outline type the
// placement and grading packages work against.
//
// [outline/validate] - Fabrication rules: degenerate shapes, self
// intersections, frame escapes, and curvature spikes.
//
// [outline/anchor] - Editable point extraction and the safe anchor-move
// protocol with validator-driven commit or revert.
//
// [place] - The placement engine: stroke walking and grid lattice
// strategies with overlap dedup and the hard module cap.
//
// [place/quality] - Placement metrics (inside rate, clearance, symmetry,
// pitch statistics) and threshold grading.
//
// [pipeline] - The validate → parse → place → grade pipeline used by the
// CLI, with plan and report caching.
//
// [plan] - The exported plan document and its JSON round trip.
//
// [export] - SVG and JSON rendering of plans.
//
// [config] - Built-in and TOML-loaded module-style presets.
//
// [cache] - Content-addressed file cache for plans and reports.
//
// [observability] - Hook registries for pipeline, cache, and editor events.
//
// [errors] - Coded errors and input validation shared across packages.
//
// [geom]: https://pkg.go.dev/github.com/mklettner/ledsmith/pkg/geom
// [contain]: https://pkg.go.dev/github.com/mklettner/ledsmith/pkg/contain
// [outline]: https://pkg.go.dev/github.com/mklettner/ledsmith/pkg/outline
// [outline/validate]: https://pkg.go.dev/github.com/mklettner/ledsmith/pkg/outline/validate
// [outline/anchor]: https://pkg.go.dev/github.com/mklettner/ledsmith/pkg/outline/anchor
// [place]: https://pkg.go.dev/github.com/mklettner/ledsmith/pkg/place
// [place/quality]: https://pkg.go.dev/github.com/mklettner/ledsmith/pkg/place/quality
// [pipeline]: https://pkg.go.dev/github.com/mklettner/ledsmith/pkg/pipeline
// [plan]: https://pkg.go.dev/github.com/mklettner/ledsmith/pkg/plan
// [export]: https://pkg.go.dev/github.com/mklettner/ledsmith/pkg/export
// [config]: https://pkg.go.dev/github.com/mklettner/ledsmith/pkg/config
// [cache]: https://pkg.go.dev/github.com/mklettner/ledsmith/pkg/cache
// [observability]: https://pkg.go.dev/github.com/mklettner/ledsmith/pkg/observability
// [errors]: https://pkg.go.dev/github.com/mklettner/ledsmith/pkg/errors
package pkg
