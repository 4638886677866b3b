// Package pipeline provides the core fill pipeline for ledsmith.
//
// This package implements the complete validate → parse → place → grade
// pipeline that can be used by the CLI and by embedding tools. By
// centralizing this logic, we ensure consistent behavior across all entry
// points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Validate: Reject malformed or unfabricatable outline paths
//  2. Parse: Flatten the path into contours
//  3. Place: Generate LED module positions for the chosen strategy
//  4. Grade: Score the placement against quality thresholds
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Path:  "M 0 0 L 40 0 L 40 40 L 0 40 Z",
//	    Place: place.Config{Strategy: place.StrategyGrid, Scale: 1},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mklettner/ledsmith/pkg/contain"
	"github.com/mklettner/ledsmith/pkg/errors"
	"github.com/mklettner/ledsmith/pkg/geom"
	"github.com/mklettner/ledsmith/pkg/outline"
	"github.com/mklettner/ledsmith/pkg/place"
	"github.com/mklettner/ledsmith/pkg/place/quality"
	"github.com/mklettner/ledsmith/pkg/plan"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the fill pipeline.
// This struct supports JSON serialization for tool integrations.
type Options struct {
	// Input options
	Path   string     `json:"path"`
	Letter string     `json:"letter,omitempty"`
	Bounds *geom.Rect `json:"bounds,omitempty"` // design frame for the bbox-escape guard

	// Placement options
	Place place.Config `json:"place,omitempty"`

	// Grading options
	Grade     quality.Thresholds `json:"grade,omitempty"`
	SkipGrade bool               `json:"skip_grade,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Refresh bool     `json:"refresh,omitempty"` // bypass cache reads

	// Runtime options (not serialized)
	Logger   *log.Logger      `json:"-"`
	Provider contain.Provider `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidatePathString(o.Path); err != nil {
		return err
	}
	o.Place = o.Place.WithDefaults()
	if err := o.Place.Validate(); err != nil {
		return err
	}
	if o.Grade == (quality.Thresholds{}) {
		o.Grade = quality.DefaultThresholds()
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
}

// =============================================================================
// Result - Pipeline Outputs
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this execution in logs and artifacts.
	RunID string

	// Outline is the parsed letter geometry.
	Outline *outline.Outline

	// Plan is the finished placement, including the quality report when
	// grading ran.
	Plan *plan.Plan

	// Pass reports whether the placement met the grading thresholds.
	// Always true when grading was skipped.
	Pass bool

	// Failures lists the breached grading gates, empty when Pass.
	Failures []string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ContourCount int
	ModuleCount  int
	ValidateTime time.Duration
	ParseTime    time.Duration
	PlaceTime    time.Duration
	GradeTime    time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	PlanHit   bool // Whether the placement came from cache
	ReportHit bool // Whether the quality report came from cache
}
