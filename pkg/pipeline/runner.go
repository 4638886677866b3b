package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/mklettner/ledsmith/pkg/cache"
	"github.com/mklettner/ledsmith/pkg/errors"
	"github.com/mklettner/ledsmith/pkg/export"
	"github.com/mklettner/ledsmith/pkg/observability"
	"github.com/mklettner/ledsmith/pkg/outline"
	"github.com/mklettner/ledsmith/pkg/outline/validate"
	"github.com/mklettner/ledsmith/pkg/place"
	"github.com/mklettner/ledsmith/pkg/place/quality"
	"github.com/mklettner/ledsmith/pkg/plan"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete validate → parse → place → grade pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)

	result := &Result{
		RunID:     uuid.NewString(),
		Pass:      true,
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Validate
	validateStart := time.Now()
	if err := r.Validate(ctx, opts); err != nil {
		return nil, err
	}
	result.Stats.ValidateTime = time.Since(validateStart)

	// Stage 2: Parse
	parseStart := time.Now()
	o, err := r.Parse(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Outline = o
	result.Stats.ParseTime = time.Since(parseStart)

	logger.Info("parsed outline",
		"contours", len(o.Contours),
		"perimeter", o.Perimeter(),
		"duration", result.Stats.ParseTime)

	// Stage 3: Place
	placeStart := time.Now()
	p, planHit, err := r.PlaceWithCacheInfo(ctx, o, opts)
	if err != nil {
		return nil, err
	}
	p.RunID = result.RunID
	result.Plan = p
	result.Stats.PlaceTime = time.Since(placeStart)
	result.Stats.ContourCount = len(o.Contours)
	result.Stats.ModuleCount = len(p.Modules)
	result.CacheInfo.PlanHit = planHit

	logger.Info("placed modules",
		"strategy", opts.Place.Strategy,
		"modules", len(p.Modules),
		"cached", planHit,
		"duration", result.Stats.PlaceTime)

	// Stage 4: Grade
	if !opts.SkipGrade {
		gradeStart := time.Now()
		report, reportHit := r.GradeWithCacheInfo(ctx, o, p, opts)
		p.Report = &report
		result.Pass, result.Failures = report.Grade(opts.Grade)
		result.Stats.GradeTime = time.Since(gradeStart)
		result.CacheInfo.ReportHit = reportHit
		observability.Pipeline().OnGradeComplete(ctx, result.Pass, result.Stats.GradeTime)

		logger.Info("graded placement",
			"pass", result.Pass,
			"inside_rate", report.InsideRate,
			"min_clearance", report.MinClearance,
			"duration", result.Stats.GradeTime)
	}

	// Stage 5: Render
	renderStart := time.Now()
	for _, format := range opts.Formats {
		data, err := r.render(p, format)
		if err != nil {
			return nil, err
		}
		result.Artifacts[format] = data
	}
	result.Stats.RenderTime = time.Since(renderStart)

	return result, nil
}

// Validate runs the outline validator over the raw path string.
func (r *Runner) Validate(ctx context.Context, opts Options) error {
	observability.Pipeline().OnValidateStart(ctx, len(opts.Path))
	start := time.Now()
	res := validate.Check(opts.Path, opts.Bounds)
	observability.Pipeline().OnValidateComplete(ctx, string(res.Code), time.Since(start))
	if !res.OK {
		return res.Err()
	}
	return nil
}

// Parse flattens the path into an outline.
func (r *Runner) Parse(ctx context.Context, opts Options) (*outline.Outline, error) {
	observability.Pipeline().OnParseStart(ctx, len(opts.Path))
	start := time.Now()
	o := outline.FromPath(opts.Path)
	if o.Empty() {
		return nil, errors.New(errors.ErrCodeShapeDegenerate, "path describes no usable contours")
	}
	points := 0
	for _, c := range o.Contours {
		points += len(c.Points)
	}
	observability.Pipeline().OnParseComplete(ctx, len(o.Contours), points, time.Since(start))
	return o, nil
}

// PlaceWithCacheInfo generates the placement with caching and returns cache hit info.
func (r *Runner) PlaceWithCacheInfo(ctx context.Context, o *outline.Outline, opts Options) (*plan.Plan, bool, error) {
	pathHash := cache.Hash([]byte(opts.Path))
	cacheKey := r.Keyer.PlanKey(pathHash, planKeyOpts(opts.Place))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached plan.Plan
			if err := json.Unmarshal(data, &cached); err == nil && cached.Validate() == nil {
				observability.Cache().OnCacheHit(ctx, "plan")
				return &cached, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "plan")
	}

	engine := place.New(opts.Provider)
	estimate := engine.EstimateCount(o, opts.Place)
	observability.Pipeline().OnPlaceStart(ctx, string(opts.Place.Strategy), estimate)
	if estimate > place.MaxModules {
		err := errors.New(errors.ErrCodePlacementOverflow,
			"configuration would place about %d modules, limit is %d; increase spacing or scale", estimate, place.MaxModules)
		observability.Pipeline().OnPlaceComplete(ctx, string(opts.Place.Strategy), 0, 0, err)
		return nil, false, err
	}

	start := time.Now()
	mods := engine.Autofill(o, opts.Place)
	observability.Pipeline().OnPlaceComplete(ctx, string(opts.Place.Strategy), len(mods), time.Since(start), nil)

	p := &plan.Plan{
		Version:   plan.Version,
		Letter:    opts.Letter,
		Path:      opts.Path,
		Bounds:    o.BBox(),
		Config:    opts.Place,
		Modules:   mods,
		CreatedAt: time.Now().UTC(),
	}

	// Cache the result
	if data, err := json.Marshal(p); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLPlan)
		observability.Cache().OnCacheSet(ctx, "plan", len(data))
	}

	return p, false, nil // Cache miss
}

// Place is a convenience wrapper that calls PlaceWithCacheInfo and discards the cache hit info.
func (r *Runner) Place(ctx context.Context, o *outline.Outline, opts Options) (*plan.Plan, error) {
	p, _, err := r.PlaceWithCacheInfo(ctx, o, opts)
	return p, err
}

// GradeWithCacheInfo evaluates placement quality with caching and returns cache hit info.
func (r *Runner) GradeWithCacheInfo(ctx context.Context, o *outline.Outline, p *plan.Plan, opts Options) (quality.Report, bool) {
	planHash := ""
	if data, err := json.Marshal(p.Modules); err == nil {
		planHash = cache.Hash(data)
	}
	cacheKey := r.Keyer.ReportKey(cache.Hash([]byte(opts.Path))+planHash, reportKeyOpts(opts.Grade))

	if !opts.Refresh && planHash != "" {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached quality.Report
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "report")
				return cached, true // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "report")
	}

	report := quality.Evaluate(opts.Provider, o, p.Modules)

	// Cache the result
	if planHash != "" {
		if data, err := json.Marshal(report); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLReport)
			observability.Cache().OnCacheSet(ctx, "report", len(data))
		}
	}

	return report, false // Cache miss
}

func (r *Runner) render(p *plan.Plan, format string) ([]byte, error) {
	switch format {
	case FormatSVG:
		return export.RenderSVG(p), nil
	case FormatJSON:
		return export.RenderJSON(p)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", format)
	}
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

func planKeyOpts(cfg place.Config) cache.PlanKeyOpts {
	return cache.PlanKeyOpts{
		Strategy:    string(cfg.Strategy),
		Orientation: string(cfg.Orientation),
		Scale:       cfg.Scale,
		Spacing:     cfg.Spacing,
		Inset:       cfg.Inset,
	}
}

func reportKeyOpts(t quality.Thresholds) cache.ReportKeyOpts {
	return cache.ReportKeyOpts{
		MinInsideRate: t.MinInsideRate,
		MinClearance:  t.MinClearance,
		MinSymmetry:   t.MinSymmetry,
		MaxNNCV:       t.MaxNNCV,
	}
}
