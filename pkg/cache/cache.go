// Package cache provides content-addressed caching for pipeline stages.
//
// Parsing an outline is cheap; filling a large letter and grading the
// result is not. The pipeline caches per stage, keyed on a hash of the
// exact inputs, so re-runs with the same path and preset skip straight to
// the stored plan.
package cache

import (
	"context"
	"time"
)

// Cache TTLs per pipeline stage. Outlines are pure functions of the path
// string and never go stale; plans and reports expire so preset tuning
// does not serve week-old layouts forever.
const (
	TTLOutline = 0 // no expiry
	TTLPlan    = 7 * 24 * time.Hour
	TTLReport  = 7 * 24 * time.Hour
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// PlanKeyOpts captures every placement input that changes the fill result.
type PlanKeyOpts struct {
	Strategy    string
	Orientation string
	Scale       float64
	Spacing     float64
	Inset       float64
}

// ReportKeyOpts captures the grading thresholds a cached report was judged
// against.
type ReportKeyOpts struct {
	MinInsideRate float64
	MinClearance  float64
	MinSymmetry   float64
	MaxNNCV       float64
}

// Keyer derives cache keys for the pipeline stages. Implementations must
// be deterministic: equal inputs yield equal keys across processes.
type Keyer interface {
	// OutlineKey keys a parsed outline by the hash of its path string.
	OutlineKey(pathHash string) string

	// PlanKey keys a fill result by outline hash and placement options.
	PlanKey(outlineHash string, opts PlanKeyOpts) string

	// ReportKey keys a quality report by plan hash and thresholds.
	ReportKey(planHash string, opts ReportKeyOpts) string
}

// DefaultKeyer is the standard key scheme: a stage prefix plus a SHA-256
// over the JSON encoding of the inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// OutlineKey generates a key for outline caching.
func (k *DefaultKeyer) OutlineKey(pathHash string) string {
	return hashKey("outline", pathHash)
}

// PlanKey generates a key for plan caching.
func (k *DefaultKeyer) PlanKey(outlineHash string, opts PlanKeyOpts) string {
	return hashKey("plan", outlineHash, opts)
}

// ReportKey generates a key for report caching.
func (k *DefaultKeyer) ReportKey(planHash string, opts ReportKeyOpts) string {
	return hashKey("report", planHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
