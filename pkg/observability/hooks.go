// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about pipeline execution, cache operations, and anchor
// editing sessions.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnPlaceStart(ctx, strategy, estimate)
//	// ... do placement ...
//	observability.Pipeline().OnPlaceComplete(ctx, strategy, placed, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the fill pipeline.
type PipelineHooks interface {
	// Validate events
	OnValidateStart(ctx context.Context, pathLen int)
	OnValidateComplete(ctx context.Context, code string, duration time.Duration)

	// Parse events
	OnParseStart(ctx context.Context, pathLen int)
	OnParseComplete(ctx context.Context, contours, points int, duration time.Duration)

	// Placement events
	OnPlaceStart(ctx context.Context, strategy string, estimate int)
	OnPlaceComplete(ctx context.Context, strategy string, placed int, duration time.Duration, err error)

	// Grading events
	OnGradeComplete(ctx context.Context, pass bool, duration time.Duration)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Editor Hooks
// =============================================================================

// EditorHooks receives events from anchor editing sessions. Rejected moves
// are the interesting signal: a spike in rejections usually means a preset
// or a letter source is fighting the validator.
type EditorHooks interface {
	// OnMoveAttempt records a requested anchor move.
	OnMoveAttempt(ctx context.Context, pointID string)

	// OnMoveCommitted records an accepted move, including warned ones.
	OnMoveCommitted(ctx context.Context, pointID string, severity string)

	// OnMoveRejected records a reverted move and the validator's reason.
	OnMoveRejected(ctx context.Context, pointID string, reason string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnValidateStart(context.Context, int)                          {}
func (NoopPipelineHooks) OnValidateComplete(context.Context, string, time.Duration)     {}
func (NoopPipelineHooks) OnParseStart(context.Context, int)                             {}
func (NoopPipelineHooks) OnParseComplete(context.Context, int, int, time.Duration)      {}
func (NoopPipelineHooks) OnPlaceStart(context.Context, string, int)                     {}
func (NoopPipelineHooks) OnPlaceComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnGradeComplete(context.Context, bool, time.Duration) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopEditorHooks is a no-op implementation of EditorHooks.
type NoopEditorHooks struct{}

func (NoopEditorHooks) OnMoveAttempt(context.Context, string)           {}
func (NoopEditorHooks) OnMoveCommitted(context.Context, string, string) {}
func (NoopEditorHooks) OnMoveRejected(context.Context, string, string)  {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	editorHooks   EditorHooks   = NoopEditorHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetEditorHooks registers custom editor hooks.
// This should be called once at application startup before any editing sessions.
func SetEditorHooks(h EditorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		editorHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Editor returns the registered editor hooks.
func Editor() EditorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return editorHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	editorHooks = NoopEditorHooks{}
}
