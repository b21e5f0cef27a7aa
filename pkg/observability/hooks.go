// Package observability lets a binary watch the pipeline, the artifact cache
// and the HTTP API without those packages depending on a metrics or tracing
// backend.
//
// Each area has a hook interface and a no-op default. The binary installs
// its implementations once at startup; libraries only read them:
//
//	observability.SetPipelineHooks(observability.NewLogHooks(logger))
//
//	// inside pkg/pipeline
//	observability.Pipeline().OnPartitionComplete(ctx, name, len(zones), elapsed, err)
//
// Hooks may be called from several goroutines at once, since the pipeline
// partitions layouts concurrently.
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives per-layout parse and partition events and
// per-format render events.
type PipelineHooks interface {
	OnParseStart(ctx context.Context, layout string)
	OnParseComplete(ctx context.Context, layout string, leaves int, duration time.Duration, err error)
	OnPartitionComplete(ctx context.Context, layout string, zones int, duration time.Duration, err error)
	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// CacheHooks receives artifact cache lookups and writes. key is the full
// cache key.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, key string)
	OnCacheMiss(ctx context.Context, key string)
	OnCacheSet(ctx context.Context, key string, size int)
}

// ServerHooks receives HTTP API traffic. route is the chi route pattern,
// e.g. "POST /v1/render/{format}", so it is safe to use as a metric label.
type ServerHooks interface {
	OnRequest(ctx context.Context, method, route string)
	OnResponse(ctx context.Context, method, route string, status int, duration time.Duration)
}

// NoopPipelineHooks ignores every event. Embed it to implement a subset.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string)                                   {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, int, time.Duration, error)     {}
func (NoopPipelineHooks) OnPartitionComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)                                  {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, int, time.Duration, error)    {}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopServerHooks ignores every event.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string)                     {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

type registry struct {
	mu       sync.RWMutex
	pipeline PipelineHooks
	cache    CacheHooks
	server   ServerHooks
}

var hooks = registry{
	pipeline: NoopPipelineHooks{},
	cache:    NoopCacheHooks{},
	server:   NoopServerHooks{},
}

func set[T any](dst *T, h T, isNil bool) {
	if isNil {
		return
	}
	hooks.mu.Lock()
	*dst = h
	hooks.mu.Unlock()
}

func get[T any](src *T) T {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return *src
}

// SetPipelineHooks installs h. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) { set(&hooks.pipeline, h, h == nil) }

// SetCacheHooks installs h. A nil h is ignored.
func SetCacheHooks(h CacheHooks) { set(&hooks.cache, h, h == nil) }

// SetServerHooks installs h. A nil h is ignored.
func SetServerHooks(h ServerHooks) { set(&hooks.server, h, h == nil) }

// Pipeline returns the installed pipeline hooks.
func Pipeline() PipelineHooks { return get(&hooks.pipeline) }

// Cache returns the installed cache hooks.
func Cache() CacheHooks { return get(&hooks.cache) }

// Server returns the installed server hooks.
func Server() ServerHooks { return get(&hooks.server) }

// Reset reinstalls the no-op hooks.
func Reset() {
	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	hooks.pipeline = NoopPipelineHooks{}
	hooks.cache = NoopCacheHooks{}
	hooks.server = NoopServerHooks{}
}
