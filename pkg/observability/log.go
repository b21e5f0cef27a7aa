package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level, and failures at
// warn level. It implements all three hook interfaces.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to logger, prefixed with the area.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

// Install registers h for the pipeline, cache and server.
func (h *LogHooks) Install() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetServerHooks(h)
}

func (h *LogHooks) done(area, msg string, err error, kv ...any) {
	kv = append([]any{"area", area}, kv...)
	if err != nil {
		h.logger.Warn(msg, append(kv, "error", err)...)
		return
	}
	h.logger.Debug(msg, kv...)
}

func (h *LogHooks) OnParseStart(_ context.Context, layout string) {
	h.logger.Debug("parse", "area", "pipeline", "layout", layout)
}

func (h *LogHooks) OnParseComplete(_ context.Context, layout string, leaves int, d time.Duration, err error) {
	h.done("pipeline", "parsed", err, "layout", layout, "leaves", leaves, "took", d)
}

func (h *LogHooks) OnPartitionComplete(_ context.Context, layout string, zones int, d time.Duration, err error) {
	h.done("pipeline", "partitioned", err, "layout", layout, "zones", zones, "took", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("render", "area", "pipeline", "format", format)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	h.done("pipeline", "rendered", err, "format", format, "bytes", size, "took", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("cache hit", "area", "cache", "key", key)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("cache miss", "area", "cache", "key", key)
}

func (h *LogHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("cache set", "area", "cache", "key", key, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string) {
	h.logger.Debug("request", "area", "server", "method", method, "route", route)
}

func (h *LogHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.logger.Debug("response", "area", "server", "method", method, "route", route, "status", status, "took", d)
}
