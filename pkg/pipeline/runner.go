package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/zonegen/pkg/cache"
	"github.com/matzehuels/zonegen/pkg/config"
	"github.com/matzehuels/zonegen/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can share one Runner with different options.
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

// Generate parses and partitions every layout of doc concurrently. Results
// are in document order. The first failure cancels the remaining work.
func (r *Runner) Generate(ctx context.Context, doc *config.Document, opts Options) ([]Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, len(doc.Layouts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, l := range doc.Layouts {
		g.Go(func() error {
			res, err := Generate(gctx, l, doc.PaddingFor(l), opts.Root)
			if err != nil {
				return err
			}
			results[i] = res
			r.Logger.Debug("partitioned layout",
				"layout", l.Name,
				"leaves", res.Stats.Leaves,
				"zones", len(res.Zones))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Render generates one artifact, serving it from the cache when possible.
// The bool reports a cache hit.
func (r *Runner) Render(ctx context.Context, results []Result, format string) ([]byte, bool, error) {
	return r.render(ctx, results, format, false)
}

func (r *Runner) render(ctx context.Context, results []Result, format string, refresh bool) ([]byte, bool, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, false, err
	}

	doc := Document(results)
	docHash, err := cache.HashJSON(doc)
	if err != nil {
		return nil, false, fmt.Errorf("hash document: %w", err)
	}
	key := r.Keyer.ArtifactKey(docHash, cache.ArtifactKeyOpts{Format: format, Root: doc.Canvas})
	hooks := observability.Cache()

	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			hooks.OnCacheHit(ctx, key)
			return data, true, nil
		} else if err != nil {
			r.Logger.Warn("cache read failed", "format", format, "error", err)
		}
		hooks.OnCacheMiss(ctx, key)
	}

	ph := observability.Pipeline()
	ph.OnRenderStart(ctx, format)
	start := time.Now()
	data, err := Render(ctx, results, format)
	ph.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		r.Logger.Warn("cache write failed", "format", format, "error", err)
	} else {
		hooks.OnCacheSet(ctx, key, len(data))
	}
	return data, false, nil
}

// Execute runs Generate, then renders every requested format.
func (r *Runner) Execute(ctx context.Context, doc *config.Document, opts Options) (*Output, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	out := &Output{Artifacts: make(map[string][]byte, len(opts.Formats))}

	start := time.Now()
	results, err := r.Generate(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	out.Results = results
	out.Stats.GenTime = time.Since(start)
	out.Stats.Layouts = len(results)
	for _, res := range results {
		out.Stats.Zones += len(res.Zones)
	}

	r.Logger.Info("partitioned layouts",
		"layouts", out.Stats.Layouts,
		"zones", out.Stats.Zones,
		"duration", out.Stats.GenTime)

	start = time.Now()
	for _, format := range opts.Formats {
		data, hit, err := r.render(ctx, results, format, opts.Refresh)
		if err != nil {
			return nil, err
		}
		out.Artifacts[format] = data
		if hit {
			out.CacheInfo.Hits = append(out.CacheInfo.Hits, format)
		} else {
			out.CacheInfo.Misses = append(out.CacheInfo.Misses, format)
		}
	}
	out.Stats.RenderTime = time.Since(start)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", len(out.CacheInfo.Hits),
		"duration", out.Stats.RenderTime)

	return out, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
