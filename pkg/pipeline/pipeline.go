// Package pipeline runs layout documents through parse → partition → render.
//
// The CLI and the HTTP server both go through this package, so a layout
// produces the same zones and the same artifacts regardless of entry point.
//
// # Stages
//
//  1. Parse: read each layout description with [dsl.Parse]
//  2. Partition: resolve it against the root rectangle with [layout.Zones]
//  3. Render: encode all layouts together in each requested format
//
// Layouts are independent, so the first two stages run concurrently, one
// goroutine per layout up to [Options.Workers]. Results keep document order.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	out, err := runner.Execute(ctx, doc, pipeline.Options{
//	    Formats: []string{"json", "svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := out.Artifacts["svg"]
//
// A failure in any layout aborts the run with a [*LayoutError]; no partial
// output is produced.
//
// [dsl.Parse]: github.com/matzehuels/zonegen/pkg/dsl.Parse
// [layout.Zones]: github.com/matzehuels/zonegen/pkg/layout.Zones
package pipeline

import (
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/zonegen/pkg/errors"
	"github.com/matzehuels/zonegen/pkg/layout"
	"github.com/matzehuels/zonegen/pkg/render/sink"
	"github.com/matzehuels/zonegen/pkg/zone"
)

// DefaultFormat is rendered when Options.Formats is empty.
const DefaultFormat = "json"

// ValidFormats is the set of supported output formats.
var ValidFormats = func() map[string]bool {
	m := make(map[string]bool, len(sink.Formats))
	for _, f := range sink.Formats {
		m[f] = true
	}
	return m
}()

// Options configures a pipeline run.
type Options struct {
	// Formats lists the artifacts to render. Defaults to DefaultFormat.
	Formats []string `json:"formats,omitempty"`

	// Root is the rectangle every layout is partitioned against. The zero
	// value selects the full 100x100 canvas.
	Root zone.Zone `json:"root"`

	// Workers bounds concurrent layout processing. Defaults to GOMAXPROCS.
	Workers int `json:"workers,omitempty"`

	// Refresh bypasses cached artifacts and overwrites them.
	Refresh bool `json:"refresh,omitempty"`

	validated bool
}

// Result is one parsed and partitioned layout.
type Result struct {
	Name    string
	Layout  string
	Padding int
	Root    zone.Zone
	Tree    layout.Instruction
	Zones   []zone.Zone
	Stats   layout.Stats
}

// Output contains everything produced by [Runner.Execute].
type Output struct {
	Results   []Result
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Layouts    int
	Zones      int
	GenTime    time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks which artifacts were served from the cache.
type CacheInfo struct {
	Hits   []string
	Misses []string
}

// AllHit reports whether every artifact came from the cache.
func (c CacheInfo) AllHit() bool { return len(c.Misses) == 0 && len(c.Hits) > 0 }

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(sink.Formats, ", "))
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

// ValidateAndSetDefaults checks the options and fills in defaults. Duplicate
// formats are dropped. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.Formats = dedupe(o.Formats)
	if o.Root == (zone.Zone{}) {
		o.Root = zone.Full()
	}
	if err := o.Root.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid root")
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	o.validated = true
	return nil
}

func dedupe(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}
