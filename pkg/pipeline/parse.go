package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/zonegen/pkg/config"
	"github.com/matzehuels/zonegen/pkg/dsl"
	"github.com/matzehuels/zonegen/pkg/errors"
	"github.com/matzehuels/zonegen/pkg/layout"
	"github.com/matzehuels/zonegen/pkg/observability"
	"github.com/matzehuels/zonegen/pkg/zone"
)

// LayoutError attributes a failure to the layout that caused it.
type LayoutError struct {
	Name string
	Err  error
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("layout %q: %v", e.Name, e.Err)
}

func (e *LayoutError) Unwrap() error { return e.Err }

// ErrorCode classifies every layout failure as INVALID_LAYOUT.
func (e *LayoutError) ErrorCode() errors.Code { return errors.ErrCodeInvalidLayout }

// Generate parses and partitions a single layout against root.
func Generate(ctx context.Context, l config.Layout, padding int, root zone.Zone) (Result, error) {
	hooks := observability.Pipeline()

	hooks.OnParseStart(ctx, l.Name)
	start := time.Now()
	instr, err := dsl.Parse(l.Layout)
	stats := layout.Stats{}
	if err == nil {
		stats = layout.StatsOf(instr)
	}
	hooks.OnParseComplete(ctx, l.Name, stats.Leaves, time.Since(start), err)
	if err != nil {
		return Result{}, &LayoutError{Name: l.Name, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	start = time.Now()
	zones, err := layout.Zones(instr, root)
	hooks.OnPartitionComplete(ctx, l.Name, len(zones), time.Since(start), err)
	if err != nil {
		return Result{}, &LayoutError{Name: l.Name, Err: err}
	}

	return Result{
		Name:    l.Name,
		Layout:  l.Layout,
		Padding: padding,
		Root:    root,
		Tree:    instr,
		Zones:   zones,
		Stats:   stats,
	}, nil
}
