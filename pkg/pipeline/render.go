package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/zonegen/pkg/render/sink"
	"github.com/matzehuels/zonegen/pkg/zone"
)

// Document converts results into the shape every sink renders. The canvas is
// the root of the first result, or the full canvas when there are none.
func Document(results []Result) sink.Document {
	canvas := zone.Full()
	if len(results) > 0 {
		canvas = results[0].Root
	}
	layouts := make([]sink.Layout, len(results))
	for i, r := range results {
		layouts[i] = sink.Layout{
			Name:    r.Name,
			Source:  r.Layout,
			Padding: r.Padding,
			Zones:   r.Zones,
		}
	}
	return sink.NewDocument(canvas, layouts)
}

// Render generates a single artifact without caching.
func Render(ctx context.Context, results []Result, format string) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	data, err := sink.Render(ctx, Document(results), format)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return data, nil
}
