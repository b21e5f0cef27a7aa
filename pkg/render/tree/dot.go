package tree

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/zonegen/pkg/layout"
	"github.com/matzehuels/zonegen/pkg/render"
	"github.com/matzehuels/zonegen/pkg/zone"
)

// Options configures tree diagram generation.
type Options struct {
	// Root, when non-nil, annotates every node with the zone it covers.
	// Zones are omitted if the tree cannot be partitioned against Root.
	Root *zone.Zone
}

// ToDOT converts an instruction tree to Graphviz DOT. Splits are drawn as
// boxes labeled with their direction, leaves as ellipses, and edges carry
// the child ratio.
func ToDOT(instr layout.Instruction, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph layout {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"Helvetica\", fontsize=14, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=12];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	w := dotWriter{buf: &buf, zones: opts.Root != nil}
	root := zone.Zone{}
	if opts.Root != nil {
		root = *opts.Root
		if _, err := layout.Partition(instr, root); err != nil {
			w.zones = false
		}
	}
	w.node(instr, root)

	buf.WriteString("}\n")
	return buf.String()
}

type dotWriter struct {
	buf   *bytes.Buffer
	next  int
	zones bool
	leaf  int
}

func (w *dotWriter) node(instr layout.Instruction, z zone.Zone) string {
	id := fmt.Sprintf("n%d", w.next)
	w.next++

	switch v := instr.(type) {
	case layout.Split:
		label := v.Direction.String()
		if w.zones {
			label += "\n" + z.String()
		}
		fmt.Fprintf(w.buf, "  %s [shape=box, style=\"rounded,filled\", fillcolor=\"#e3f2fd\", label=%q];\n", id, label)

		var parts []zone.Zone
		if w.zones {
			parts, _ = zone.Slice(z, v.Ratios(), v.Direction)
		}
		for i, c := range v.Children {
			var cz zone.Zone
			if i < len(parts) {
				cz = parts[i]
			}
			child := w.node(c.Instruction, cz)
			fmt.Fprintf(w.buf, "  %s -> %s [label=%q];\n", id, child, layout.FormatRatio(c.Ratio))
		}
	default:
		w.leaf++
		label := fmt.Sprintf("#%d", w.leaf)
		if w.zones {
			label += "\n" + z.String()
		}
		fmt.Fprintf(w.buf, "  %s [shape=ellipse, fillcolor=\"#f1f8e9\", label=%q];\n", id, label)
	}
	return id
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz root tag with one whose viewBox
// starts at the origin and whose size matches it, so the SVG scales cleanly.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
