package sink

import (
	"bytes"
	"context"
	"fmt"
	"html"

	"github.com/matzehuels/zonegen/pkg/render"
)

const svgCSS = `
    .canvas { fill: #f5f5f5; stroke: #646464; stroke-width: 1; }
    .zone { stroke: #1e1e1e; stroke-width: 1; fill-opacity: 0.85; }
    .title { font: 600 16px sans-serif; fill: #1e1e1e; }
    .label { font: 12px sans-serif; fill: #1e1e1e; text-anchor: middle; dominant-baseline: middle; }`

const (
	svgGap         = 40.0
	svgTitleHeight = 28.0
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale   float64
	columns int
	labels  bool
}

// WithSVGScale sets the pixels drawn per canvas unit (default 4).
func WithSVGScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// WithColumns sets how many layout panels share a row (default 3).
func WithColumns(n int) SVGOption { return func(r *svgRenderer) { r.columns = n } }

// WithoutLabels omits zone index labels.
func WithoutLabels() SVGOption { return func(r *svgRenderer) { r.labels = false } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{scale: 4, columns: 3, labels: true}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = 4
	}
	if r.columns <= 0 {
		r.columns = 1
	}
	return r
}

// RenderSVG draws one panel per layout. Panels are arranged in a grid, each
// showing the canvas with its zones filled and numbered in reading order.
func RenderSVG(doc Document, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	panelW := float64(doc.Canvas.Width) * r.scale
	panelH := float64(doc.Canvas.Height) * r.scale
	cols := min(r.columns, max(len(doc.Layouts), 1))
	rows := (len(doc.Layouts) + cols - 1) / cols
	if rows == 0 {
		rows = 1
	}
	width := svgGap + float64(cols)*(panelW+svgGap)
	height := svgGap + float64(rows)*(panelH+svgTitleHeight+svgGap)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", svgCSS)

	for i, l := range doc.Layouts {
		x := svgGap + float64(i%cols)*(panelW+svgGap)
		y := svgGap + float64(i/cols)*(panelH+svgTitleHeight+svgGap)
		r.renderPanel(&buf, doc, l, x, y)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) renderPanel(buf *bytes.Buffer, doc Document, l Layout, x, y float64) {
	panelW := float64(doc.Canvas.Width) * r.scale
	panelH := float64(doc.Canvas.Height) * r.scale

	fmt.Fprintf(buf, `  <g id="layout-%s" transform="translate(%.1f,%.1f)">`+"\n", html.EscapeString(l.Name), x, y)
	fmt.Fprintf(buf, `    <text class="title" x="0" y="18">%s</text>`+"\n", html.EscapeString(l.Name))
	fmt.Fprintf(buf, `    <rect class="canvas" x="0" y="%.1f" width="%.1f" height="%.1f"/>`+"\n", svgTitleHeight, panelW, panelH)

	for i, z := range l.Zones {
		if z.Empty() {
			continue
		}
		zx := float64(int(z.X)-int(doc.Canvas.X)) * r.scale
		zy := svgTitleHeight + float64(int(z.Y)-int(doc.Canvas.Y))*r.scale
		zw := float64(z.Width) * r.scale
		zh := float64(z.Height) * r.scale
		fmt.Fprintf(buf, `    <rect class="zone" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"><title>%s</title></rect>`+"\n",
			zx, zy, zw, zh, colorFor(i).hex(), z)
		if r.labels {
			fmt.Fprintf(buf, `    <text class="label" x="%.1f" y="%.1f">%d</text>`+"\n", zx+zw/2, zy+zh/2, i+1)
		}
	}
	buf.WriteString("  </g>\n")
}

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions passes options through to the underlying SVG renderer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithPNGScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithPNGScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the SVG rendering. Requires rsvg-convert.
func RenderPNG(ctx context.Context, doc Document, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	return render.ToPNG(ctx, RenderSVG(doc, r.svgOpts...), r.scale)
}
