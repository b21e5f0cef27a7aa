// Package render turns partitioned layouts into output files.
//
// # Overview
//
// This package contains the shared format conversion helpers. The renderers
// themselves live in subpackages:
//
//   - [sink]: zone documents (JSON, YAML, TOML, SVG, PNG, PDF, DXF, XLSX)
//   - [tree]: instruction tree diagrams via Graphviz
//
// # Format Conversion
//
// [ToPNG] and [ToPDF] convert any SVG using the external rsvg-convert tool
// from librsvg. PNG zone output and PNG/PDF tree diagrams go through them:
//
//	svg := sink.RenderSVG(doc)
//	png, err := render.ToPNG(ctx, svg, 2.0)
//
// Zone PDFs do not need librsvg; [sink.RenderPDF] draws them directly.
//
// [sink]: github.com/matzehuels/zonegen/pkg/render/sink
// [tree]: github.com/matzehuels/zonegen/pkg/render/tree
package render
