// Package sink renders partitioned layouts into output formats.
//
// # Overview
//
// A [Document] holds the canvas and one [Layout] per named layout, each with
// its zones in reading order. Every renderer takes the same document:
//
//   - JSON, YAML, TOML: structured data for other tools
//   - SVG: one panel per layout, zones filled and numbered
//   - PNG: the SVG rasterized (requires rsvg-convert)
//   - PDF: one A4 landscape page per layout
//   - DXF: one CAD layer per layout, zones as closed outlines
//   - XLSX: a summary sheet plus one sheet per layout
//
// [Render] dispatches on the format name:
//
//	doc := sink.NewDocument(zone.Full(), layouts)
//	data, err := sink.Render(ctx, doc, "pdf")
//
// # Colors
//
// Zones are colored by index from a fixed palette, so the same layout looks
// the same in SVG, PDF and XLSX output.
//
// Empty zones (zero width or height) are kept in the structured formats and
// the XLSX sheets, but have nothing to draw in the graphical ones.
package sink
