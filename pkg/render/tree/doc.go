// Package tree renders layout instruction trees as Graphviz diagrams.
//
// # Usage
//
// Convert an instruction to DOT, then render to SVG:
//
//	dot := tree.ToDOT(instr, tree.Options{})
//	svg, err := tree.RenderSVG(ctx, dot)
//
// Setting [Options.Root] labels every node with the zone it covers, which
// makes it easy to see where remainder units went:
//
//	root := zone.Full()
//	dot := tree.ToDOT(instr, tree.Options{Root: &root})
//
// [RenderPDF] and [RenderPNG] convert the SVG with rsvg-convert.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package tree
