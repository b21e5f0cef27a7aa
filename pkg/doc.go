// Package pkg provides the libraries behind zonegen.
//
// # Overview
//
// zonegen turns compact layout descriptions such as "h(1, 2: v(3, 4), 5)"
// into exact integer rectangles ("zones") on a 100x100 canvas. The data flow:
//
//	layout text
//	     ↓
//	[dsl] package (parse into an instruction tree)
//	     ↓
//	[layout] package (partition the tree against a root zone)
//	     ↓
//	[zone] package (integer rectangles, slicing, tiling checks)
//	     ↓
//	[render/sink] package (JSON/YAML/TOML/SVG/PNG/PDF/DXF/XLSX)
//
// # Quick Start
//
//	instr, err := dsl.Parse("h(1, 2: v(3, 4), 5)")
//	if err != nil {
//	    return err
//	}
//	zones, err := layout.Zones(instr, zone.Full())
//	// zones: 13x100+0+0, 25x43+13+0, 62x100+38+0, 25x57+13+43
//
// # Main Packages
//
// [zone] - The Zone rectangle, Direction, and Slice, which divides a zone
// into pieces proportional to a ratio list without losing a unit.
//
// [layout] - Instruction trees (Leaf, Split, Node), Partition and Zones,
// canonical formatting and the serializable Tree form.
//
// [dsl] - Parser for the layout language with line:column errors.
//
// [config] - Layout documents (TOML, YAML or JSON) listing named layouts.
//
// [pipeline] - Concurrent parse → partition → render used by the CLI and API,
// with artifact caching.
//
// [render/sink] - Output formats for partitioned documents.
//
// [render/tree] - Graphviz diagrams of instruction trees.
//
// [cache] - File, Redis and null artifact caches.
//
// [errors] - Error codes shared by the pipeline and HTTP API.
//
// [observability] - Hooks for pipeline, cache and server events.
//
// [zone]: https://pkg.go.dev/github.com/matzehuels/zonegen/pkg/zone
// [layout]: https://pkg.go.dev/github.com/matzehuels/zonegen/pkg/layout
// [dsl]: https://pkg.go.dev/github.com/matzehuels/zonegen/pkg/dsl
// [config]: https://pkg.go.dev/github.com/matzehuels/zonegen/pkg/config
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/zonegen/pkg/pipeline
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/zonegen/pkg/render/sink
// [render/tree]: https://pkg.go.dev/github.com/matzehuels/zonegen/pkg/render/tree
// [cache]: https://pkg.go.dev/github.com/matzehuels/zonegen/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/zonegen/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/zonegen/pkg/observability
package pkg
