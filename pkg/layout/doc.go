// Package layout defines the instruction tree of a zone layout and the
// partition engine that resolves it into rectangles.
//
// # Instructions
//
// An [Instruction] is either a [Leaf], which keeps the rectangle it is given,
// or a [Split], which divides that rectangle along a direction among weighted
// [Node] children. Trees are usually produced by the dsl package:
//
//	instr, err := dsl.Parse("h(1, 2: v(3, 4), 5)")
//	zones, err := layout.Partition(instr, zone.Full())
//
// Trees are immutable once built. [Partition] never modifies its input and may
// be called concurrently on the same tree.
//
// # Validation
//
// [Validate] rejects splits whose ratios sum to zero or contain negative or
// non-finite values. [Partition] validates the whole tree before computing any
// geometry, so a rejected tree never yields a partial result. A single zero
// ratio is allowed and produces a zero-extent rectangle.
//
// # Serialization
//
// [Format] prints a tree back in layout language form, and [ToTree] converts it
// to a [Tree] value with JSON, YAML and TOML tags for machine-readable output.
package layout
