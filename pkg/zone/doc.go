// Package zone provides the integer rectangle geometry used by zonegen.
//
// # Overview
//
// A [Zone] is an axis-aligned rectangle with unsigned 8-bit coordinates. All
// layouts are resolved against a fixed square canvas of [CanvasSize] units
// returned by [Full]. Coordinates never leave the integer domain: fractional
// shares produced by ratio arithmetic are floored and the leftover units are
// handed out again, so the pieces of a split always add up to the extent of the
// rectangle that was split.
//
// # Slicing
//
// [Slice] divides one rectangle into adjacent pieces along a [Direction]:
//
//	pieces, err := zone.Slice(zone.Full(), []float64{1, 1, 1}, zone.Vertical)
//	// heights 34, 33, 33 at y = 0, 34, 67
//
// Each piece first receives floor(size * (ratio / total)). The remaining
// size - sum units are given one at a time to the first pieces in list order.
// The perpendicular axis of every piece is copied from the input rectangle.
//
// # Sets
//
// Partition results are collected in a [Set], which stores each distinct
// rectangle once. Two leaves that resolve to bit-identical rectangles (for
// example two zero-width pieces at the same offset) collapse into one entry.
// [Set.Sorted] returns a deterministic reading order for serialization.
//
// # Verification
//
// [CheckTiling] verifies that a list of rectangles stays inside a root, does
// not overlap and covers the root exactly. Empty rectangles are allowed and
// never count as overlapping.
package zone
