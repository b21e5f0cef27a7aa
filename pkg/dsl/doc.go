// Package dsl parses the zonegen layout language.
//
// # Grammar
//
//	instruction := direction "(" node ("," node)* ")"
//	direction   := "h" | "v"
//	node        := number | number ":" instruction
//	number      := [0-9]+ ( "." [0-9]+ )?
//
// Whitespace between tokens is ignored. "h" divides the width and "v" the
// height. A bare number is a leaf with that ratio; "number: instruction"
// applies a nested split to the child's share. For example
//
//	h(1, 2: v(3, 4), 5)
//
// splits the canvas into three columns weighted 1:2:5 and then divides the
// middle column into two rows weighted 3:4.
//
// # Errors
//
// [Parse] returns a [*ParseError] carrying the line, column and byte offset of
// the first token it could not accept. A layout followed by anything other
// than whitespace is rejected with [ErrMoreThanOne]. [ParseError.Snippet]
// renders the offending line with a caret for terminal output.
package dsl
