package layout

import (
	"strconv"
	"strings"
)

// Format prints instr in layout language form, e.g. "h(1, 2: v(3, 4), 5)".
// A bare Leaf has no textual form of its own and prints as "h(1)", which
// partitions to the same single rectangle.
func Format(instr Instruction) string {
	var b strings.Builder
	switch v := instr.(type) {
	case Split:
		writeSplit(&b, v)
	default:
		b.WriteString("h(1)")
	}
	return b.String()
}

func writeSplit(b *strings.Builder, s Split) {
	b.WriteString(s.Direction.Symbol())
	b.WriteByte('(')
	for i, c := range s.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(FormatRatio(c.Ratio))
		if sub, ok := c.Instruction.(Split); ok {
			b.WriteString(": ")
			writeSplit(b, sub)
		}
	}
	b.WriteByte(')')
}

// FormatRatio prints r with the fewest digits that parse back to r and
// without an exponent.
func FormatRatio(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
