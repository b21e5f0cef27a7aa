package layout

import (
	"github.com/matzehuels/zonegen/pkg/zone"
)

// Instruction is a node of a layout tree. The only implementations are Leaf
// and Split.
type Instruction interface {
	instruction()
}

// Leaf keeps the rectangle it is applied to as a single zone.
type Leaf struct{}

// Split divides its rectangle along Direction among Children in proportion
// to their ratios.
type Split struct {
	Direction zone.Direction
	Children  []Node
}

// Node is a weighted child of a Split.
type Node struct {
	Ratio       float64
	Instruction Instruction
}

func (Leaf) instruction()  {}
func (Split) instruction() {}

// Ratios returns the child ratios of s in order.
func (s Split) Ratios() []float64 {
	out := make([]float64, len(s.Children))
	for i, c := range s.Children {
		out[i] = c.Ratio
	}
	return out
}

// H builds a horizontal split.
func H(children ...Node) Split {
	return Split{Direction: zone.Horizontal, Children: children}
}

// V builds a vertical split.
func V(children ...Node) Split {
	return Split{Direction: zone.Vertical, Children: children}
}

// L builds a leaf node with the given ratio.
func L(ratio float64) Node {
	return Node{Ratio: ratio, Instruction: Leaf{}}
}

// N builds a node that applies instr with the given ratio.
func N(ratio float64, instr Instruction) Node {
	return Node{Ratio: ratio, Instruction: instr}
}

// Stats summarizes the shape of a tree.
type Stats struct {
	Leaves int `json:"leaves" yaml:"leaves" toml:"leaves"`
	Splits int `json:"splits" yaml:"splits" toml:"splits"`
	Depth  int `json:"depth" yaml:"depth" toml:"depth"`
}

// StatsOf counts leaves and splits and measures split nesting depth. A bare
// leaf has depth 0.
func StatsOf(instr Instruction) Stats {
	var st Stats
	var walk func(Instruction, int)
	walk = func(in Instruction, depth int) {
		switch v := in.(type) {
		case Split:
			st.Splits++
			if depth+1 > st.Depth {
				st.Depth = depth + 1
			}
			for _, c := range v.Children {
				walk(c.Instruction, depth+1)
			}
		default:
			st.Leaves++
		}
	}
	walk(instr, 0)
	return st
}
