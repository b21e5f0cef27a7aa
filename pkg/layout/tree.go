package layout

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/zonegen/pkg/zone"
)

// Tree is the serializable form of an Instruction. A Tree without a
// direction represents a bare leaf.
type Tree struct {
	Direction string     `json:"direction,omitempty" yaml:"direction,omitempty" toml:"direction,omitempty"`
	Children  []TreeNode `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// TreeNode is one weighted child of a Tree. Split is nil for leaves.
type TreeNode struct {
	Ratio float64 `json:"ratio" yaml:"ratio" toml:"ratio"`
	Split *Tree   `json:"split,omitempty" yaml:"split,omitempty" toml:"split,omitempty"`
}

// ToTree converts instr to its serializable form.
func ToTree(instr Instruction) Tree {
	s, ok := instr.(Split)
	if !ok {
		return Tree{}
	}
	t := Tree{Direction: s.Direction.String(), Children: make([]TreeNode, len(s.Children))}
	for i, c := range s.Children {
		t.Children[i].Ratio = c.Ratio
		if _, isSplit := c.Instruction.(Split); isSplit {
			sub := ToTree(c.Instruction)
			t.Children[i].Split = &sub
		}
	}
	return t
}

// Instruction converts t back to an instruction tree.
func (t Tree) Instruction() (Instruction, error) {
	if t.Direction == "" {
		if len(t.Children) > 0 {
			return nil, fmt.Errorf("tree with %d children has no direction", len(t.Children))
		}
		return Leaf{}, nil
	}
	dir, err := zone.ParseDirection(t.Direction)
	if err != nil {
		return nil, err
	}
	s := Split{Direction: dir, Children: make([]Node, len(t.Children))}
	for i, c := range t.Children {
		s.Children[i] = Node{Ratio: c.Ratio, Instruction: Leaf{}}
		if c.Split != nil {
			sub, err := c.Split.Instruction()
			if err != nil {
				return nil, fmt.Errorf("children[%d]: %w", i, err)
			}
			s.Children[i].Instruction = sub
		}
	}
	return s, nil
}

// MarshalTree encodes instr as indented JSON.
func MarshalTree(instr Instruction) ([]byte, error) {
	return json.MarshalIndent(ToTree(instr), "", "  ")
}

// UnmarshalTree decodes JSON produced by MarshalTree.
func UnmarshalTree(data []byte) (Instruction, error) {
	var t Tree
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return t.Instruction()
}
