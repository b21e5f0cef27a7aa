package layout

import (
	"errors"
	"fmt"

	"github.com/matzehuels/zonegen/pkg/zone"
)

var (
	// ErrZeroRatioSum is returned for a split whose ratios sum to zero,
	// including a split with no children.
	ErrZeroRatioSum = zone.ErrZeroTotal

	// ErrInvalidRatio is returned for negative, NaN or infinite ratios.
	ErrInvalidRatio = zone.ErrInvalidRatio

	// ErrNilInstruction is returned when a tree contains a nil instruction.
	ErrNilInstruction = errors.New("nil instruction")
)

// Validate checks every split in instr. Errors name the offending split by
// its child index path, for example "split at children[1][0]"; the top-level
// split is "split at root".
func Validate(instr Instruction) error {
	return validate(instr, "root")
}

func childPath(path string, i int) string {
	if path == "root" {
		return fmt.Sprintf("children[%d]", i)
	}
	return fmt.Sprintf("%s[%d]", path, i)
}

func validate(instr Instruction, path string) error {
	switch v := instr.(type) {
	case nil:
		return fmt.Errorf("%s: %w", path, ErrNilInstruction)
	case Leaf:
		return nil
	case Split:
		if err := zone.CheckRatios(v.Ratios()); err != nil {
			return fmt.Errorf("split at %s: %w", path, err)
		}
		for i, c := range v.Children {
			if err := validate(c.Instruction, childPath(path, i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%s: unknown instruction %T", path, instr)
	}
}

// Partition resolves instr against root and returns the distinct leaf
// rectangles. The tree is validated first; on error no zones are returned.
func Partition(instr Instruction, root zone.Zone) (zone.Set, error) {
	if err := root.Validate(); err != nil {
		return nil, err
	}
	if err := Validate(instr); err != nil {
		return nil, err
	}
	out := make(zone.Set)
	if err := partition(instr, root, out); err != nil {
		return nil, err
	}
	return out, nil
}

func partition(instr Instruction, root zone.Zone, out zone.Set) error {
	split, ok := instr.(Split)
	if !ok {
		out.Add(root)
		return nil
	}
	pieces, err := zone.Slice(root, split.Ratios(), split.Direction)
	if err != nil {
		return err
	}
	for i, c := range split.Children {
		if err := partition(c.Instruction, pieces[i], out); err != nil {
			return err
		}
	}
	return nil
}

// Zones is Partition followed by Set.Sorted.
func Zones(instr Instruction, root zone.Zone) ([]zone.Zone, error) {
	set, err := Partition(instr, root)
	if err != nil {
		return nil, err
	}
	return set.Sorted(), nil
}
