package zone

import (
	"errors"
	"fmt"
)

var (
	// ErrOverlap is returned by CheckTiling when two zones share area.
	ErrOverlap = errors.New("zones overlap")

	// ErrCoverage is returned by CheckTiling when the zones leave part of the
	// root uncovered.
	ErrCoverage = errors.New("zones do not cover root")
)

// CheckTiling verifies that zones lie inside root, are pairwise disjoint and
// together cover root exactly. The first violation found is returned.
func CheckTiling(root Zone, zones []Zone) error {
	area := 0
	for _, z := range zones {
		if !root.Contains(z) {
			return fmt.Errorf("%w: %s outside %s", ErrOutOfBounds, z, root)
		}
		area += z.Area()
	}
	for i := range zones {
		for j := i + 1; j < len(zones); j++ {
			if zones[i].Overlaps(zones[j]) {
				return fmt.Errorf("%w: %s and %s", ErrOverlap, zones[i], zones[j])
			}
		}
	}
	if area != root.Area() {
		return fmt.Errorf("%w: covered %d of %d units", ErrCoverage, area, root.Area())
	}
	return nil
}
