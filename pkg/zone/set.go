package zone

import "sort"

// Set is a collection of distinct zones. The zero value is not usable; create
// one with NewSet or make.
type Set map[Zone]struct{}

// NewSet returns a set holding zs.
func NewSet(zs ...Zone) Set {
	s := make(Set, len(zs))
	for _, z := range zs {
		s.Add(z)
	}
	return s
}

// Add inserts z. Adding a zone that is already present is a no-op.
func (s Set) Add(z Zone) { s[z] = struct{}{} }

// Union adds every zone of o to s.
func (s Set) Union(o Set) {
	for z := range o {
		s[z] = struct{}{}
	}
}

// Contains reports whether z is in s.
func (s Set) Contains(z Zone) bool {
	_, ok := s[z]
	return ok
}

// Len returns the number of distinct zones.
func (s Set) Len() int { return len(s) }

// Area returns the summed area of all zones in s.
func (s Set) Area() int {
	total := 0
	for z := range s {
		total += z.Area()
	}
	return total
}

// Sorted returns the zones in reading order: top to bottom, then left to
// right, with height and width breaking ties.
func (s Set) Sorted() []Zone {
	out := make([]Zone, 0, len(s))
	for z := range s {
		out = append(out, z)
	}
	SortZones(out)
	return out
}

// SortZones sorts zs in place in the order used by Set.Sorted.
func SortZones(zs []Zone) {
	sort.Slice(zs, func(i, j int) bool {
		a, b := zs[i], zs[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Height != b.Height {
			return a.Height < b.Height
		}
		return a.Width < b.Width
	})
}
