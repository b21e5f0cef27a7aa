package zone

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CanvasSize is the width and height of the canvas every layout resolves
// against.
const CanvasSize = 100

// ErrOutOfBounds is returned when a rectangle extends past the canvas or
// past the root it is checked against.
var ErrOutOfBounds = errors.New("zone out of bounds")

// Direction selects the axis a split divides.
type Direction uint8

const (
	// Horizontal splits divide the width; pieces are laid out left to right.
	Horizontal Direction = iota
	// Vertical splits divide the height; pieces are laid out top to bottom.
	Vertical
)

// String returns "horizontal" or "vertical".
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Symbol returns the layout language keyword for d ("h" or "v").
func (d Direction) Symbol() string {
	if d == Vertical {
		return "v"
	}
	return "h"
}

// ParseDirection accepts "h", "v", "horizontal" or "vertical" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "horizontal":
		return Horizontal, nil
	case "v", "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("invalid direction: %q (must be one of: h, v, horizontal, vertical)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if d != Horizontal && d != Vertical {
		return nil, fmt.Errorf("invalid direction: %d", uint8(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Zone is an axis-aligned rectangle in canvas units. X and Y locate the
// top-left corner.
type Zone struct {
	X      uint8 `json:"x" yaml:"x" toml:"x"`
	Y      uint8 `json:"y" yaml:"y" toml:"y"`
	Width  uint8 `json:"width" yaml:"width" toml:"width"`
	Height uint8 `json:"height" yaml:"height" toml:"height"`
}

// Full returns the whole canvas.
func Full() Zone {
	return Zone{X: 0, Y: 0, Width: CanvasSize, Height: CanvasSize}
}

// Right returns the exclusive right edge.
func (z Zone) Right() int { return int(z.X) + int(z.Width) }

// Bottom returns the exclusive bottom edge.
func (z Zone) Bottom() int { return int(z.Y) + int(z.Height) }

// Area returns Width * Height.
func (z Zone) Area() int { return int(z.Width) * int(z.Height) }

// Empty reports whether z covers no area.
func (z Zone) Empty() bool { return z.Width == 0 || z.Height == 0 }

// Extent returns the size of z along d.
func (z Zone) Extent(d Direction) uint8 {
	if d == Vertical {
		return z.Height
	}
	return z.Width
}

// Validate reports ErrOutOfBounds if z leaves the canvas.
func (z Zone) Validate() error {
	if z.Right() > CanvasSize || z.Bottom() > CanvasSize {
		return fmt.Errorf("%w: %s leaves the %dx%d canvas", ErrOutOfBounds, z, CanvasSize, CanvasSize)
	}
	return nil
}

// Contains reports whether o lies entirely inside z.
func (z Zone) Contains(o Zone) bool {
	return o.X >= z.X && o.Y >= z.Y && o.Right() <= z.Right() && o.Bottom() <= z.Bottom()
}

// Overlaps reports whether z and o share any area. Empty rectangles never
// overlap.
func (z Zone) Overlaps(o Zone) bool {
	if z.Empty() || o.Empty() {
		return false
	}
	return int(z.X) < o.Right() && int(o.X) < z.Right() &&
		int(z.Y) < o.Bottom() && int(o.Y) < z.Bottom()
}

// String formats z as WIDTHxHEIGHT+X+Y.
func (z Zone) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", z.Width, z.Height, z.X, z.Y)
}

// Parse reads a rectangle in the WIDTHxHEIGHT+X+Y form produced by String.
// The offset may be omitted, as in "100x100".
func Parse(s string) (Zone, error) {
	s = strings.TrimSpace(s)
	size, offset, hasOffset := strings.Cut(s, "+")
	w, h, ok := strings.Cut(size, "x")
	if !ok {
		return Zone{}, fmt.Errorf("invalid zone %q (want WIDTHxHEIGHT+X+Y)", s)
	}
	x, y := "0", "0"
	if hasOffset {
		if x, y, ok = strings.Cut(offset, "+"); !ok {
			return Zone{}, fmt.Errorf("invalid zone %q (want WIDTHxHEIGHT+X+Y)", s)
		}
	}

	var vals [4]uint8
	for i, part := range []string{x, y, w, h} {
		n, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return Zone{}, fmt.Errorf("invalid zone %q: %w", s, err)
		}
		vals[i] = uint8(n)
	}
	z := Zone{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}
	return z, z.Validate()
}
