package sink

import (
	"fmt"

	"github.com/matzehuels/zonegen/pkg/zone"
)

// Layout is one named, partitioned layout ready for output.
type Layout struct {
	Name    string      `json:"name" yaml:"name" toml:"name"`
	Source  string      `json:"layout,omitempty" yaml:"layout,omitempty" toml:"layout,omitempty"`
	Padding int         `json:"padding" yaml:"padding" toml:"padding"`
	Zones   []zone.Zone `json:"zones" yaml:"zones" toml:"zones"`
}

// Document is the top-level shape of the structured formats.
type Document struct {
	Canvas  zone.Zone `json:"canvas" yaml:"canvas" toml:"canvas"`
	Layouts []Layout  `json:"layouts" yaml:"layouts" toml:"layouts"`
}

// NewDocument wraps layouts resolved against canvas.
func NewDocument(canvas zone.Zone, layouts []Layout) Document {
	return Document{Canvas: canvas, Layouts: layouts}
}

type rgb struct {
	R, G, B int
}

func (c rgb) hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// palette cycles per zone in every graphical format.
var palette = []rgb{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

func colorFor(i int) rgb { return palette[i%len(palette)] }
