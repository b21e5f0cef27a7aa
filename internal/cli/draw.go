package cli

import (
	"strings"

	"github.com/matzehuels/zonegen/pkg/zone"
)

// zoneGlyphs label zones in text drawings, in sorted zone order.
const zoneGlyphs = "123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// drawZones renders zones as a cols x rows character grid over root. Each
// cell shows the zone containing its centre, or '.' if none does. Zones past
// the glyph table are drawn as '*'.
func drawZones(zones []zone.Zone, root zone.Zone, cols, rows int) string {
	if cols <= 0 || rows <= 0 || root.Empty() {
		return ""
	}

	var b strings.Builder
	b.Grow((cols + 1) * rows)
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		y := float64(root.Y) + (float64(r)+0.5)*float64(root.Height)/float64(rows)
		for c := 0; c < cols; c++ {
			x := float64(root.X) + (float64(c)+0.5)*float64(root.Width)/float64(cols)
			b.WriteByte(glyphAt(zones, x, y))
		}
	}
	return b.String()
}

func glyphAt(zones []zone.Zone, x, y float64) byte {
	for i, z := range zones {
		if x >= float64(z.X) && x < float64(z.Right()) && y >= float64(z.Y) && y < float64(z.Bottom()) {
			if i < len(zoneGlyphs) {
				return zoneGlyphs[i]
			}
			return '*'
		}
	}
	return '.'
}
