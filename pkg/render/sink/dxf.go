package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
)

// dxfGap separates layouts placed side by side, in canvas units.
const dxfGap = 20.0

// RenderDXF writes every layout as rectangle outlines on its own CAD layer.
// Layouts are placed left to right along the X axis; Y points up, so canvas
// rows are flipped. Empty zones are skipped.
func RenderDXF(doc Document) ([]byte, error) {
	d := dxf.NewDrawing()

	canvasW := float64(doc.Canvas.Width)
	canvasH := float64(doc.Canvas.Height)

	for i, l := range doc.Layouts {
		name := dxfLayerName(i, l.Name)
		layerColor := color.ColorNumber(1 + i%6)
		if _, err := d.AddLayer(name, layerColor, dxf.DefaultLineType, true); err != nil {
			return nil, fmt.Errorf("layer %q: %w", name, err)
		}

		originX := float64(i) * (canvasW + dxfGap)
		for _, z := range l.Zones {
			if z.Empty() {
				continue
			}
			x0 := originX + float64(int(z.X)-int(doc.Canvas.X))
			x1 := x0 + float64(z.Width)
			y1 := canvasH - float64(int(z.Y)-int(doc.Canvas.Y))
			y0 := y1 - float64(z.Height)
			if err := dxfRect(d, x0, y0, x1, y1); err != nil {
				return nil, fmt.Errorf("layout %q: %w", l.Name, err)
			}
		}
	}

	dir, err := os.MkdirTemp("", "zonegen-dxf-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "zones.dxf")
	if err := d.SaveAs(path); err != nil {
		return nil, fmt.Errorf("write dxf: %w", err)
	}
	return os.ReadFile(path)
}

func dxfRect(d *dxf.Drawing, x0, y0, x1, y1 float64) error {
	edges := [4][4]float64{
		{x0, y0, x1, y0},
		{x1, y0, x1, y1},
		{x1, y1, x0, y1},
		{x0, y1, x0, y0},
	}
	for _, e := range edges {
		if _, err := d.Line(e[0], e[1], 0, e[2], e[3], 0); err != nil {
			return err
		}
	}
	return nil
}

// dxfLayerName builds a unique layer name from the layout index and the
// characters of name that DXF allows.
func dxfLayerName(i int, name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return fmt.Sprintf("ZONES_%02d_%s", i+1, b.String())
}
