package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/zonegen/pkg/render"
	"github.com/matzehuels/zonegen/pkg/zone"
)

func testDocument() Document {
	return NewDocument(zone.Full(), []Layout{
		{
			Name:    "main",
			Source:  "h(1, 2: v(1, 1), 1)",
			Padding: 8,
			Zones: []zone.Zone{
				{X: 0, Y: 0, Width: 25, Height: 100},
				{X: 25, Y: 0, Width: 50, Height: 50},
				{X: 75, Y: 0, Width: 25, Height: 100},
				{X: 25, Y: 50, Width: 50, Height: 50},
			},
		},
		{
			Name:   "split/half",
			Source: "v(1, 1)",
			Zones: []zone.Zone{
				{X: 0, Y: 0, Width: 100, Height: 50},
				{X: 0, Y: 50, Width: 100, Height: 50},
			},
		},
	})
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(testDocument())
	require.NoError(t, err)

	var out Document
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, testDocument(), out)
	assert.Contains(t, string(data), `"layout": "h(1, 2: v(1, 1), 1)"`)
	assert.True(t, bytes.HasSuffix(data, []byte("\n")))
}

func TestRenderYAML(t *testing.T) {
	data, err := RenderYAML(testDocument())
	require.NoError(t, err)

	var out Document
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, testDocument(), out)
}

func TestRenderTOML(t *testing.T) {
	data, err := RenderTOML(testDocument())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[[layouts]]")
	assert.Contains(t, string(data), "[[layouts.zones]]")

	var out Document
	_, err = toml.Decode(string(data), &out)
	require.NoError(t, err)
	assert.Equal(t, testDocument(), out)
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testDocument()))

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Equal(t, 6, strings.Count(svg, `class="zone"`))
	assert.Equal(t, 2, strings.Count(svg, `class="canvas"`))
	assert.Contains(t, svg, ">main</text>")
	assert.Contains(t, svg, "<title>50x50+25+0</title>")
	assert.Contains(t, svg, `class="label"`)
}

func TestRenderSVGOptions(t *testing.T) {
	svg := string(RenderSVG(testDocument(), WithoutLabels(), WithColumns(1), WithSVGScale(2)))

	assert.NotContains(t, svg, `class="label"`)
	// Two stacked panels of 200px plus titles and gaps.
	assert.Contains(t, svg, `width="280"`)
	assert.Contains(t, svg, `height="576"`)
}

func TestRenderSVGSkipsEmptyZones(t *testing.T) {
	doc := NewDocument(zone.Full(), []Layout{{
		Name: "degenerate",
		Zones: []zone.Zone{
			{X: 0, Y: 0, Width: 100, Height: 100},
			{X: 100, Y: 0, Width: 0, Height: 100},
		},
	}})
	svg := string(RenderSVG(doc))
	assert.Equal(t, 1, strings.Count(svg, `class="zone"`))
}

func TestRenderSVGEscapesNames(t *testing.T) {
	doc := NewDocument(zone.Full(), []Layout{{Name: "<a&b>", Zones: []zone.Zone{zone.Full()}}})
	svg := string(RenderSVG(doc))
	assert.Contains(t, svg, "&lt;a&amp;b&gt;")
	assert.NotContains(t, svg, "<a&b>")
}

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(testDocument())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	_, err = RenderPDF(Document{Canvas: zone.Full()})
	assert.Error(t, err)
}

func TestRenderDXF(t *testing.T) {
	data, err := RenderDXF(testDocument())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "zones.dxf")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	d, err := dxf.Open(path)
	require.NoError(t, err)

	lines := 0
	for _, e := range d.Entities() {
		if _, ok := e.(*entity.Line); ok {
			lines++
		}
	}
	assert.Equal(t, 4*6, lines)
	assert.Contains(t, string(data), "ZONES_01_main")
	assert.Contains(t, string(data), "ZONES_02_split_half")
}

func TestDXFLayerName(t *testing.T) {
	assert.Equal(t, "ZONES_01_main", dxfLayerName(0, "main"))
	assert.Equal(t, "ZONES_12_a_b_c", dxfLayerName(11, "a b.c"))
}

func TestRenderXLSX(t *testing.T) {
	data, err := RenderXLSX(testDocument())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "main", "split_half"}, f.GetSheetList())

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, summary, 3)
	assert.Equal(t, []string{"Layout", "Source", "Padding", "Zones", "Sheet"}, summary[0])
	assert.Equal(t, []string{"main", "h(1, 2: v(1, 1), 1)", "8", "4", "main"}, summary[1])

	rows, err := f.GetRows("main")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"2", "25", "0", "50", "50", "2500", "50x50+25+0"}, rows[2])
}

func TestSheetName(t *testing.T) {
	used := map[string]bool{"summary": true}

	assert.Equal(t, "Summary (2)", sheetName("summary", 0, used))
	assert.Equal(t, "a_b_c", sheetName("a/b:c", 1, used))
	assert.Equal(t, "Layout 3", sheetName("", 2, used))
	assert.Equal(t, strings.Repeat("x", 31), sheetName(strings.Repeat("x", 40), 3, used))
	assert.Equal(t, strings.Repeat("x", 27)+" (2)", sheetName(strings.Repeat("x", 35), 4, used))
}

func TestRender(t *testing.T) {
	ctx := context.Background()
	for _, format := range Formats {
		if format == "png" && !render.ConverterAvailable() {
			continue
		}
		t.Run(format, func(t *testing.T) {
			data, err := Render(ctx, testDocument(), format)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
			assert.NotEqual(t, "application/octet-stream", ContentType(format))
		})
	}

	_, err := Render(ctx, testDocument(), "bmp")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestBinary(t *testing.T) {
	assert.True(t, Binary("png"))
	assert.True(t, Binary("xlsx"))
	assert.False(t, Binary("svg"))
	assert.False(t, Binary("json"))
}
