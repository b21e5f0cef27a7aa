package sink

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet     = "Summary"
	maxSheetNameRune = 31
)

var zoneHeader = []interface{}{"#", "X", "Y", "Width", "Height", "Area", "Geometry"}

// RenderXLSX writes a workbook with a summary sheet followed by one sheet per
// layout listing its zones in reading order.
func RenderXLSX(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	summary := []interface{}{"Layout", "Source", "Padding", "Zones", "Sheet"}
	if err := f.SetSheetRow(summarySheet, "A1", &summary); err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(summarySheet, 1, 1, headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(summarySheet, "A", "B", 24); err != nil {
		return nil, err
	}

	used := map[string]bool{strings.ToLower(summarySheet): true}
	for i, l := range doc.Layouts {
		sheet := sheetName(l.Name, i, used)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}

		row := []interface{}{l.Name, l.Source, l.Padding, len(l.Zones), sheet}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, err
		}

		if err := writeZoneSheet(f, sheet, l, headerStyle); err != nil {
			return nil, fmt.Errorf("layout %q: %w", l.Name, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeZoneSheet(f *excelize.File, sheet string, l Layout, headerStyle int) error {
	header := zoneHeader
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "G", "G", 16); err != nil {
		return err
	}

	for i, z := range l.Zones {
		row := []interface{}{i + 1, int(z.X), int(z.Y), int(z.Width), int(z.Height), z.Area(), z.String()}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}

		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{colorFor(i).hex()}, Pattern: 1},
		})
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

// sheetName derives a valid, unique worksheet name from a layout name.
// Excel forbids : \ / ? * [ ] and limits names to 31 characters, compared
// case-insensitively.
func sheetName(name string, i int, used map[string]bool) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, strings.Trim(name, "'"))
	if clean == "" {
		clean = fmt.Sprintf("Layout %d", i+1)
	}
	clean = truncateRunes(clean, maxSheetNameRune)

	candidate := clean
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		candidate = truncateRunes(clean, maxSheetNameRune-len(suffix)) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
