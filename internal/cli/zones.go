package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/zonegen/pkg/dsl"
	"github.com/matzehuels/zonegen/pkg/layout"
	"github.com/matzehuels/zonegen/pkg/render/sink"
	"github.com/matzehuels/zonegen/pkg/zone"
)

// zonesOpts holds the command-line flags for the zones command.
type zonesOpts struct {
	root    string
	json    bool
	draw    bool
	cols    int
	rows    int
	noTable bool
}

// zonesCommand creates the zones command.
func (c *CLI) zonesCommand() *cobra.Command {
	opts := zonesOpts{cols: 50, rows: 20}

	cmd := &cobra.Command{
		Use:   "zones [layout]",
		Short: "Partition a single layout and list its zones",
		Long: `Partition a single layout and list its zones in reading order.

Examples:
  zonegen zones "h(1, 1, 1)"
  zonegen zones "h(1, 2: v(3, 4), 5)" --draw
  zonegen zones "v(1, 1)" --root 40x20+10+10 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runZones(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", "", "root rectangle as WxH+X+Y (default 100x100+0+0)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print zones as JSON")
	cmd.Flags().BoolVar(&opts.draw, "draw", false, "draw the zones as a character grid")
	cmd.Flags().IntVar(&opts.cols, "cols", opts.cols, "drawing width in characters")
	cmd.Flags().IntVar(&opts.rows, "rows", opts.rows, "drawing height in characters")
	cmd.Flags().BoolVar(&opts.noTable, "no-table", false, "skip the zone table (with --draw)")

	return cmd
}

func (c *CLI) runZones(cmd *cobra.Command, text string, opts zonesOpts) error {
	root, err := parseRoot(opts.root)
	if err != nil {
		return err
	}
	instr, err := dsl.Parse(text)
	if err != nil {
		return withSnippet(err)
	}
	zones, err := layout.Zones(instr, root)
	if err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debug("partitioned layout", "root", root, "zones", len(zones))

	out := cmd.OutOrStdout()
	if opts.json {
		doc := sink.NewDocument(root, []sink.Layout{{Name: "layout", Source: layout.Format(instr), Zones: zones}})
		data, err := sink.RenderJSON(doc)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	if opts.draw {
		fmt.Fprintln(out, drawZones(zones, root, opts.cols, opts.rows))
		if opts.noTable {
			return nil
		}
		fmt.Fprintln(out)
	}
	return writeZoneTable(out, zones)
}

// writeZoneTable prints zones as a bordered table.
func writeZoneTable(w io.Writer, zones []zone.Zone) error {
	rows := make([][]string, len(zones))
	for i, z := range zones {
		glyph := "*"
		if i < len(zoneGlyphs) {
			glyph = string(zoneGlyphs[i])
		}
		rows[i] = []string{
			glyph,
			strconv.Itoa(int(z.X)),
			strconv.Itoa(int(z.Y)),
			strconv.Itoa(int(z.Width)),
			strconv.Itoa(int(z.Height)),
			strconv.Itoa(z.Area()),
			z.String(),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorMuted).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
		Headers("#", "X", "Y", "W", "H", "Area", "Geometry").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return cellStyle.Foreground(colorAccent)
			case col == 6:
				return cellStyle.Foreground(colorMuted)
			}
			return cellStyle.Align(lipgloss.Right)
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
