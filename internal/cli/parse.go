package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/zonegen/pkg/dsl"
	"github.com/matzehuels/zonegen/pkg/layout"
	"github.com/matzehuels/zonegen/pkg/render/tree"
	"github.com/matzehuels/zonegen/pkg/zone"
)

// parseOutputs lists the outputs of the parse command.
var parseOutputs = []string{"tree", "json", "dsl", "dot", "svg"}

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	format   string
	maxDepth int
	root     string
	zones    bool
}

// parseCommand creates the parse command.
func (c *CLI) parseCommand() *cobra.Command {
	opts := parseOpts{format: "tree", maxDepth: dsl.DefaultMaxDepth}

	cmd := &cobra.Command{
		Use:   "parse [layout]",
		Short: "Parse a layout description and print its instruction tree",
		Long: `Parse a layout description and print its instruction tree.

Formats:
  tree   indented text tree (default)
  json   serialized tree
  dsl    canonical layout text
  dot    Graphviz source
  svg    Graphviz diagram

Examples:
  zonegen parse "h(1, 2: v(3, 4), 5)"
  zonegen parse "v(1, 1)" -f dot --zones`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: "+strings.Join(parseOutputs, ", "))
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", opts.maxDepth, "maximum nesting depth (0 for unlimited)")
	cmd.Flags().StringVar(&opts.root, "root", "", "root rectangle for --zones, as WxH+X+Y")
	cmd.Flags().BoolVar(&opts.zones, "zones", false, "annotate tree and dot output with zones")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return parseOutputs, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runParse(cmd *cobra.Command, text string, opts parseOpts) error {
	instr, err := dsl.Parse(text, dsl.WithMaxDepth(opts.maxDepth))
	if err != nil {
		return withSnippet(err)
	}
	st := layout.StatsOf(instr)
	loggerFromContext(cmd.Context()).Debug("parsed layout", "leaves", st.Leaves, "splits", st.Splits, "depth", st.Depth)

	var root *zone.Zone
	if opts.zones {
		r, err := parseRoot(opts.root)
		if err != nil {
			return err
		}
		root = &r
	}

	out := cmd.OutOrStdout()
	switch opts.format {
	case "tree":
		return writeTree(out, instr, root)
	case "json":
		data, err := layout.MarshalTree(instr)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case "dsl":
		_, err := fmt.Fprintln(out, layout.Format(instr))
		return err
	case "dot":
		_, err := io.WriteString(out, tree.ToDOT(instr, tree.Options{Root: root}))
		return err
	case "svg":
		svg, err := tree.RenderSVG(cmd.Context(), tree.ToDOT(instr, tree.Options{Root: root}))
		if err != nil {
			return err
		}
		_, err = out.Write(svg)
		return err
	default:
		return fmt.Errorf("unknown format %q (must be one of: %s)", opts.format, strings.Join(parseOutputs, ", "))
	}
}

// writeTree prints instr as an indented tree. Leaves are numbered in
// traversal order. With a root, every node shows the zone it covers.
func writeTree(w io.Writer, instr layout.Instruction, root *zone.Zone) error {
	var b strings.Builder
	leaf := 0

	var walk func(in layout.Instruction, z *zone.Zone, prefix, label string)
	walk = func(in layout.Instruction, z *zone.Zone, prefix, label string) {
		b.WriteString(prefix)
		b.WriteString(label)
		s, ok := in.(layout.Split)
		if !ok {
			leaf++
			b.WriteString(StyleValue.Render(fmt.Sprintf("#%d", leaf)))
		} else {
			b.WriteString(StyleHighlight.Render(s.Direction.String()))
		}
		if z != nil {
			b.WriteString(" " + StyleDim.Render(z.String()))
		}
		b.WriteByte('\n')
		if !ok {
			return
		}

		var parts []zone.Zone
		if z != nil {
			var err error
			if parts, err = zone.Slice(*z, s.Ratios(), s.Direction); err != nil {
				parts = nil
			}
		}
		for i, child := range s.Children {
			var cz *zone.Zone
			if parts != nil {
				cz = &parts[i]
			}
			walk(child.Instruction, cz, prefix+"  ", StyleNumber.Render(layout.FormatRatio(child.Ratio))+": ")
		}
	}

	if root != nil {
		if _, err := layout.Partition(instr, *root); err != nil {
			return err
		}
	}
	walk(instr, root, "", "")
	_, err := io.WriteString(w, b.String())
	return err
}
