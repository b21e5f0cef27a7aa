package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/zonegen/pkg/config"
	"github.com/matzehuels/zonegen/pkg/pipeline"
	"github.com/matzehuels/zonegen/pkg/render/sink"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	formats string
	output  string
	root    string
	workers int
	refresh bool
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [config]",
		Short: "Partition every layout of a document and export the zones",
		Long: `Partition every layout of a document and export the zones.

The document is a TOML, YAML or JSON file listing named layouts (see
'zonegen init'). All layouts are rendered together into each format:

  json, yaml, toml   structured zone lists
  svg, png           one panel per layout
  pdf                one page per layout
  dxf                one CAD layer per layout
  xlsx               one sheet per layout

A single text format without -o is printed to stdout. Otherwise files are
written to <base>.<format>, where base defaults to the config file name.

Rendered artifacts are cached locally; use --refresh to re-render.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): "+strings.Join(sink.Formats, ", ")+" (comma-separated, default json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVar(&opts.root, "root", "", "root rectangle as WxH+X+Y (default 100x100+0+0)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "layouts processed in parallel (default GOMAXPROCS)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return sink.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, input string, flags generateOpts) error {
	ctx := cmd.Context()

	root, err := parseRoot(flags.root)
	if err != nil {
		return err
	}
	opts := pipeline.Options{
		Formats: parseFormats(flags.formats),
		Root:    root,
		Workers: flags.workers,
		Refresh: flags.refresh,
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	doc, err := config.Load(input)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded document", "path", input, "layouts", len(doc.Layouts))

	runner, err := c.newRunner(ctx)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	w := artifactWriteParams{
		formats: opts.Formats,
		input:   input,
		output:  flags.output,
		stdout:  cmd.OutOrStdout(),
	}

	out, err := c.execute(ctx, runner, doc, opts, !w.toStdout())
	if err != nil {
		return withSnippet(err)
	}
	w.artifacts = out.Artifacts

	paths, err := writeArtifacts(w)
	if err != nil {
		return err
	}
	if w.toStdout() {
		return nil
	}

	printSuccess("Generated %s", strings.Join(opts.Formats, ", "))
	for _, p := range paths {
		printFile(p)
	}
	printStats(out.Stats.Layouts, out.Stats.Zones, out.CacheInfo.AllHit())
	return nil
}

// slowFormats shell out or build archives and get a spinner.
var slowFormats = []string{"png", "pdf", "xlsx"}

func (c *CLI) execute(ctx context.Context, runner *pipeline.Runner, doc *config.Document, opts pipeline.Options, interactive bool) (*pipeline.Output, error) {
	prog := newProgress(c.Logger)

	var spinner *Spinner
	if interactive && slices.ContainsFunc(opts.Formats, func(f string) bool { return slices.Contains(slowFormats, f) }) {
		spinner = newSpinnerWithContext(ctx, "Rendering...")
		spinner.Start()
	}

	out, err := runner.Execute(ctx, doc, opts)
	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Rendering failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	prog.done(fmt.Sprintf("Generated %d layouts", out.Stats.Layouts))
	return out, nil
}
