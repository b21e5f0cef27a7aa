package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/zonegen/pkg/config"
	"github.com/matzehuels/zonegen/pkg/pipeline"
	"github.com/matzehuels/zonegen/pkg/zone"
)

// errCheckFailed is returned when at least one layout does not tile its root.
var errCheckFailed = errors.New("check failed")

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var rootFlag string

	cmd := &cobra.Command{
		Use:   "check [config]",
		Short: "Verify that every layout of a document parses and tiles the canvas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := parseRoot(rootFlag)
			if err != nil {
				return err
			}
			return c.runCheck(cmd, args[0], root)
		},
	}
	cmd.Flags().StringVar(&rootFlag, "root", "", "root rectangle as WxH+X+Y (default 100x100+0+0)")
	return cmd
}

func (c *CLI) runCheck(cmd *cobra.Command, path string, root zone.Zone) error {
	doc, err := config.Load(path)
	if err != nil {
		return err
	}

	failed := 0
	for _, l := range doc.Layouts {
		res, err := pipeline.Generate(cmd.Context(), l, doc.PaddingFor(l), root)
		if err == nil {
			err = zone.CheckTiling(root, res.Zones)
		}
		if err != nil {
			failed++
			printError("%s: %v", l.Name, err)
			loggerFromContext(cmd.Context()).Debug("layout failed", "name", l.Name, "error", err)
			continue
		}
		printSuccess("%s %s", l.Name, StyleDim.Render(fmt.Sprintf("%d zones", len(res.Zones))))
		if res.Stats.Leaves != len(res.Zones) {
			printWarning("%s: %d leaves resolve to %d distinct zones", l.Name, res.Stats.Leaves, len(res.Zones))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d layouts", errCheckFailed, failed, len(doc.Layouts))
	}
	printDetail("%d layouts ok", len(doc.Layouts))
	return nil
}
