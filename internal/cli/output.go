package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/zonegen/pkg/dsl"
	zerrors "github.com/matzehuels/zonegen/pkg/errors"
	"github.com/matzehuels/zonegen/pkg/render/sink"
	"github.com/matzehuels/zonegen/pkg/zone"
)

// withSnippet appends the caret snippet of a parse error so the user sees
// where the layout went wrong.
func withSnippet(err error) error {
	var pe *dsl.ParseError
	if !errors.As(err, &pe) {
		return err
	}
	snippet := pe.Snippet()
	if snippet == "" {
		return err
	}
	return fmt.Errorf("%w\n\n%s", err, indent(snippet, "  "))
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// parseRoot reads the --root flag. Empty selects the full canvas.
func parseRoot(s string) (zone.Zone, error) {
	if s == "" {
		return zone.Full(), nil
	}
	return zone.Parse(s)
}

// artifactWriteParams describes where rendered artifacts go.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	stdout    io.Writer
}

// toStdout reports whether a run should print its single artifact instead
// of writing a file.
func (p artifactWriteParams) toStdout() bool {
	if p.output == "-" {
		return true
	}
	return p.output == "" && len(p.formats) == 1 && !sink.Binary(p.formats[0])
}

// writeArtifacts writes each artifact to <base>.<format>, or a single text
// artifact to stdout. It returns the paths written.
func writeArtifacts(p artifactWriteParams) ([]string, error) {
	if p.toStdout() {
		if len(p.formats) != 1 {
			return nil, fmt.Errorf("stdout output needs exactly one format, got %d", len(p.formats))
		}
		_, err := p.stdout.Write(p.artifacts[p.formats[0]])
		return nil, err
	}

	if p.output != "" {
		if err := zerrors.ValidateOutputBase(p.output); err != nil {
			return nil, err
		}
	}

	// A single format with an explicit file name is written as given.
	if len(p.formats) == 1 && p.output != "" && filepath.Ext(p.output) != "" {
		if err := writeFile(p.output, p.artifacts[p.formats[0]]); err != nil {
			return nil, err
		}
		return []string{p.output}, nil
	}

	base := basePath(p.output, p.input)
	paths := make([]string, 0, len(p.formats))
	for _, format := range p.formats {
		path := base + "." + format
		if err := writeFile(path, p.artifacts[format]); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}
