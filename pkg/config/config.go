// Package config loads zonegen layout documents.
//
// A document lists named layouts written in the layout language together
// with the padding that consumers should leave between zones:
//
//	padding = 8
//
//	[[layouts]]
//	name = "main"
//	layout = "h(1, 2: v(3, 4), 5)"
//
//	[[layouts]]
//	name = "focus"
//	layout = "v(1, 3)"
//	padding = 0
//
// Documents may be written in TOML, YAML or JSON; the format is taken from the
// file extension. For files read with Load, the top-level padding can be
// overridden with the ZONEGEN_PADDING environment variable. Parse never
// consults the environment, so a document received over the network renders
// the same on every host.
package config

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/matzehuels/zonegen/pkg/errors"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "ZONEGEN"

// DefaultPadding applies when a document sets no padding.
const DefaultPadding = 0

// ValidFormats lists the accepted document encodings.
var ValidFormats = map[string]bool{"toml": true, "yaml": true, "yml": true, "json": true}

// Document is a parsed layout document.
type Document struct {
	Padding int      `mapstructure:"padding" json:"padding" yaml:"padding" toml:"padding"`
	Layouts []Layout `mapstructure:"layouts" json:"layouts" yaml:"layouts" toml:"layouts"`
}

// Layout is one named layout description. A nil Padding inherits the
// document padding.
type Layout struct {
	Name    string `mapstructure:"name" json:"name" yaml:"name" toml:"name"`
	Layout  string `mapstructure:"layout" json:"layout" yaml:"layout" toml:"layout"`
	Padding *int   `mapstructure:"padding" json:"padding,omitempty" yaml:"padding,omitempty" toml:"padding,omitempty"`
}

// Load reads and validates the document at path.
func Load(path string) (*Document, error) {
	format := FormatOf(path)
	if !ValidFormats[format] {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q (must be one of: toml, yaml, json)", filepath.Ext(path))
	}

	v := newViper(true)
	v.SetConfigFile(path)
	v.SetConfigType(format)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return decode(v)
}

// Parse reads and validates a document from r encoded as format. Unlike
// Load it applies no environment overrides.
func Parse(r io.Reader, format string) (*Document, error) {
	format = strings.ToLower(format)
	if !ValidFormats[format] {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q (must be one of: toml, yaml, json)", format)
	}

	v := newViper(false)
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s document", format)
	}
	return decode(v)
}

// FormatOf returns the document format implied by the extension of path.
func FormatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func newViper(withEnv bool) *viper.Viper {
	v := viper.New()
	v.SetDefault("padding", DefaultPadding)
	if !withEnv {
		return v
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Document, error) {
	var doc Document
	if err := v.Unmarshal(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode document")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks structural rules. Layout text is not parsed here.
func (d *Document) Validate() error {
	if d.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "padding must be non-negative, got %d", d.Padding)
	}
	if len(d.Layouts) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "document defines no layouts")
	}
	seen := make(map[string]bool, len(d.Layouts))
	for i, l := range d.Layouts {
		name := l.Name
		if strings.TrimSpace(name) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "layouts[%d]: name is required", i)
		}
		if strings.TrimSpace(name) != name {
			return errors.New(errors.ErrCodeInvalidConfig, "layouts[%d]: name %q has surrounding whitespace", i, name)
		}
		if err := errors.ValidateLayoutName(name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "layouts[%d]", i)
		}
		if seen[name] {
			return errors.New(errors.ErrCodeInvalidConfig, "layouts[%d]: duplicate name %q", i, name)
		}
		seen[name] = true
		if strings.TrimSpace(l.Layout) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "layout %q: layout text is empty", name)
		}
		if l.Padding != nil && *l.Padding < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "layout %q: padding must be non-negative, got %d", name, *l.Padding)
		}
	}
	return nil
}

// PaddingFor returns the padding in effect for l.
func (d *Document) PaddingFor(l Layout) int {
	if l.Padding != nil {
		return *l.Padding
	}
	return d.Padding
}

// Find returns the layout called name.
func (d *Document) Find(name string) (Layout, bool) {
	for _, l := range d.Layouts {
		if l.Name == name {
			return l, true
		}
	}
	return Layout{}, false
}

// Names returns layout names in document order.
func (d *Document) Names() []string {
	out := make([]string, len(d.Layouts))
	for i, l := range d.Layouts {
		out[i] = l.Name
	}
	return out
}
