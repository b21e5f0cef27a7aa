package config

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Sample returns the starter document written by "zonegen init".
func Sample() *Document {
	none := 0
	return &Document{
		Padding: 8,
		Layouts: []Layout{
			{Name: "columns", Layout: "h(1, 1, 1)"},
			{Name: "main", Layout: "h(1, 2: v(3, 4), 5)"},
			{Name: "focus", Layout: "v(1, 3)", Padding: &none},
		},
	}
}

// WriteTOML encodes doc as TOML.
func WriteTOML(w io.Writer, doc *Document) error {
	if _, err := fmt.Fprintln(w, "# zonegen layout document"); err != nil {
		return err
	}
	return toml.NewEncoder(w).Encode(doc)
}
