package sink

import (
	"context"
	"fmt"
)

// Formats lists every format [Render] accepts, in display order.
var Formats = []string{"json", "yaml", "toml", "svg", "png", "pdf", "dxf", "xlsx"}

// Binary reports whether format produces non-text output.
func Binary(format string) bool {
	switch format {
	case "png", "pdf", "dxf", "xlsx":
		return true
	}
	return false
}

// ContentType returns the MIME type served for format.
func ContentType(format string) string {
	switch format {
	case "json":
		return "application/json"
	case "yaml":
		return "application/yaml"
	case "toml":
		return "application/toml"
	case "svg":
		return "image/svg+xml"
	case "png":
		return "image/png"
	case "pdf":
		return "application/pdf"
	case "dxf":
		return "image/vnd.dxf"
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

// Render dispatches doc to the renderer for format.
func Render(ctx context.Context, doc Document, format string) ([]byte, error) {
	switch format {
	case "json":
		return RenderJSON(doc)
	case "yaml":
		return RenderYAML(doc)
	case "toml":
		return RenderTOML(doc)
	case "svg":
		return RenderSVG(doc), nil
	case "png":
		return RenderPNG(ctx, doc)
	case "pdf":
		return RenderPDF(doc)
	case "dxf":
		return RenderDXF(doc)
	case "xlsx":
		return RenderXLSX(doc)
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}
