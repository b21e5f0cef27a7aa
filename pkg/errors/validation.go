package errors

import (
	"strings"
	"unicode"
)

// MaxNameLength bounds layout names.
const MaxNameLength = 128

// ValidateLayoutName validates a layout name. Names end up in file names,
// spreadsheet sheets and CAD layer names, so the rules are conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal names
//   - Maximum length of MaxNameLength characters
func ValidateLayoutName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "layout name cannot be empty")
	}

	if len(name) > MaxNameLength {
		return New(ErrCodeInvalidName, "layout name too long (max %d characters)", MaxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "layout name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidName, "layout name %q cannot contain path separators", name)
	}

	if name == "." || name == ".." {
		return New(ErrCodeInvalidName, "layout name %q is reserved", name)
	}

	return nil
}

// ValidateOutputBase validates the base path that generated files are
// written next to. It must name a file, not a directory.
func ValidateOutputBase(base string) error {
	if base == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	for _, r := range base {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(base, "/") || strings.HasSuffix(base, "\\") {
		return New(ErrCodeInvalidInput, "output path %q names a directory", base)
	}

	return nil
}
