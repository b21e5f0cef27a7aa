package errors

import (
	"strings"
	"testing"
)

func TestValidateLayoutName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "main", false},
		{"with dash", "side-by-side", false},
		{"with space", "two columns", false},
		{"with dot", "v1.2", false},
		{"unicode", "größe", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxNameLength+1), true},
		{"slash", "a/b", true},
		{"backslash", "a\\b", true},
		{"dot", ".", true},
		{"dotdot", "..", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLayoutName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLayoutName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("ValidateLayoutName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestValidateOutputBase(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"file", "zones", false},
		{"nested", "out/zones", false},
		{"empty", "", true},
		{"directory", "out/", true},
		{"control", "zo\x01nes", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputBase(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputBase(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
