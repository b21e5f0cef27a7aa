package dsl

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrSyntax matches parse errors where the text does not follow the
	// grammar.
	ErrSyntax = errors.New("syntax error")

	// ErrMoreThanOne matches parse errors where input remains after one
	// complete layout.
	ErrMoreThanOne = errors.New("more than one layout description")

	// ErrRatioRange matches parse errors for numerals too large to represent.
	ErrRatioRange = errors.New("ratio out of range")

	// ErrTooDeep matches parse errors for layouts nested beyond the
	// configured limit.
	ErrTooDeep = errors.New("layout nested too deeply")
)

// Kind classifies a ParseError.
type Kind int

const (
	KindSyntax Kind = iota
	KindTrailingInput
	KindRatioRange
	KindTooDeep
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindTrailingInput:
		return "trailing input"
	case KindRatioRange:
		return "ratio range"
	case KindTooDeep:
		return "too deep"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseError describes why layout text was rejected and where.
type ParseError struct {
	Kind Kind

	// Offset is the byte offset of the offending token. Line and Column are
	// 1-based; Column counts runes.
	Offset int
	Line   int
	Column int

	// Expected lists what the parser would have accepted (KindSyntax only).
	Expected []string
	// Found describes the offending token.
	Found string
	// Limit is the nesting limit that was exceeded (KindTooDeep only).
	Limit int

	Input string
}

func (e *ParseError) Error() string {
	var detail string
	switch e.Kind {
	case KindSyntax:
		detail = fmt.Sprintf("expected %s, found %s", strings.Join(e.Expected, " or "), e.Found)
	case KindTrailingInput:
		detail = fmt.Sprintf("%s, found %s", ErrMoreThanOne, e.Found)
	case KindRatioRange:
		detail = fmt.Sprintf("ratio %s is out of range", e.Found)
	case KindTooDeep:
		detail = fmt.Sprintf("layout nests deeper than %d levels", e.Limit)
	}
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, detail)
}

// Is lets errors.Is match a ParseError against the package sentinels.
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrSyntax:
		return e.Kind == KindSyntax
	case ErrMoreThanOne:
		return e.Kind == KindTrailingInput
	case ErrRatioRange:
		return e.Kind == KindRatioRange
	case ErrTooDeep:
		return e.Kind == KindTooDeep
	}
	return false
}

// Snippet returns the source line holding the error with a caret under the
// offending column.
func (e *ParseError) Snippet() string {
	lines := strings.Split(e.Input, "\n")
	if e.Line < 1 || e.Line > len(lines) {
		return ""
	}
	line := strings.TrimRight(lines[e.Line-1], "\r")
	var pad strings.Builder
	col := 1
	for _, r := range line {
		if col >= e.Column {
			break
		}
		if r == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
		col++
	}
	for ; col < e.Column; col++ {
		pad.WriteByte(' ')
	}
	return line + "\n" + pad.String() + "^"
}

// position maps a byte offset in src to a 1-based line and rune column.
func position(src string, offset int) (line, col int) {
	if offset > len(src) {
		offset = len(src)
	}
	head := src[:offset]
	line = 1 + strings.Count(head, "\n")
	if i := strings.LastIndexByte(head, '\n'); i >= 0 {
		head = head[i+1:]
	}
	return line, utf8.RuneCountInString(head) + 1
}

func describe(t token) string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.text)
}
