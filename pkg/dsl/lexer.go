package dsl

import (
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIllegal
	tokH
	tokV
	tokLParen
	tokRParen
	tokComma
	tokColon
	tokNumber
)

// display names used in "expected ..." messages
var tokenNames = map[tokenKind]string{
	tokEOF:     "end of input",
	tokIllegal: "illegal character",
	tokH:       `"h"`,
	tokV:       `"v"`,
	tokLParen:  `"("`,
	tokRParen:  `")"`,
	tokComma:   `","`,
	tokColon:   `":"`,
	tokNumber:  "number",
}

func (k tokenKind) String() string { return tokenNames[k] }

type token struct {
	kind  tokenKind
	text  string
	start int // byte offset into the source
}

// lexer splits layout text into tokens. Whitespace between tokens is
// skipped. Anything outside the token alphabet becomes a one-rune tokIllegal.
type lexer struct {
	src string
	pos int
}

func (l *lexer) next() token {
	for l.pos < len(l.src) {
		r, w := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		l.pos += w
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, start: len(l.src)}
	}

	start := l.pos
	c := l.src[l.pos]
	single := func(k tokenKind) token {
		l.pos++
		return token{kind: k, text: l.src[start:l.pos], start: start}
	}
	switch c {
	case 'h':
		return single(tokH)
	case 'v':
		return single(tokV)
	case '(':
		return single(tokLParen)
	case ')':
		return single(tokRParen)
	case ',':
		return single(tokComma)
	case ':':
		return single(tokColon)
	}

	if isDigit(c) {
		l.digits()
		if l.pos+1 < len(l.src) && l.src[l.pos] == '.' && isDigit(l.src[l.pos+1]) {
			l.pos++
			l.digits()
		}
		return token{kind: tokNumber, text: l.src[start:l.pos], start: start}
	}

	_, w := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += w
	return token{kind: tokIllegal, text: l.src[start:l.pos], start: start}
}

func (l *lexer) digits() {
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
