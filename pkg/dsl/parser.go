package dsl

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/matzehuels/zonegen/pkg/layout"
	"github.com/matzehuels/zonegen/pkg/zone"
)

// DefaultMaxDepth is the nesting limit applied when no WithMaxDepth option
// is given.
const DefaultMaxDepth = 64

type options struct {
	maxDepth int
}

// Option configures Parse.
type Option func(*options)

// WithMaxDepth limits how deeply instructions may nest. A value of zero or
// less disables the limit.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// Parse reads exactly one layout description from text. The result is a
// layout.Split; a bare leaf cannot be written at the top level.
//
// Errors are always *ParseError and match ErrSyntax, ErrMoreThanOne,
// ErrRatioRange or ErrTooDeep with errors.Is.
func Parse(text string, opts ...Option) (layout.Instruction, error) {
	o := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}

	p := &parser{lex: lexer{src: text}, src: text, maxDepth: o.maxDepth}
	p.advance()

	instr, err := p.instruction()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.fail(KindTrailingInput, p.tok)
	}
	return instr, nil
}

// MustParse is like Parse but panics on error. It is intended for layouts
// fixed at compile time.
func MustParse(text string) layout.Instruction {
	instr, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("dsl: MustParse(%q): %v", text, err))
	}
	return instr
}

type parser struct {
	lex      lexer
	src      string
	tok      token
	depth    int
	maxDepth int
}

func (p *parser) advance() { p.tok = p.lex.next() }

// instruction := ("h" | "v") "(" node ("," node)* ")"
func (p *parser) instruction() (layout.Instruction, error) {
	var dir zone.Direction
	switch p.tok.kind {
	case tokH:
		dir = zone.Horizontal
	case tokV:
		dir = zone.Vertical
	default:
		return nil, p.expected(tokH, tokV)
	}

	p.depth++
	defer func() { p.depth-- }()
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		e := p.fail(KindTooDeep, p.tok)
		e.Limit = p.maxDepth
		return nil, e
	}
	p.advance()

	if p.tok.kind != tokLParen {
		return nil, p.expected(tokLParen)
	}
	p.advance()

	split := layout.Split{Direction: dir}
	for {
		n, err := p.node()
		if err != nil {
			return nil, err
		}
		split.Children = append(split.Children, n)

		switch p.tok.kind {
		case tokComma:
			p.advance()
			continue
		case tokRParen:
			p.advance()
			return split, nil
		default:
			return nil, p.expected(tokComma, tokRParen)
		}
	}
}

// node := number (":" instruction)?
func (p *parser) node() (layout.Node, error) {
	if p.tok.kind != tokNumber {
		return layout.Node{}, p.expected(tokNumber)
	}
	numTok := p.tok
	ratio, err := strconv.ParseFloat(numTok.text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return layout.Node{}, p.fail(KindRatioRange, numTok)
		}
		panic(fmt.Sprintf("dsl: lexer produced unparsable number %q: %v", numTok.text, err))
	}
	p.advance()

	if p.tok.kind != tokColon {
		return layout.Node{Ratio: ratio, Instruction: layout.Leaf{}}, nil
	}
	p.advance()

	child, err := p.instruction()
	if err != nil {
		return layout.Node{}, err
	}
	return layout.Node{Ratio: ratio, Instruction: child}, nil
}

func (p *parser) expected(kinds ...tokenKind) *ParseError {
	e := p.fail(KindSyntax, p.tok)
	for _, k := range kinds {
		e.Expected = append(e.Expected, k.String())
	}
	return e
}

func (p *parser) fail(kind Kind, at token) *ParseError {
	line, col := position(p.src, at.start)
	return &ParseError{
		Kind:   kind,
		Offset: at.start,
		Line:   line,
		Column: col,
		Found:  describe(at),
		Input:  p.src,
	}
}
