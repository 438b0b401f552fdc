/*
File    : calf/parser/parser.go
*/

// Package parser folds a flat token stream into a tree of composite
// tokens, preserving source spans, per spec.md §4.4. Grounded on
// original_source's parse_stream: the same shift/reduce-over-a-frame-stack
// algorithm, the same MATCHING_CTOR dispatch (ported to a switch over
// token.Kind), ported from Python generators into a pull-based Next().
package parser

import (
	"io"
	"iter"

	"github.com/arrdem/calf/token"
)

// TokenSource is anything the parser can pull flat tokens from —
// satisfied directly by *lexer.Lexer.
type TokenSource interface {
	Next() (token.Token, error)
}

// Config configures a Parser, per spec.md §6.
type Config struct {
	// DiscardWhitespace drops WHITESPACE/COMMENT tokens rather than
	// interleaving them into the form stream. Defaults to true.
	DiscardWhitespace bool
	// Go's zero value for bool is false, so a zero Config keeps
	// whitespace; DefaultConfig below returns the default of true.
}

// DefaultConfig returns the spec's default configuration
// (discard_whitespace = true).
func DefaultConfig() Config {
	return Config{DiscardWhitespace: true}
}

// frame is one open bracket awaiting its matching close, per spec.md
// §4.4's ParseStackElement.
type frame struct {
	children      []any
	open          token.Token
	closeKind     token.Kind
	compositeKind token.Kind
}

// Parser consumes a flat token stream and yields top-level forms: either a
// token.Token (possibly singleton-transformed) or a token.Composite.
type Parser struct {
	src   TokenSource
	cfg   Config
	stack []frame
}

// New constructs a Parser pulling from src.
func New(src TokenSource, cfg Config) *Parser {
	return &Parser{src: src, cfg: cfg}
}

// Next pulls and folds tokens until a top-level form is ready, returning
// io.EOF once the stream is cleanly exhausted.
func (p *Parser) Next() (any, error) {
	for {
		tok, err := p.src.Next()
		if err == io.EOF {
			if len(p.stack) > 0 {
				top := p.stack[len(p.stack)-1]
				open := top.open
				return nil, &Error{
					Kind:          MissingClose,
					Source:        open.Source,
					Pos:           open.Start,
					Open:          &open,
					ExpectedClose: top.closeKind,
				}
			}
			return nil, io.EOF
		}
		if err != nil {
			return nil, err
		}

		if p.cfg.DiscardWhitespace && token.IsWhitespace(tok.Kind) {
			continue
		}

		if len(p.stack) > 0 && tok.Kind == p.stack[len(p.stack)-1].closeKind {
			form, err := p.reduce(tok)
			if err != nil {
				return nil, err
			}
			if v, done := p.attach(form); done {
				return v, nil
			}
			continue
		}

		if closeKind, isOpen := token.Matching[tok.Kind]; isOpen {
			p.stack = append(p.stack, frame{
				open:          tok,
				closeKind:     closeKind,
				compositeKind: token.CompositeKind[tok.Kind],
			})
			continue
		}

		if token.IsClosing(tok.Kind) {
			return nil, p.unexpectedClose(tok)
		}

		form, err := p.transform(tok)
		if err != nil {
			return nil, err
		}
		if v, done := p.attach(form); done {
			return v, nil
		}
	}
}

// All returns a lazy iterator over the form stream, per spec.md §6's
// `parse(source, {discard_whitespace}) -> sequence<Form>`.
func (p *Parser) All() iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		for {
			form, err := p.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(form, nil) {
				return
			}
		}
	}
}

// attach appends form to the innermost open frame, or reports it as a
// top-level yield if the stack is empty.
func (p *Parser) attach(form any) (any, bool) {
	if len(p.stack) == 0 {
		return form, true
	}
	top := &p.stack[len(p.stack)-1]
	top.children = append(top.children, form)
	return nil, false
}

// reduce pops the innermost frame (whose close token just arrived) and
// builds its composite, per spec.md §4.4.
func (p *Parser) reduce(closeTok token.Token) (token.Composite, error) {
	n := len(p.stack) - 1
	top := p.stack[n]
	p.stack = p.stack[:n]

	if top.compositeKind == token.Dict && len(top.children)%2 != 0 {
		return token.Composite{}, &Error{
			Kind:   OddDict,
			Source: closeTok.Source,
			Pos:    closeTok.Start,
			Token:  closeTok,
			Open:   &top.open,
		}
	}

	return token.Composite{
		Span:     token.Span{Source: top.open.Source, Start: top.open.Start},
		Kind:     top.compositeKind,
		Children: top.children,
		End:      closeTok.Start,
	}, nil
}

// unexpectedClose builds UNEXPECTED_CLOSE, with a matching-open hint if
// some outer (non-innermost) frame is waiting for this exact close kind.
func (p *Parser) unexpectedClose(tok token.Token) error {
	for i := len(p.stack) - 1; i >= 0; i-- {
		if p.stack[i].closeKind == tok.Kind {
			open := p.stack[i].open
			return &Error{Kind: UnexpectedClose, Source: tok.Source, Pos: tok.Start, Token: tok, Open: &open}
		}
	}
	return &Error{Kind: UnexpectedClose, Source: tok.Source, Pos: tok.Start, Token: tok}
}

// transform applies the INTEGER/FLOAT/STRING singleton transforms, per
// spec.md §4.4, or passes other flat tokens through unchanged.
func (p *Parser) transform(tok token.Token) (token.Token, error) {
	switch tok.Kind {
	case token.Integer:
		v, err := integerValue(tok.Text)
		if err != nil {
			return token.Token{}, &Error{Kind: NumericOverflow, Source: tok.Source, Pos: tok.Start, Token: tok}
		}
		tok.Value = v
	case token.Float:
		// strconv.ParseFloat returns a usable ±Inf value alongside
		// ErrRange for magnitudes beyond float64 — that's correct
		// IEEE-754 behavior, not a parse failure, so the error is
		// deliberately ignored here.
		v, _ := floatValue(tok.Text)
		tok.Value = v
	case token.String:
		v, err := stringValue(tok.Text)
		if err != nil {
			return token.Token{}, &Error{Kind: BadString, Source: tok.Source, Pos: tok.Start, Token: tok}
		}
		tok.Value = v
	}
	return tok, nil
}
