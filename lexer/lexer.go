/*
File    : calf/lexer/lexer.go
*/

// Package lexer implements the Calf longest-match tokenizer: a
// candidate-pruning loop driven by a declarative token table, per spec.md
// §4.2-§4.3.
package lexer

import (
	"io"
	"iter"
	"strings"

	"github.com/arrdem/calf/pos"
	"github.com/arrdem/calf/source"
	"github.com/arrdem/calf/token"
)

// Config configures a Lexer, per spec.md §6.
type Config struct {
	// SourceName is recorded on every emitted token. Defaults to "<buffer>".
	SourceName string
	// Table overrides the default grammar. Defaults to DefaultTable().
	Table []Rule
	// Metadata is merged into every token's Attributes, alongside whatever
	// the winning pattern's own named groups extracted — spec.md §3's
	// "lexer-supplied metadata".
	Metadata map[string]string
}

// Lexer scans a character Source into a lazy sequence of flat tokens.
type Lexer struct {
	src        source.Source
	sourceName string
	table      []Rule
	metadata   map[string]string
}

// New constructs a Lexer over src with the given configuration.
func New(src source.Source, cfg Config) *Lexer {
	name := cfg.SourceName
	if name == "" {
		name = "<buffer>"
	}
	table := cfg.Table
	if table == nil {
		table = DefaultTable()
	}
	if len(table) == 0 {
		panic("lexer: empty token table")
	}
	return &Lexer{src: src, sourceName: name, table: table, metadata: cfg.Metadata}
}

// NewString is a convenience constructor lexing directly from a string.
func NewString(s string, cfg Config) *Lexer {
	return New(source.NewString(s), cfg)
}

// NewReader is a convenience constructor lexing from an io.Reader.
func NewReader(r io.Reader, cfg Config) *Lexer {
	return New(source.NewReader(r), cfg)
}

// Next scans and returns the next flat token. It returns io.EOF once the
// character stream is exhausted with no pending partial token.
func (l *Lexer) Next() (token.Token, error) {
	startPos, _, ok := l.src.Peek()
	if !ok {
		return token.Token{}, io.EOF
	}

	var acc strings.Builder
	candidates := l.table

	for {
		_, ch, ok := l.src.Peek()
		if !ok {
			break
		}

		nextAcc := acc.String() + string(ch)
		// Re-test the extended buffer against the whole table, not just the
		// kinds that matched so far: a token may pass through another kind
		// on its way, as "-" (SYMBOL) does to "-5" (INTEGER) and "1"
		// (INTEGER) does to "1.5" (FLOAT).
		next := pruneCandidates(l.table, nextAcc)

		if len(next) > 0 {
			acc.WriteRune(ch)
			candidates = next
			l.src.Advance()
			continue
		}

		if acc.Len() == 0 {
			return token.Token{}, &Error{
				Kind:   NoCandidates,
				Source: l.sourceName,
				Pos:    startPos,
				Buffer: string(ch),
			}
		}
		if len(candidates) == 1 {
			return l.emit(candidates[0], acc.String(), startPos)
		}
		return token.Token{}, &Error{
			Kind:       AmbiguousToken,
			Source:     l.sourceName,
			Pos:        startPos,
			Buffer:     acc.String(),
			Candidates: kindsOf(candidates),
		}
	}

	// End of input reached mid-accumulation.
	if acc.Len() == 0 {
		return token.Token{}, io.EOF
	}
	if len(candidates) == 1 {
		return l.emit(candidates[0], acc.String(), startPos)
	}
	return token.Token{}, &Error{
		Kind:   IncompleteToken,
		Source: l.sourceName,
		Pos:    startPos,
		Buffer: acc.String(),
	}
}

// All returns a lazy iterator over the token stream, per spec.md §6's
// `lex(source) -> sequence<FlatToken>`. Iteration stops cleanly at end of
// input; a lex error yields exactly one (zero-value, err) pair and stops.
func (l *Lexer) All() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok, err := l.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(token.Token{}, err)
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

func pruneCandidates(candidates []Rule, buf string) []Rule {
	var next []Rule
	for _, r := range candidates {
		if r.Match(buf) {
			next = append(next, r)
		}
	}
	return next
}

func kindsOf(rules []Rule) []token.Kind {
	out := make([]token.Kind, len(rules))
	for i, r := range rules {
		out[i] = r.Kind
	}
	return out
}

func (l *Lexer) emit(rule Rule, text string, start pos.Position) (token.Token, error) {
	var attrs map[string]string
	if rule.Attrs != nil {
		if a := rule.Attrs(text); a != nil {
			attrs = make(map[string]string, len(a)+len(l.metadata))
			for k, v := range a {
				attrs[k] = v
			}
		}
	}
	if len(l.metadata) > 0 {
		if attrs == nil {
			attrs = make(map[string]string, len(l.metadata))
		}
		for k, v := range l.metadata {
			attrs[k] = v
		}
	}
	tok := token.New(rule.Kind, text, token.Span{Source: l.sourceName, Start: start})
	tok.Attributes = attrs
	return tok, nil
}
