/*
File    : calf/token/token.go
*/

package token

import "github.com/arrdem/calf/pos"

// Span is the (source, start_pos) prefix shared by flat tokens and
// composites, per spec.md §9 ("factor it out").
type Span struct {
	Source string
	Start  pos.Position
}

// Token is a flat lexical token: kind, exact matched text, source name,
// start position and any named attributes extracted from the winning
// pattern, per spec.md §3.
type Token struct {
	Span
	Kind       Kind
	Text       string
	Attributes map[string]string

	// Value carries the result of a singleton transform (INTEGER, FLOAT,
	// STRING) once the parser has applied it, per spec.md §4.4. It is nil
	// for tokens that have not been refined.
	Value any
}

// New constructs a flat token with no attributes.
func New(kind Kind, text string, span Span) Token {
	return Token{Span: span, Kind: kind, Text: text}
}

// Attr looks up a named capture group, returning "" if absent.
func (t Token) Attr(name string) string {
	return t.Attributes[name]
}

// Composite is a parenthesized, bracketed or braced grouping produced by
// the parser, per spec.md §3. Children is a flat ordered sequence of forms;
// for DICT, pairing into (key, value) tuples is exposed via Pairs().
type Composite struct {
	Span
	Kind     Kind
	Children []any
	End      pos.Position
}

// Pair is a single (key, value) child of a DICT composite.
type Pair struct {
	Key   any
	Value any
}

// Pairs pairs up Children positionally: (c[0],c[1]), (c[2],c[3]), ...
// Callers must have already verified an even child count (spec.md §4.4's
// ODD_DICT check happens before a Composite of kind Dict is ever
// constructed).
func (c Composite) Pairs() []Pair {
	pairs := make([]Pair, 0, len(c.Children)/2)
	for i := 0; i+1 < len(c.Children); i += 2 {
		pairs = append(pairs, Pair{Key: c.Children[i], Value: c.Children[i+1]})
	}
	return pairs
}
