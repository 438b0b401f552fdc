/*
File    : calf/token/kind.go
*/

// Package token defines the fixed lexical and parse-tree vocabulary shared
// by the lexer, parser and reader stages.
package token

// Kind is the fixed alphabet of token kinds, per spec.md §3.
type Kind string

const (
	// Delimiters
	ParenLeft    Kind = "PAREN_LEFT"
	ParenRight   Kind = "PAREN_RIGHT"
	BracketLeft  Kind = "BRACKET_LEFT"
	BracketRight Kind = "BRACKET_RIGHT"
	BraceLeft    Kind = "BRACE_LEFT"
	BraceRight   Kind = "BRACE_RIGHT"

	// Prefix markers
	Meta          Kind = "META"
	SingleQuote   Kind = "SINGLE_QUOTE"
	MacroDispatch Kind = "MACRO_DISPATCH"

	// Atoms
	Symbol  Kind = "SYMBOL"
	Keyword Kind = "KEYWORD"
	Integer Kind = "INTEGER"
	Float   Kind = "FLOAT"
	String  Kind = "STRING"

	// Trivia
	Whitespace Kind = "WHITESPACE"
	Comment    Kind = "COMMENT"

	// Composite (parser-only)
	List   Kind = "LIST"
	SQList Kind = "SQLIST"
	Dict   Kind = "DICT"

	// Synthetic (reader-only)
	QuoteForm    Kind = "QUOTE"
	MetaForm     Kind = "META_FORM"
	DispatchForm Kind = "DISPATCH_FORM"
)

// Matching maps an opening delimiter kind to its closing delimiter kind,
// per spec.md §4.4 ("( -> )", "[ -> ]", "{ -> }").
var Matching = map[Kind]Kind{
	ParenLeft:   ParenRight,
	BracketLeft: BracketRight,
	BraceLeft:   BraceRight,
}

// CompositeKind maps an opening delimiter kind to the composite kind it
// introduces.
var CompositeKind = map[Kind]Kind{
	ParenLeft:   List,
	BracketLeft: SQList,
	BraceLeft:   Dict,
}

// closingKinds is the set of all recognized closing-delimiter kinds,
// regardless of which frame (if any) is open.
var closingKinds = func() map[Kind]bool {
	m := make(map[Kind]bool, len(Matching))
	for _, close := range Matching {
		m[close] = true
	}
	return m
}()

// IsClosing reports whether k is one of the fixed closing-delimiter kinds.
func IsClosing(k Kind) bool {
	return closingKinds[k]
}

// IsWhitespace reports whether k is trivia per spec.md §4.2
// (WHITESPACE_TYPES = {WHITESPACE, COMMENT}).
func IsWhitespace(k Kind) bool {
	return k == Whitespace || k == Comment
}
