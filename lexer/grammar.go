/*
File    : calf/lexer/grammar.go
*/

package lexer

import (
	"regexp"

	"github.com/arrdem/calf/token"
)

// Rule is one (pattern, kind) entry of a token table, per spec.md §4.2.
// Match reports whether buf, taken as a whole, is currently a viable
// instance of Kind. The scanning loop in lexer.go extends a token one
// character at a time for as long as the extended buffer fully matches
// some rule of the table, so a token is only reachable if each of its
// prefixes matches some rule. For most kinds Match is an ordinary anchored
// regexp full-match; STRING, INTEGER and FLOAT use a hand-written Match
// instead; see numbers.go and strings.go for why.
type Rule struct {
	Kind  token.Kind
	Match func(buf string) bool
	// Attrs extracts named sub-groups from a final, winning raw_text.
	// nil for kinds that carry no attributes.
	Attrs func(text string) map[string]string
}

func literalRule(kind token.Kind, literal string) Rule {
	return Rule{
		Kind:  kind,
		Match: func(buf string) bool { return buf == literal },
	}
}

func regexRule(kind token.Kind, pattern string) Rule {
	re := regexp.MustCompile(`^(?:` + pattern + `)$`)
	return Rule{
		Kind:  kind,
		Match: re.MatchString,
	}
}

func regexRuleAttrs(kind token.Kind, pattern string) Rule {
	re := regexp.MustCompile(`^(?:` + pattern + `)$`)
	names := re.SubexpNames()
	return Rule{
		Kind:  kind,
		Match: re.MatchString,
		Attrs: func(text string) map[string]string {
			m := re.FindStringSubmatch(text)
			if m == nil {
				return nil
			}
			out := map[string]string{}
			for i, name := range names {
				if name != "" && m[i] != "" {
					out[name] = m[i]
				}
			}
			return out
		},
	}
}

// Character classes mirroring original_source/src/calf/grammar.py's
// WHITESPACE/DELIMS/SIMPLE_SYMBOL, translated into Go regexp syntax.
const (
	horizontalWS = `[ \t\f\v,]`
	lineBreak    = `(?:\r\n|\n|\r)`
	delims       = `\n\r\s,\[\]\(\)\{\}:;#^"'`

	simpleSymbol = `(?:[^` + delims + `\-\+\d][^` + delims + `]*|[^` + delims + `\d]+)`
	symbolBody   = `(?:(?P<namespace>` + simpleSymbol + `)/)?(?P<name>` + simpleSymbol + `)`
)

// DefaultTable is the canonical Calf token table, in the order spec.md §4.2
// specifies: the six bracket delimiters; the prefix markers; FLOAT; INTEGER;
// KEYWORD; SYMBOL; WHITESPACE; COMMENT; STRING. Order does not break ties:
// a buffer that can no longer be extended while it still matches more than
// one kind is an AMBIGUOUS_TOKEN error (INCOMPLETE_TOKEN at end of input).
func DefaultTable() []Rule {
	return []Rule{
		literalRule(token.ParenLeft, "("),
		literalRule(token.ParenRight, ")"),
		literalRule(token.BracketLeft, "["),
		literalRule(token.BracketRight, "]"),
		literalRule(token.BraceLeft, "{"),
		literalRule(token.BraceRight, "}"),

		literalRule(token.Meta, "^"),
		literalRule(token.SingleQuote, "'"),
		literalRule(token.MacroDispatch, "#"),

		floatRule(),
		integerRule(),

		regexRuleAttrs(token.Keyword, `:(?:`+symbolBody+`)?`),
		regexRuleAttrs(token.Symbol, symbolBody),

		regexRule(token.Whitespace, horizontalWS+`*(?:`+lineBreak+horizontalWS+`*)?`),
		regexRule(token.Comment, `;[^\n\r]*(?:\n\r?)?`),

		stringRule(),
	}
}
