/*
File    : calf/calf.go
*/

// Package calf glues the lexer, parser and reader stages into the three
// top-level entry points spec.md §6 names as the external stream-consumer
// interface: Lex, Parse and Read. Grounded on original_source/calf's
// lex_buffer/parse_buffer/read_buffer and lex_file/parse_file/read_file
// top-level functions, which compose the same three stages over a buffer or
// a file the same way.
package calf

import (
	"io"
	"strings"

	"github.com/arrdem/calf/lexer"
	"github.com/arrdem/calf/parser"
	"github.com/arrdem/calf/reader"
)

// Config bundles the per-stage configuration spec.md §6's "Configuration"
// table recognizes, so one value drives Lex/Parse/Read uniformly.
type Config struct {
	// SourceName is recorded on every token and threaded into every error,
	// per spec.md §6 and SUPPLEMENTED FEATURES #1. Defaults to "<buffer>".
	SourceName string
	// DiscardWhitespace controls whether the parser drops WHITESPACE/COMMENT
	// tokens. Defaults to true.
	DiscardWhitespace bool
	// Table overrides the default grammar. Defaults to lexer.DefaultTable().
	Table []lexer.Rule
	// Hooks overrides the reader's value constructors. Defaults to
	// reader.DefaultHooks().
	Hooks reader.Hooks
}

// DefaultConfig mirrors spec.md §6's recognized defaults: discard_whitespace
// = true, source_name = "<buffer>", the canonical token table, and the
// reader's default hooks.
func DefaultConfig() Config {
	return Config{DiscardWhitespace: true, Hooks: reader.DefaultHooks()}
}

func (c Config) lexerConfig() lexer.Config {
	return lexer.Config{SourceName: c.SourceName, Table: c.Table}
}

func (c Config) parserConfig() parser.Config {
	return parser.Config{DiscardWhitespace: c.DiscardWhitespace}
}

// Lex tokenizes r, per spec.md §6's `lex(source) -> sequence<FlatToken>`.
func Lex(r io.Reader, cfg Config) *lexer.Lexer {
	return lexer.NewReader(r, cfg.lexerConfig())
}

// Parse tokenizes and parses r, per spec.md §6's
// `parse(source, {discard_whitespace}) -> sequence<Form>`.
func Parse(r io.Reader, cfg Config) *parser.Parser {
	return parser.New(Lex(r, cfg), cfg.parserConfig())
}

// Read tokenizes, parses and reads r, per spec.md §6's
// `read(source, {hooks}) -> sequence<Value>`.
func Read(r io.Reader, cfg Config) *reader.Reader {
	return reader.New(Parse(r, cfg), cfg.Hooks)
}

// LexString, ParseString and ReadString are buffer-oriented convenience
// wrappers, matching original_source/calf's lex_buffer/parse_buffer/
// read_buffer trio (SUPPLEMENTED FEATURES #1 and #3 in SPEC_FULL.md).
func LexString(s string, cfg Config) *lexer.Lexer {
	return Lex(strings.NewReader(s), cfg)
}

func ParseString(s string, cfg Config) *parser.Parser {
	return Parse(strings.NewReader(s), cfg)
}

func ReadString(s string, cfg Config) *reader.Reader {
	return Read(strings.NewReader(s), cfg)
}
