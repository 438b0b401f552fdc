/*
File    : calf/reader/hooks.go
*/

package reader

// Hooks is the reader's replaceable value-construction surface, per spec.md
// §4.5. Grounded on original_source/calf/reader.py's CalfReader methods
// (make_symbol, make_keyword, handle_quote, handle_meta, handle_dispatch),
// ported from overridable methods on a class into a struct of function
// fields — the same pluggable-behavior idiom as
// go-mix/parser.Parser's UnaryFuncs/BinaryFuncs maps.
type Hooks struct {
	// MakeSymbol converts a SYMBOL token's raw text into a host value.
	// Default: pass the text through unchanged.
	MakeSymbol func(text string) any

	// MakeKeyword converts a KEYWORD token's raw text (with the leading
	// colon already stripped) into a host value. Default: pass the text
	// through unchanged.
	MakeKeyword func(text string) any

	// HandleQuote handles a 'form prefix marker. inner is the already-read
	// value of the form following the quote. Default: a two-element
	// sequence [symbol("quote"), inner], per spec.md §4.5.
	HandleQuote func(r *Reader, inner any) (any, error)

	// HandleMeta handles a ^tag form prefix marker. tag and inner are the
	// already-read values of the two forms following the caret. Default:
	// discard tag, return inner, per spec.md §9's pinned Open Question.
	HandleMeta func(r *Reader, tag, inner any) (any, error)

	// HandleDispatch handles a #tag form prefix marker. tag and inner are
	// the already-read values of the two forms following the hash.
	// Default: preserve both as a Dispatch{Tag, Form} value.
	HandleDispatch func(r *Reader, tag, inner any) (any, error)
}

// DefaultHooks returns the spec's default hook set: symbols and keywords
// pass through as their raw textual form; quote wraps as a two-element
// sequence; meta drops its tag; dispatch preserves tag and form.
func DefaultHooks() Hooks {
	return Hooks{
		MakeSymbol:  func(text string) any { return text },
		MakeKeyword: func(text string) any { return text },
		HandleQuote: func(r *Reader, inner any) (any, error) {
			return []any{r.hooks.MakeSymbol("quote"), inner}, nil
		},
		HandleMeta: func(r *Reader, tag, inner any) (any, error) {
			return inner, nil
		},
		HandleDispatch: func(r *Reader, tag, inner any) (any, error) {
			return Dispatch{Tag: tag, Form: inner}, nil
		},
	}
}

// orDefaults fills any nil hook field with its DefaultHooks counterpart, so
// callers may override just one or two hooks and leave the rest at their
// spec-default behavior.
func (h Hooks) orDefaults() Hooks {
	d := DefaultHooks()
	if h.MakeSymbol == nil {
		h.MakeSymbol = d.MakeSymbol
	}
	if h.MakeKeyword == nil {
		h.MakeKeyword = d.MakeKeyword
	}
	if h.HandleQuote == nil {
		h.HandleQuote = d.HandleQuote
	}
	if h.HandleMeta == nil {
		h.HandleMeta = d.HandleMeta
	}
	if h.HandleDispatch == nil {
		h.HandleDispatch = d.HandleDispatch
	}
	return h
}
