/*
File    : calf/reader/reader.go
*/

// Package reader lowers the parser's form stream into host-language values
// by dispatching on form kind through replaceable hooks, per spec.md §4.5.
// Grounded on original_source/calf/reader.py's CalfReader.read1 dispatch,
// ported from an isinstance-chain into a switch over token.Kind.
package reader

import (
	"fmt"
	"io"
	"iter"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/arrdem/calf/token"
)

// FormSource is anything the reader can pull parser forms from — satisfied
// directly by *parser.Parser, and internally by a slice over a composite's
// already-materialized children.
type FormSource interface {
	Next() (any, error)
}

// sliceSource adapts an already-materialized slice of child forms into a
// FormSource, so that prefix markers (quote/meta/dispatch) nested inside a
// LIST/SQLIST can still pull their following sibling the same way a
// top-level marker pulls its following top-level form.
type sliceSource struct {
	items []any
	i     int
}

func newSliceSource(items []any) *sliceSource { return &sliceSource{items: items} }

func (s *sliceSource) Next() (any, error) {
	if s.i >= len(s.items) {
		return nil, io.EOF
	}
	v := s.items[s.i]
	s.i++
	return v, nil
}

// Dict is the ordered mapping produced for DICT forms, per spec.md §9's
// "ordered mapping for DICT" design note.
type Dict = *orderedmap.OrderedMap[any, any]

// Dispatch is the default, conservative value for a MACRO_DISPATCH form:
// spec.md §4.5 says the default "preserves" the dispatch token verbatim;
// since Go has no single token identity to hand back untouched, the tag and
// the already-read inner form are preserved as a pair instead. Custom
// HandleDispatch hooks are free to return anything else.
type Dispatch struct {
	Tag  any
	Form any
}

// Reader consumes a FormSource of parser forms and yields host values.
type Reader struct {
	src   FormSource
	hooks Hooks
}

// New constructs a Reader pulling from src with the given hooks. A zero
// Hooks value is filled in with DefaultHooks().
func New(src FormSource, hooks Hooks) *Reader {
	return &Reader{src: src, hooks: hooks.orDefaults()}
}

// Next reads and returns the next top-level host value, returning io.EOF
// once the form stream is cleanly exhausted.
func (r *Reader) Next() (any, error) {
	form, err := r.src.Next()
	if err != nil {
		return nil, err
	}
	return r.read1(form, r.src)
}

// All returns a lazy iterator over the host value stream, per spec.md §6's
// `read(source, {hooks}) -> sequence<Value>`.
func (r *Reader) All() iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		for {
			v, err := r.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// read1 lowers a single form to a host value. src is the stream form was
// just pulled from: prefix markers (SINGLE_QUOTE, META, MACRO_DISPATCH)
// consume one or two further forms from that same stream.
func (r *Reader) read1(form any, src FormSource) (any, error) {
	switch f := form.(type) {
	case token.Composite:
		return r.readComposite(f)
	case token.Token:
		return r.readToken(f, src)
	default:
		panic(fmt.Sprintf("reader: unrecognized form %T", form))
	}
}

// readNext pulls the next raw form from src and reads it, for use by prefix
// markers that need to consume one or more following forms.
func (r *Reader) readNext(src FormSource) (any, error) {
	form, err := src.Next()
	if err != nil {
		return nil, err
	}
	return r.read1(form, src)
}

func (r *Reader) readComposite(c token.Composite) (any, error) {
	switch c.Kind {
	case token.List, token.SQList:
		sub := newSliceSource(c.Children)
		out := make([]any, 0, len(c.Children))
		for {
			v, err := r.readNext(sub)
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil

	case token.Dict:
		dict := orderedmap.New[any, any]()
		for _, pair := range c.Pairs() {
			k, err := r.readSingle(pair.Key)
			if err != nil {
				return nil, err
			}
			v, err := r.readSingle(pair.Value)
			if err != nil {
				return nil, err
			}
			dict.Set(k, v)
		}
		return dict, nil

	default:
		return nil, &Error{Kind: UnsupportedForm, Source: c.Source, Pos: c.Start, FormKind: c.Kind}
	}
}

// readSingle reads a single already-paired DICT key or value form. Because
// the parser pairs a DICT's raw children positionally before the reader
// ever sees them (spec.md §4.4), a key or value that is itself a prefix
// marker has no sibling left to pull from within its own pair — it only
// sees the one form it was paired to.
func (r *Reader) readSingle(form any) (any, error) {
	return r.read1(form, newSliceSource(nil))
}

func (r *Reader) readToken(tok token.Token, src FormSource) (any, error) {
	switch tok.Kind {
	case token.Integer, token.Float, token.String:
		return tok.Value, nil

	case token.Keyword:
		return r.hooks.MakeKeyword(strings.TrimPrefix(tok.Text, ":")), nil

	case token.Symbol:
		return r.hooks.MakeSymbol(tok.Text), nil

	case token.SingleQuote:
		inner, err := r.readNext(src)
		if err != nil {
			return nil, err
		}
		return r.hooks.HandleQuote(r, inner)

	case token.Meta:
		tag, err := r.readNext(src)
		if err != nil {
			return nil, err
		}
		inner, err := r.readNext(src)
		if err != nil {
			return nil, err
		}
		return r.hooks.HandleMeta(r, tag, inner)

	case token.MacroDispatch:
		tag, err := r.readNext(src)
		if err != nil {
			return nil, err
		}
		inner, err := r.readNext(src)
		if err != nil {
			return nil, err
		}
		return r.hooks.HandleDispatch(r, tag, inner)

	default:
		return nil, &Error{Kind: UnsupportedForm, Source: tok.Source, Pos: tok.Start, FormKind: tok.Kind}
	}
}
