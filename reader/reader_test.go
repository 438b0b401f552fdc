/*
File    : calf/reader/reader_test.go
*/

package reader

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrdem/calf/lexer"
	"github.com/arrdem/calf/parser"
	"github.com/arrdem/calf/token"
)

func readAll(t *testing.T, src string, hooks Hooks) ([]any, error) {
	t.Helper()
	l := lexer.NewString(src, lexer.Config{})
	p := parser.New(l, parser.DefaultConfig())
	r := New(p, hooks)
	var values []any
	for {
		v, err := r.Next()
		if err == io.EOF {
			return values, nil
		}
		if err != nil {
			return values, err
		}
		values = append(values, v)
	}
}

// scenario 5: "'x" read with default hooks -> [symbol("quote"), symbol("x")].
func TestReader_Quote(t *testing.T) {
	values, err := readAll(t, "'x", Hooks{})
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, []any{"quote", "x"}, values[0])
}

func TestReader_NestedQuote(t *testing.T) {
	values, err := readAll(t, "''x", Hooks{})
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, []any{"quote", []any{"quote", "x"}}, values[0])
}

func TestReader_QuoteInsideList(t *testing.T) {
	values, err := readAll(t, "(a 'b c)", Hooks{})
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, []any{"a", []any{"quote", "b"}, "c"}, values[0])
}

func TestReader_List(t *testing.T) {
	values, err := readAll(t, "(1 2 3)", Hooks{})
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, values[0])
}

func TestReader_SQList(t *testing.T) {
	values, err := readAll(t, "[:foo :bar 1]", Hooks{})
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, []any{"foo", "bar", int64(1)}, values[0])
}

func TestReader_Dict(t *testing.T) {
	values, err := readAll(t, "{:foo 1, :bar 2}", Hooks{})
	require.NoError(t, err)
	require.Len(t, values, 1)
	dict := values[0].(Dict)
	assert.Equal(t, 2, dict.Len())
	v, ok := dict.Get("foo")
	require.True(t, ok)
	assert.Equal(t, int64(1), v)
	v, ok = dict.Get("bar")
	require.True(t, ok)
	assert.Equal(t, int64(2), v)
}

// Duplicate keys: last-wins value, first-occurrence position (SPEC_FULL.md
// pinned Open Question).
func TestReader_DictDuplicateKeyLastWins(t *testing.T) {
	values, err := readAll(t, "{:a 1 :a 2}", Hooks{})
	require.NoError(t, err)
	dict := values[0].(Dict)
	assert.Equal(t, 1, dict.Len())
	v, ok := dict.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(2), v)
}

func TestReader_Scalars(t *testing.T) {
	values, err := readAll(t, `1 2.5 "hi"`, Hooks{})
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, int64(1), values[0])
	assert.Equal(t, 2.5, values[1])
	assert.Equal(t, "hi", values[2])
}

func TestReader_MetaDropsTagByDefault(t *testing.T) {
	values, err := readAll(t, "^:deprecated x", Hooks{})
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, "x", values[0])
}

func TestReader_DispatchPreservesTagAndForm(t *testing.T) {
	values, err := readAll(t, "#foo bar", Hooks{})
	require.NoError(t, err)
	require.Len(t, values, 1)
	d := values[0].(Dispatch)
	assert.Equal(t, "foo", d.Tag)
	assert.Equal(t, "bar", d.Form)
}

func TestReader_CustomSymbolHook(t *testing.T) {
	hooks := Hooks{MakeSymbol: func(text string) any { return "sym:" + text }}
	values, err := readAll(t, "x", hooks)
	require.NoError(t, err)
	assert.Equal(t, "sym:x", values[0])
}

func TestReader_UnsupportedForm(t *testing.T) {
	// WHITESPACE tokens should never reach the reader in practice (the
	// parser's DefaultConfig discards them), but an explicit config that
	// keeps them surfaces UNSUPPORTED_FORM rather than silently passing
	// them through.
	l := lexer.NewString(" x", lexer.Config{})
	p := parser.New(l, parser.Config{DiscardWhitespace: false})
	r := New(p, Hooks{})
	_, err := r.Next()
	require.Error(t, err)
	rerr := err.(*Error)
	assert.Equal(t, UnsupportedForm, rerr.Kind)
	assert.Equal(t, token.Whitespace, rerr.FormKind)
}

func TestReader_Deterministic(t *testing.T) {
	src := "(a (b c) [1 2 :k])"
	a, err := readAll(t, src, Hooks{})
	require.NoError(t, err)
	b, err := readAll(t, src, Hooks{})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestReader_EmptyInput(t *testing.T) {
	values, err := readAll(t, "", Hooks{})
	require.NoError(t, err)
	assert.Empty(t, values)
}
