/*
File    : calf/parser/parser_test.go
*/

package parser

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrdem/calf/lexer"
	"github.com/arrdem/calf/token"
)

func parseAll(t *testing.T, src string, cfg Config) ([]any, error) {
	t.Helper()
	l := lexer.NewString(src, lexer.Config{})
	p := New(l, cfg)
	var forms []any
	for {
		form, err := p.Next()
		if err == io.EOF {
			return forms, nil
		}
		if err != nil {
			return forms, err
		}
		forms = append(forms, form)
	}
}

// scenario 1: "(1)" -> one LIST composite containing one INTEGER(1); span 0..2.
func TestParser_SimpleList(t *testing.T) {
	forms, err := parseAll(t, "(1)", DefaultConfig())
	require.NoError(t, err)
	require.Len(t, forms, 1)

	list := forms[0].(token.Composite)
	assert.Equal(t, token.List, list.Kind)
	require.Len(t, list.Children, 1)
	assert.Equal(t, 0, list.Start.Offset)
	assert.Equal(t, 2, list.End.Offset)

	elt := list.Children[0].(token.Token)
	assert.Equal(t, token.Integer, elt.Kind)
	assert.Equal(t, int64(1), elt.Value)
}

// scenario 2: "(1, 2, 3, 4)" with whitespace discard -> LIST of four INTEGERs.
func TestParser_CommaWhitespace(t *testing.T) {
	forms, err := parseAll(t, "(1, 2, 3, 4)", DefaultConfig())
	require.NoError(t, err)
	require.Len(t, forms, 1)
	list := forms[0].(token.Composite)
	require.Len(t, list.Children, 4)
	for i, want := range []int64{1, 2, 3, 4} {
		assert.Equal(t, want, list.Children[i].(token.Token).Value)
	}
}

// scenario 3: "[:foo :bar 1]" -> SQLIST of KEYWORD, KEYWORD, INTEGER.
func TestParser_SquareList(t *testing.T) {
	forms, err := parseAll(t, "[:foo :bar 1]", DefaultConfig())
	require.NoError(t, err)
	sq := forms[0].(token.Composite)
	assert.Equal(t, token.SQList, sq.Kind)
	require.Len(t, sq.Children, 3)
	assert.Equal(t, token.Keyword, sq.Children[0].(token.Token).Kind)
	assert.Equal(t, token.Keyword, sq.Children[1].(token.Token).Kind)
	assert.Equal(t, token.Integer, sq.Children[2].(token.Token).Kind)
}

// scenario 4: "{:foo 1, :bar 2}" -> DICT with pairs.
func TestParser_Dict(t *testing.T) {
	forms, err := parseAll(t, "{:foo 1, :bar 2}", DefaultConfig())
	require.NoError(t, err)
	d := forms[0].(token.Composite)
	assert.Equal(t, token.Dict, d.Kind)
	pairs := d.Pairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, "foo", pairs[0].Key.(token.Token).Attr("name"))
	assert.Equal(t, int64(1), pairs[0].Value.(token.Token).Value)
	assert.Equal(t, "bar", pairs[1].Key.(token.Token).Attr("name"))
	assert.Equal(t, int64(2), pairs[1].Value.(token.Token).Value)
}

// scenario 7: "(a (b c) d)" -> nested lists, inner end < outer end.
func TestParser_NestedList(t *testing.T) {
	forms, err := parseAll(t, "(a (b c) d)", DefaultConfig())
	require.NoError(t, err)
	outer := forms[0].(token.Composite)
	require.Len(t, outer.Children, 3)
	inner := outer.Children[1].(token.Composite)
	assert.Equal(t, token.List, inner.Kind)
	require.Len(t, inner.Children, 2)
	assert.Less(t, inner.End.Offset, outer.End.Offset)
}

// scenario 8: "(" alone -> MISSING_CLOSE.
func TestParser_MissingClose(t *testing.T) {
	_, err := parseAll(t, "(", DefaultConfig())
	require.Error(t, err)
	perr := err.(*Error)
	assert.Equal(t, MissingClose, perr.Kind)
	assert.Equal(t, token.ParenRight, perr.ExpectedClose)
}

// scenario 9: ")" alone -> UNEXPECTED_CLOSE with no matching open.
func TestParser_UnexpectedClose(t *testing.T) {
	_, err := parseAll(t, ")", DefaultConfig())
	require.Error(t, err)
	perr := err.(*Error)
	assert.Equal(t, UnexpectedClose, perr.Kind)
	assert.Nil(t, perr.Open)
}

// UNEXPECTED_CLOSE with a matching-open hint: innermost frame expects ']'
// but ')' arrives, while an outer frame is open on '('.
func TestParser_UnexpectedCloseWithHint(t *testing.T) {
	_, err := parseAll(t, "([)", DefaultConfig())
	require.Error(t, err)
	perr := err.(*Error)
	assert.Equal(t, UnexpectedClose, perr.Kind)
	require.NotNil(t, perr.Open)
	assert.Equal(t, token.ParenLeft, perr.Open.Kind)
}

// scenario 10: "{:a}" -> ODD_DICT.
func TestParser_OddDict(t *testing.T) {
	_, err := parseAll(t, "{:a}", DefaultConfig())
	require.Error(t, err)
	perr := err.(*Error)
	assert.Equal(t, OddDict, perr.Kind)
}

// scenario 6: lone quote or unterminated string -> BAD_STRING.
func TestParser_BadString(t *testing.T) {
	for _, src := range []string{`"`, `"foo`} {
		_, err := parseAll(t, src, DefaultConfig())
		require.Error(t, err, src)
		perr := err.(*Error)
		assert.Equal(t, BadString, perr.Kind)
	}
}

func TestParser_NumericOverflow(t *testing.T) {
	_, err := parseAll(t, "99999999999999999999999999", DefaultConfig())
	require.Error(t, err)
	perr := err.(*Error)
	assert.Equal(t, NumericOverflow, perr.Kind)
}

// invariant 6: with discard_whitespace = false, WHITESPACE/COMMENT appear
// interleaved with real tokens in source order.
func TestParser_PreserveWhitespace(t *testing.T) {
	forms, err := parseAll(t, "a b", Config{DiscardWhitespace: false})
	require.NoError(t, err)
	require.Len(t, forms, 3)
	assert.Equal(t, token.Symbol, forms[0].(token.Token).Kind)
	assert.Equal(t, token.Whitespace, forms[1].(token.Token).Kind)
	assert.Equal(t, token.Symbol, forms[2].(token.Token).Kind)
}

// invariant 4: parse is deterministic.
func TestParser_Deterministic(t *testing.T) {
	src := "(a (b c) [1 2 :k] {:x 1})"
	a, err := parseAll(t, src, DefaultConfig())
	require.NoError(t, err)
	b, err := parseAll(t, src, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParser_EmptyInput(t *testing.T) {
	forms, err := parseAll(t, "", DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, forms)
}
