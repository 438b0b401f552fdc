/*
File    : calf/source/source_test.go
*/

package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s *Reader) string {
	t.Helper()
	var out []rune
	for {
		_, c, ok := s.Peek()
		if !ok {
			return string(out)
		}
		out = append(out, c)
		s.Advance()
	}
}

func TestReader_EmptyString(t *testing.T) {
	s := NewString("")
	_, _, ok := s.Peek()
	assert.False(t, ok)
}

func TestReader_PeekIsIdempotent(t *testing.T) {
	s := NewString("ab")
	p1, c1, ok1 := s.Peek()
	p2, c2, ok2 := s.Peek()
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, c1, c2)
}

func TestReader_ConcatenationInvariant(t *testing.T) {
	s := NewString("hello, world")
	assert.Equal(t, "hello, world", drain(t, s))
}

func TestReader_LineColumnTracking(t *testing.T) {
	s := NewString("a\nbc")
	p, _, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, p.Line)
	assert.Equal(t, 1, p.Column)

	s.Advance() // consume 'a'
	p, _, ok = s.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, p.Line)
	assert.Equal(t, 2, p.Column)

	s.Advance() // consume '\n'
	p, _, ok = s.Peek()
	require.True(t, ok)
	assert.Equal(t, 2, p.Line)
	assert.Equal(t, 1, p.Column)
}

func TestReader_AdvancePastEOIPanics(t *testing.T) {
	s := NewString("")
	assert.Panics(t, func() { s.Advance() })
}
