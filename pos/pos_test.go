/*
File    : calf/pos/pos_test.go
*/

package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_Start(t *testing.T) {
	p := Start()
	assert.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, p)
}

func TestPosition_AdvanceOrdinary(t *testing.T) {
	p := Start()
	next := p.Advance('a', false)
	assert.Equal(t, Position{Offset: 1, Line: 1, Column: 2}, next)
}

func TestPosition_AdvanceNewline(t *testing.T) {
	p := Start()
	next := p.Advance('\n', false)
	assert.Equal(t, Position{Offset: 1, Line: 2, Column: 1}, next)
}

// \n\r folds into a single line break: the \r following a \n advances
// neither the line nor the column.
func TestPosition_LFCRFoldsToOneBreak(t *testing.T) {
	p := Start()
	afterNL := p.Advance('\n', false)
	afterCR := afterNL.Advance('\r', true)
	assert.Equal(t, afterNL.Line, afterCR.Line)
	assert.Equal(t, afterNL.Column, afterCR.Column)
	assert.Equal(t, 2, afterCR.Offset)
}

func TestPosition_EOISentinelIsDistinct(t *testing.T) {
	assert.True(t, EOI.IsEOI())
	assert.False(t, Start().IsEOI())
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "1:1", Start().String())
	assert.Equal(t, "<EOI>", EOI.String())
}
