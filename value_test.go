package main

import "testing"

import "github.com/stretchr/testify/assert"

func TestNilIsDistinctFromEmptyList(t *testing.T) {
	assert.True(t, Nil.IsNil())
	assert.True(t, Nil.IsList())
	assert.False(t, Nil.IsHeap())
}

func TestIntegerRoundTrip(t *testing.T) {
	v := Integer(-42)
	assert.True(t, v.IsInteger())
	assert.Equal(t, int64(-42), v.AsInteger())
}

func TestHeapKindPredicates(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	sym := interp.internString("example")
	assert.True(t, sym.IsSymbol())
	assert.False(t, sym.IsText())

	text, err := interp.newOwnedText([]byte("hello"))
	assert.NoError(t, err)
	assert.True(t, text.IsText())
	assert.False(t, text.IsSymbol())

	vec := interp.newVector(4)
	assert.True(t, vec.IsVector())

	tbl := interp.newTable(8, Nil)
	assert.True(t, tbl.IsTable())
}

func TestHeapKindStringNames(t *testing.T) {
	assert.Equal(t, "symbol", HeapSymbol.String())
	assert.Equal(t, "continuation", HeapContinuation.String())
	assert.Equal(t, "unknown", HeapKind(255).String())
}
