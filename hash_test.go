package main

import "testing"

import "github.com/stretchr/testify/assert"

func TestFNV1aIsDeterministicForSameInputs(t *testing.T) {
	a := fnv1a([]byte("hello"), fnvOffsetBasis)
	b := fnv1a([]byte("hello"), fnvOffsetBasis)
	assert.Equal(t, a, b)

	c := fnv1a([]byte("world"), fnvOffsetBasis)
	assert.NotEqual(t, a, c)
}

func TestHashValueIsConsistentAcrossCalls(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	v := Integer(123)
	h1, err := interp.hash.hashValue(v)
	assert.NoError(t, err)
	h2, err := interp.hash.hashValue(v)
	assert.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func TestHashValueRejectsUnhashableKinds(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	vec := interp.newVector(4)
	_, err = interp.hash.hashValue(vec)
	assert.Error(t, err)

	tbl := interp.newTable(8, Nil)
	_, err = interp.hash.hashValue(tbl)
	assert.Error(t, err)
}

func TestHashValueSymbolsHashByIdentity(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	a := interp.internString("same")
	b := interp.internString("same")

	ha, err := interp.hash.hashValue(a)
	assert.NoError(t, err)
	hb, err := interp.hash.hashValue(b)
	assert.NoError(t, err)
	assert.Equal(t, ha, hb, "interning guarantees identical symbols hash the same")
}
