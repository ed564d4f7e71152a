package main

import "testing"

import "github.com/stretchr/testify/assert"

func TestVectorGetPastCountReturnsNil(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	vec := interp.newVector(4)
	assert.NoError(t, interp.vectorAppend(vec.heap, Integer(1)))
	assert.True(t, vectorGet(vec.heap, 5).IsNil())
}

func TestVectorSetGrowsBufferToFitIndex(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	vec := interp.newVector(2)
	assert.NoError(t, interp.vectorSet(vec.heap, 10, Integer(99)))
	assert.Equal(t, 11, vectorCount(vec.heap))
	assert.Equal(t, int64(99), vectorGet(vec.heap, 10).AsInteger())
	assert.True(t, vectorGet(vec.heap, 5).IsNil(), "the gap is filled with Nil")
}

func TestVectorSliceCopiesHalfOpenRange(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	vec := interp.newVector(4)
	for i := 0; i < 5; i++ {
		assert.NoError(t, interp.vectorAppend(vec.heap, Integer(int64(i))))
	}

	sliced, err := interp.vectorSlice(vec.heap, 1, 3)
	assert.NoError(t, err)
	assert.Equal(t, 2, vectorCount(sliced.heap))
	assert.Equal(t, int64(1), vectorGet(sliced.heap, 0).AsInteger())
	assert.Equal(t, int64(2), vectorGet(sliced.heap, 1).AsInteger())
}

func TestVectorSliceOutOfRangeIsFatal(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	vec := interp.newVector(4)
	_, err = interp.vectorSlice(vec.heap, 0, 10)
	assert.Error(t, err)
}
