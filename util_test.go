package main

import "testing"

import "github.com/stretchr/testify/assert"

func TestAlignUp(t *testing.T) {
	assert.Equal(t, 16, alignUp(1, 16))
	assert.Equal(t, 16, alignUp(16, 16))
	assert.Equal(t, 32, alignUp(17, 16))
	assert.Equal(t, 0, alignUp(0, 16))
}

func TestNextPowerOfTwo(t *testing.T) {
	assert.Equal(t, 8, nextPowerOfTwo(1))
	assert.Equal(t, 8, nextPowerOfTwo(8))
	assert.Equal(t, 16, nextPowerOfTwo(9))
	assert.Equal(t, 128, nextPowerOfTwo(100))
}

func TestCheckedMulDetectsOverflow(t *testing.T) {
	result, err := checkedMul(4, 8)
	assert.NoError(t, err)
	assert.Equal(t, 32, result)

	_, err = checkedMul(1<<62, 4)
	assert.Error(t, err)

	result, err = checkedMul(0, 100)
	assert.NoError(t, err)
	assert.Equal(t, 0, result)
}
