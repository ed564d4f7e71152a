package main

import "testing"

import "github.com/stretchr/testify/assert"

func TestArenaAllocateReturnsZeroedAlignedSlice(t *testing.T) {
	a, err := newArena(4096)
	assert.NoError(t, err)

	buf, err := a.allocate(10)
	assert.NoError(t, err)
	assert.Len(t, buf, 10)
	for _, b := range buf {
		assert.Equal(t, byte(0), b)
	}
}

func TestArenaFreeAndReuse(t *testing.T) {
	a, err := newArena(4096)
	assert.NoError(t, err)

	buf, err := a.allocate(16)
	assert.NoError(t, err)
	buf[0] = 0xff
	a.free(buf, 16)

	reused, err := a.allocate(16)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), reused[0], "reused memory must be zeroed")
}

func TestArenaGrowsWhenBlockExhausted(t *testing.T) {
	a, err := newArena(64)
	assert.NoError(t, err)

	before := len(a.blocks)
	_, err = a.allocate(128)
	assert.NoError(t, err)
	assert.Greater(t, len(a.blocks), before)
}
