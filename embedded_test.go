package main

import "testing"

import "github.com/stretchr/testify/assert"

func TestLoadEmbeddedRunAbsentWhenNoSegment(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	_, ok := interp.loadEmbeddedRun()
	assert.False(t, ok, "a process with no PT_LONE header has no embedded run script")
}

func TestLoadEmbeddedModuleAbsentWhenNoSegment(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	_, ok := interp.loadEmbeddedModule("anything")
	assert.False(t, ok)
}

func TestSegmentRangeSliceRejectsOutOfBoundsRange(t *testing.T) {
	data := make([]byte, 16)
	r := segmentRange{start: 10, size: 10}
	_, err := r.slice(data)
	assert.Error(t, err)
}

func TestSegmentRangeSliceReturnsExactWindow(t *testing.T) {
	data := []byte("0123456789")
	r := segmentRange{start: 2, size: 4}
	window, err := r.slice(data)
	assert.NoError(t, err)
	assert.Equal(t, "2345", string(window))
}

func TestLoadEmbeddedRunWithSyntheticSegment(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	interp.modules.embedded = &EmbeddedSegment{
		data: []byte(`(let x 1)`),
		run:  segmentRange{start: 0, size: 9},
	}

	run, ok := interp.loadEmbeddedRun()
	assert.True(t, ok)
	assert.Equal(t, "(let x 1)", string(run))
}

func TestLoadEmbeddedModuleWithSyntheticSegment(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	payload := []byte("(export)")
	interp.modules.embedded = &EmbeddedSegment{
		data: payload,
		modules: map[string]segmentRange{
			"extra": {start: 0, size: uint64(len(payload))},
		},
	}

	content, ok := interp.loadEmbeddedModule("extra")
	assert.True(t, ok)
	assert.Equal(t, "(export)", string(content))

	_, ok = interp.loadEmbeddedModule("missing")
	assert.False(t, ok)
}
