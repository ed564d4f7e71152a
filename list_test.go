package main

import "testing"

import "github.com/stretchr/testify/assert"

func TestConsFirstRest(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	pair := interp.cons(Integer(1), Integer(2))
	assert.Equal(t, int64(1), listFirst(pair).AsInteger())
	assert.Equal(t, int64(2), listRest(pair).AsInteger())
}

func TestFirstRestOnNilReturnNil(t *testing.T) {
	assert.True(t, listFirst(Nil).IsNil())
	assert.True(t, listRest(Nil).IsNil())
}

func TestSliceToListAndBack(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	values := []Value{Integer(1), Integer(2), Integer(3)}
	list := interp.sliceToList(values)
	assert.Equal(t, 3, listLength(list))

	back, ok := listToSlice(list)
	assert.True(t, ok)
	assert.Equal(t, values, back)
}

func TestListToSliceRejectsImproperList(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	improper := interp.cons(Integer(1), Integer(2))
	_, ok := listToSlice(improper)
	assert.False(t, ok)
}

func TestListMap(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	xs := interp.sliceToList([]Value{Integer(1), Integer(2), Integer(3)})
	doubled, err := interp.listMap(func(v Value) (Value, error) {
		return Integer(v.AsInteger() * 2), nil
	}, xs)
	assert.NoError(t, err)

	items, ok := listToSlice(doubled)
	assert.True(t, ok)
	assert.Equal(t, []int64{2, 4, 6}, []int64{items[0].AsInteger(), items[1].AsInteger(), items[2].AsInteger()})
}

func TestListReduce(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	xs := interp.sliceToList([]Value{Integer(1), Integer(2), Integer(3), Integer(4)})
	sum, err := interp.listReduce(func(acc, item Value) (Value, error) {
		return Integer(acc.AsInteger() + item.AsInteger()), nil
	}, Integer(0), xs)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), sum.AsInteger())
}

func TestListFlatten(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	inner1 := interp.sliceToList([]Value{Integer(1), Integer(2)})
	inner2 := interp.sliceToList([]Value{Integer(3)})
	outer := interp.sliceToList([]Value{inner1, inner2})

	flat, err := interp.listFlatten(outer)
	assert.NoError(t, err)

	items, ok := listToSlice(flat)
	assert.True(t, ok)
	assert.Len(t, items, 3)
	assert.Equal(t, int64(1), items[0].AsInteger())
	assert.Equal(t, int64(2), items[1].AsInteger())
	assert.Equal(t, int64(3), items[2].AsInteger())
}
