package main

import "testing"

import "github.com/stretchr/testify/assert"

func TestTableInsertAndLookup(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	tbl := interp.newTable(8, Nil)
	key := interp.internString("key")
	value := Integer(7)

	assert.NoError(t, interp.tableInsert(tbl.heap, key, value))

	got, ok := interp.tableLookup(tbl.heap, key)
	assert.True(t, ok)
	assert.Equal(t, int64(7), got.AsInteger())
}

func TestTableLookupFallsBackToPrototype(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	base := interp.newTable(8, Nil)
	key := interp.internString("inherited")
	assert.NoError(t, interp.tableInsert(base.heap, key, Integer(1)))

	child := interp.newTable(8, base)

	got, ok := interp.tableLookup(child.heap, key)
	assert.True(t, ok)
	assert.Equal(t, int64(1), got.AsInteger())

	_, ok = interp.tableLookup(base.heap, interp.internString("missing"))
	assert.False(t, ok)
}

func TestTableGrowsPastLoadFactor(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	tbl := interp.newTable(8, Nil)
	initialCapacity := tableDataCapacity(tbl.heap.table())

	for i := 0; i < 20; i++ {
		key := interp.internString(string(rune('a' + i)))
		assert.NoError(t, interp.tableInsert(tbl.heap, key, Integer(int64(i))))
	}

	assert.Greater(t, tableDataCapacity(tbl.heap.table()), initialCapacity)
	assert.Equal(t, 20, tableCount(tbl.heap))

	for i := 0; i < 20; i++ {
		key := interp.internString(string(rune('a' + i)))
		got, ok := interp.tableLookup(tbl.heap, key)
		assert.True(t, ok)
		assert.Equal(t, int64(i), got.AsInteger())
	}
}

func TestTableDeleteShiftsBackClusterEntries(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	tbl := interp.newTable(8, Nil)
	keys := make([]Value, 5)
	for i := range keys {
		keys[i] = interp.internString(string(rune('p' + i)))
		assert.NoError(t, interp.tableInsert(tbl.heap, keys[i], Integer(int64(i))))
	}

	assert.NoError(t, interp.tableDelete(tbl.heap, keys[1]))
	assert.Equal(t, 4, tableCount(tbl.heap))

	_, ok := interp.tableLookup(tbl.heap, keys[1])
	assert.False(t, ok)

	for i, key := range keys {
		if i == 1 {
			continue
		}
		got, ok := interp.tableLookup(tbl.heap, key)
		assert.True(t, ok, "key %d should survive deletion of a different key", i)
		assert.Equal(t, int64(i), got.AsInteger())
	}
}

func TestTableCapacityIsAlwaysPowerOfTwo(t *testing.T) {
	interp, err := NewInterp()
	assert.NoError(t, err)

	for _, requested := range []int{1, 3, 8, 9, 100} {
		tbl := interp.newTable(requested, Nil)
		cap := tableDataCapacity(tbl.heap.table())
		assert.Equal(t, cap&(cap-1), 0, "capacity %d for requested %d is not a power of two", cap, requested)
	}
}
