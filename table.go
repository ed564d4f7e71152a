package main

// tableLoadFactor and tableGrowthFactor are the open-addressing tuning
// constants from spec §3 invariant 4 and §4.E: capacity is always a power
// of two; insert rehashes once count/capacity >= 0.7, growing by 2x.
const (
	tableLoadFactorNumerator   = 7
	tableLoadFactorDenominator = 10
	tableGrowthFactor          = 2
)

// newTable allocates a Table value with the given initial capacity
// (rounded up to a power of two, minimum 8) and prototype. A Nil
// prototype means "no fallback" (spec §4.E "Table").
func (interp *Interp) newTable(capacity int, prototype Value) Value {
	cap2 := nextPowerOfTwo(capacity)
	return HeapValue(interp.heap.allocate(HeapTable, &TableData{
		entries:   make([]TableEntry, cap2),
		prototype: prototype,
	}))
}

func tableDataCapacity(t *TableData) int { return len(t.entries) }

// tableDataGet performs a plain linear scan comparing keys with equalValue;
// used only where a HashState isn't in scope (table-vs-table equal-tier
// comparisons in equality.go). Production lookups use Interp.tableLookup,
// which is hash-indexed.
func tableDataGet(t *TableData, key Value) (Value, bool) {
	for i := range t.entries {
		if t.entries[i].occupied && equalValue(t.entries[i].key, key) {
			return t.entries[i].value, true
		}
	}
	return Nil, false
}

// tableLookup hashes key, probes linearly modulo capacity, and returns the
// stored value — or, if absent and the table has a prototype, recurses
// into the prototype (spec §4.E "Table", §8 scenario 5). ok is false only
// when the key is absent across the whole prototype chain.
func (interp *Interp) tableLookup(cell *Cell, key Value) (Value, bool) {
	t := cell.table()
	if value, ok := tableProbe(interp, t, key); ok {
		return value, true
	}
	if t.prototype.kind == KindHeap && t.prototype.heap.kind == HeapTable {
		return interp.tableLookup(t.prototype.heap, key)
	}
	return Nil, false
}

func tableProbe(interp *Interp, t *TableData, key Value) (Value, bool) {
	capacity := tableDataCapacity(t)
	if capacity == 0 {
		return Nil, false
	}
	hash, err := interp.hash.hashValue(key)
	if err != nil {
		return Nil, false
	}
	start := int(hash) & (capacity - 1)
	for i := 0; i < capacity; i++ {
		idx := (start + i) & (capacity - 1)
		entry := &t.entries[idx]
		if !entry.occupied {
			return Nil, false
		}
		if equalValue(entry.key, key) {
			return entry.value, true
		}
	}
	return Nil, false
}

// tableInsert sets key -> value in the table's own entries (never the
// prototype chain), growing first if the load factor would be exceeded
// (spec §4.E).
func (interp *Interp) tableInsert(cell *Cell, key, value Value) error {
	t := cell.table()
	if (t.count+1)*tableLoadFactorDenominator >= tableDataCapacity(t)*tableLoadFactorNumerator {
		if err := tableGrow(interp, t); err != nil {
			return err
		}
	}
	return tableSet(interp, t, key, value)
}

func tableSet(interp *Interp, t *TableData, key, value Value) error {
	capacity := tableDataCapacity(t)
	hash, err := interp.hash.hashValue(key)
	if err != nil {
		return err
	}
	start := int(hash) & (capacity - 1)
	for i := 0; i < capacity; i++ {
		idx := (start + i) & (capacity - 1)
		entry := &t.entries[idx]
		if !entry.occupied {
			entry.occupied = true
			entry.key = key
			entry.value = value
			t.count++
			return nil
		}
		if equalValue(entry.key, key) {
			entry.value = value
			return nil
		}
	}
	return fatalErrorf(ErrSystem, "table probe exhausted capacity without finding a slot")
}

func tableGrow(interp *Interp, t *TableData) error {
	oldEntries := t.entries
	newCapacity, err := checkedMul(tableDataCapacity(t), tableGrowthFactor)
	if err != nil {
		return err
	}
	if newCapacity == 0 {
		newCapacity = 8
	}
	t.entries = make([]TableEntry, newCapacity)
	t.count = 0
	for _, entry := range oldEntries {
		if entry.occupied {
			if err := tableSet(interp, t, entry.key, entry.value); err != nil {
				return err
			}
		}
	}
	return nil
}

// tableDelete removes key from the table's own entries using tombstone
// shift-back: once the slot is cleared, every following entry in the same
// probe cluster is rehashed into place so lookups never need to skip a
// tombstone (spec §4.E: "Delete uses tombstones or shift-back
// (implementation-free)").
func (interp *Interp) tableDelete(cell *Cell, key Value) error {
	t := cell.table()
	capacity := tableDataCapacity(t)
	if capacity == 0 {
		return nil
	}
	hash, err := interp.hash.hashValue(key)
	if err != nil {
		return err
	}
	start := int(hash) & (capacity - 1)
	idx := -1
	for i := 0; i < capacity; i++ {
		probe := (start + i) & (capacity - 1)
		entry := &t.entries[probe]
		if !entry.occupied {
			return nil
		}
		if equalValue(entry.key, key) {
			idx = probe
			break
		}
	}
	if idx < 0 {
		return nil
	}

	t.entries[idx] = TableEntry{}
	t.count--

	next := (idx + 1) & (capacity - 1)
	for t.entries[next].occupied {
		entry := t.entries[next]
		t.entries[next] = TableEntry{}
		t.count--
		if err := tableSet(interp, t, entry.key, entry.value); err != nil {
			return err
		}
		next = (next + 1) & (capacity - 1)
	}
	return nil
}

// tableCount, tableKeyAt, tableValueAt support bounded iteration in
// physical slot order (spec §4.E "Tables expose count, key_at(i),
// value_at(i)"). Callers must not depend on slot order being insertion
// order (spec §9 open question).
func tableCount(cell *Cell) int {
	return cell.table().count
}

func tableKeyAt(cell *Cell, i int) (Value, bool) {
	t := cell.table()
	n := -1
	for idx := range t.entries {
		if t.entries[idx].occupied {
			n++
			if n == i {
				return t.entries[idx].key, true
			}
		}
	}
	return Nil, false
}

func tableValueAt(cell *Cell, i int) (Value, bool) {
	t := cell.table()
	n := -1
	for idx := range t.entries {
		if t.entries[idx].occupied {
			n++
			if n == i {
				return t.entries[idx].value, true
			}
		}
	}
	return Nil, false
}
