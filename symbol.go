package main

import "bytes"

// intern deduplicates symbol bytes through the interpreter's symbol table,
// returning the canonical Symbol heap value (spec §4.F). Symbols are
// pinned: the table holds the only references and is itself a GC root, so
// once interned a Symbol is never collected (spec §3 invariant 1, §4.F).
func (interp *Interp) intern(content []byte) Value {
	key := interp.newBorrowedBytes(content)

	if existing, ok := interp.tableLookup(interp.symbolTable, key); ok {
		return existing
	}

	owned := make([]byte, len(content))
	copy(owned, content)

	symbol := HeapValue(interp.heap.allocatePinned(HeapSymbol, &SymbolData{bytes: owned}))
	interp.tableInsert(interp.symbolTable, interp.newBorrowedBytes(owned), symbol)
	return symbol
}

// internString is a convenience wrapper for Go string literals, used
// throughout intrinsic module registration.
func (interp *Interp) internString(s string) Value {
	return interp.intern([]byte(s))
}

// newBorrowedBytes wraps a byte slice as a (non-pinned, collectable) Bytes
// value that borrows its backing array — used transiently as a table
// lookup key and never stored long-term, so its lifetime doesn't matter
// past the lookup.
func (interp *Interp) newBorrowedBytes(content []byte) Value {
	return HeapValue(interp.heap.allocate(HeapBytes, &BytesData{bytes: content, owned: false}))
}

// symbolBytes returns a symbol's interned content.
func symbolBytes(symbol Value) []byte {
	return symbol.heap.symbol().bytes
}

// symbolEqualBytes reports whether a Symbol's content equals the given
// bytes, by content rather than identity. The evaluator and printer use it
// to recognise particular symbols; the symbol table itself compares its
// Bytes keys with equalValue.
func symbolEqualBytes(symbol Value, content []byte) bool {
	return bytes.Equal(symbolBytes(symbol), content)
}
