package main

// Equality has three tiers (spec §4.C, §8 "identical ⇒ equivalent ⇒
// equal; never the reverse in general"):
//
//   - identical: same variant, same bits; for Heap, same pointer.
//   - equivalent: structural equality up to one level; for Lists,
//     pointer-equal cells.
//   - equal: full recursive structural equality.

// identicalValue implements the "identical" tier.
func identicalValue(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindInteger:
		return a.integer == b.integer
	case KindPointer:
		return a.pointer == b.pointer && a.pointerType == b.pointerType
	case KindHeap:
		return a.heap == b.heap
	default:
		return false
	}
}

// equivalentValue implements the "equivalent" tier: one level of
// structural comparison. For Lists this reduces to cell pointer equality
// (spec §4.C), which is the same as identity for a cons cell; for other
// heap kinds it compares the immediate shape without recursing into
// nested Values.
func equivalentValue(a, b Value) bool {
	if identicalValue(a, b) {
		return true
	}
	if a.kind != KindHeap || b.kind != KindHeap {
		return false
	}
	if a.heap.kind != b.heap.kind {
		return false
	}
	switch a.heap.kind {
	case HeapList:
		// Spec: "for Lists, pointer-equal cells" — equivalence does not
		// recurse past identity for cons cells.
		return a.heap == b.heap
	case HeapText:
		return string(a.heap.text().bytes) == string(b.heap.text().bytes) &&
			a.heap.text().owned == b.heap.text().owned
	case HeapBytes:
		return string(a.heap.bytes().bytes) == string(b.heap.bytes().bytes)
	case HeapVector:
		return a.heap.vector().count == b.heap.vector().count
	case HeapTable:
		return a.heap.table().count == b.heap.table().count
	default:
		return a.heap == b.heap
	}
}

// equalValue implements the "equal" tier: full recursive structural
// equality. Compares bytes of Text/Bytes/Symbol, walks Lists and Vectors
// element-wise, and compares Tables by entry-set equality (spec §4.C).
func equalValue(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindInteger:
		return a.integer == b.integer
	case KindPointer:
		return a.pointer == b.pointer && a.pointerType == b.pointerType
	case KindHeap:
		return equalHeap(a.heap, b.heap)
	default:
		return false
	}
}

func equalHeap(a, b *Cell) bool {
	if a == b {
		return true
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case HeapSymbol:
		// Symbols are interned: equal content always means the same
		// cell, so non-identical symbols are never equal.
		return false
	case HeapText:
		at, bt := a.text(), b.text()
		return string(at.bytes) == string(bt.bytes)
	case HeapBytes:
		ab, bb := a.bytes(), b.bytes()
		return string(ab.bytes) == string(bb.bytes)
	case HeapList:
		al, bl := a.list(), b.list()
		return equalValue(al.first, bl.first) && equalValue(al.rest, bl.rest)
	case HeapVector:
		av, bv := a.vector(), b.vector()
		if av.count != bv.count {
			return false
		}
		for i := 0; i < av.count; i++ {
			if !equalValue(av.values[i], bv.values[i]) {
				return false
			}
		}
		return true
	case HeapTable:
		at, bt := a.table(), b.table()
		if at.count != bt.count {
			return false
		}
		for i := range at.entries {
			entry := at.entries[i]
			if !entry.occupied {
				continue
			}
			value, ok := tableDataGet(bt, entry.key)
			if !ok || !equalValue(value, entry.value) {
				return false
			}
		}
		return true
	case HeapFunction, HeapPrimitive, HeapModule, HeapContinuation:
		return false
	default:
		return false
	}
}
