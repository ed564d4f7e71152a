package main

// slabSize is the number of cells per heap slab (spec §3 "Interpreter
// state", §4.D). The first slab is never freed, even if every cell in it
// is dead, matching lone_lisp_heap.c's sweep behavior.
const slabSize = 512

// Slab is a fixed-size array of cells linked singly into a list.
type Slab struct {
	cells [slabSize]Cell
	next  *Slab
}

// Heap owns the slab list.
type Heap struct {
	first *Slab
	last  *Slab
	count int // number of slabs, for diagnostics
}

func newHeap() *Heap {
	first := &Slab{}
	return &Heap{first: first, last: first, count: 1}
}

// allocate scans the slab list for a dead cell and resurrects it; if none
// is found, it appends a fresh slab and returns its first cell (spec
// §4.D "Allocation").
func (h *Heap) allocate(kind HeapKind, data any) *Cell {
	for slab := h.first; slab != nil; slab = slab.next {
		for i := range slab.cells {
			cell := &slab.cells[i]
			if !cell.live {
				cell.live = true
				cell.marked = false
				cell.pinned = false
				cell.kind = kind
				cell.data = data
				return cell
			}
		}
	}

	slab := &Slab{}
	h.last.next = slab
	h.last = slab
	h.count++

	cell := &slab.cells[0]
	cell.live = true
	cell.marked = false
	cell.pinned = false
	cell.kind = kind
	cell.data = data
	return cell
}

// allocatePinned allocates a cell that sweep must never reclaim
// (Symbol, Primitive — spec §3 invariant 3, §4.D sweep).
func (h *Heap) allocatePinned(kind HeapKind, data any) *Cell {
	cell := h.allocate(kind, data)
	cell.pinned = true
	return cell
}

// sweep walks every slab, finalizing and deadening any cell that is live
// but unmarked, then walks again and frees any all-dead slab except the
// first (spec §4.D "Sweep"). It returns the number of cells reclaimed.
func (h *Heap) sweep() int {
	reclaimed := 0
	for slab := h.first; slab != nil; slab = slab.next {
		for i := range slab.cells {
			cell := &slab.cells[i]
			if cell.live && !cell.marked && !cell.pinned {
				finalizeCell(cell)
				cell.live = false
				cell.data = nil
				reclaimed++
			}
			cell.marked = false
		}
	}

	prev := h.first
	slab := prev.next
	for slab != nil {
		allDead := true
		for i := range slab.cells {
			if slab.cells[i].live {
				allDead = false
				break
			}
		}
		if allDead {
			prev.next = slab.next
			if slab == h.last {
				h.last = prev
			}
			h.count--
			slab = prev.next
			continue
		}
		prev = slab
		slab = slab.next
	}

	return reclaimed
}

// finalizeCell releases whatever owned resources a cell's payload holds.
// For Text and Bytes it only drops the slice reference: owned content is
// arena memory, which is not handed back to the arena here, so it is not
// reused. This is the single place for kind-specific cleanup (spec §4.D).
func finalizeCell(cell *Cell) {
	switch cell.kind {
	case HeapText:
		cell.data.(*TextData).bytes = nil
	case HeapBytes:
		cell.data.(*BytesData).bytes = nil
	case HeapVector:
		cell.data.(*VectorData).values = nil
	case HeapTable:
		cell.data.(*TableData).entries = nil
	}
}

// liveCellCount counts live cells across all slabs, used by tests to
// assert the *GC stability* scenario (spec §8.6).
func (h *Heap) liveCellCount() int {
	n := 0
	for slab := h.first; slab != nil; slab = slab.next {
		for i := range slab.cells {
			if slab.cells[i].live {
				n++
			}
		}
	}
	return n
}

// slabCount reports how many slabs currently back the heap.
func (h *Heap) slabCount() int {
	return h.count
}
