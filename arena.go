package main

import "golang.org/x/sys/unix"

// loneAlignment is the allocator's alignment guarantee (spec §4.A
// "static-arena bump+free-list allocator with 16-byte alignment").
const loneAlignment = 16

// Default arena size: generous enough that ordinary scripts never grow
// past the first block.
const DefaultGlobalArenaSize = 16 * 1024 * 1024

// freeBlock is one node of a size-bucketed free list: Free pushes onto
// the bucket matching its (already-aligned) size, Allocate pops from the
// matching bucket before ever bumping the cursor (spec §4.A
// "bump+free-list").
type freeBlock struct {
	data []byte
	next *freeBlock
}

// Arena is a static bump allocator that grows by mapping additional
// anonymous pages from the kernel on exhaustion (spec §4.A "request
// additional blocks from the kernel via mmap") rather than the teacher's
// own malloc-backed JIT-codegen arena, which had no kernel-level growth
// path to adapt. blocks are appended, never moved, so every []byte this
// arena has ever handed out stays valid for the interpreter's lifetime.
type Arena struct {
	blocks    [][]byte
	cursor    int
	blockSize int
	freeLists map[int]*freeBlock
}

// newArena maps the first block and is the only allocation path that can
// fail essential interpreter setup; errors here are system-fatal (spec
// §7 "System-fatal").
func newArena(initialSize int) (*Arena, error) {
	a := &Arena{blockSize: initialSize, freeLists: make(map[int]*freeBlock)}
	if err := a.addBlock(initialSize); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Arena) addBlock(size int) error {
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return fatalErrorf(ErrSystem, "arena: mmap(%d) failed: %v", size, err)
	}
	a.blocks = append(a.blocks, mem)
	a.cursor = 0
	return nil
}

// allocate returns a zero-filled, 16-byte-aligned slice of exactly size
// bytes, reusing a matching free-list entry before bumping the current
// block's cursor, and growing (doubling the arena's own growth
// parameter) when the current block can't fit the request (spec §4.A).
func (a *Arena) allocate(size int) ([]byte, error) {
	aligned := alignUp(size, loneAlignment)

	if free := a.freeLists[aligned]; free != nil {
		a.freeLists[aligned] = free.next
		for i := range free.data {
			free.data[i] = 0
		}
		return free.data[:size], nil
	}

	current := a.blocks[len(a.blocks)-1]
	if a.cursor+aligned > len(current) {
		grown, err := checkedMul(a.blockSize, 2)
		if err != nil {
			return nil, err
		}
		if grown < aligned {
			grown = aligned
		}
		a.blockSize = grown
		if err := a.addBlock(grown); err != nil {
			return nil, err
		}
		current = a.blocks[len(a.blocks)-1]
	}

	slice := current[a.cursor : a.cursor+aligned]
	a.cursor += aligned
	return slice[:size], nil
}

// free returns data to the size-bucketed free list. requestedSize is the
// size originally passed to allocate; free rounds it up to the alignment
// boundary itself to find the block's real length and bucket.
func (a *Arena) free(data []byte, requestedSize int) {
	aligned := alignUp(requestedSize, loneAlignment)
	full := data[:cap(data)][:aligned]
	a.freeLists[aligned] = &freeBlock{data: full, next: a.freeLists[aligned]}
}
