package main

import (
	"crypto/rand"
	"fmt"
)

// FNV-1a constants for the 64-bit variant (spec §4.B). Hand-rolled rather
// than built on stdlib hash/fnv: the per-process randomized offset basis
// (seeded from kernel/OS entropy, spec §3 "hash.fnv_1a.offset_basis") means
// the hash must start from a caller-supplied basis rather than the fixed
// canonical one hash/fnv.New64a() always starts from. Grounded on
// original_source/source/lone/hash/fnv_1a.c.
const (
	fnvOffsetBasis uint64 = 14695981039346656037
	fnvPrime       uint64 = 1099511628211
)

// HashState carries the per-process offset basis used by every content
// hash in the interpreter (the symbol intern table's key hash, and the
// `table` intrinsic's key hash).
type HashState struct {
	offsetBasis uint64
}

// fnv1a hashes bytes starting from the given offset basis (spec §4.B).
func fnv1a(data []byte, offsetBasis uint64) uint64 {
	hash := offsetBasis
	for _, b := range data {
		hash ^= uint64(b)
		hash *= fnvPrime
	}
	return hash
}

// newHashState derives a per-process offset basis by hashing 16 bytes of
// OS-supplied entropy through FNV-1a starting from the canonical basis
// (spec §4.B, §3).
func newHashState() (*HashState, error) {
	var entropy [16]byte
	if _, err := rand.Read(entropy[:]); err != nil {
		return nil, &LoneError{Kind: ErrSystem, Message: fmt.Sprintf("failed to read entropy: %v", err)}
	}
	return &HashState{offsetBasis: fnv1a(entropy[:], fnvOffsetBasis)}, nil
}

// hashBytes hashes raw content bytes with the process offset basis.
func (h *HashState) hashBytes(b []byte) uint64 {
	return fnv1a(b, h.offsetBasis)
}

// hashValue recursively hashes a Value (spec §4.B): the tag byte first,
// then integer bits, pointer bits, or for heap kinds the kind tag followed
// by content. Symbols hash by heap-pointer identity, exploiting interning.
// Functions, primitives, modules, vectors, and tables are not hashable —
// hashing one is fatal.
func (h *HashState) hashValue(v Value) (uint64, error) {
	switch v.kind {
	case KindNil:
		return h.hashBytes([]byte{byte(KindNil)}), nil
	case KindInteger:
		buf := [9]byte{byte(KindInteger)}
		putInt64(buf[1:], v.integer)
		return h.hashBytes(buf[:]), nil
	case KindPointer:
		buf := [10]byte{byte(KindPointer), byte(v.pointerType)}
		putUint64(buf[2:], uint64(v.pointer))
		return h.hashBytes(buf[:]), nil
	case KindHeap:
		return h.hashHeap(v.heap)
	default:
		return 0, fatalErrorf(ErrEvaluator, "cannot hash value of unknown kind")
	}
}

func (h *HashState) hashHeap(cell *Cell) (uint64, error) {
	switch cell.kind {
	case HeapSymbol:
		// Identity hash: the cell's address stands in for pointer identity.
		return h.hashBytes(pointerBytes(cell)), nil
	case HeapText:
		return h.hashContentBytes(HeapText, cell.text().bytes), nil
	case HeapBytes:
		return h.hashContentBytes(HeapBytes, cell.bytes().bytes), nil
	case HeapList:
		l := cell.list()
		firstHash, err := h.hashValue(l.first)
		if err != nil {
			return 0, err
		}
		restHash, err := h.hashValue(l.rest)
		if err != nil {
			return 0, err
		}
		buf := [17]byte{byte(HeapList)}
		putUint64(buf[1:9], firstHash)
		putUint64(buf[9:17], restHash)
		return h.hashBytes(buf[:]), nil
	case HeapVector, HeapTable, HeapFunction, HeapPrimitive, HeapModule, HeapContinuation:
		return 0, fatalErrorf(ErrEvaluator, "cannot hash value of kind %s", cell.kind)
	default:
		return 0, fatalErrorf(ErrEvaluator, "cannot hash value of kind %s", cell.kind)
	}
}

func (h *HashState) hashContentBytes(kind HeapKind, content []byte) uint64 {
	buf := make([]byte, 0, len(content)+1)
	buf = append(buf, byte(kind))
	buf = append(buf, content...)
	return h.hashBytes(buf)
}

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

func putInt64(b []byte, v int64) {
	putUint64(b, uint64(v))
}

func pointerBytes(cell *Cell) []byte {
	addr := cellAddress(cell)
	buf := make([]byte, 8)
	putUint64(buf, addr)
	return buf
}
