package main

// newOwnedText allocates a Text value that privately owns a copy of s,
// drawn from the interpreter's arena (spec §4.A: the arena is the
// substrate every owned byte buffer grows from). Text/Bytes content is
// pure bytes with no outgoing heap references, so it's safe to back with
// arena memory the Go runtime's own garbage collector never scans.
func (interp *Interp) newOwnedText(s []byte) (Value, error) {
	owned, err := interp.arena.allocate(len(s))
	if err != nil {
		return Nil, err
	}
	copy(owned, s)
	return HeapValue(interp.heap.allocate(HeapText, &TextData{bytes: owned, owned: true})), nil
}

// newBorrowedText allocates a Text value that borrows s's backing array —
// used for text sliced out of the embedded segment's payload (spec §3
// invariant 7, §4.L).
func (interp *Interp) newBorrowedText(s []byte) Value {
	return HeapValue(interp.heap.allocate(HeapText, &TextData{bytes: s, owned: false}))
}

func textBytes(v Value) []byte {
	return v.heap.text().bytes
}

// newOwnedBytesValue/newBorrowedBytesValue are the Bytes-kind counterparts of
// the Text constructors above, used by the `bytes` intrinsic module.
func (interp *Interp) newOwnedBytesValue(b []byte) (Value, error) {
	owned, err := interp.arena.allocate(len(b))
	if err != nil {
		return Nil, err
	}
	copy(owned, b)
	return HeapValue(interp.heap.allocate(HeapBytes, &BytesData{bytes: owned, owned: true})), nil
}

func (interp *Interp) newBorrowedBytesValue(b []byte) Value {
	return HeapValue(interp.heap.allocate(HeapBytes, &BytesData{bytes: b, owned: false}))
}

func bytesBytes(v Value) []byte {
	return v.heap.bytes().bytes
}

// textConcatenate joins two Texts into a freshly-owned Text.
func (interp *Interp) textConcatenate(a, b Value) (Value, error) {
	combined := make([]byte, 0, len(textBytes(a))+len(textBytes(b)))
	combined = append(combined, textBytes(a)...)
	combined = append(combined, textBytes(b)...)
	return interp.newOwnedText(combined)
}

// textJoin concatenates a list of Texts with separator between each.
func (interp *Interp) textJoin(separator Value, texts Value) (Value, error) {
	items, ok := listToSlice(texts)
	if !ok {
		return Nil, fatalErrorf(ErrEvaluator, "text/join: expected a list of texts")
	}
	var combined []byte
	for i, item := range items {
		if !item.IsText() {
			return Nil, fatalErrorf(ErrEvaluator, "text/join: element %d is not text", i)
		}
		if i > 0 {
			combined = append(combined, textBytes(separator)...)
		}
		combined = append(combined, textBytes(item)...)
	}
	return interp.newOwnedText(combined)
}
