package main

import "encoding/binary"

// registerBytesModule installs `bytes`'s primitive surface (spec §4.K,
// SPEC_FULL "Full intrinsic primitive surface"): new, zero?, the u8/s8
// through u32/s32 read/write pairs at native (little-endian) width, and
// explicit little/big-endian variants for the 16/32-bit widths.
func registerBytesModule(interp *Interp, env *Cell) error {
	define := func(name string, fn PrimitiveFn) {
		interp.definePrimitive(env, name, standardFlags(), fn)
	}

	define("new", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 1 {
			return Nil, fatalErrorf(ErrEvaluator, "bytes/new: expected (new size)")
		}
		size, err := requireInteger("bytes/new", items[0])
		if err != nil || size < 0 {
			return Nil, fatalErrorf(ErrEvaluator, "bytes/new: invalid size")
		}
		return interp.newOwnedBytesValue(make([]byte, size))
	})

	// zero? reports whether every byte in the buffer is 0 — a cleared-
	// buffer check, the Bytes-kind counterpart of math's zero? on
	// integers.
	define("zero?", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 1 || !items[0].IsBytes() {
			return Nil, fatalErrorf(ErrEvaluator, "bytes/zero?: expected a bytes value")
		}
		for _, b := range bytesBytes(items[0]) {
			if b != 0 {
				return Nil, nil
			}
		}
		return interp.constants.truth, nil
	})

	define("read-u8", bytesReadWidth(1, binary.LittleEndian, false))
	define("read-s8", bytesReadWidth(1, binary.LittleEndian, true))
	define("write-u8", bytesWriteWidth(1, binary.LittleEndian))
	define("write-s8", bytesWriteWidth(1, binary.LittleEndian))

	define("read-u16", bytesReadWidth(2, binary.LittleEndian, false))
	define("read-s16", bytesReadWidth(2, binary.LittleEndian, true))
	define("write-u16", bytesWriteWidth(2, binary.LittleEndian))
	define("write-s16", bytesWriteWidth(2, binary.LittleEndian))
	define("read-u16le", bytesReadWidth(2, binary.LittleEndian, false))
	define("read-u16be", bytesReadWidth(2, binary.BigEndian, false))
	define("write-u16le", bytesWriteWidth(2, binary.LittleEndian))
	define("write-u16be", bytesWriteWidth(2, binary.BigEndian))

	define("read-u32", bytesReadWidth(4, binary.LittleEndian, false))
	define("read-s32", bytesReadWidth(4, binary.LittleEndian, true))
	define("write-u32", bytesWriteWidth(4, binary.LittleEndian))
	define("write-s32", bytesWriteWidth(4, binary.LittleEndian))
	define("read-u32le", bytesReadWidth(4, binary.LittleEndian, false))
	define("read-u32be", bytesReadWidth(4, binary.BigEndian, false))
	define("write-u32le", bytesWriteWidth(4, binary.LittleEndian))
	define("write-u32be", bytesWriteWidth(4, binary.BigEndian))

	return nil
}

func bytesReadWidth(width int, order binary.ByteOrder, signed bool) PrimitiveFn {
	return func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 2 || !items[0].IsBytes() {
			return Nil, fatalErrorf(ErrEvaluator, "bytes/read: expected (read bytes offset)")
		}
		offset, err := requireInteger("bytes/read", items[1])
		if err != nil {
			return Nil, err
		}
		content := bytesBytes(items[0])
		if offset < 0 || int(offset)+width > len(content) {
			return Nil, fatalErrorf(ErrEvaluator, "bytes/read: offset %d width %d out of bounds for length %d", offset, width, len(content))
		}
		window := content[offset : int(offset)+width]

		var unsigned uint64
		switch width {
		case 1:
			unsigned = uint64(window[0])
		case 2:
			unsigned = uint64(order.Uint16(window))
		case 4:
			unsigned = uint64(order.Uint32(window))
		}
		if !signed {
			return Integer(int64(unsigned)), nil
		}
		switch width {
		case 1:
			return Integer(int64(int8(unsigned))), nil
		case 2:
			return Integer(int64(int16(unsigned))), nil
		default:
			return Integer(int64(int32(unsigned))), nil
		}
	}
}

func bytesWriteWidth(width int, order binary.ByteOrder) PrimitiveFn {
	return func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 3 || !items[0].IsBytes() {
			return Nil, fatalErrorf(ErrEvaluator, "bytes/write: expected (write bytes offset value)")
		}
		if !items[0].heap.bytes().owned {
			return Nil, fatalErrorf(ErrEvaluator, "bytes/write: cannot write into a borrowed bytes value")
		}
		offset, err := requireInteger("bytes/write", items[1])
		if err != nil {
			return Nil, err
		}
		value, err := requireInteger("bytes/write", items[2])
		if err != nil {
			return Nil, err
		}
		content := bytesBytes(items[0])
		if offset < 0 || int(offset)+width > len(content) {
			return Nil, fatalErrorf(ErrEvaluator, "bytes/write: offset %d width %d out of bounds for length %d", offset, width, len(content))
		}
		window := content[offset : int(offset)+width]
		switch width {
		case 1:
			window[0] = byte(value)
		case 2:
			order.PutUint16(window, uint16(value))
		case 4:
			order.PutUint32(window, uint32(value))
		}
		return items[0], nil
	}
}
