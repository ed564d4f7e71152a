package main

import (
	"encoding/binary"
	"os"

	"golang.org/x/sys/unix"
)

// registerLinuxModule installs `linux`'s primitive surface (spec §4.K,
// §6): the raw `system-call` primitive plus argv/env/auxval bound
// directly as module-level values from the running process's own argv,
// envp, and auxiliary vector (spec §4.K).
func registerLinuxModule(interp *Interp, env *Cell, argv, envp []string) error {
	interp.definePrimitive(env, "system-call", standardFlags(), linuxSystemCall)

	argvValue := interp.newVector(len(argv))
	for _, a := range argv {
		text, err := interp.newOwnedText([]byte(a))
		if err != nil {
			return err
		}
		if err := interp.vectorAppend(argvValue.heap, text); err != nil {
			return err
		}
	}
	_ = interp.tableInsert(env, interp.internString("argv"), argvValue)

	envValue := interp.newVector(len(envp))
	for _, e := range envp {
		text, err := interp.newOwnedText([]byte(e))
		if err != nil {
			return err
		}
		if err := interp.vectorAppend(envValue.heap, text); err != nil {
			return err
		}
	}
	_ = interp.tableInsert(env, interp.internString("env"), envValue)

	_ = interp.tableInsert(env, interp.internString("auxval"), interp.readAuxiliaryVector())
	return nil
}

// linuxSystemCall invokes a raw Linux syscall via golang.org/x/sys/unix's
// Syscall6, bypassing cgo/libc entirely — the closest a hosted Go binary
// gets to the original freestanding implementation's inline syscall
// trampoline (spec §4.K "(linux/system-call n a1 ... a6)").
func linuxSystemCall(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
	items, ok := listToSlice(args)
	if !ok || len(items) < 1 || len(items) > 7 {
		return Nil, fatalErrorf(ErrEvaluator, "linux/system-call: expected (system-call number a1? ... a6?)")
	}
	number, err := requireInteger("linux/system-call", items[0])
	if err != nil {
		return Nil, err
	}
	var a [6]uintptr
	for i := 1; i < len(items); i++ {
		n, err := requireInteger("linux/system-call", items[i])
		if err != nil {
			return Nil, err
		}
		a[i-1] = uintptr(n)
	}
	result, _, errno := unix.Syscall6(uintptr(number), a[0], a[1], a[2], a[3], a[4], a[5])
	if errno != 0 {
		return Integer(-int64(errno)), nil
	}
	return Integer(int64(result)), nil
}

// readAuxiliaryVector parses /proc/self/auxv (Linux-specific, always
// readable by the owning process) into a Table of Integer type -> Integer
// value pairs, the same key/value shape the original's AT_* auxiliary
// vector walk exposes directly off the initial stack image (spec §4.K
// "auxval ... installed as module-level bindings from ... auxiliary-
// vector data").
func (interp *Interp) readAuxiliaryVector() Value {
	table := interp.newTable(32, Nil)
	content, err := os.ReadFile("/proc/self/auxv")
	if err != nil {
		return table
	}
	const pairSize = 16 // two native 8-byte words per AT_* entry
	for offset := 0; offset+pairSize <= len(content); offset += pairSize {
		auxType := binary.LittleEndian.Uint64(content[offset : offset+8])
		auxValue := binary.LittleEndian.Uint64(content[offset+8 : offset+16])
		if auxType == 0 {
			break // AT_NULL terminator
		}
		_ = interp.tableInsert(table.heap, Integer(int64(auxType)), Integer(int64(auxValue)))
	}
	return table
}
