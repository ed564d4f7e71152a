package main

import (
	"strconv"
)

// printValue renders v as bytes appended to buf, in read-back-able s-
// expression form wherever a value kind has literal syntax (spec §4.I
// "Printer"). Quote/quasiquote/unquote forms print back using their
// shorthand prefix rather than as a two-element list.
func (interp *Interp) printValue(buf []byte, v Value) []byte {
	switch v.kind {
	case KindNil:
		return append(buf, '(', ')')
	case KindInteger:
		return strconv.AppendInt(buf, v.integer, 10)
	case KindPointer:
		return append(buf, []byte("#<pointer>")...)
	case KindHeap:
		return interp.printHeap(buf, v)
	default:
		return buf
	}
}

func (interp *Interp) printHeap(buf []byte, v Value) []byte {
	switch v.heap.kind {
	case HeapSymbol:
		return append(buf, symbolBytes(v)...)
	case HeapText:
		return printQuotedText(buf, textBytes(v))
	case HeapBytes:
		return printBytesLiteral(buf, bytesBytes(v))
	case HeapList:
		return interp.printList(buf, v)
	case HeapVector:
		return interp.printVector(buf, v)
	case HeapTable:
		return interp.printTable(buf, v)
	case HeapFunction:
		return append(buf, []byte("#<function>")...)
	case HeapPrimitive:
		name := v.heap.primitive().name
		buf = append(buf, []byte("#<primitive ")...)
		if name.IsSymbol() {
			buf = append(buf, symbolBytes(name)...)
		}
		return append(buf, '>')
	case HeapModule:
		buf = append(buf, []byte("#<module ")...)
		name := v.heap.module().name
		if name.IsSymbol() {
			buf = append(buf, symbolBytes(name)...)
		}
		return append(buf, '>')
	case HeapContinuation:
		return append(buf, []byte("#<continuation>")...)
	default:
		return buf
	}
}

// printList special-cases the (quote x)/(quasiquote x)/(unquote
// x)/(unquote-splicing x) shapes back into their reader shorthand, and
// otherwise prints an ordinary, possibly-dotted, parenthesized sequence.
func (interp *Interp) printList(buf []byte, v Value) []byte {
	if shorthand, expr, ok := quoteShorthand(v); ok {
		buf = append(buf, shorthand...)
		return interp.printValue(buf, expr)
	}

	buf = append(buf, '(')
	first := true
	for {
		if v.IsNil() {
			break
		}
		if !v.IsHeapKind(HeapList) {
			buf = append(buf, []byte(" . ")...)
			buf = interp.printValue(buf, v)
			break
		}
		if !first {
			buf = append(buf, ' ')
		}
		first = false
		l := v.heap.list()
		buf = interp.printValue(buf, l.first)
		v = l.rest
	}
	return append(buf, ')')
}

func quoteShorthand(v Value) (prefix string, expr Value, ok bool) {
	if !v.IsHeapKind(HeapList) {
		return "", Nil, false
	}
	l := v.heap.list()
	if !l.first.IsSymbol() || !l.rest.IsHeapKind(HeapList) || !l.rest.heap.list().rest.IsNil() {
		return "", Nil, false
	}
	switch {
	case symbolEqualBytes(l.first, []byte("quote")):
		return "'", l.rest.heap.list().first, true
	case symbolEqualBytes(l.first, []byte("quasiquote")):
		return "`", l.rest.heap.list().first, true
	case symbolEqualBytes(l.first, []byte("unquote")):
		return ",", l.rest.heap.list().first, true
	case symbolEqualBytes(l.first, []byte("unquote-splicing")):
		return ",@", l.rest.heap.list().first, true
	default:
		return "", Nil, false
	}
}

func (interp *Interp) printVector(buf []byte, v Value) []byte {
	buf = append(buf, '[')
	count := vectorCount(v.heap)
	for i := 0; i < count; i++ {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = interp.printValue(buf, vectorGet(v.heap, i))
	}
	return append(buf, ']')
}

// printTable prints entries in physical slot order (spec §4.E, §9 open
// question: slot order is not guaranteed to match insertion order).
func (interp *Interp) printTable(buf []byte, v Value) []byte {
	buf = append(buf, '{')
	n := tableCount(v.heap)
	for i := 0; i < n; i++ {
		if i > 0 {
			buf = append(buf, ' ')
		}
		key, _ := tableKeyAt(v.heap, i)
		value, _ := tableValueAt(v.heap, i)
		buf = interp.printValue(buf, key)
		buf = append(buf, ' ')
		buf = interp.printValue(buf, value)
	}
	return append(buf, '}')
}

func printQuotedText(buf []byte, content []byte) []byte {
	buf = append(buf, '"')
	for _, c := range content {
		switch c {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			buf = append(buf, c)
		}
	}
	return append(buf, '"')
}

// printBytesLiteral has no reader-facing literal syntax (spec reader
// never names one); it prints as a diagnostic #<bytes ...> form instead,
// matching the teacher's own treatment of opaque runtime values in
// hotreload.go's logging helpers.
func printBytesLiteral(buf []byte, content []byte) []byte {
	buf = append(buf, []byte("#<bytes ")...)
	buf = strconv.AppendInt(buf, int64(len(content)), 10)
	return append(buf, '>')
}
