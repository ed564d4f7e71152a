package main

// Kind discriminates the four top-level variants of a Value: the empty
// marker, a sign-extended machine integer, a raw non-owned pointer into
// foreign memory, and a reference into the heap slab pool.
type Kind uint8

const (
	KindNil Kind = iota
	KindInteger
	KindPointer
	KindHeap
)

// PointerType further tags a KindPointer Value with the width and
// signedness of the memory it addresses. Dereferencing PointerUnknown
// is always fatal (spec §4.D fatal conditions).
type PointerType uint8

const (
	PointerU8 PointerType = iota
	PointerS8
	PointerU16
	PointerS16
	PointerU32
	PointerS32
	PointerU64
	PointerS64
	PointerUnknown
)

// HeapKind discriminates the ten heap-allocated object shapes. Symbol and
// Primitive are pinned: they are never swept (spec §3, invariant 3).
type HeapKind uint8

const (
	HeapModule HeapKind = iota
	HeapFunction
	HeapPrimitive
	HeapList
	HeapVector
	HeapTable
	HeapSymbol
	HeapText
	HeapBytes
	HeapContinuation
)

func (k HeapKind) String() string {
	switch k {
	case HeapModule:
		return "module"
	case HeapFunction:
		return "function"
	case HeapPrimitive:
		return "primitive"
	case HeapList:
		return "list"
	case HeapVector:
		return "vector"
	case HeapTable:
		return "table"
	case HeapSymbol:
		return "symbol"
	case HeapText:
		return "text"
	case HeapBytes:
		return "bytes"
	case HeapContinuation:
		return "continuation"
	default:
		return "unknown"
	}
}

// Value is the universal representation. Only the fields matching Kind
// (and, for KindHeap, matching Cell.kind) are meaningful; this mirrors the
// original's tagged union without resorting to unsafe punning, which is not
// needed now that nothing requires the C struct's exact byte layout.
type Value struct {
	kind        Kind
	integer     int64
	pointer     uintptr
	pointerType PointerType
	heap        *Cell
}

// Nil is the singleton empty-list/empty-value marker. It is a distinct tag,
// never a List with nil first/rest (spec §3, invariant 2).
var Nil = Value{kind: KindNil}

// Integer wraps a machine word as a lone Integer value.
func Integer(i int64) Value {
	return Value{kind: KindInteger, integer: i}
}

// Pointer wraps a raw address with a sub-type tag. The memory is never
// owned by the interpreter.
func Pointer(address uintptr, pointerType PointerType) Value {
	return Value{kind: KindPointer, pointer: address, pointerType: pointerType}
}

// HeapValue wraps a heap cell reference.
func HeapValue(cell *Cell) Value {
	return Value{kind: KindHeap, heap: cell}
}

func (v Value) IsNil() bool     { return v.kind == KindNil }
func (v Value) IsInteger() bool { return v.kind == KindInteger }
func (v Value) IsPointer() bool { return v.kind == KindPointer }
func (v Value) IsHeap() bool    { return v.kind == KindHeap }

func (v Value) IsHeapKind(k HeapKind) bool {
	return v.kind == KindHeap && v.heap != nil && v.heap.kind == k
}

func (v Value) IsList() bool         { return v.IsNil() || v.IsHeapKind(HeapList) }
func (v Value) IsVector() bool       { return v.IsHeapKind(HeapVector) }
func (v Value) IsTable() bool        { return v.IsHeapKind(HeapTable) }
func (v Value) IsSymbol() bool       { return v.IsHeapKind(HeapSymbol) }
func (v Value) IsText() bool         { return v.IsHeapKind(HeapText) }
func (v Value) IsBytes() bool        { return v.IsHeapKind(HeapBytes) }
func (v Value) IsFunction() bool     { return v.IsHeapKind(HeapFunction) }
func (v Value) IsPrimitive() bool    { return v.IsHeapKind(HeapPrimitive) }
func (v Value) IsModule() bool       { return v.IsHeapKind(HeapModule) }
func (v Value) IsContinuation() bool { return v.IsHeapKind(HeapContinuation) }

func (v Value) AsInteger() int64 { return v.integer }

// Cell is one slot in a heap slab: the GC bits plus the kind tag and its
// payload. `pinned` cells (Symbol, Primitive) are skipped unconditionally
// during sweep (spec §4.D).
type Cell struct {
	live   bool
	marked bool
	pinned bool
	kind   HeapKind
	data   any
}

func (c *Cell) list() *ListData                 { return c.data.(*ListData) }
func (c *Cell) vector() *VectorData              { return c.data.(*VectorData) }
func (c *Cell) table() *TableData                { return c.data.(*TableData) }
func (c *Cell) symbol() *SymbolData              { return c.data.(*SymbolData) }
func (c *Cell) text() *TextData                  { return c.data.(*TextData) }
func (c *Cell) bytes() *BytesData                { return c.data.(*BytesData) }
func (c *Cell) function() *FunctionData          { return c.data.(*FunctionData) }
func (c *Cell) primitive() *PrimitiveData        { return c.data.(*PrimitiveData) }
func (c *Cell) module() *ModuleData              { return c.data.(*ModuleData) }
func (c *Cell) continuation() *ContinuationData  { return c.data.(*ContinuationData) }

// ListData is a cons cell: first and rest.
type ListData struct {
	first Value
	rest  Value
}

// VectorData is a dynamically grown array of Values. count <= len(values);
// reads past count (but within len(values)) are not exposed — vectorGet
// enforces the count bound itself (spec §3, invariant 5).
type VectorData struct {
	values []Value
	count  int
}

// TableEntry is one open-addressed slot. occupied distinguishes an empty
// slot from a stored (key, value) pair; key/value are meaningless when
// occupied is false.
type TableEntry struct {
	key      Value
	value    Value
	occupied bool
}

// TableData is an open-addressed, linear-probe hash table. capacity is
// always a power of two (spec §3, invariant 4); it grows by 2x once
// count/capacity reaches 0.7 (spec §4.E).
type TableData struct {
	entries   []TableEntry
	count     int
	prototype Value
}

// SymbolData holds the interned byte content of a symbol. Symbols compare
// by heap-pointer identity, never by content, once interned (spec §4.F).
type SymbolData struct {
	bytes []byte
}

// TextData and BytesData both wrap a byte slice plus an ownership flag.
// owned=false means the bytes are borrowed from an external source (e.g.
// the embedded ELF segment or a Go string literal) and must never be
// mutated or assumed privately owned; owned=true means the slice is this
// value's own backing array (spec §3, invariant 7), drawn from the
// interpreter's arena. That arena memory is not returned to the arena when
// the Cell is swept; the flag only governs mutation/aliasing discipline.
type TextData struct {
	bytes []byte
	owned bool
}

type BytesData struct {
	bytes []byte
	owned bool
}

// FunctionFlags is the entire macro-like extension mechanism (spec §4.H):
// whether arguments are evaluated before binding, whether the returned
// value is evaluated once more, and whether excess arguments collect into
// a variadic list parameter.
type FunctionFlags struct {
	evaluateArguments bool
	evaluateResult    bool
	variableArguments bool
}

// FunctionData is a closure created by lambda/lambda!/lambda*.
type FunctionData struct {
	parameters  Value
	code        Value
	environment *Cell // Table
	flags       FunctionFlags
}

// PrimitiveFn is a native implementation backing a Primitive value.
type PrimitiveFn func(interp *Interp, module *Cell, env *Cell, args Value, closure Value) (Value, error)

// PrimitiveData is a built-in function. Primitives are pinned at creation
// time and never collected.
type PrimitiveData struct {
	name    Value // Symbol
	fn      PrimitiveFn
	closure Value
	flags   FunctionFlags
}

// ModuleData is a named, import/export-capable environment. initialized is
// set before the module's body is evaluated (not after), so a cyclic
// import sees the partially-populated environment instead of recursing
// forever (spec §5 "Ordering").
type ModuleData struct {
	name        Value
	environment *Cell // Table
	exports     *Cell // Vector of Symbols
	initialized bool
}

// ContinuationData reifies a suffix of the evaluator's explicit frame
// stack, captured by `control` (spec §9 redesign note on continuations).
type ContinuationData struct {
	frames []*Frame
	id     int64
}
