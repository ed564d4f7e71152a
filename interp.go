package main

// Interp is the interpreter root (spec §3 "Interpreter state"): it owns
// memory, heap slabs, constant values, the symbol table, the module
// registry, the module search path, and hash state. There is exactly one
// per process; it is never shared across goroutines (spec §5 "Shared
// resources").
type Interp struct {
	heap *Heap
	hash *HashState

	symbolTable *Cell // Table, keyed by Bytes content -> canonical Symbol

	constants struct {
		truth Value // the `truth` symbol, spec's `constants.truth`
	}

	modules struct {
		loaded               *Cell // Table: Symbol name -> Module
		null                 *Cell // the unnamed module, for stdin/ad-hoc code
		topLevelEnvironment  *Cell // Table containing only import/export
		path                 Value // Vector of Text search directories
		embedded             *EmbeddedSegment
	}

	// frames is the evaluator's explicit call stack (spec §9 redesign
	// note: "represent the evaluator as a state machine over a
	// Vec<Frame>"). It doubles as the GC's precise replacement for
	// conservative native-stack/register scanning (spec §4.D "Machine
	// roots"): a heap Value reachable only from a Go local variable mid
	// evaluation is also reachable from the Frame that's evaluating it.
	frames []*Frame

	// pendingTopLevelForms roots the forms a top-level driver (cli.go's
	// evaluateSource) has read but not yet evaluated. Between forms,
	// frames is empty, so this is the only thing keeping the cells the
	// driver is about to hand to eval alive across maybeGC (spec §9
	// "retain conservative scanning only for the platform-entry boundary
	// where host-language frames hold values transiently" — this slice
	// is that boundary, rooted explicitly rather than scanned).
	pendingTopLevelForms []Value

	nextContinuationID int64

	arena *Arena

	// specialForms maps each hard-wired special-form symbol (by its
	// canonical interned cell) to its handler (spec §4.H "recognized
	// before general dispatch, by identity with interned symbols").
	specialForms map[*Cell]specialForm
}

// NewInterp builds a fresh interpreter: heap, hashing, symbol table,
// constants, and the module system's top-level environment and null
// module (spec §3, §4.F, §4.J).
func NewInterp() (*Interp, error) {
	hashState, err := newHashState()
	if err != nil {
		return nil, err
	}

	arena, err := newArena(DefaultGlobalArenaSize)
	if err != nil {
		return nil, err
	}

	interp := &Interp{
		heap:  newHeap(),
		hash:  hashState,
		arena: arena,
	}

	interp.symbolTable = interp.newTable(256, Nil).heap
	interp.constants.truth = interp.internString("true")
	interp.specialForms = interp.registerSpecialForms()

	interp.modules.topLevelEnvironment = interp.newTable(8, Nil).heap
	interp.modules.loaded = interp.newTable(16, Nil).heap
	interp.modules.path = interp.newVector(4)

	registerImportExport(interp)

	interp.modules.null = interp.newModule(Nil).heap

	// Absence of an embedded segment is the common case (files/stdin);
	// a malformed PT_LONE header is reported, a well-formed absent one
	// is silently nil (spec §4.L).
	embedded, err := loadEmbeddedSegmentFromExecutable()
	if err != nil {
		return nil, err
	}
	interp.modules.embedded = embedded

	return interp, nil
}

// pushFrame/popFrame maintain the explicit evaluator call stack used both
// for continuation capture and as a GC root set.
func (interp *Interp) pushFrame(frame *Frame) {
	interp.frames = append(interp.frames, frame)
}

func (interp *Interp) popFrame() {
	interp.frames = interp.frames[:len(interp.frames)-1]
}

// maybeGC runs a collection before evaluating each top-level form, the
// simplest policy spec §4.D names.
func (interp *Interp) maybeGC() {
	interp.gc()
}
