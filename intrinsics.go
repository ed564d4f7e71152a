package main

// definePrimitive interns name, wraps fn as a pinned Primitive, and binds
// it directly in env — the building block every intrinsic_*.go file uses
// to populate its module's own environment before exporting every name it
// just bound (spec §4.K "Intrinsic registration").
func (interp *Interp) definePrimitive(env *Cell, name string, flags FunctionFlags, fn PrimitiveFn) {
	sym := interp.internString(name)
	prim := interp.newPrimitive(sym, fn, flags)
	_ = interp.tableInsert(env, sym, prim)
}

// defineIntrinsicModule registers (or reopens) the named module, lets
// define populate its environment directly, then exports every symbol
// define just bound — intrinsic modules have no source text, so they are
// marked initialized immediately (spec §4.J, §4.K). define can fail: its
// primitives allocate Text/Bytes content from the interpreter's arena,
// and arena growth can fail under real memory pressure (spec §4.A).
func (interp *Interp) defineIntrinsicModule(name string, define func(interp *Interp, env *Cell) error) error {
	moduleValue := interp.moduleForName(interp.internString(name))
	mod := moduleValue.heap.module()

	if err := define(interp, mod.environment); err != nil {
		return err
	}

	n := tableCount(mod.environment)
	for i := 0; i < n; i++ {
		key, _ := tableKeyAt(mod.environment, i)
		_ = interp.exportSymbol(moduleValue.heap, key)
	}
	mod.initialized = true
	return nil
}

// registerIntrinsics installs every built-in module (spec §4.K: math,
// list, vector, table, text, bytes, linux, lone). Called once from
// runLone, after the module system itself is ready.
func (interp *Interp) registerIntrinsics(argv, envp []string) error {
	if err := interp.defineIntrinsicModule("math", registerMathModule); err != nil {
		return err
	}
	if err := interp.defineIntrinsicModule("list", registerListModule); err != nil {
		return err
	}
	if err := interp.defineIntrinsicModule("vector", registerVectorModule); err != nil {
		return err
	}
	if err := interp.defineIntrinsicModule("table", registerTableModule); err != nil {
		return err
	}
	if err := interp.defineIntrinsicModule("text", registerTextModule); err != nil {
		return err
	}
	if err := interp.defineIntrinsicModule("bytes", registerBytesModule); err != nil {
		return err
	}
	if err := interp.defineIntrinsicModule("lone", registerLoneModule); err != nil {
		return err
	}
	return interp.defineIntrinsicModule("linux", func(interp *Interp, env *Cell) error {
		return registerLinuxModule(interp, env, argv, envp)
	})
}

// truthValue returns interp.constants.truth for true and Nil for false,
// matching the "Nil is the only false value" convention (see
// evaluator.go's isTruthy doc comment).
func (interp *Interp) truthValue(b bool) Value {
	if b {
		return interp.constants.truth
	}
	return Nil
}

func requireArgCount(primitive string, items []Value, n int) error {
	if len(items) != n {
		return fatalErrorf(ErrEvaluator, "%s: expected %d argument(s), got %d", primitive, n, len(items))
	}
	return nil
}

func requireInteger(primitive string, v Value) (int64, error) {
	if !v.IsInteger() {
		return 0, fatalErrorf(ErrEvaluator, "%s: expected an integer argument", primitive)
	}
	return v.AsInteger(), nil
}
