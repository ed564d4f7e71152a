package main

// registerTextModule installs `text`'s primitive surface (spec §4.K):
// to-symbol join concatenate.
func registerTextModule(interp *Interp, env *Cell) error {
	define := func(name string, fn PrimitiveFn) {
		interp.definePrimitive(env, name, standardFlags(), fn)
	}

	define("to-symbol", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 1 || !items[0].IsText() {
			return Nil, fatalErrorf(ErrEvaluator, "text/to-symbol: expected a text")
		}
		return interp.intern(textBytes(items[0])), nil
	})

	define("join", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 2 || !items[0].IsText() {
			return Nil, fatalErrorf(ErrEvaluator, "text/join: expected (join separator texts)")
		}
		return interp.textJoin(items[0], items[1])
	})

	define("concatenate", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 2 || !items[0].IsText() || !items[1].IsText() {
			return Nil, fatalErrorf(ErrEvaluator, "text/concatenate: expected two texts")
		}
		return interp.textConcatenate(items[0], items[1])
	})

	return nil
}
