package main

// registerVectorModule installs `vector`'s primitive surface (spec
// §4.K): get set slice each count.
func registerVectorModule(interp *Interp, env *Cell) error {
	define := func(name string, fn PrimitiveFn) {
		interp.definePrimitive(env, name, standardFlags(), fn)
	}

	define("get", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 2 {
			return Nil, fatalErrorf(ErrEvaluator, "vector/get: expected (get vector index)")
		}
		if !items[0].IsVector() {
			return Nil, fatalErrorf(ErrEvaluator, "vector/get: first argument is not a vector")
		}
		index, err := requireInteger("vector/get", items[1])
		if err != nil {
			return Nil, err
		}
		return vectorGet(items[0].heap, int(index)), nil
	})

	define("set", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 3 {
			return Nil, fatalErrorf(ErrEvaluator, "vector/set: expected (set vector index value)")
		}
		if !items[0].IsVector() {
			return Nil, fatalErrorf(ErrEvaluator, "vector/set: first argument is not a vector")
		}
		index, err := requireInteger("vector/set", items[1])
		if err != nil {
			return Nil, err
		}
		if err := interp.vectorSet(items[0].heap, int(index), items[2]); err != nil {
			return Nil, err
		}
		return items[2], nil
	})

	define("slice", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 3 {
			return Nil, fatalErrorf(ErrEvaluator, "vector/slice: expected (slice vector start end)")
		}
		if !items[0].IsVector() {
			return Nil, fatalErrorf(ErrEvaluator, "vector/slice: first argument is not a vector")
		}
		start, err := requireInteger("vector/slice", items[1])
		if err != nil {
			return Nil, err
		}
		end, err := requireInteger("vector/slice", items[2])
		if err != nil {
			return Nil, err
		}
		return interp.vectorSlice(items[0].heap, int(start), int(end))
	})

	define("each", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 2 {
			return Nil, fatalErrorf(ErrEvaluator, "vector/each: expected (each function vector)")
		}
		fn := items[0]
		if !items[1].IsVector() {
			return Nil, fatalErrorf(ErrEvaluator, "vector/each: second argument is not a vector")
		}
		count := vectorCount(items[1].heap)
		for i := 0; i < count; i++ {
			if _, err := interp.apply(module, env, fn, interp.sliceToList([]Value{vectorGet(items[1].heap, i)})); err != nil {
				return Nil, err
			}
		}
		return Nil, nil
	})

	define("count", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 1 || !items[0].IsVector() {
			return Nil, fatalErrorf(ErrEvaluator, "vector/count: expected a vector")
		}
		return Integer(int64(vectorCount(items[0].heap))), nil
	})

	return nil
}
