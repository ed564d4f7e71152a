package main

// registerTableModule installs `table`'s primitive surface (spec §4.K):
// get set delete each count.
func registerTableModule(interp *Interp, env *Cell) error {
	define := func(name string, fn PrimitiveFn) {
		interp.definePrimitive(env, name, standardFlags(), fn)
	}

	define("get", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 2 || !items[0].IsTable() {
			return Nil, fatalErrorf(ErrEvaluator, "table/get: expected (get table key)")
		}
		value, _ := interp.tableLookup(items[0].heap, items[1])
		return value, nil
	})

	define("set", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 3 || !items[0].IsTable() {
			return Nil, fatalErrorf(ErrEvaluator, "table/set: expected (set table key value)")
		}
		if err := interp.tableInsert(items[0].heap, items[1], items[2]); err != nil {
			return Nil, err
		}
		return items[2], nil
	})

	define("delete", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 2 || !items[0].IsTable() {
			return Nil, fatalErrorf(ErrEvaluator, "table/delete: expected (delete table key)")
		}
		if err := interp.tableDelete(items[0].heap, items[1]); err != nil {
			return Nil, err
		}
		return Nil, nil
	})

	define("each", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 2 || !items[1].IsTable() {
			return Nil, fatalErrorf(ErrEvaluator, "table/each: expected (each function table)")
		}
		fn := items[0]
		n := tableCount(items[1].heap)
		for i := 0; i < n; i++ {
			key, _ := tableKeyAt(items[1].heap, i)
			value, _ := tableValueAt(items[1].heap, i)
			if _, err := interp.apply(module, env, fn, interp.sliceToList([]Value{key, value})); err != nil {
				return Nil, err
			}
		}
		return Nil, nil
	})

	define("count", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 1 || !items[0].IsTable() {
			return Nil, fatalErrorf(ErrEvaluator, "table/count: expected a table")
		}
		return Integer(int64(tableCount(items[0].heap))), nil
	})

	return nil
}
