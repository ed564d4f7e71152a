package main

// registerListModule installs `list`'s primitive surface (spec §4.K):
// construct first rest map reduce flatten.
func registerListModule(interp *Interp, env *Cell) error {
	define := func(name string, fn PrimitiveFn) {
		interp.definePrimitive(env, name, standardFlags(), fn)
	}

	define("construct", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 2 {
			return Nil, fatalErrorf(ErrEvaluator, "list/construct: expected (construct first rest)")
		}
		return interp.cons(items[0], items[1]), nil
	})

	define("first", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 1 {
			return Nil, fatalErrorf(ErrEvaluator, "list/first: expected one argument")
		}
		return listFirst(items[0]), nil
	})

	define("rest", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 1 {
			return Nil, fatalErrorf(ErrEvaluator, "list/rest: expected one argument")
		}
		return listRest(items[0]), nil
	})

	define("map", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 2 {
			return Nil, fatalErrorf(ErrEvaluator, "list/map: expected (map function list)")
		}
		fn := items[0]
		return interp.listMap(func(x Value) (Value, error) {
			return interp.apply(module, env, fn, interp.sliceToList([]Value{x}))
		}, items[1])
	})

	define("reduce", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 3 {
			return Nil, fatalErrorf(ErrEvaluator, "list/reduce: expected (reduce function init list)")
		}
		fn := items[0]
		return interp.listReduce(func(acc, item Value) (Value, error) {
			return interp.apply(module, env, fn, interp.sliceToList([]Value{acc, item}))
		}, items[1], items[2])
	})

	define("flatten", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 1 {
			return Nil, fatalErrorf(ErrEvaluator, "list/flatten: expected one argument")
		}
		return interp.listFlatten(items[0])
	})

	return nil
}
