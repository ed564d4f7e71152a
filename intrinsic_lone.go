package main

import "os"

// registerLoneModule installs the `lone` intrinsic module (spec §4.K,
// SPEC_FULL "Full intrinsic primitive surface"): a Primitive binding for
// every special form (so `(import lone)` gives a program a first-class
// handle on them, even though the evaluator always recognizes the same
// names as special forms before it ever looks a binding up — see
// evaluator.go's specialForms map), the seven type predicates, the three
// equality tiers, and `print`.
func registerLoneModule(interp *Interp, env *Cell) error {
	for name, form := range interp.specialForms {
		sym := HeapValue(name)
		prim := interp.newPrimitive(sym, wrapSpecialForm(form), FunctionFlags{evaluateArguments: false})
		_ = interp.tableInsert(env, sym, prim)
	}

	define := func(name string, fn PrimitiveFn) {
		interp.definePrimitive(env, name, standardFlags(), fn)
	}

	define("list?", typePredicate(func(v Value) bool { return v.IsList() }))
	define("vector?", typePredicate(func(v Value) bool { return v.IsVector() }))
	define("table?", typePredicate(func(v Value) bool { return v.IsTable() }))
	define("symbol?", typePredicate(func(v Value) bool { return v.IsSymbol() }))
	define("text?", typePredicate(func(v Value) bool { return v.IsText() }))
	define("integer?", typePredicate(func(v Value) bool { return v.IsInteger() }))
	define("continuation?", typePredicate(func(v Value) bool { return v.IsContinuation() }))

	define("identical?", equalityPrimitive("identical?", identicalValue))
	define("equivalent?", equalityPrimitive("equivalent?", equivalentValue))
	define("equal?", equalityPrimitive("equal?", equalValue))

	define("print", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok {
			return Nil, fatalErrorf(ErrEvaluator, "print: improper argument list")
		}
		var buf []byte
		for i, item := range items {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = interp.printValue(buf, item)
		}
		buf = append(buf, '\n')
		_, _ = os.Stdout.Write(buf)
		if len(items) == 0 {
			return Nil, nil
		}
		return items[len(items)-1], nil
	})

	return nil
}

// wrapSpecialForm adapts a specialForm (which needs no closure) to the
// PrimitiveFn shape so the same handler can also live as an ordinary
// looked-up value.
func wrapSpecialForm(form specialForm) PrimitiveFn {
	return func(interp *Interp, module *Cell, env *Cell, args Value, closure Value) (Value, error) {
		return form(interp, module, env, args)
	}
}

func typePredicate(pred func(Value) bool) PrimitiveFn {
	return func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 1 {
			return Nil, fatalErrorf(ErrEvaluator, "type predicate: expected exactly one argument")
		}
		return interp.truthValue(pred(items[0])), nil
	}
}

func equalityPrimitive(name string, cmp func(a, b Value) bool) PrimitiveFn {
	return func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) != 2 {
			return Nil, fatalErrorf(ErrEvaluator, "%s: expected exactly two arguments", name)
		}
		return interp.truthValue(cmp(items[0], items[1])), nil
	}
}
