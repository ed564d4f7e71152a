package main

// registerMathModule installs the `math` intrinsic module's primitive
// surface (spec §4.K, SPEC_FULL "Full intrinsic primitive surface"):
// add subtract multiply divide, the four comparisons, sign, and the
// three sign predicates — plus the `+ - * / < <= > >=` operator spellings
// spec §8's arithmetic scenario names directly, bound as aliases of the
// same primitives rather than a second implementation.
func registerMathModule(interp *Interp, env *Cell) error {
	define := func(name string, fn PrimitiveFn) {
		interp.definePrimitive(env, name, standardFlags(), fn)
	}

	add := mathFold("add", 0, func(acc, x int64) int64 { return acc + x })
	multiply := mathFold("multiply", 1, func(acc, x int64) int64 { return acc * x })
	define("add", add)
	define("multiply", multiply)
	define("+", add)
	define("*", multiply)

	subtract := func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) < 1 {
			return Nil, fatalErrorf(ErrEvaluator, "subtract: expected at least one argument")
		}
		first, err := requireInteger("subtract", items[0])
		if err != nil {
			return Nil, err
		}
		if len(items) == 1 {
			return Integer(-first), nil
		}
		acc := first
		for _, item := range items[1:] {
			n, err := requireInteger("subtract", item)
			if err != nil {
				return Nil, err
			}
			acc -= n
		}
		return Integer(acc), nil
	}
	define("subtract", subtract)
	define("-", subtract)

	divide := func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) < 2 {
			return Nil, fatalErrorf(ErrEvaluator, "divide: expected at least two arguments")
		}
		acc, err := requireInteger("divide", items[0])
		if err != nil {
			return Nil, err
		}
		for _, item := range items[1:] {
			n, err := requireInteger("divide", item)
			if err != nil {
				return Nil, err
			}
			if n == 0 {
				return Nil, fatalErrorf(ErrEvaluator, "divide: division by zero")
			}
			acc /= n
		}
		return Integer(acc), nil
	}
	define("divide", divide)
	define("/", divide)

	lessThan := mathCompare("less-than?", func(a, b int64) bool { return a < b })
	lessThanOrEqual := mathCompare("less-than-or-equal?", func(a, b int64) bool { return a <= b })
	greaterThan := mathCompare("greater-than?", func(a, b int64) bool { return a > b })
	greaterThanOrEqual := mathCompare("greater-than-or-equal?", func(a, b int64) bool { return a >= b })
	define("less-than?", lessThan)
	define("less-than-or-equal?", lessThanOrEqual)
	define("greater-than?", greaterThan)
	define("greater-than-or-equal?", greaterThanOrEqual)
	define("<", lessThan)
	define("<=", lessThanOrEqual)
	define(">", greaterThan)
	define(">=", greaterThanOrEqual)

	define("sign", func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		n, err := mathUnary("sign", args)
		if err != nil {
			return Nil, err
		}
		switch {
		case n > 0:
			return Integer(1), nil
		case n < 0:
			return Integer(-1), nil
		default:
			return Integer(0), nil
		}
	})

	define("zero?", mathPredicate("zero?", func(n int64) bool { return n == 0 }))
	define("positive?", mathPredicate("positive?", func(n int64) bool { return n > 0 }))
	define("negative?", mathPredicate("negative?", func(n int64) bool { return n < 0 }))

	return nil
}

func mathUnary(name string, args Value) (int64, error) {
	items, ok := listToSlice(args)
	if !ok {
		return 0, fatalErrorf(ErrEvaluator, "%s: improper argument list", name)
	}
	if err := requireArgCount(name, items, 1); err != nil {
		return 0, err
	}
	return requireInteger(name, items[0])
}

func mathFold(name string, identity int64, combine func(acc, x int64) int64) PrimitiveFn {
	return func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok {
			return Nil, fatalErrorf(ErrEvaluator, "%s: improper argument list", name)
		}
		acc := identity
		for _, item := range items {
			n, err := requireInteger(name, item)
			if err != nil {
				return Nil, err
			}
			acc = combine(acc, n)
		}
		return Integer(acc), nil
	}
}

func mathCompare(name string, cmp func(a, b int64) bool) PrimitiveFn {
	return func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		items, ok := listToSlice(args)
		if !ok || len(items) < 2 {
			return Nil, fatalErrorf(ErrEvaluator, "%s: expected at least two arguments", name)
		}
		prev, err := requireInteger(name, items[0])
		if err != nil {
			return Nil, err
		}
		for _, item := range items[1:] {
			n, err := requireInteger(name, item)
			if err != nil {
				return Nil, err
			}
			if !cmp(prev, n) {
				return Nil, nil
			}
			prev = n
		}
		return interp.constants.truth, nil
	}
}

func mathPredicate(name string, pred func(n int64) bool) PrimitiveFn {
	return func(interp *Interp, module, env *Cell, args Value, closure Value) (Value, error) {
		n, err := mathUnary(name, args)
		if err != nil {
			return Nil, err
		}
		return interp.truthValue(pred(n)), nil
	}
}
