package main

// newFunction allocates a Function value from a lambda form (spec §3
// "Function" heap kind, §4.H "lambda").
func (interp *Interp) newFunction(parameters, code Value, environment *Cell, flags FunctionFlags) Value {
	return HeapValue(interp.heap.allocate(HeapFunction, &FunctionData{
		parameters:  parameters,
		code:        code,
		environment: environment,
		flags:       flags,
	}))
}

// newPrimitive allocates a pinned Primitive value wrapping a native Go
// function (spec §3 "Primitive" heap kind: "pinned (never collected)").
func (interp *Interp) newPrimitive(name Value, fn PrimitiveFn, flags FunctionFlags) Value {
	return HeapValue(interp.heap.allocatePinned(HeapPrimitive, &PrimitiveData{
		name:  name,
		fn:    fn,
		flags: flags,
	}))
}

// standardFlags is the common case: evaluate arguments, evaluate the
// result is not repeated, not variadic — ordinary function application.
func standardFlags() FunctionFlags {
	return FunctionFlags{evaluateArguments: true}
}
