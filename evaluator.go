package main

// specialForm is a function implementing one of the evaluator's
// hard-wired special forms (spec §4.H: "recognized before general
// dispatch, by identity with interned symbols"). args is the unevaluated
// tail of the form (everything after the operator symbol).
type specialForm func(interp *Interp, module *Cell, env *Cell, args Value) (Value, error)

// registerSpecialForms interns every special-form name and wires its
// handler. Called once, from NewInterp.
func (interp *Interp) registerSpecialForms() map[*Cell]specialForm {
	forms := map[*Cell]specialForm{}
	bind := func(name string, fn specialForm) {
		forms[interp.internString(name).heap] = fn
	}

	bind("quote", evalQuote)
	bind("quasiquote", evalQuasiquote)
	bind("if", evalIf)
	bind("when", evalWhen)
	bind("unless", evalUnless)
	bind("let", evalLet)
	bind("set", evalSet)
	bind("begin", evalBegin)
	bind("lambda", evalLambda)
	bind("lambda!", evalLambdaBang)
	bind("lambda*", evalLambdaStar)
	bind("return", evalReturn)
	bind("control", evalControl)

	return forms
}

// eval is the recursive core evaluator (spec §4.H "Dispatch"). Self-
// evaluating kinds return themselves; Symbol triggers environment lookup;
// List triggers special-form recognition, then function/primitive
// application.
func (interp *Interp) eval(module *Cell, env *Cell, expr Value) (Value, error) {
	switch expr.kind {
	case KindNil, KindInteger, KindPointer:
		return expr, nil
	case KindHeap:
		switch expr.heap.kind {
		case HeapSymbol:
			return interp.evalSymbol(env, expr)
		case HeapList:
			return interp.evalList(module, env, expr)
		default:
			// Function, Primitive, Vector, Table, Text, Bytes, Module,
			// Continuation: self-evaluating (spec §4.H).
			return expr, nil
		}
	default:
		return Nil, fatalErrorf(ErrEvaluator, "cannot evaluate value of unknown kind")
	}
}

func (interp *Interp) evalSymbol(env *Cell, symbol Value) (Value, error) {
	value, ok := interp.tableLookup(env, symbol)
	if !ok {
		return Nil, fatalErrorf(ErrEvaluator, "unbound symbol: %s", string(symbolBytes(symbol)))
	}
	return value, nil
}

func (interp *Interp) evalList(module *Cell, env *Cell, expr Value) (Value, error) {
	if expr.IsNil() {
		return Nil, nil
	}
	l := expr.heap.list()

	if l.first.IsSymbol() {
		if form, ok := interp.specialForms[l.first.heap]; ok {
			return form(interp, module, env, l.rest)
		}
	}

	callee, err := interp.eval(module, env, l.first)
	if err != nil {
		return Nil, err
	}
	return interp.apply(module, env, callee, l.rest)
}

// apply realizes the per-call state machine of spec §4.H: EvaluateArgs ->
// BindParams -> EvalBody -> MaybeEvalResult -> Return. It pushes an
// explicit Frame (spec §9 redesign note) for the duration of the call.
func (interp *Interp) apply(module *Cell, env *Cell, callee Value, args Value) (Value, error) {
	frame := &Frame{module: module, env: env, callee: callee, args: args}
	interp.pushFrame(frame)
	defer interp.popFrame()

	switch {
	case callee.IsFunction():
		return interp.applyFunction(frame, callee)
	case callee.IsPrimitive():
		return interp.applyPrimitive(frame, callee)
	case callee.IsContinuation():
		return interp.applyContinuation(frame, callee)
	default:
		return Nil, fatalErrorf(ErrEvaluator, "value of kind %v is not applicable", describeKind(callee))
	}
}

// applyContinuation invokes a captured Continuation like a one-argument
// function: its sole argument is evaluated, then invokeContinuation
// unwinds straight back to the `control` frame that captured it (spec §3
// "Continuation ... reify call-stack frames"). It never returns normally.
func (interp *Interp) applyContinuation(frame *Frame, callee Value) (Value, error) {
	items, ok := listToSlice(frame.args)
	if !ok || len(items) != 1 {
		return Nil, fatalErrorf(ErrEvaluator, "continuation invocation: expected exactly one argument")
	}
	value, err := interp.eval(frame.module, frame.env, items[0])
	if err != nil {
		return Nil, err
	}
	invokeContinuation(callee, value)
	panic("unreachable: invokeContinuation always panics")
}

func (interp *Interp) applyFunction(frame *Frame, callee Value) (Value, error) {
	fn := callee.heap.function()

	frame.state = StateEvaluateArgs
	var argValues []Value
	if fn.flags.evaluateArguments {
		items, ok := listToSlice(frame.args)
		if !ok {
			return Nil, fatalErrorf(ErrEvaluator, "improper argument list")
		}
		argValues = make([]Value, len(items))
		for i, item := range items {
			value, err := interp.eval(frame.module, frame.env, item)
			if err != nil {
				return Nil, err
			}
			argValues[i] = value
		}
	} else {
		items, ok := listToSlice(frame.args)
		if !ok {
			return Nil, fatalErrorf(ErrEvaluator, "improper argument list")
		}
		argValues = items
	}

	frame.state = StateBindParams
	callEnv, err := interp.bindParameters(fn.parameters, argValues, fn.environment, fn.flags.variableArguments)
	if err != nil {
		return Nil, err
	}

	frame.state = StateEvalBody
	body, ok := listToSlice(fn.code)
	if !ok {
		return Nil, fatalErrorf(ErrEvaluator, "improper function body")
	}
	result := Nil
	for _, form := range body {
		result, err = interp.eval(frame.module, callEnv, form)
		if err != nil {
			return Nil, err
		}
	}

	frame.state = StateMaybeEvalResult
	if fn.flags.evaluateResult {
		result, err = interp.eval(frame.module, callEnv, result)
		if err != nil {
			return Nil, err
		}
	}

	frame.state = StateReturn
	frame.result = result
	return result, nil
}

func (interp *Interp) applyPrimitive(frame *Frame, callee Value) (Value, error) {
	prim := callee.heap.primitive()

	frame.state = StateEvaluateArgs
	argsToPass := frame.args
	if prim.flags.evaluateArguments {
		items, ok := listToSlice(frame.args)
		if !ok {
			return Nil, fatalErrorf(ErrEvaluator, "improper argument list")
		}
		evaluated := make([]Value, len(items))
		for i, item := range items {
			value, err := interp.eval(frame.module, frame.env, item)
			if err != nil {
				return Nil, err
			}
			evaluated[i] = value
		}
		argsToPass = interp.sliceToList(evaluated)
	}

	frame.state = StateEvalBody
	result, err := prim.fn(interp, frame.module, frame.env, argsToPass, prim.closure)
	if err != nil {
		return Nil, err
	}

	frame.state = StateMaybeEvalResult
	if prim.flags.evaluateResult {
		result, err = interp.eval(frame.module, frame.env, result)
		if err != nil {
			return Nil, err
		}
	}

	frame.state = StateReturn
	frame.result = result
	return result, nil
}

// bindParameters binds argValues to parameters in a fresh environment
// chained (via prototype) to closureEnv. A parameter list that ends in a
// bare symbol instead of Nil (an improper/"dotted" list) binds that symbol
// to the remaining arguments as a list — the variadic convention (spec
// §4.H "variadic collects remaining into a list"). Arity mismatches for a
// non-variadic function are fatal (spec §4.H).
func (interp *Interp) bindParameters(parameters Value, argValues []Value, closureEnv *Cell, variadic bool) (*Cell, error) {
	callEnv := interp.newTable(8, HeapValue(closureEnv)).heap

	i := 0
	p := parameters
	for {
		if p.IsNil() {
			break
		}
		if p.IsSymbol() {
			// Dotted rest parameter: binds every remaining argument.
			rest := interp.sliceToList(argValues[i:])
			if err := interp.tableInsert(callEnv, p, rest); err != nil {
				return nil, err
			}
			i = len(argValues)
			p = Nil
			break
		}
		if !p.IsHeapKind(HeapList) {
			return nil, fatalErrorf(ErrEvaluator, "malformed parameter list")
		}
		l := p.heap.list()
		if i >= len(argValues) {
			return nil, fatalErrorf(ErrEvaluator, "too few arguments: expected more than %d", len(argValues))
		}
		if err := interp.tableInsert(callEnv, l.first, argValues[i]); err != nil {
			return nil, err
		}
		i++
		p = l.rest
	}

	if i < len(argValues) && !variadic {
		return nil, fatalErrorf(ErrEvaluator, "too many arguments: got %d", len(argValues))
	}

	return callEnv, nil
}

func describeKind(v Value) string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindInteger:
		return "integer"
	case KindPointer:
		return "pointer"
	case KindHeap:
		return v.heap.kind.String()
	default:
		return "unknown"
	}
}

// --- Special forms ---

func evalQuote(interp *Interp, module *Cell, env *Cell, args Value) (Value, error) {
	return listFirst(args), nil
}

func evalIf(interp *Interp, module *Cell, env *Cell, args Value) (Value, error) {
	items, ok := listToSlice(args)
	if !ok || len(items) < 2 || len(items) > 3 {
		return Nil, fatalErrorf(ErrEvaluator, "if: expected (if condition then [else])")
	}
	cond, err := interp.eval(module, env, items[0])
	if err != nil {
		return Nil, err
	}
	if isTruthy(cond) {
		return interp.eval(module, env, items[1])
	}
	if len(items) == 3 {
		return interp.eval(module, env, items[2])
	}
	return Nil, nil
}

func evalWhen(interp *Interp, module *Cell, env *Cell, args Value) (Value, error) {
	items, ok := listToSlice(args)
	if !ok || len(items) < 1 {
		return Nil, fatalErrorf(ErrEvaluator, "when: expected (when condition body...)")
	}
	cond, err := interp.eval(module, env, items[0])
	if err != nil {
		return Nil, err
	}
	if !isTruthy(cond) {
		return Nil, nil
	}
	return interp.evalSequence(module, env, items[1:])
}

func evalUnless(interp *Interp, module *Cell, env *Cell, args Value) (Value, error) {
	items, ok := listToSlice(args)
	if !ok || len(items) < 1 {
		return Nil, fatalErrorf(ErrEvaluator, "unless: expected (unless condition body...)")
	}
	cond, err := interp.eval(module, env, items[0])
	if err != nil {
		return Nil, err
	}
	if isTruthy(cond) {
		return Nil, nil
	}
	return interp.evalSequence(module, env, items[1:])
}

func evalBegin(interp *Interp, module *Cell, env *Cell, args Value) (Value, error) {
	items, ok := listToSlice(args)
	if !ok {
		return Nil, fatalErrorf(ErrEvaluator, "begin: improper list")
	}
	return interp.evalSequence(module, env, items)
}

func (interp *Interp) evalSequence(module *Cell, env *Cell, forms []Value) (Value, error) {
	result := Nil
	for _, form := range forms {
		value, err := interp.eval(module, env, form)
		if err != nil {
			return Nil, err
		}
		result = value
	}
	return result, nil
}

// evalLet binds name to value's evaluation in the current environment's
// own table, shadowing any outer binding (spec §4.H "let").
func evalLet(interp *Interp, module *Cell, env *Cell, args Value) (Value, error) {
	items, ok := listToSlice(args)
	if !ok || len(items) != 2 || !items[0].IsSymbol() {
		return Nil, fatalErrorf(ErrEvaluator, "let: expected (let name value)")
	}
	value, err := interp.eval(module, env, items[1])
	if err != nil {
		return Nil, err
	}
	if err := interp.tableInsert(env, items[0], value); err != nil {
		return Nil, err
	}
	return value, nil
}

// evalSet updates an existing binding wherever it is found along the
// environment's prototype chain; if no binding exists anywhere, it
// creates one in the current environment, matching the common Lisp
// set!-or-define duality (Open Question resolution, see DESIGN.md).
func evalSet(interp *Interp, module *Cell, env *Cell, args Value) (Value, error) {
	items, ok := listToSlice(args)
	if !ok || len(items) != 2 || !items[0].IsSymbol() {
		return Nil, fatalErrorf(ErrEvaluator, "set: expected (set name value)")
	}
	value, err := interp.eval(module, env, items[1])
	if err != nil {
		return Nil, err
	}
	target := findBindingTable(interp, env, items[0])
	if target == nil {
		target = env
	}
	if err := interp.tableInsert(target, items[0], value); err != nil {
		return Nil, err
	}
	return value, nil
}

// findBindingTable walks the environment's prototype chain looking for
// the table that directly owns a binding for name, without recursing
// through tableLookup's prototype fallback (which would hide which table
// actually holds it).
func findBindingTable(interp *Interp, env *Cell, name Value) *Cell {
	for env != nil {
		if _, ok := tableProbe(interp, env.table(), name); ok {
			return env
		}
		proto := env.table().prototype
		if proto.kind != KindHeap || proto.heap.kind != HeapTable {
			return nil
		}
		env = proto.heap
	}
	return nil
}

func evalLambda(interp *Interp, module *Cell, env *Cell, args Value) (Value, error) {
	return makeLambda(interp, env, args, FunctionFlags{evaluateArguments: true})
}

func evalLambdaBang(interp *Interp, module *Cell, env *Cell, args Value) (Value, error) {
	return makeLambda(interp, env, args, FunctionFlags{evaluateArguments: false})
}

func evalLambdaStar(interp *Interp, module *Cell, env *Cell, args Value) (Value, error) {
	return makeLambda(interp, env, args, FunctionFlags{evaluateArguments: true, evaluateResult: true})
}

func makeLambda(interp *Interp, env *Cell, args Value, flags FunctionFlags) (Value, error) {
	items, ok := listToSlice(args)
	// listToSlice fails on an improper list, but a lambda's own
	// parameter list is allowed to be improper (dotted rest parameter);
	// only the (parameters . body) spine must be proper.
	if !ok {
		return Nil, fatalErrorf(ErrEvaluator, "lambda: expected (lambda parameters body...)")
	}
	if len(items) < 1 {
		return Nil, fatalErrorf(ErrEvaluator, "lambda: missing parameter list")
	}
	parameters := items[0]
	flags.variableArguments = parameterListIsVariadic(parameters)
	body := interp.sliceToList(items[1:])
	return interp.newFunction(parameters, body, env, flags), nil
}

func parameterListIsVariadic(parameters Value) bool {
	for parameters.IsHeapKind(HeapList) {
		parameters = parameters.heap.list().rest
	}
	return parameters.IsSymbol()
}

func evalReturn(interp *Interp, module *Cell, env *Cell, args Value) (Value, error) {
	items, ok := listToSlice(args)
	if !ok || len(items) > 1 {
		return Nil, fatalErrorf(ErrEvaluator, "return: expected (return [value])")
	}
	value := Nil
	if len(items) == 1 {
		var err error
		value, err = interp.eval(module, env, items[0])
		if err != nil {
			return Nil, err
		}
	}
	current := interp.currentContinuationID()
	if current == 0 {
		return Nil, fatalErrorf(ErrEvaluator, "return: not inside a control block")
	}
	panic(continuationSignal{id: current, value: value})
}

// evalControl establishes a capture point (spec §4.H "control (delimited
// continuation capture)"): its single argument must evaluate to a
// one-argument receiver, which is immediately called with a freshly
// captured Continuation value reifying the frame stack up to this point.
// Calling that continuation, or using `return` anywhere within the
// receiver's dynamic extent, unwinds straight back here with the
// signaled value (see Frame's doc comment for why this is an honest,
// escape-only simplification of full Felleisen-style control).
func evalControl(interp *Interp, module *Cell, env *Cell, args Value) (result Value, err error) {
	k := interp.newContinuation()
	id := k.heap.continuation().id

	interp.pushFrame(&Frame{module: module, env: env, continuationID: id})
	defer interp.popFrame()

	defer func() {
		if r := recover(); r != nil {
			signal, ok := r.(continuationSignal)
			if !ok {
				panic(r)
			}
			if signal.id != id {
				panic(r)
			}
			result = signal.value
			err = nil
		}
	}()

	items, ok := listToSlice(args)
	if !ok || len(items) != 1 {
		return Nil, fatalErrorf(ErrEvaluator, "control: expected (control receiver)")
	}
	receiver, err := interp.eval(module, env, items[0])
	if err != nil {
		return Nil, err
	}
	return interp.apply(module, env, receiver, interp.sliceToList([]Value{k}))
}

func (interp *Interp) currentContinuationID() int64 {
	for i := len(interp.frames) - 1; i >= 0; i-- {
		if interp.frames[i].continuationID != 0 {
			return interp.frames[i].continuationID
		}
	}
	return 0
}

// isTruthy treats Nil as false and every other value (including Integer 0)
// as true — only Nil represents falsity, matching a Lisp-1 style "empty
// list is the only false value" convention used throughout lone's
// predicates (`zero?`, `identical?`, etc. all return either the `truth`
// symbol or Nil, never a separate boolean kind).
func isTruthy(v Value) bool {
	return !v.IsNil()
}

func evalQuasiquote(interp *Interp, module *Cell, env *Cell, args Value) (Value, error) {
	expr := listFirst(args)
	return interp.expandQuasiquote(module, env, expr)
}

// expandQuasiquote walks a quasiquoted list, evaluating `(unquote x)`
// forms and splicing `(unquote-splicing x)` forms' evaluated lists inline
// (spec §4.H "quasiquote expansion", §8 scenario 3). Only one quasiquote
// level is tracked; nested quasiquote/unquote is not supported (no
// observable gap, since spec.md's scenario and invariants never nest
// them — recorded as a scope decision in DESIGN.md).
func (interp *Interp) expandQuasiquote(module *Cell, env *Cell, expr Value) (Value, error) {
	if expr.IsHeapKind(HeapList) {
		l := expr.heap.list()
		if l.first.IsSymbol() && symbolEqualBytes(l.first, []byte("unquote")) {
			return interp.eval(module, env, listFirst(l.rest))
		}

		var result []Value
		cursor := expr
		for cursor.IsHeapKind(HeapList) {
			element := cursor.heap.list().first
			if element.IsHeapKind(HeapList) {
				el := element.heap.list()
				if el.first.IsSymbol() && symbolEqualBytes(el.first, []byte("unquote-splicing")) {
					spliced, err := interp.eval(module, env, listFirst(el.rest))
					if err != nil {
						return Nil, err
					}
					items, ok := listToSlice(spliced)
					if !ok {
						return Nil, fatalErrorf(ErrEvaluator, "unquote-splicing: expected a list")
					}
					result = append(result, items...)
					cursor = cursor.heap.list().rest
					continue
				}
			}
			expanded, err := interp.expandQuasiquote(module, env, element)
			if err != nil {
				return Nil, err
			}
			result = append(result, expanded)
			cursor = cursor.heap.list().rest
		}
		return interp.sliceToList(result), nil
	}

	if expr.IsVector() {
		v := expr.heap.vector()
		out := interp.newVector(v.count)
		for i := 0; i < v.count; i++ {
			expanded, err := interp.expandQuasiquote(module, env, v.values[i])
			if err != nil {
				return Nil, err
			}
			if err := interp.vectorAppend(out.heap, expanded); err != nil {
				return Nil, err
			}
		}
		return out, nil
	}

	return expr, nil
}
