package main

// cons allocates a new pair (spec §4.E "List (cons)", "construct(a,b)").
func (interp *Interp) cons(first, rest Value) Value {
	return HeapValue(interp.heap.allocate(HeapList, &ListData{first: first, rest: rest}))
}

// listFirst and listRest implement the `first`/`rest` accessors. Applying
// them to Nil (the empty list) returns Nil, matching the original's
// treatment of () as both the empty list and a valid argument to these
// accessors.
func listFirst(v Value) Value {
	if v.IsNil() {
		return Nil
	}
	return v.heap.list().first
}

func listRest(v Value) Value {
	if v.IsNil() {
		return Nil
	}
	return v.heap.list().rest
}

// listToSlice destructures a proper list into a Go slice, in order. It
// fails (ok=false) if the list is improper (a non-Nil, non-List tail).
func listToSlice(v Value) (values []Value, ok bool) {
	for {
		if v.IsNil() {
			return values, true
		}
		if !v.IsHeapKind(HeapList) {
			return nil, false
		}
		l := v.heap.list()
		values = append(values, l.first)
		v = l.rest
	}
}

// sliceToList builds a proper list from a Go slice, in order.
func (interp *Interp) sliceToList(values []Value) Value {
	result := Nil
	for i := len(values) - 1; i >= 0; i-- {
		result = interp.cons(values[i], result)
	}
	return result
}

// listLength counts the elements of a proper list; improper lists return
// the count of the proper prefix.
func listLength(v Value) int {
	n := 0
	for v.IsHeapKind(HeapList) {
		n++
		v = v.heap.list().rest
	}
	return n
}

// listMap applies f to every element of xs, in order, collecting results
// into a new list (spec §4.E "map(f, xs)").
func (interp *Interp) listMap(f func(Value) (Value, error), xs Value) (Value, error) {
	items, ok := listToSlice(xs)
	if !ok {
		return Nil, fatalErrorf(ErrEvaluator, "list/map: improper list")
	}
	results := make([]Value, len(items))
	for i, item := range items {
		result, err := f(item)
		if err != nil {
			return Nil, err
		}
		results[i] = result
	}
	return interp.sliceToList(results), nil
}

// listReduce folds f over xs left-to-right starting from init (spec §4.E
// "reduce(f, init, xs)").
func (interp *Interp) listReduce(f func(acc, item Value) (Value, error), init, xs Value) (Value, error) {
	items, ok := listToSlice(xs)
	if !ok {
		return Nil, fatalErrorf(ErrEvaluator, "list/reduce: improper list")
	}
	acc := init
	for _, item := range items {
		next, err := f(acc, item)
		if err != nil {
			return Nil, err
		}
		acc = next
	}
	return acc, nil
}

// listFlatten concatenates a list of lists into one list, one level deep
// (spec §4.E "flatten(xxs)").
func (interp *Interp) listFlatten(xxs Value) (Value, error) {
	outer, ok := listToSlice(xxs)
	if !ok {
		return Nil, fatalErrorf(ErrEvaluator, "list/flatten: improper outer list")
	}
	var flat []Value
	for _, inner := range outer {
		items, ok := listToSlice(inner)
		if !ok {
			return Nil, fatalErrorf(ErrEvaluator, "list/flatten: improper inner list")
		}
		flat = append(flat, items...)
	}
	return interp.sliceToList(flat), nil
}
