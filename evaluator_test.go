package main

import "testing"

import "github.com/stretchr/testify/assert"

// evalString reads every top-level form in src and evaluates it in a fresh
// interpreter's null module environment, returning the last result.
func evalString(t *testing.T, src string) (Value, error) {
	t.Helper()
	interp, err := NewInterp()
	assert.NoError(t, err)

	forms, err := interp.readAll([]byte(src))
	assert.NoError(t, err)

	env := interp.modules.null.module().environment
	result := Nil
	for _, form := range forms {
		result, err = interp.eval(interp.modules.null, env, form)
		if err != nil {
			return Nil, err
		}
	}
	return result, nil
}

func TestEvalSelfEvaluatingForms(t *testing.T) {
	v, err := evalString(t, "42")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), v.AsInteger())
}

func TestEvalUnboundSymbolIsFatal(t *testing.T) {
	_, err := evalString(t, "nonexistent")
	assert.Error(t, err)
}

func TestEvalIf(t *testing.T) {
	v, err := evalString(t, "(if 1 10 20)")
	assert.NoError(t, err)
	assert.Equal(t, int64(10), v.AsInteger())

	v, err = evalString(t, "(if () 10 20)")
	assert.NoError(t, err)
	assert.Equal(t, int64(20), v.AsInteger())
}

func TestEvalLetBindsInCurrentEnvironment(t *testing.T) {
	v, err := evalString(t, "(let x 5) x")
	assert.NoError(t, err)
	assert.Equal(t, int64(5), v.AsInteger())
}

func TestEvalSetUpdatesExistingBindingInOuterScope(t *testing.T) {
	v, err := evalString(t, `
		(let x 1)
		(let f (lambda () (set x 99)))
		(f)
		x
	`)
	assert.NoError(t, err)
	assert.Equal(t, int64(99), v.AsInteger())
}

func TestEvalSetCreatesBindingWhenNoneExists(t *testing.T) {
	v, err := evalString(t, "(set y 3) y")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), v.AsInteger())
}

func TestEvalLambdaApplication(t *testing.T) {
	v, err := evalString(t, "(let add1 (lambda (n) (if n n 0))) (add1 7)")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), v.AsInteger())
}

func TestEvalLambdaVariadicParameter(t *testing.T) {
	v, err := evalString(t, `
		(let count (lambda (first . rest) rest))
		(count 1 2 3 4)
	`)
	assert.NoError(t, err)
	items, ok := listToSlice(v)
	assert.True(t, ok)
	assert.Len(t, items, 3)
}

func TestEvalLambdaArityMismatchIsFatal(t *testing.T) {
	_, err := evalString(t, "(let f (lambda (a b) a)) (f 1)")
	assert.Error(t, err)
}

func TestEvalLambdaBangDoesNotEvaluateArguments(t *testing.T) {
	v, err := evalString(t, `
		(let capture (lambda! (expr) expr))
		(capture (this-is-unbound-and-unevaluated))
	`)
	assert.NoError(t, err)
	assert.True(t, v.IsHeapKind(HeapList))
}

func TestEvalBeginReturnsLastForm(t *testing.T) {
	v, err := evalString(t, "(begin 1 2 3)")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), v.AsInteger())
}

func TestEvalWhenUnless(t *testing.T) {
	v, err := evalString(t, "(when 1 99)")
	assert.NoError(t, err)
	assert.Equal(t, int64(99), v.AsInteger())

	v, err = evalString(t, "(unless () 99)")
	assert.NoError(t, err)
	assert.Equal(t, int64(99), v.AsInteger())
}

func TestEvalQuoteDoesNotEvaluate(t *testing.T) {
	v, err := evalString(t, "(quote (a b c))")
	assert.NoError(t, err)
	assert.True(t, v.IsHeapKind(HeapList))
	assert.Equal(t, "a", string(symbolBytes(listFirst(v))))
}

func TestEvalQuasiquoteUnquote(t *testing.T) {
	v, err := evalString(t, "(let x 5) `(a ,x c)")
	assert.NoError(t, err)
	items, ok := listToSlice(v)
	assert.True(t, ok)
	assert.Len(t, items, 3)
	assert.Equal(t, int64(5), items[1].AsInteger())
}

func TestEvalQuasiquoteUnquoteSplicing(t *testing.T) {
	v, err := evalString(t, "(let xs (quote (1 2 3))) `(a ,@xs b)")
	assert.NoError(t, err)
	items, ok := listToSlice(v)
	assert.True(t, ok)
	assert.Len(t, items, 5)
	assert.Equal(t, int64(1), items[1].AsInteger())
	assert.Equal(t, int64(3), items[3].AsInteger())
}

// Continuation semantics: escape-only, single-shot, upward continuations.

func TestControlReturnEscapesEarly(t *testing.T) {
	v, err := evalString(t, `
		(control (lambda (k)
			(begin
				(k 1)
				2)))
	`)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), v.AsInteger())
}

func TestControlWithoutInvocationReturnsReceiverResult(t *testing.T) {
	v, err := evalString(t, "(control (lambda (k) 42))")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), v.AsInteger())
}

func TestReturnUnwindsToEnclosingControl(t *testing.T) {
	v, err := evalString(t, `
		(control (lambda (k)
			(begin
				(return 7)
				99)))
	`)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), v.AsInteger())
}

func TestReturnOutsideControlIsFatal(t *testing.T) {
	_, err := evalString(t, "(return 1)")
	assert.Error(t, err)
}

func TestContinuationValueIsFirstClass(t *testing.T) {
	v, err := evalWithIntrinsics(t, `
		(import lone)
		(let saved ())
		(control (lambda (k) (set saved k)))
		(continuation? saved)
	`)
	assert.NoError(t, err)
	assert.True(t, isTruthy(v))
}

func TestEvalApplyingNonCallableIsFatal(t *testing.T) {
	_, err := evalString(t, "(1 2 3)")
	assert.Error(t, err)
}
