package functional

import (
	"fmt"
	"reflect"
)

// Sequencable reports whether f and rest can be passed to [Sequence]:
// every one is functional and they all have the same parameter list.
func Sequencable(f any, rest ...any) bool {
	return checkSequence(f, rest) == nil
}

func checkSequence(f any, rest []any) error {
	var v violations
	sig, ok := v.invocable("callable 0", f)
	for i, r := range rest {
		what := fmt.Sprintf("callable %d", i+1)
		rsig, rok := v.invocable(what, r)
		if !ok || !rok {
			continue
		}
		if rsig.In != sig.In || rsig.Variadic != sig.Variadic {
			v.addf("%s: parameters %s differ from %s", what, rsig.params(), sig.params())
		}
	}
	return v.err("sequencable")
}

// Sequence returns a function that calls f and then each of rest in
// order, passing all of them the same arguments, and returns the results
// of the last one. The results of earlier calls are discarded.
//
// With no rest, Sequence returns f unwrapped. The result is noexcept
// when every callable is.
func Sequence(f any, rest ...any) (Func, error) {
	if err := checkSequence(f, rest); err != nil {
		logRejected("sequence", err)
		return Func{}, err
	}
	fns := make([]Func, 0, 1+len(rest))
	for _, c := range append([]any{f}, rest...) {
		fn, err := Unwrap(c)
		if err != nil {
			return Func{}, err
		}
		fns = append(fns, fn)
	}
	if len(fns) == 1 {
		return fns[0], nil
	}
	sig := Signature{
		In:       fns[0].sig.In,
		Out:      fns[len(fns)-1].sig.Out,
		NoExcept: allNoExcept(fns),
	}
	return synthesize("sequence", sig, fns, func(args []reflect.Value) []reflect.Value {
		var results []reflect.Value
		for _, fn := range fns {
			results = call(fn.v, args)
		}
		return results
	}), nil
}
