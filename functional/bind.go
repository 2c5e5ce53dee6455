package functional

import (
	"reflect"

	"github.com/rogpeppe/sfn/typelist"
)

// BindableFront reports whether values can be bound to the leading
// parameters of f by [BindFront]: there are no more values than
// parameters and each parameter is constructible from its value.
func BindableFront(f any, values ...any) bool {
	return checkBind(true, f, values) == nil
}

// BindableBack is like [BindableFront] for the trailing parameters.
func BindableBack(f any, values ...any) bool {
	return checkBind(false, f, values) == nil
}

func bindOp(front bool) string {
	if front {
		return "bindable front"
	}
	return "bindable back"
}

func checkBind(front bool, f any, values []any) error {
	var v violations
	sig, ok := v.invocable("callable", f)
	if !ok {
		return v.err(bindOp(front))
	}
	if len(values) > sig.Arity() {
		v.addf("%d values bound to function with %d parameters", len(values), sig.Arity())
		return v.err(bindOp(front))
	}
	bound, _ := splitBound(front, sig.In, len(values))
	for i, val := range values {
		if p := bound.At(i); !bindable(p, val) {
			v.addf("value %d: cannot construct %v from %T", i, p, val)
		}
	}
	return v.err(bindOp(front))
}

// splitBound splits params into the n parameters that are
// bound and those that remain.
func splitBound(front bool, params typelist.List, n int) (bound, unbound typelist.List) {
	if front {
		return params.Sublist(0, n), params.Sublist(n, typelist.NPos)
	}
	k := params.Len() - n
	return params.Sublist(k, typelist.NPos), params.Sublist(0, k)
}

// BindFront returns a function taking the parameters of f that follow
// the first len(values), which calls f with values followed by its own
// arguments. Each bound parameter is constructed afresh from its value
// on every call, and a bound slice is copied, so no call observes changes
// an earlier one made to it. Pointers, maps and channels are shared
// by every call, as they are in Go.
//
// With no values, BindFront returns f unwrapped. The result is
// noexcept if f is.
func BindFront(f any, values ...any) (Func, error) {
	return bind(true, f, values)
}

// BindBack is like [BindFront] but binds the trailing parameters of f:
// the function returned calls f with its own arguments followed by values.
func BindBack(f any, values ...any) (Func, error) {
	return bind(false, f, values)
}

func bind(front bool, f any, values []any) (Func, error) {
	op := "bind back"
	if front {
		op = "bind front"
	}
	if err := checkBind(front, f, values); err != nil {
		logRejected(op, err)
		return Func{}, err
	}
	fn, err := Unwrap(f)
	if err != nil {
		return Func{}, err
	}
	if len(values) == 0 {
		return fn, nil
	}
	boundParams, unbound := splitBound(front, fn.sig.In, len(values))
	bound := make([]reflect.Value, len(values))
	params := boundParams.Types()
	for i, val := range values {
		if val == nil {
			bound[i] = reflect.Zero(params[i])
		} else {
			bound[i] = reflect.ValueOf(val)
		}
	}
	sig := Signature{
		In:       unbound,
		Out:      fn.sig.Out,
		NoExcept: fn.sig.NoExcept,
	}
	return synthesize(op, sig, []Func{fn}, func(args []reflect.Value) []reflect.Value {
		in := make([]reflect.Value, 0, len(args)+len(bound))
		if !front {
			in = append(in, args...)
		}
		for i, b := range bound {
			in = append(in, fresh(construct(b, params[i])))
		}
		if front {
			in = append(in, args...)
		}
		return call(fn.v, in)
	}), nil
}
