package functional

import (
	"reflect"
)

// Castable reports whether a callable with the signature of source
// can be cast to the signature of target with [Cast].
//
// Let n be the smaller of the two arities. Each of the first n source
// parameters must be constructible from the corresponding target
// parameter. Remaining source parameters are filled with zero values
// and remaining target parameters are ignored. The target must either
// have no results or the same number of results as the source, each
// constructible from the corresponding source result.
func Castable(source, target any) bool {
	return checkCast(source, target) == nil
}

func checkCast(source, target any) error {
	var v violations
	src, sok := v.invocable("source", source)
	tgt, tok := v.signature("target", target)
	if !sok || !tok {
		return v.err("castable")
	}
	n := min(src.Arity(), tgt.Arity())
	for i := range n {
		to, from := src.In.At(i), tgt.In.At(i)
		if !constructible(to, from) {
			v.addf("parameter %d: cannot construct %v from %v", i, to, from)
		}
	}
	if !tgt.Out.Empty() {
		if tgt.Out.Len() != src.Out.Len() {
			v.addf("results: cannot construct %v from %v", tgt.Out, src.Out)
		} else {
			for i, to := range tgt.Out.All() {
				if from := src.Out.At(i); !constructible(to, from) {
					v.addf("result %d: cannot construct %v from %v", i, to, from)
				}
			}
		}
	}
	return v.err("castable")
}

// Cast returns f adapted to the abstract signature target.
//
// Arguments are converted to f's parameter types. If target has fewer
// parameters than f, f's remaining parameters receive zero values; if
// it has more, the extra arguments are ignored. Results are converted
// to target's result types, or discarded if target has none.
//
// If f already has target's parameters and results, and is noexcept if
// target is, f is returned unchanged. Otherwise the result has exactly
// the signature target; if target is noexcept and f is not, a panic
// in f surfaces as a *NoExceptError.
func Cast(target, f any) (Func, error) {
	tgt, err := functionType(target)
	if err != nil {
		return Func{}, &ConstraintError{Op: "castable", Err: err}
	}
	if err := checkCast(f, tgt); err != nil {
		logRejected("cast", err)
		return Func{}, err
	}
	src, err := Unwrap(f)
	if err != nil {
		return Func{}, err
	}
	if src.sig.sameShape(tgt) && (!tgt.NoExcept || src.sig.NoExcept) {
		return src, nil
	}
	srcIn := src.sig.In.Types()
	tgtOut := tgt.Out.Types()
	n := min(len(srcIn), tgt.Arity())
	return synthesize("cast", tgt, []Func{src}, func(args []reflect.Value) []reflect.Value {
		in := make([]reflect.Value, len(srcIn))
		for i, t := range srcIn {
			if i < n {
				in[i] = construct(args[i], t)
			} else {
				in[i] = reflect.Zero(t)
			}
		}
		out := call(src.v, in)
		if len(tgtOut) == 0 {
			return nil
		}
		for i, t := range tgtOut {
			out[i] = construct(out[i], t)
		}
		return out
	}), nil
}
