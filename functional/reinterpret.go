package functional

import (
	"reflect"
)

// Reinterpretable reports whether a callable with the signature of
// source can be exposed with the signature of target by [Reinterpret].
//
// The signatures must have the same number of parameters and of results,
// target must not be noexcept, and each parameter and result pair must
// either be identical or pair an unsafe.Pointer-kind type with a pointer
// type. No value is ever converted.
func Reinterpretable(source, target any) bool {
	return checkReinterpret(source, target) == nil
}

func checkReinterpret(source, target any) error {
	var v violations
	src, sok := v.invocable("source", source)
	tgt, tok := v.signature("target", target)
	if !sok || !tok {
		return v.err("reinterpretable")
	}
	if tgt.NoExcept {
		v.addf("target %v must not be noexcept", tgt)
	}
	if src.Arity() != tgt.Arity() {
		v.addf("arity %d differs from target arity %d", src.Arity(), tgt.Arity())
	} else {
		for i, from := range tgt.In.All() {
			if to := src.In.At(i); !reinterpretable(to, from) {
				v.addf("parameter %d: cannot reinterpret %v as %v", i, from, to)
			}
		}
	}
	if src.Out.Len() != tgt.Out.Len() {
		v.addf("result count %d differs from target result count %d", src.Out.Len(), tgt.Out.Len())
	} else {
		for i, to := range tgt.Out.All() {
			if from := src.Out.At(i); !reinterpretable(from, to) {
				v.addf("result %d: cannot reinterpret %v as %v", i, from, to)
			}
		}
	}
	return v.err("reinterpretable")
}

// Reinterpret returns f exposed with the abstract signature target,
// reinterpreting pointers as unsafe pointers and vice versa. It is
// intended for callbacks whose declared signature carries an opaque
// pointer where the implementation takes a typed one:
//
//	cb := functional.Must(functional.Reinterpret(
//		functional.SignatureOf[func(unsafe.Pointer, int)](),
//		(*Widget).Resize,
//	))
//
// If f already has the signature of target, f is returned unchanged.
// The result is noexcept if f is.
func Reinterpret(target, f any) (Func, error) {
	tgt, err := functionType(target)
	if err != nil {
		return Func{}, &ConstraintError{Op: "reinterpretable", Err: err}
	}
	if err := checkReinterpret(f, tgt); err != nil {
		logRejected("reinterpret", err)
		return Func{}, err
	}
	src, err := Unwrap(f)
	if err != nil {
		return Func{}, err
	}
	if src.sig.sameShape(tgt) {
		return src, nil
	}
	srcIn := src.sig.In.Types()
	tgtOut := tgt.Out.Types()
	sig := tgt
	sig.NoExcept = src.sig.NoExcept
	return synthesize("reinterpret", sig, []Func{src}, func(args []reflect.Value) []reflect.Value {
		in := make([]reflect.Value, len(args))
		for i, arg := range args {
			in[i] = reinterpret(arg, srcIn[i])
		}
		out := call(src.v, in)
		for i, t := range tgtOut {
			out[i] = reinterpret(out[i], t)
		}
		return out
	}), nil
}
