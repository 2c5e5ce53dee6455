package functional

import (
	"fmt"
	"reflect"
)

// Func is a callable produced by this package: a function value
// together with its abstract signature. The zero Func is not callable.
//
// A Func is itself a callable entity of kind [FunctionPtr], so
// it can be passed to any transformer.
type Func struct {
	v   reflect.Value
	sig Signature
}

// Signature returns the signature of f.
func (f Func) Signature() Signature {
	return f.sig
}

// Value returns the function value held by f.
func (f Func) Value() reflect.Value {
	return f.v
}

// Interface returns the function value held by f as an interface
// value: it can be converted with a type assertion to f.Signature().Type().
func (f Func) Interface() any {
	return f.v.Interface()
}

// Pointer returns the code pointer of f. Two Funcs wrapping the same
// Go function have the same pointer; all synthesized Funcs share the
// pointer of their common trampoline, so Pointer can distinguish a
// function from a wrapper around it but not two wrappers from each other.
func (f Func) Pointer() uintptr {
	return f.v.Pointer()
}

// Call calls f with the given arguments and returns its results.
// A nil argument is passed as the zero value of its parameter type;
// a variadic trailing parameter takes a slice. Call panics as
// reflect.Value.Call does if the arguments do not match.
func (f Func) Call(args ...any) []any {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil && i < f.sig.In.Len() {
			in[i] = reflect.Zero(f.sig.In.At(i))
			continue
		}
		in[i] = reflect.ValueOf(arg)
	}
	out := call(f.v, in)
	results := make([]any, len(out))
	for i, r := range out {
		results[i] = r.Interface()
	}
	return results
}

func (f Func) String() string {
	if !f.v.IsValid() {
		return "<nil Func>"
	}
	return f.sig.String()
}

// As returns the function held by f as a value of type F.
// It panics if f does not hold a function of type F.
func As[F any](f Func) F {
	fn, ok := f.Interface().(F)
	if !ok {
		panic(fmt.Errorf("functional: %v is not of type %v", f, reflect.TypeFor[F]()))
	}
	return fn
}

// Must returns f if err is nil and panics otherwise.
// It is intended for composing callables whose legality
// is known in advance:
//
//	inc := functional.As[func(int) int](functional.Must(functional.BindFront(add, 1)))
func Must(f Func, err error) Func {
	if err != nil {
		panic(err)
	}
	return f
}

// call calls fn, passing the trailing argument
// of a variadic function as a slice.
func call(fn reflect.Value, args []reflect.Value) []reflect.Value {
	if fn.Type().IsVariadic() {
		return fn.CallSlice(args)
	}
	return fn.Call(args)
}

// synthesize returns a new Func with signature sig implemented by impl,
// which calls the given callees. If sig claims noexcept and not every
// callee does, a panic escaping impl is replaced by a *NoExceptError.
func synthesize(op string, sig Signature, callees []Func, impl func([]reflect.Value) []reflect.Value) Func {
	if sig.NoExcept && !allNoExcept(callees) {
		impl = guardNoExcept(op, sig, impl)
	}
	logSynthesized(op, sig)
	return Func{
		v:   reflect.MakeFunc(sig.Type(), impl),
		sig: sig,
	}
}

func guardNoExcept(op string, sig Signature, impl func([]reflect.Value) []reflect.Value) func([]reflect.Value) []reflect.Value {
	return func(args []reflect.Value) []reflect.Value {
		defer func() {
			if r := recover(); r != nil {
				err := &NoExceptError{
					Op:        op,
					Signature: sig,
					Value:     r,
				}
				currentLogger().Error().Err(err).Msg("panic escaped noexcept callable")
				panic(err)
			}
		}()
		return impl(args)
	}
}

func allNoExcept(fs []Func) bool {
	for _, f := range fs {
		if !f.sig.NoExcept {
			return false
		}
	}
	return true
}
