package functional

import (
	"fmt"
	"reflect"
)

// Unwrap returns c as a plain function. A member function becomes a
// function taking the receiver as its first parameter; calling it as
// f(r, args...) is equivalent to r.M(args...). Any other invocable entity
// is returned unchanged: the result wraps the very same function. The
// result is noexcept exactly when c is.
//
// Unwrap returns an error wrapping [ErrNotCallable] if c is not invocable
// (abstract signatures cannot be invoked), or [ErrNilFunction] if c is a
// nil function.
func Unwrap(c any) (Func, error) {
	switch c := c.(type) {
	case nil:
		return Func{}, fmt.Errorf("functional: cannot unwrap nil: %w", ErrNotCallable)
	case Nothrow:
		f, err := Unwrap(c.F)
		if err != nil {
			return Func{}, err
		}
		f.sig.NoExcept = true
		return f, nil
	case Func:
		if !c.v.IsValid() {
			return Func{}, fmt.Errorf("functional: cannot unwrap zero Func: %w", ErrNotCallable)
		}
		return c, nil
	case Method:
		return unwrapMethod(c)
	}
	info := Classify(c)
	v := reflect.ValueOf(c)
	switch info.Kind {
	case FunctionPtr:
		if v.IsNil() {
			return Func{}, fmt.Errorf("functional: cannot unwrap %T: %w", c, ErrNilFunction)
		}
	case FunctionRef:
		if v.IsNil() || v.Elem().IsNil() {
			return Func{}, fmt.Errorf("functional: cannot unwrap %T: %w", c, ErrNilFunction)
		}
		// Take the function the reference refers to now,
		// not whatever the variable might hold later.
		v = reflect.ValueOf(v.Elem().Interface())
	default:
		return Func{}, fmt.Errorf("functional: cannot unwrap %T (%v): %w", c, info.Kind, ErrNotCallable)
	}
	return Func{
		v:   v,
		sig: info.Signature,
	}, nil
}

func unwrapMethod(m Method) (Func, error) {
	if m.recv == nil {
		return Func{}, fmt.Errorf("functional: cannot unwrap zero Method: %w", ErrNotCallable)
	}
	if m.fn.IsValid() {
		return Func{
			v:   m.fn,
			sig: m.sig,
		}, nil
	}
	// Interface methods have no method expression value,
	// so dispatch through the receiver argument.
	index := m.index
	return synthesize("unwrap", m.sig, nil, func(args []reflect.Value) []reflect.Value {
		return call(args[0].Method(index), args[1:])
	}), nil
}

// isNilFunction reports whether c, stripped of any Nothrow,
// is a nil function value or a reference to a nil function.
func isNilFunction(c any) bool {
	for {
		n, ok := c.(Nothrow)
		if !ok {
			break
		}
		c = n.F
	}
	switch c.(type) {
	case nil, Func, Method, Signature, reflect.Type:
		return false
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Func:
		return v.IsNil()
	case reflect.Pointer:
		if v.Type().Elem().Kind() != reflect.Func {
			return false
		}
		return v.IsNil() || v.Elem().IsNil()
	}
	return false
}
