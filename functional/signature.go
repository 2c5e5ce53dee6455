package functional

import (
	"fmt"
	"reflect"

	"github.com/rogpeppe/sfn/typelist"
)

// Signature is an abstract function signature: parameter and result
// types independent of how a function is referred to.
//
// Signatures are comparable: two signatures are the same
// exactly when they compare equal with ==.
type Signature struct {
	In  typelist.List
	Out typelist.List

	// Variadic reports whether the last element of In is
	// a ...T parameter (held in In as []T).
	Variadic bool

	// NoExcept reports whether a function with this signature
	// is declared never to panic.
	NoExcept bool
}

// SignatureOf returns the signature of the function type F.
// It panics if F is not a function type.
func SignatureOf[F any]() Signature {
	return SignatureFor(reflect.TypeFor[F]())
}

// SignatureFor returns the signature of the function type t.
// It panics if t is not a function type.
func SignatureFor(t reflect.Type) Signature {
	if t == nil || t.Kind() != reflect.Func {
		panic(fmt.Errorf("functional: SignatureFor called on non-function type %v", t))
	}
	in := make([]reflect.Type, t.NumIn())
	for i := range in {
		in[i] = t.In(i)
	}
	out := make([]reflect.Type, t.NumOut())
	for i := range out {
		out[i] = t.Out(i)
	}
	return Signature{
		In:       typelist.Make(in...),
		Out:      typelist.Make(out...),
		Variadic: t.IsVariadic(),
	}
}

// Arity returns the number of parameters.
func (s Signature) Arity() int {
	return s.In.Len()
}

// Type returns the Go function type with this signature.
// The NoExcept flag has no representation in Go types.
func (s Signature) Type() reflect.Type {
	return reflect.FuncOf(s.In.Types(), s.Out.Types(), s.Variadic)
}

func (s Signature) String() string {
	str := s.Type().String()
	if s.NoExcept {
		str += " noexcept"
	}
	return str
}

// valid reports whether s describes a Go function type:
// a variadic signature must end with a slice parameter.
func (s Signature) valid() bool {
	return !s.Variadic || (!s.In.Empty() && s.In.Back().Kind() == reflect.Slice)
}

// sameShape reports whether s and t agree in everything but NoExcept.
func (s Signature) sameShape(t Signature) bool {
	return s.In == t.In && s.Out == t.Out && s.Variadic == t.Variadic
}

// params formats the parameter list of s.
func (s Signature) params() string {
	if s.Variadic {
		return s.In.String() + " (variadic)"
	}
	return s.In.String()
}
