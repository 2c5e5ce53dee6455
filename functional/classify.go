package functional

import (
	"fmt"
	"reflect"

	"github.com/rogpeppe/sfn/typelist"
)

// Kind is the category of a callable entity.
type Kind uint8

const (
	// NotCallable is the kind of values that denote no function.
	NotCallable Kind = iota

	// FunctionType is the kind of abstract signatures:
	// [Signature] values and reflect.Type values of kind Func.
	FunctionType

	// FunctionPtr is the kind of Go function values
	// and of synthesized [Func] values.
	FunctionPtr

	// FunctionRef is the kind of pointers to function variables.
	FunctionRef

	// MemberFunction is the kind of [Method] values.
	MemberFunction
)

var kindNames = [...]string{
	NotCallable:    "not callable",
	FunctionType:   "function type",
	FunctionPtr:    "function",
	FunctionRef:    "function reference",
	MemberFunction: "member function",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Receiver describes how a member function receives its receiver.
type Receiver uint8

const (
	NoReceiver Receiver = iota

	// ValueReceiver methods take a copy of the receiver T,
	// so they cannot modify it.
	ValueReceiver

	// PointerReceiver methods take *T.
	PointerReceiver

	// InterfaceReceiver methods are methods of an interface type
	// and take the interface value.
	InterfaceReceiver
)

var receiverNames = [...]string{
	NoReceiver:        "none",
	ValueReceiver:     "value",
	PointerReceiver:   "pointer",
	InterfaceReceiver: "interface",
}

func (r Receiver) String() string {
	if int(r) < len(receiverNames) {
		return receiverNames[r]
	}
	return fmt.Sprintf("Receiver(%d)", r)
}

// Nothrow marks the callable entity or abstract signature F as never
// panicking, the counterpart of a noexcept specifier. Nothrow{F} has the
// same kind as F.
type Nothrow struct {
	F any
}

// Info holds the classification of a value.
type Info struct {
	Kind Kind

	// Receiver is set for member functions only.
	Receiver Receiver

	// Signature is the abstract signature of the value.
	// For a member function, the receiver is its first parameter.
	Signature Signature
}

// Classify determines the kind and signature of c:
//
//   - a [Signature], or a reflect.Type of kind Func, is a [FunctionType];
//   - a function value or a [Func] is a [FunctionPtr];
//   - a pointer to a function variable is a [FunctionRef];
//   - a [Method] is a [MemberFunction];
//   - [Nothrow]{F} is classified as F with NoExcept set.
//
// Everything else, including the zero Func, the zero Method and a
// variadic Signature whose last parameter is not a slice, is [NotCallable].
// Function values and references are classified by type: a nil function
// is still a FunctionPtr, although it cannot be transformed.
func Classify(c any) Info {
	switch c := c.(type) {
	case nil:
		return Info{}
	case Nothrow:
		info := Classify(c.F)
		if info.Kind != NotCallable {
			info.Signature.NoExcept = true
		}
		return info
	case Signature:
		if !c.valid() {
			return Info{}
		}
		return Info{
			Kind:      FunctionType,
			Signature: c,
		}
	case reflect.Type:
		if c.Kind() != reflect.Func {
			return Info{}
		}
		return Info{
			Kind:      FunctionType,
			Signature: SignatureFor(c),
		}
	case Func:
		if !c.v.IsValid() {
			return Info{}
		}
		return Info{
			Kind:      FunctionPtr,
			Signature: c.sig,
		}
	case Method:
		if c.recv == nil {
			return Info{}
		}
		return Info{
			Kind:      MemberFunction,
			Receiver:  c.receiver,
			Signature: c.sig,
		}
	}
	t := reflect.TypeOf(c)
	switch {
	case t.Kind() == reflect.Func:
		return Info{
			Kind:      FunctionPtr,
			Signature: SignatureFor(t),
		}
	case t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Func:
		return Info{
			Kind:      FunctionRef,
			Signature: SignatureFor(t.Elem()),
		}
	}
	return Info{}
}

// IsMemberFunction reports whether c is a member function.
func IsMemberFunction(c any) bool {
	return Classify(c).Kind == MemberFunction
}

// IsFunction reports whether c is invocable: a function value,
// function reference or member function.
func IsFunction(c any) bool {
	switch Classify(c).Kind {
	case FunctionPtr, FunctionRef, MemberFunction:
		return true
	}
	return false
}

// IsFunctionType reports whether c is an abstract signature.
func IsFunctionType(c any) bool {
	return Classify(c).Kind == FunctionType
}

// IsFunctional reports whether c is either invocable
// or an abstract signature.
func IsFunctional(c any) bool {
	return Classify(c).Kind != NotCallable
}

// IsNoExcept reports whether c carries the noexcept specifier.
func IsNoExcept(c any) bool {
	return Classify(c).Signature.NoExcept
}

// FunctionTypeOf returns the abstract signature of c.
// It panics if c is not functional.
func FunctionTypeOf(c any) Signature {
	info := Classify(c)
	if info.Kind == NotCallable {
		panic(fmt.Errorf("functional: FunctionTypeOf called on %T: %w", c, ErrNotCallable))
	}
	return info.Signature
}

// ReturnTypesOf returns the result types of c. A function
// with no results (returning "void") has an empty list.
// It panics if c is not functional.
func ReturnTypesOf(c any) typelist.List {
	return FunctionTypeOf(c).Out
}

// ParamTypesOf returns the parameter types of c.
// It panics if c is not functional.
func ParamTypesOf(c any) typelist.List {
	return FunctionTypeOf(c).In
}

// PtrType returns the type of functions with the abstract signature c.
// In Go that is the function type itself.
// It panics if c is not an abstract signature.
func PtrType(c any) reflect.Type {
	return mustFunctionType("PtrType", c).Type()
}

// RefType returns the type of references to functions with
// the abstract signature c: a pointer to the function type.
// It panics if c is not an abstract signature.
func RefType(c any) reflect.Type {
	return reflect.PointerTo(mustFunctionType("RefType", c).Type())
}

func mustFunctionType(op string, c any) Signature {
	sig, err := functionType(c)
	if err != nil {
		panic(fmt.Errorf("functional: %s: %w", op, err))
	}
	return sig
}

// functionType returns the signature of c, which
// must be an abstract signature.
func functionType(c any) (Signature, error) {
	info := Classify(c)
	if info.Kind != FunctionType {
		return Signature{}, fmt.Errorf("%T (%v) is not an abstract signature: %w", c, info.Kind, ErrNotCallable)
	}
	return info.Signature, nil
}
