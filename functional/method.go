package functional

import (
	"fmt"
	"reflect"
)

// Method is a member function: a method of a particular type, not bound
// to any receiver. Its signature takes the receiver as the first
// parameter, typed according to the method's receiver kind.
//
// Only exported methods can be described.
type Method struct {
	name     string
	recv     reflect.Type
	receiver Receiver
	sig      Signature

	// fn holds the method expression (receiver first).
	// It is invalid for methods of interface types,
	// which are called through index.
	fn    reflect.Value
	index int
}

// MethodOf returns the method of T with the given name.
// It panics if there is no such method.
//
// If T is not a pointer or interface type and the method is declared
// on *T, the result has a pointer receiver.
func MethodOf[T any](name string) Method {
	m, err := MethodFor(reflect.TypeFor[T](), name)
	if err != nil {
		panic(err)
	}
	return m
}

// MethodFor is like [MethodOf] but takes the receiver type
// as a reflect.Type and returns an error instead of panicking.
func MethodFor(t reflect.Type, name string) (Method, error) {
	if t == nil {
		return Method{}, fmt.Errorf("functional: method %q of nil type: %w", name, ErrNotCallable)
	}
	if t.Kind() == reflect.Interface {
		im, ok := t.MethodByName(name)
		if !ok {
			return Method{}, noMethod(t, name)
		}
		sig := SignatureFor(im.Type)
		sig.In = sig.In.Prepend(t)
		return Method{
			name:     name,
			recv:     t,
			receiver: InterfaceReceiver,
			sig:      sig,
			index:    im.Index,
		}, nil
	}
	receiver := ValueReceiver
	if t.Kind() == reflect.Pointer {
		receiver = PointerReceiver
	}
	m, ok := t.MethodByName(name)
	if !ok && t.Kind() != reflect.Pointer {
		t = reflect.PointerTo(t)
		receiver = PointerReceiver
		m, ok = t.MethodByName(name)
	}
	if !ok {
		return Method{}, noMethod(t, name)
	}
	return Method{
		name:     name,
		recv:     t,
		receiver: receiver,
		sig:      SignatureFor(m.Type),
		fn:       m.Func,
	}, nil
}

func noMethod(t reflect.Type, name string) error {
	return fmt.Errorf("functional: type %v has no method %q: %w", t, name, ErrNotCallable)
}

// Name returns the method name.
func (m Method) Name() string {
	return m.name
}

// RecvType returns the type of the receiver parameter.
func (m Method) RecvType() reflect.Type {
	return m.recv
}

// String returns the method expression denoting m,
// for example "(*bytes.Buffer).Len".
func (m Method) String() string {
	if m.recv == nil {
		return "<nil method>"
	}
	if m.receiver == PointerReceiver {
		return fmt.Sprintf("(%v).%s", m.recv, m.name)
	}
	return fmt.Sprintf("%v.%s", m.recv, m.name)
}
