package typelist

import (
	"fmt"
	"reflect"
)

// Predicate reports whether a type satisfies some condition.
type Predicate func(reflect.Type) bool

// SameAs returns a predicate that reports whether a type is t.
func SameAs(t reflect.Type) Predicate {
	return func(u reflect.Type) bool {
		return u == t
	}
}

// Not returns the negation of p.
func Not(p Predicate) Predicate {
	return func(t reflect.Type) bool {
		return !p(t)
	}
}

// AllOf reports whether every type in l satisfies p.
// It returns true for the empty list.
func AllOf(l List, p Predicate) bool {
	return FindIfNot(l, p) == l.Len()
}

// AnyOf reports whether any type in l satisfies p.
// It returns false for the empty list.
func AnyOf(l List, p Predicate) bool {
	return FindIf(l, p) != l.Len()
}

// NoneOf reports whether no type in l satisfies p.
// It returns true for the empty list.
func NoneOf(l List, p Predicate) bool {
	return !AnyOf(l, p)
}

// FindIf returns the index of the first type in l that satisfies p,
// or l.Len() if there is none.
func FindIf(l List, p Predicate) int {
	for i, t := range l.types() {
		if p(t) {
			return i
		}
	}
	return l.Len()
}

// FindIfNot returns the index of the first type in l that does not
// satisfy p, or l.Len() if there is none.
func FindIfNot(l List, p Predicate) int {
	return FindIf(l, Not(p))
}

// Find returns the index of the first occurrence of t in l,
// or l.Len() if t is not present.
func Find(l List, t reflect.Type) int {
	return FindIf(l, SameAs(t))
}

// CountIf returns the number of types in l that satisfy p.
func CountIf(l List, p Predicate) int {
	n := 0
	for _, t := range l.types() {
		if p(t) {
			n++
		}
	}
	return n
}

// Count returns the number of occurrences of t in l.
func Count(l List, t reflect.Type) int {
	return CountIf(l, SameAs(t))
}

// Filter returns the types in l that satisfy p,
// in their original order.
func Filter(l List, p Predicate) List {
	var ts []reflect.Type
	for _, t := range l.types() {
		if p(t) {
			ts = append(ts, t)
		}
	}
	if len(ts) == l.Len() {
		return l
	}
	return fromOwned(ts)
}

// RemoveIf returns the types in l that do not satisfy p.
func RemoveIf(l List, p Predicate) List {
	return Filter(l, Not(p))
}

// Remove returns l with every occurrence of t removed.
func Remove(l List, t reflect.Type) List {
	return RemoveIf(l, SameAs(t))
}

// Map returns the list formed by applying tmpl to each type in l
// in turn. See [Apply] for how the result of tmpl is interpreted.
func Map(l List, tmpl Template) List {
	ts := make([]reflect.Type, l.Len())
	for i, t := range l.types() {
		ts[i] = Apply(tmpl, t)
	}
	return fromOwned(ts)
}

// Template builds a type from its type arguments.
// A Template may panic if given the wrong number of arguments.
type Template func(args ...reflect.Type) reflect.Type

// Apply instantiates tmpl with the given arguments.
//
// A template can return its result either directly or through a
// named result alias: a struct type whose only field is named Type
// (see [Trait]). In the latter case Apply returns the type of that
// field, so a trait-shaped template can be used anywhere a plain
// one can.
//
// Apply panics if tmpl returns nil.
func Apply(tmpl Template, args ...reflect.Type) reflect.Type {
	t := tmpl(args...)
	if t == nil {
		panic(fmt.Errorf("typelist: template returned nil type for arguments %v", args))
	}
	if r, ok := resultAlias(t); ok {
		return r
	}
	return t
}

// Trait returns a struct type with a single field named Type of type t:
// the named result alias recognized by [Apply].
func Trait(t reflect.Type) reflect.Type {
	return reflect.StructOf([]reflect.StructField{{
		Name: "Type",
		Type: t,
	}})
}

func resultAlias(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() != reflect.Struct || t.NumField() != 1 {
		return nil, false
	}
	f := t.Field(0)
	if f.Name != "Type" {
		return nil, false
	}
	return f.Type, true
}

// Pointer is a template taking one type argument T and returning *T.
func Pointer(args ...reflect.Type) reflect.Type {
	return reflect.PointerTo(unary("Pointer", args))
}

// Slice is a template taking one type argument T and returning []T.
func Slice(args ...reflect.Type) reflect.Type {
	return reflect.SliceOf(unary("Slice", args))
}

// Elem is a template taking one type argument and returning its element
// type. It is a trait: for types with no element type it returns the
// argument unchanged.
func Elem(args ...reflect.Type) reflect.Type {
	t := unary("Elem", args)
	switch t.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Pointer, reflect.Slice:
		return Trait(t.Elem())
	}
	return Trait(t)
}

func unary(name string, args []reflect.Type) reflect.Type {
	if len(args) != 1 {
		panic(fmt.Errorf("typelist: %s template takes 1 argument, got %d", name, len(args)))
	}
	return args[0]
}
