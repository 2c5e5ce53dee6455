// Package typelist implements immutable, ordered sequences of types
// together with the usual algebra over them: concatenation, slicing,
// selection, predicate search, filtering and mapping.
//
// A [List] is canonical: two lists holding the same types in the same
// order compare equal with ==, so a List may be used as a map key or
// compared directly, much as reflect.Type values can. The zero List is
// the empty list.
//
// Every operation returns a new List; no List is ever modified.
// Operations whose preconditions do not hold (taking the front of an
// empty list, indexing past its end) panic, just as indexing a slice
// out of range does.
package typelist

import (
	"fmt"
	"iter"
	"math"
	"reflect"
	"slices"
	"strings"
)

// NPos is the size argument to [List.Sublist] and [List.Erase] meaning
// "up to the end of the list".
const NPos = math.MaxInt

// List holds an ordered sequence of types.
type List struct {
	e *entry
}

// Make returns the list holding the given types in order.
// It panics if any of them is nil.
func Make(ts ...reflect.Type) List {
	for i, t := range ts {
		if t == nil {
			panic(fmt.Errorf("typelist: nil type at index %d", i))
		}
	}
	return List{lists.make(slices.Clone(ts))}
}

// fromOwned is like Make but takes ownership of ts and
// does not check it for nil elements.
func fromOwned(ts []reflect.Type) List {
	return List{lists.make(ts)}
}

func (l List) types() []reflect.Type {
	if l.e == nil {
		return nil
	}
	return l.e.types
}

// Len returns the number of types in l.
func (l List) Len() int {
	return len(l.types())
}

// Empty reports whether l holds no types.
func (l List) Empty() bool {
	return l.e == nil
}

// Types returns a copy of the types in l.
func (l List) Types() []reflect.Type {
	return slices.Clone(l.types())
}

// All returns an iterator over the index and type
// of each element of l.
func (l List) All() iter.Seq2[int, reflect.Type] {
	return slices.All(l.types())
}

// String returns the list formatted as a parenthesized,
// comma-separated sequence, for example "(int, *string)".
func (l List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range l.types() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteByte(')')
	return b.String()
}

// At returns the i'th type in l.
// It panics if i is out of range.
func (l List) At(i int) reflect.Type {
	ts := l.types()
	if i < 0 || i >= len(ts) {
		panic(fmt.Errorf("typelist: index %d out of range for list of length %d", i, len(ts)))
	}
	return ts[i]
}

// Front returns the first type in l.
// It panics if l is empty.
func (l List) Front() reflect.Type {
	l.mustNotBeEmpty("Front")
	return l.e.types[0]
}

// Back returns the last type in l.
// It panics if l is empty.
func (l List) Back() reflect.Type {
	l.mustNotBeEmpty("Back")
	return l.e.types[len(l.e.types)-1]
}

// DropFront returns l without its first type.
// It panics if l is empty.
func (l List) DropFront() List {
	l.mustNotBeEmpty("DropFront")
	return fromOwned(l.e.types[1:])
}

// DropBack returns l without its last type.
// It panics if l is empty.
func (l List) DropBack() List {
	l.mustNotBeEmpty("DropBack")
	return fromOwned(l.e.types[:len(l.e.types)-1])
}

func (l List) mustNotBeEmpty(op string) {
	if l.Empty() {
		panic(fmt.Errorf("typelist: %s called on empty List", op))
	}
}

// Concat returns the types of l followed by the types of m.
func (l List) Concat(m List) List {
	switch {
	case l.Empty():
		return m
	case m.Empty():
		return l
	}
	return fromOwned(slices.Concat(l.types(), m.types()))
}

// Append returns l with t added at the end.
func (l List) Append(t reflect.Type) List {
	return l.Concat(Make(t))
}

// Prepend returns l with t added at the start.
func (l List) Prepend(t reflect.Type) List {
	return Make(t).Concat(l)
}

// Sublist returns the types at indexes [index, index+size) of l,
// clamped to the bounds of l. The result is empty if index >= l.Len()
// or size is zero. Pass [NPos] as size to take everything from index
// onwards. It panics if index or size is negative.
func (l List) Sublist(index, size int) List {
	start, end := l.window("Sublist", index, size)
	if start == 0 && end == l.Len() {
		return l
	}
	return fromOwned(l.types()[start:end])
}

// Erase returns l with the types that [List.Sublist] would return
// for the same arguments removed.
func (l List) Erase(index, size int) List {
	start, end := l.window("Erase", index, size)
	if start == end {
		return l
	}
	ts := l.types()
	return fromOwned(slices.Concat(ts[:start], ts[end:]))
}

// window returns the clamped bounds of [index, index+size).
func (l List) window(op string, index, size int) (start, end int) {
	if index < 0 || size < 0 {
		panic(fmt.Errorf("typelist: negative argument to %s", op))
	}
	n := l.Len()
	start = min(index, n)
	end = start + min(size, n-start)
	return start, end
}

// Select returns the types at the given indexes of l, in the order
// given. Indexes may repeat. It panics if any index is out of range.
func (l List) Select(indexes ...int) List {
	ts := make([]reflect.Type, len(indexes))
	for i, index := range indexes {
		ts[i] = l.At(index)
	}
	return fromOwned(ts)
}

// To returns the type built by instantiating tmpl with the
// types of l as its arguments. See [Apply].
func (l List) To(tmpl Template) reflect.Type {
	return Apply(tmpl, l.Types()...)
}
