package functional

import "reflect"

// constructible reports whether a value of type to can be
// constructed from a value of type from: from is assignable to to,
// or convertible to it by a conversion that neither reinterprets an
// integer as a rune nor can fail at run time.
func constructible(to, from reflect.Type) bool {
	if from.AssignableTo(to) {
		return true
	}
	if !from.ConvertibleTo(to) {
		return false
	}
	switch {
	case isInteger(from) && to.Kind() == reflect.String:
		return false
	case from.Kind() == reflect.Slice && (to.Kind() == reflect.Array || to.Kind() == reflect.Pointer):
		return false
	}
	return true
}

// construct returns v converted to type to, which
// must be constructible from v's type.
func construct(v reflect.Value, to reflect.Type) reflect.Value {
	if v.Type() == to {
		return v
	}
	return v.Convert(to)
}

// fresh returns v with any slice it holds replaced by a copy,
// so the callee cannot modify the elements of a stored value.
func fresh(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		c := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(c, v)
		return c
	case reflect.Interface:
		if e := v.Elem(); e.Kind() == reflect.Slice {
			return fresh(e).Convert(v.Type())
		}
	}
	return v
}

// bindable reports whether a parameter of type to can be
// constructed from val. An untyped nil binds to any type
// that has nil as a value.
func bindable(to reflect.Type, val any) bool {
	if val == nil {
		return nillable(to)
	}
	return constructible(to, reflect.TypeOf(val))
}

// reinterpretable reports whether a value of type a can stand in for
// a value of type b without conversion: the types are identical, or one
// is an unsafe pointer and the other a pointer.
func reinterpretable(a, b reflect.Type) bool {
	switch {
	case a == b:
		return true
	case a.Kind() == reflect.UnsafePointer:
		return b.Kind() == reflect.Pointer
	case a.Kind() == reflect.Pointer:
		return b.Kind() == reflect.UnsafePointer
	}
	return false
}

// reinterpret returns v as a value of type to, which must be
// reinterpretable from v's type. The address is preserved.
func reinterpret(v reflect.Value, to reflect.Type) reflect.Value {
	switch {
	case v.Type() == to:
		return v
	case to.Kind() == reflect.UnsafePointer:
		return reflect.ValueOf(v.UnsafePointer()).Convert(to)
	}
	return reflect.NewAt(to.Elem(), v.UnsafePointer()).Convert(to)
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	}
	return false
}

func isInteger(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}
