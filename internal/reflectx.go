package internal

import (
	"math"
	"reflect"
)

// IntegerOf extracts an integer of any Go integer kind from v. The second
// result is false when v is not an integer. Unsigned values above MaxInt64
// are clamped so they still fail every wire range check.
func IntegerOf(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return math.MaxInt64, true
		}
		return int64(u), true
	default:
		return 0, false
	}
}

// Elems returns the elements of a slice or array. ok is false for any
// other kind.
func Elems(v any) (elems []any, ok bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, false
	}
	elems = make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, true
}

// KindName names the dynamic kind of v for error messages.
func KindName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).Kind().String()
}
