package fieldvalidation

import (
	"fmt"
	"reflect"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// isNull reports whether value is nil or a nil pointer, slice or map.
func isNull(value any) bool {
	_, isNil := validation.Indirect(value)
	return isNil
}

// scalarString returns the string form of string and numeric values.
// Pointers are dereferenced. Booleans and composite values are rejected.
func scalarString(value any) (string, bool) {
	value, isNil := validation.Indirect(value)
	if isNil {
		return "", false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	}
	return "", false
}

// stringValue returns value as a string if its kind is string.
func stringValue(value any) (string, bool) {
	value, isNil := validation.Indirect(value)
	if isNil {
		return "", false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isScalarKind(k reflect.Kind) bool {
	return k == reflect.String || k == reflect.Bool || isNumberKind(k)
}

// looseEqual compares two values the way form input is usually compared:
// identical comparable values are equal, and so are scalars whose string
// forms match ("2" equals 2).
func looseEqual(a, b any) bool {
	a, aNil := validation.Indirect(a)
	b, bNil := validation.Indirect(b)
	if aNil || bNil {
		return aNil && bNil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == tb && ta.Comparable() && a == b {
		return true
	}
	if !isScalarKind(ta.Kind()) || !isScalarKind(tb.Kind()) {
		return reflect.DeepEqual(a, b)
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}
