package interval

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidRange is returned for start < 0, start > end, or an end
	// beyond the bound of a bounded collection.
	ErrInvalidRange = errors.New("invalid range")
	// ErrNullLabel is returned when a label is a nil pointer or interface.
	ErrNullLabel = errors.New("null label")
)

// CheckLabel returns ErrNullLabel when label holds no identity. Value types
// such as strings and ints, including their zero value, are always valid.
func CheckLabel[L comparable](label L) error {
	if isNil(label) {
		return fmt.Errorf("%w: label cannot be nil", ErrNullLabel)
	}
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	}
	return false
}
