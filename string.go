package fieldrules

import (
	"fmt"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// stringForm dereferences value and returns its underlying string. absent
// is true for nil values. Values that are not of a string kind are rejected
// with ErrNotString rather than coerced. A String method on a named string
// type is not consulted.
func stringForm(value any) (s string, absent bool, err error) {
	value, isNil := validation.Indirect(value)
	if isNil {
		return "", true, nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.String {
		return "", false, fmt.Errorf("%w: got %T", ErrNotString, value)
	}
	return rv.String(), false, nil
}
