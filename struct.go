package fieldrules

import (
	"reflect"
	"strings"
)

// Field creates a FieldRules binding a struct field pointer to its validation rules.
func Field[T any](fieldPtr *T, rules ...Rule) *FieldRules {
	return &FieldRules{
		fieldPtr: fieldPtr,
		rules:    rules,
	}
}

// findStructField locates the field of structVal whose address is fieldPtr.
// Embedded non-pointer structs are searched recursively. The type check
// tells apart a struct and its first field, which share an address.
func findStructField(structVal reflect.Value, fieldPtr reflect.Value) ([]int, *reflect.StructField) {
	ptr := fieldPtr.Pointer()
	elem := fieldPtr.Type().Elem()
	for i := range structVal.NumField() {
		fv := structVal.Field(i)
		sf := structVal.Type().Field(i)
		if fv.UnsafeAddr() == ptr && sf.Type == elem {
			return []int{i}, &sf
		}
		if sf.Anonymous && fv.Kind() == reflect.Struct {
			if idx, inner := findStructField(fv, fieldPtr); inner != nil {
				return append([]int{i}, idx...), inner
			}
		}
	}
	return nil, nil
}

// fieldKey returns the json tag name if present, otherwise the Go field name.
func fieldKey(sf reflect.StructField) string {
	tag := strings.Split(sf.Tag.Get("json"), ",")[0]
	if tag != "" && tag != "-" {
		return tag
	}
	return sf.Name
}

// isStringType reports whether t is a string kind or a pointer to one.
func isStringType(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.String
}
