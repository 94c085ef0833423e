package transform

import (
	"reflect"
	"strings"
)

// StructTrimSpace runs [strings.TrimSpace] on the string and *string fields
// of the struct v points to.
func StructTrimSpace(v any) {
	StructStringFunc(v, strings.TrimSpace)
}

// StructNilIfEmpty sets *string fields that hold an empty string to nil, so
// that rules treat them as absent.
func StructNilIfEmpty(v any) {
	eachStringField(v, func(field reflect.Value) {
		if field.Kind() == reflect.Ptr && field.Elem().Len() == 0 {
			field.SetZero()
		}
	})
}

// StructStringFunc applies f to the string and *string fields of the
// struct v points to, including fields of embedded structs. Nil pointers
// stay nil; unexported fields are left alone.
func StructStringFunc(v any, f func(string) string) {
	eachStringField(v, func(field reflect.Value) {
		if field.Kind() == reflect.Ptr {
			field = field.Elem()
		}
		field.SetString(f(field.String()))
	})
}

// StructMulti runs all given functions on the struct pointer sequentially.
func StructMulti(v any, fns ...func(any)) {
	for _, f := range fns {
		f(v)
	}
}

// eachStringField calls fn for every settable string field and non-nil
// *string field of the struct v points to.
func eachStringField(v any, fn func(reflect.Value)) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}
	walkStrings(rv.Elem(), fn)
}

func walkStrings(rv reflect.Value, fn func(reflect.Value)) {
	if rv.Kind() != reflect.Struct {
		return
	}
	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rv.Type().Field(i)
		if sf.Anonymous && field.Kind() == reflect.Struct {
			walkStrings(field, fn)
			continue
		}
		if !field.CanSet() {
			continue
		}
		switch field.Kind() {
		case reflect.String:
			fn(field)
		case reflect.Ptr:
			if !field.IsNil() && field.Elem().Kind() == reflect.String {
				fn(field)
			}
		}
	}
}
