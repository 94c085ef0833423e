package fieldrules

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// fieldPlan is the compiled form of one FieldRules: where the field lives
// in the record and its rules in evaluation order.
type fieldPlan struct {
	name  string
	index []int
	typ   reflect.Type
	rules []Rule
}

// plan holds the compiled field rules of one record type. A plan with a
// non-nil err belongs to a misdeclared type and is never evaluated.
type plan struct {
	typ    reflect.Type
	fields []fieldPlan
	err    error
}

// configDefect is implemented by rules that can be malformed on their own,
// independent of the field they are attached to.
type configDefect interface {
	configErr() error
}

// compilePlan derives the plan for struct type t by calling Rules on a zero
// instance and resolving each field pointer to a struct field index.
func compilePlan(t reflect.Type) *plan {
	p := &plan{typ: t}
	if t.Kind() != reflect.Struct {
		p.err = &ConfigError{Type: t, Err: ErrNotStruct}
		return p
	}

	inst := reflect.New(t)
	ruler, ok := inst.Interface().(Ruler)
	if !ok {
		p.err = &ConfigError{Type: t, Err: ErrNotRuler}
		return p
	}
	// A value receiver makes Rules take field addresses of a copy.
	if _, ok := t.MethodByName("Rules"); ok {
		p.err = &ConfigError{Type: t, Err: ErrValueReceiver}
		return p
	}

	fields, err := declaredRules(ruler)
	if err != nil {
		p.err = &ConfigError{Type: t, Err: err}
		return p
	}

	structVal := inst.Elem()
	p.fields = make([]fieldPlan, 0, len(fields))
	for i, fr := range fields {
		fp, err := compileField(structVal, i, fr)
		if err != nil {
			p.err = err
			p.fields = nil
			return p
		}
		p.fields = append(p.fields, fp)
	}
	return p
}

func compileField(structVal reflect.Value, i int, fr *FieldRules) (fieldPlan, error) {
	t := structVal.Type()
	if fr == nil {
		return fieldPlan{}, &ConfigError{Type: t, Field: fmt.Sprintf("#%d", i), Err: ErrNoAccessor}
	}
	fv := reflect.ValueOf(fr.fieldPtr)
	if fv.Kind() != reflect.Ptr || fv.IsNil() {
		return fieldPlan{}, &ConfigError{
			Type:  t,
			Field: fmt.Sprintf("#%d", i),
			Err:   fmt.Errorf("%w: rule target must be a field pointer, got %s", ErrNoAccessor, fv.Kind()),
		}
	}
	index, sf := findStructField(structVal, fv)
	if sf == nil {
		return fieldPlan{}, &ConfigError{
			Type:  t,
			Field: fmt.Sprintf("#%d", i),
			Err:   fmt.Errorf("%w: rule target is not a field of %s", ErrNoAccessor, t),
		}
	}

	fp := fieldPlan{
		name:  fieldKey(*sf),
		index: index,
		typ:   sf.Type,
		rules: make([]Rule, 0, len(fr.rules)),
	}
	if !structVal.FieldByIndex(index).CanInterface() {
		return fieldPlan{}, &ConfigError{
			Type:  t,
			Field: fp.name,
			Err:   fmt.Errorf("%w: field %s is not exported", ErrNoAccessor, sf.Name),
		}
	}

	for _, r := range fr.rules {
		if r == nil {
			return fieldPlan{}, &ConfigError{Type: t, Field: fp.name, Err: ErrNilRule}
		}
		if r.Kind().StringOnly() && !isStringType(sf.Type) {
			return fieldPlan{}, &ConfigError{Type: t, Field: fp.name, Rule: r.Kind().String(), Err: ErrNotString}
		}
		if d, ok := r.(configDefect); ok {
			if err := d.configErr(); err != nil {
				return fieldPlan{}, &ConfigError{Type: t, Field: fp.name, Rule: r.Kind().String(), Err: err}
			}
		}
		fp.rules = append(fp.rules, r)
	}
	slices.SortStableFunc(fp.rules, func(a, b Rule) int {
		return cmp.Compare(a.Kind(), b.Kind())
	})
	return fp, nil
}

// declaredRules calls Rules, turning a panic into an error. Rules that
// dereference nil fields of the zero instance panic here.
func declaredRules(r Ruler) (fields []*FieldRules, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: Rules panicked on a zero value: %v", ErrNoAccessor, rec)
		}
	}()
	return r.Rules(), nil
}
