package fieldrules

import (
	"reflect"
	"strings"
)

// MissingRules returns the keys of exported fields of record that carry no
// rule. Fields inside embedded structs are checked too.
//
// Automatically excluded:
//   - json:"-"
//   - validate:"-"  (field intentionally has no rules)
//
// Use in tests to catch forgotten fields:
//
//	assert.Empty(t, fieldrules.MissingRules(&Student{}, "birthday"))
//
// It returns nil when record's type cannot be compiled; use [Register] to
// see why.
func MissingRules(record any, exclude ...string) []string {
	return std.MissingRules(record, exclude...)
}

// MissingRules is like the package-level [MissingRules].
func (v *Validator) MissingRules(record any, exclude ...string) []string {
	rv, err := recordValue(record)
	if err != nil {
		return nil
	}
	p := v.planFor(rv.Type())
	if p.err != nil {
		return nil
	}

	covered := map[string]bool{}
	for _, f := range p.fields {
		if len(f.rules) > 0 {
			covered[f.name] = true
		}
	}

	// Accepts both Go field name and json tag name.
	excl := map[string]bool{}
	for _, e := range exclude {
		excl[e] = true
	}

	var missing []string
	collectUncovered(p.typ, excl, covered, &missing)
	return missing
}

// collectUncovered walks the struct type recursively (into embedded structs)
// and appends any uncovered exported field keys to missing.
func collectUncovered(t reflect.Type, excl, covered map[string]bool, missing *[]string) {
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			collectUncovered(sf.Type, excl, covered, missing)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		if strings.Split(sf.Tag.Get("json"), ",")[0] == "-" || sf.Tag.Get("validate") == "-" {
			continue
		}
		key := fieldKey(sf)
		if excl[key] || excl[sf.Name] || covered[key] {
			continue
		}
		*missing = append(*missing, key)
	}
}
