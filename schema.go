package fieldrules

import (
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// applyRulesToSchema calls Describe on each rule for matching schema properties.
func applyRulesToSchema(p *plan, schema *openapi3.Schema) error {
	for _, f := range p.fields {
		propRef, ok := schema.Properties[f.name]
		if !ok || propRef.Value == nil {
			continue
		}
		for _, rule := range f.rules {
			if err := rule.Describe(f.name, schema, propRef); err != nil {
				return err
			}
		}
	}
	return nil
}

// schemaDoc returns a SchemaCustomizer that applies field rules to the
// schemas of struct types implementing [Ruler]. Misdeclared types fail
// generation with their [ConfigError].
func (v *Validator) schemaDoc() openapi3gen.SchemaCustomizerFn {
	return func(_ string, t reflect.Type, _ reflect.StructTag, schema *openapi3.Schema) error {
		if t.Kind() != reflect.Struct {
			return nil
		}
		if _, ok := reflect.New(t).Interface().(Ruler); !ok {
			return nil
		}
		p := v.planFor(t)
		if p.err != nil {
			return p.err
		}
		return applyRulesToSchema(p, schema)
	}
}

// NewSchemaRefForValue generates an OpenAPI schema for the given value,
// documenting the rules of every [Ruler] type it contains.
func (v *Validator) NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	g := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(v.schemaDoc()))
	return g.NewSchemaRefForValue(value, nil)
}

// NewSchemaRefForValue generates an OpenAPI schema for the given value,
// applying the field rules of types that implement [Ruler].
// Only fields with a json tag appear in the schema.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	return std.NewSchemaRefForValue(value)
}
