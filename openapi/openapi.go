package openapi

import (
	"errors"

	"github.com/Gobd/fieldrules"
	"github.com/getkin/kin-openapi/openapi3"
)

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{},
		},
	}
}

// AddSchema generates the schema of value and registers it under name in
// the document's components.
func AddSchema(doc *openapi3.T, name string, value any) error {
	if name == "" {
		return errors.New("schema name is empty")
	}
	ref, err := fieldrules.NewSchemaRefForValue(value)
	if err != nil {
		return err
	}
	if doc.Components == nil {
		doc.Components = &openapi3.Components{}
	}
	if doc.Components.Schemas == nil {
		doc.Components.Schemas = openapi3.Schemas{}
	}
	doc.Components.Schemas[name] = ref
	return nil
}

// AddSchemaMust is like [AddSchema] but panics on error.
func AddSchemaMust(doc *openapi3.T, name string, value any) {
	if err := AddSchema(doc, name, value); err != nil {
		panic(err)
	}
}
