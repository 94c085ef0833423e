package fieldrules

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrRequired is the error object reported by [Required].
var ErrRequired = validation.NewError("validation_required", "is required")

type requiredRule struct {
	validation.Rule
	message string
}

// Required returns a rule that fails with message when the value is absent:
// a nil pointer, interface, map or slice.
func Required(message string) Rule {
	return requiredRule{
		validation.NotNil.ErrorObject(ErrRequired.SetMessage(message)),
		message,
	}
}

func (r requiredRule) Kind() RuleKind {
	return KindRequired
}

func (r requiredRule) Message() string {
	return r.message
}

func (r requiredRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	schema.Required = append(schema.Required, name)
	ref.Value.Nullable = false
	return nil
}
