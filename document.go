package fieldrules

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// RuleKind identifies one of the supported rule kinds. Kinds are ordered by
// evaluation priority: rules on a field run Required first, Pattern last.
type RuleKind int

const (
	// KindRequired is the kind of [Required].
	KindRequired RuleKind = iota
	// KindMinLength is the kind of [MinLength].
	KindMinLength
	// KindMaxLength is the kind of [MaxLength].
	KindMaxLength
	// KindPattern is the kind of [Pattern].
	KindPattern
)

func (k RuleKind) String() string {
	switch k {
	case KindRequired:
		return "Required"
	case KindMinLength:
		return "MinLength"
	case KindMaxLength:
		return "MaxLength"
	case KindPattern:
		return "Pattern"
	}
	return "Unknown"
}

// StringOnly reports whether rules of this kind may only be attached to
// string-typed fields.
func (k RuleKind) StringOnly() bool {
	return k != KindRequired
}

type (
	// Rule is the interface that all validation rules must implement.
	Rule interface {
		Kind() RuleKind
		// Message is the message reported when the rule is violated.
		Message() string
		Validate(value any) error
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// FieldRules binds a struct field pointer to its validation rules.
	FieldRules struct {
		fieldPtr any
		rules    []Rule
	}

	// Ruler is implemented by record types that declare their own field rules.
	// Rules is called once per type on a zero value, so it must only take
	// field addresses and must not depend on field contents. It must have a
	// pointer receiver; a value receiver is reported as [ErrValueReceiver].
	//
	//	func (s *Student) Rules() []*FieldRules {
	//	    return []*FieldRules{
	//	        Field(&s.ID, Required("id is required")),
	//	        Field(&s.Name, MinLength(1, "name is required")),
	//	    }
	//	}
	Ruler interface {
		Rules() []*FieldRules
	}

	// FieldValuer is implemented by records that supply field values
	// explicitly instead of having them read by reflection. name is the
	// field's key (its json tag, or the Go field name without one).
	//
	// Returning an error wrapping [ErrNoAccessor] marks a configuration
	// defect. Any other error treats the field as absent.
	FieldValuer interface {
		FieldValue(name string) (any, error)
	}
)
