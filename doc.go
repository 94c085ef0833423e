// Package fieldrules validates records against rules declared next to
// their fields, and documents those rules as OpenAPI 3 schemas.
//
// Declare rules by implementing [Ruler] on your structs:
//
//	func (s *Student) Rules() []*FieldRules {
//	    return []*FieldRules{
//	        Field(&s.ID, Required("id is required")),
//	        Field(&s.Name, MinLength(1, "name is required")),
//	        Field(&s.Telephone, Required("telephone is required"), Pattern(`[0-9]{11}`, "bad telephone")),
//	    }
//	}
//
// Then validate with a single call:
//
//	err := Validate(&student)
//
// Validate returns nil, a [*RuleError] whose message is the first violated
// rule's message, or a [*ConfigError] when the record type itself is
// misdeclared. Rules are discovered once per type; call [Register] at
// startup to surface declaration mistakes early.
//
// Four rule kinds exist and run in this order on each field:
// [Required], [MinLength], [MaxLength], [Pattern]. The last three only
// apply to string or *string fields. A nil pointer, interface, map or slice
// is absent; a non-nillable field is never absent.
//
// Sub-packages:
//   - openapi – OpenAPI documents built from record schemas
//   - transform – string field rewriting for [Normalizer] implementations
package fieldrules
