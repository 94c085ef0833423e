package fieldrules

import (
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrMinLength is the error object reported by [MinLength].
	ErrMinLength = validation.NewError("validation_min_length", "the length is too short")
	// ErrMaxLength is the error object reported by [MaxLength].
	ErrMaxLength = validation.NewError("validation_max_length", "the length is too long")
)

type lengthRule struct {
	kind    RuleKind
	limit   int
	message string
	err     validation.Error
}

// MinLength returns a rule that checks a string's rune length is at least n.
// An absent value violates the rule.
func MinLength(n int, message string) Rule {
	return &lengthRule{
		kind:    KindMinLength,
		limit:   n,
		message: message,
		err:     ErrMinLength.SetMessage(message),
	}
}

// MaxLength returns a rule that checks a string's rune length is at most n.
// An absent value satisfies the rule.
func MaxLength(n int, message string) Rule {
	return &lengthRule{
		kind:    KindMaxLength,
		limit:   n,
		message: message,
		err:     ErrMaxLength.SetMessage(message),
	}
}

func (r *lengthRule) Kind() RuleKind {
	return r.kind
}

func (r *lengthRule) Message() string {
	return r.message
}

func (r *lengthRule) Validate(value any) error {
	s, absent, err := stringForm(value)
	if err != nil {
		return err
	}
	if absent {
		if r.kind == KindMinLength {
			return r.err
		}
		return nil
	}
	l := utf8.RuneCountInString(s)
	if r.kind == KindMinLength && l < r.limit || r.kind == KindMaxLength && l > r.limit {
		return r.err
	}
	return nil
}

func (r *lengthRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.limit < 0 {
		return nil
	}
	n := uint64(r.limit)
	if r.kind == KindMinLength {
		ref.Value.MinLength = n
	} else {
		ref.Value.MaxLength = &n
	}
	return nil
}
