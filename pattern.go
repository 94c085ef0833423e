package fieldrules

import (
	"fmt"
	"regexp"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrPattern is the error object reported by [Pattern].
var ErrPattern = validation.NewError("validation_pattern", "must be in a valid format")

type patternRule struct {
	expression string
	re         *regexp.Regexp
	compileErr error
	message    string
	err        validation.Error
}

// Pattern returns a rule that checks a string contains a match of expression.
// The match is a search, not anchored to the whole value; use ^ and $ for
// full matches. An absent value satisfies the rule.
//
// An invalid expression does not panic here: it is reported as a
// [ConfigError] when the record type is registered or first validated.
func Pattern(expression, message string) Rule {
	re, err := regexp.Compile(expression)
	if err != nil {
		err = fmt.Errorf("%w %q: %v", ErrInvalidPattern, expression, err)
	}
	return &patternRule{
		expression: expression,
		re:         re,
		compileErr: err,
		message:    message,
		err:        ErrPattern.SetMessage(message),
	}
}

func (r *patternRule) Kind() RuleKind {
	return KindPattern
}

func (r *patternRule) Message() string {
	return r.message
}

func (r *patternRule) Validate(value any) error {
	if r.compileErr != nil {
		return r.compileErr
	}
	s, absent, err := stringForm(value)
	if err != nil {
		return err
	}
	if absent || r.re.MatchString(s) {
		return nil
	}
	return r.err
}

// configErr reports a defect of the rule itself.
func (r *patternRule) configErr() error {
	return r.compileErr
}

func (r *patternRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Pattern = r.expression
	return nil
}
