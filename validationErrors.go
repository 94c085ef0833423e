package fieldrules

import (
	"errors"
	"fmt"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrNotString marks a length or pattern rule on a non-string field.
	ErrNotString = errors.New("field must be string-typed")
	// ErrNoAccessor marks a rule target whose value cannot be read.
	ErrNoAccessor = errors.New("field accessor cannot be resolved")
	// ErrInvalidPattern marks a Pattern rule whose expression does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrNotRuler is returned for records that do not implement Ruler.
	ErrNotRuler = errors.New("record does not declare field rules")
	// ErrValueReceiver is returned for records whose Rules method has a
	// value receiver.
	ErrValueReceiver = errors.New("Rules must have a pointer receiver")
	// ErrNotStruct is returned for records that are not structs.
	ErrNotStruct = errors.New("record must be a struct")
	// ErrNilRule marks a nil rule passed to Field.
	ErrNilRule = errors.New("rule is nil")

	// ErrNilRecord is returned when Validate is given a nil record.
	ErrNilRecord = errors.New("record is nil")
)

// RuleError reports a field value that violates one of its rules.
// Error returns exactly the rule's configured message.
type RuleError struct {
	Field   string
	Kind    RuleKind
	Message string
	Err     error // the rule's validation.Error
}

func (e *RuleError) Error() string {
	return e.Message
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// Code returns the ozzo-validation error code of the violated rule.
func (e *RuleError) Code() string {
	var verr validation.Error
	if errors.As(e.Err, &verr) {
		return verr.Code()
	}
	return ""
}

// ConfigError reports a misdeclared record type: a rule attached to a field
// it cannot apply to, or a field whose value cannot be read. It is a
// programmer error and never the result of the data being validated.
type ConfigError struct {
	Type  reflect.Type
	Field string
	Rule  string // rule kind, empty when the defect is not tied to one rule
	Err   error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Rule != "":
		return fmt.Sprintf("rule %s is invalid for field %s: %v", e.Rule, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("field %s of %s: %v", e.Field, e.Type, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Type, e.Err)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is, or wraps, a [ConfigError].
func IsConfigError(err error) bool {
	var cerr *ConfigError
	return errors.As(err, &cerr)
}
