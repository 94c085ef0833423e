package fieldrules

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validator evaluates the field rules of records. Plans are compiled once
// per record type and cached. A Validator is safe for concurrent use.
type Validator struct {
	logger *slog.Logger
	plans  sync.Map // reflect.Type -> *plan
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used to report configuration defects and
// field extraction failures. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// New returns a Validator configured by opts.
func New(opts ...Option) *Validator {
	v := &Validator{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var std = New()

// Validate is the single entry point for all validation. It returns nil if
// record satisfies every rule, a [*RuleError] carrying the message of the
// first violated rule, or a [*ConfigError] if the record type is
// misdeclared. Fields are checked in the order Rules declares them; rules
// on a field in the order Required, MinLength, MaxLength, Pattern.
func Validate(record any) error {
	return std.Validate(record)
}

// Check is like Validate but splits the outcome: msg is the violated rule's
// message, or empty when record is valid; err is set only for
// configuration defects and nil records.
func Check(record any) (msg string, err error) {
	return std.Check(record)
}

// Register compiles the rules of each record type up front, so
// configuration defects surface at startup instead of on first use.
func Register(records ...any) error {
	return std.Register(records...)
}

// MustRegister is like [Register] but panics on error.
func MustRegister(records ...any) {
	if err := Register(records...); err != nil {
		panic(err)
	}
}

// Validate validates record. See the package-level [Validate].
func (v *Validator) Validate(record any) error {
	rv, err := recordValue(record)
	if err != nil {
		return err
	}
	p := v.planFor(rv.Type())
	if p.err != nil {
		return p.err
	}

	valuer, _ := record.(FieldValuer)
	for i := range p.fields {
		f := &p.fields[i]
		value, err := v.fieldValue(p, f, rv, valuer)
		if err != nil {
			return err
		}
		for _, r := range f.rules {
			if err := r.Validate(value); err != nil {
				return v.ruleFailure(p, f, r, err)
			}
		}
	}
	return nil
}

// Check validates record. See the package-level [Check].
func (v *Validator) Check(record any) (string, error) {
	err := v.Validate(record)
	if err == nil {
		return "", nil
	}
	var rerr *RuleError
	if errors.As(err, &rerr) {
		return rerr.Message, nil
	}
	return "", err
}

// Register compiles the plans of records and returns the first defect.
func (v *Validator) Register(records ...any) error {
	for _, record := range records {
		rv, err := recordValue(record)
		if err != nil {
			return err
		}
		if p := v.planFor(rv.Type()); p.err != nil {
			return p.err
		}
	}
	return nil
}

func (v *Validator) planFor(t reflect.Type) *plan {
	if p, ok := v.plans.Load(t); ok {
		return p.(*plan)
	}
	p := compilePlan(t)
	actual, loaded := v.plans.LoadOrStore(t, p)
	if !loaded && p.err != nil {
		v.logger.Error("invalid field rules", slog.String("type", t.String()), slog.Any("error", p.err))
	}
	return actual.(*plan)
}

// fieldValue reads the current value of f. Errors returned are
// configuration defects; failures to produce a value otherwise yield nil.
func (v *Validator) fieldValue(p *plan, f *fieldPlan, rv reflect.Value, valuer FieldValuer) (any, error) {
	if valuer == nil {
		return rv.FieldByIndex(f.index).Interface(), nil
	}
	value, err := valuer.FieldValue(f.name)
	if err == nil {
		return value, nil
	}
	if errors.Is(err, ErrNoAccessor) {
		return nil, &ConfigError{Type: p.typ, Field: f.name, Err: err}
	}
	v.logger.Debug("field value unavailable, treating as absent",
		slog.String("type", p.typ.String()),
		slog.String("field", f.name),
		slog.Any("error", err),
	)
	return nil, nil
}

// ruleFailure classifies an error returned by a rule. Rule violations carry
// an ozzo validation.Error; anything else means the rule could not be
// applied to the value it was given.
func (v *Validator) ruleFailure(p *plan, f *fieldPlan, r Rule, err error) error {
	var verr validation.Error
	if errors.As(err, &verr) {
		return &RuleError{Field: f.name, Kind: r.Kind(), Message: verr.Error(), Err: verr}
	}
	cerr := &ConfigError{Type: p.typ, Field: f.name, Rule: r.Kind().String(), Err: err}
	v.logger.Error("rule cannot be applied", slog.Any("error", cerr))
	return cerr
}

// recordValue dereferences a single pointer level of record.
func recordValue(record any) (reflect.Value, error) {
	rv := reflect.ValueOf(record)
	if !rv.IsValid() {
		return rv, ErrNilRecord
	}
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return rv, ErrNilRecord
		}
		rv = rv.Elem()
	}
	return rv, nil
}

// UnmarshalAndValidate decodes JSON from b into dst, normalizes it if dst
// implements [Normalizer], then validates.
func UnmarshalAndValidate(b []byte, dst any) error {
	return std.UnmarshalAndValidate(b, dst)
}

// DecodeAndValidate reads JSON from r into dst using a streaming decoder,
// then normalizes and validates. Use this instead of [UnmarshalAndValidate]
// when reading directly from an [io.Reader] such as a file or request body.
func DecodeAndValidate(r io.Reader, dst any) error {
	return std.DecodeAndValidate(r, dst)
}

// UnmarshalAndValidate is like the package-level [UnmarshalAndValidate].
func (v *Validator) UnmarshalAndValidate(b []byte, dst any) error {
	if err := json.Unmarshal(b, dst); err != nil {
		return err
	}
	normalize(dst)
	return v.Validate(dst)
}

// DecodeAndValidate is like the package-level [DecodeAndValidate].
func (v *Validator) DecodeAndValidate(r io.Reader, dst any) error {
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return err
	}
	normalize(dst)
	return v.Validate(dst)
}
