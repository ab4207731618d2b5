package fieldvalidation

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"slices"
	"strings"
)

// FieldRules binds a field name to its validation rules.
type FieldRules struct {
	name  string
	rules []Rule
}

// Field creates a FieldRules binding name to rules. Rules run in the given
// order and the first failing rule ends validation of the field.
func Field(name string, rules ...Rule) *FieldRules {
	return &FieldRules{
		name:  name,
		rules: rules,
	}
}

// Validator validates a map of field values against per-field rules and
// keeps the outcome of the last run.
//
// A Validator and its rules keep state between calls, so one instance must
// not be used by concurrent validations. Create one per request or guard a
// shared instance with a lock.
type Validator struct {
	fields []*FieldRules
	index  map[string]int
	data   map[string]any
	errors map[string][]string
	cfg    RequestConfig
	logger *slog.Logger
}

// New returns a Validator for fields. Fields are validated in the order
// given. A nil rule is a configuration error.
func New(fields ...*FieldRules) (*Validator, error) {
	v := &Validator{
		index:  map[string]int{},
		errors: map[string][]string{},
		data:   map[string]any{},
		cfg:    DefaultRequestConfig(),
	}
	if err := v.AddRules(fields...); err != nil {
		return nil, err
	}
	return v, nil
}

// MustNew is like New but panics on configuration errors.
func MustNew(fields ...*FieldRules) *Validator {
	v, err := New(fields...)
	if err != nil {
		panic(err)
	}
	return v
}

// NewFromMap returns a Validator configured from a map of field name to a
// [Rule], a []Rule or a []any holding rules. Any other value yields a
// [*ConfigError] naming the field and the type found. Maps have no order,
// so fields are validated sorted by name.
func NewFromMap(fieldRules map[string]any) (*Validator, error) {
	fields := make([]*FieldRules, 0, len(fieldRules))
	names := make([]string, 0, len(fieldRules))
	for name := range fieldRules {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		rules, err := toRules(name, fieldRules[name])
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field(name, rules...))
	}
	return New(fields...)
}

func toRules(name string, item any) ([]Rule, error) {
	switch t := item.(type) {
	case Rule:
		return []Rule{t}, nil
	case []Rule:
		return t, nil
	case []any:
		rules := make([]Rule, 0, len(t))
		for _, it := range t {
			r, ok := it.(Rule)
			if !ok {
				return nil, &ConfigError{Field: name, Type: fmt.Sprintf("%T", it)}
			}
			rules = append(rules, r)
		}
		return rules, nil
	}
	return nil, &ConfigError{Field: name, Type: fmt.Sprintf("%T", item)}
}

// AddRules registers more fields. Rules for a field that is already
// configured are appended to it.
func (v *Validator) AddRules(fields ...*FieldRules) error {
	for _, f := range fields {
		if f == nil {
			return &ConfigError{Type: "<nil>"}
		}
		for _, r := range f.rules {
			if isNilRule(r) {
				return &ConfigError{Field: f.name, Type: fmt.Sprintf("%T", r)}
			}
		}

		if i, ok := v.index[f.name]; ok {
			v.fields[i].rules = append(v.fields[i].rules, f.rules...)
			continue
		}
		v.index[f.name] = len(v.fields)
		v.fields = append(v.fields, Field(f.name, f.rules...))
	}
	return nil
}

func isNilRule(r Rule) bool {
	if r == nil {
		return true
	}
	rv := reflect.ValueOf(r)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// SetLogger installs a logger that receives a debug record for every failing
// field and a summary of each run. A nil logger disables logging.
func (v *Validator) SetLogger(logger *slog.Logger) *Validator {
	v.logger = logger
	return v
}

// SetRequestConfig sets the limits used by [Validator.ValidateRequest].
func (v *Validator) SetRequestConfig(cfg RequestConfig) *Validator {
	v.cfg = cfg
	return v
}

// Validate runs the rules of every field against data and reports whether
// all fields passed. Missing fields are validated as nil. For each field
// only the message of the first failing rule is recorded.
func (v *Validator) Validate(data map[string]any) bool {
	if data == nil {
		data = map[string]any{}
	}
	v.data = data
	v.errors = map[string][]string{}

	for _, f := range v.fields {
		value := data[f.name]
		for _, rule := range f.rules {
			if rule.Test(value, f.name, data) {
				continue
			}
			msg := rule.Error()
			v.errors[f.name] = append(v.errors[f.name], msg)
			if v.logger != nil {
				v.logger.Debug("field validation failed", slog.String("field", f.name), slog.String("error", msg))
			}
			break
		}
	}

	if v.logger != nil {
		v.logger.Debug("validation finished",
			slog.Int("fields", len(v.fields)),
			slog.Int("failed", len(v.errors)),
		)
	}
	return len(v.errors) == 0
}

// ValidateRequest extracts the form fields and uploaded files of r and
// validates them; see [ExtractRequest]. The error is only set when the
// request body cannot be read, validation failures are reported by the
// boolean.
func (v *Validator) ValidateRequest(r *http.Request) (bool, error) {
	data, err := ExtractRequest(r, v.cfg)
	if err != nil {
		if v.logger != nil {
			v.logger.WarnContext(r.Context(), "request extraction failed", slog.String("error", err.Error()))
		}
		return false, err
	}
	return v.Validate(data), nil
}

// Errors returns the messages of the last run keyed by field. Fields that
// passed are absent.
func (v *Validator) Errors() map[string][]string {
	out := make(map[string][]string, len(v.errors))
	for k, msgs := range v.errors {
		out[k] = slices.Clone(msgs)
	}
	return out
}

// Err returns the errors of the last run as [ValidationErrors], or nil if
// the run passed.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}
	errs := ValidationErrors{}
	for k, msgs := range v.errors {
		errs[k] = errors.New(strings.Join(msgs, "; "))
	}
	return errs
}

// Data returns the input of the last run.
func (v *Validator) Data() map[string]any {
	return v.data
}

// Fields returns the configured field names in validation order.
func (v *Validator) Fields() []string {
	names := make([]string, len(v.fields))
	for i, f := range v.fields {
		names[i] = f.name
	}
	return names
}

// Unchecked returns the sorted keys of data that have no configured rules.
//
// Use it to reject unexpected input:
//
//	if extra := v.Unchecked(data); len(extra) > 0 {
//	    // unknown fields
//	}
func (v *Validator) Unchecked(data map[string]any) []string {
	var missing []string
	for k := range data {
		if _, ok := v.index[k]; !ok {
			missing = append(missing, k)
		}
	}
	slices.Sort(missing)
	return missing
}
