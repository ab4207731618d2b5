package fieldvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// CustomRule runs a caller supplied predicate. Nil values fail without
// calling the predicate.
type CustomRule struct {
	ruleBase
	f       func(value any) bool
	message string
	desc    string
}

// Custom returns a rule that uses f for validation.
func Custom(f func(value any) bool) *CustomRule {
	return &CustomRule{
		f:       f,
		message: `"{{ value }}" is not valid`,
	}
}

// SetMessage sets the failure message. Placeholders: value, field.
func (r *CustomRule) SetMessage(message string) *CustomRule {
	r.message = message
	return r
}

// SetDescription sets the text added to the generated schema.
func (r *CustomRule) SetDescription(desc string) *CustomRule {
	r.desc = desc
	return r
}

func (r *CustomRule) Test(value any, name string, _ map[string]any) bool {
	if isNull(value) || r.f == nil || !r.f(value) {
		return r.fail(r.message, map[string]any{"value": value, "field": name})
	}
	return r.pass()
}

func (r *CustomRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}
