package fieldvalidation

import (
	"regexp"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// OzzoRule adapts an ozzo-validation rule, such as the ones in the ozzo
// "is" package, to [Rule]. Note that most ozzo rules accept nil and empty
// values; combine with [NotNull] where a value is required.
type OzzoRule struct {
	ruleBase
	rule    validation.Rule
	message string
	desc    string
}

// FromOzzo returns a rule that passes when r.Validate returns nil. The
// failure message is the ozzo error text unless one is set.
func FromOzzo(r validation.Rule) *OzzoRule {
	return &OzzoRule{rule: r}
}

// SetMessage sets the failure message. Placeholders: value, field, error.
func (r *OzzoRule) SetMessage(message string) *OzzoRule {
	r.message = message
	return r
}

// SetDescription sets the text added to the generated schema.
func (r *OzzoRule) SetDescription(desc string) *OzzoRule {
	r.desc = desc
	return r
}

func (r *OzzoRule) Test(value any, name string, _ map[string]any) bool {
	err := r.rule.Validate(value)
	if err == nil {
		return r.pass()
	}
	message := r.message
	if message == "" {
		message = "{{ error }}"
	}
	return r.fail(message, map[string]any{"value": value, "field": name, "error": err.Error()})
}

func (r *OzzoRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}

// Match returns a rule that checks a string value against re. Nil and
// empty strings pass.
func Match(re *regexp.Regexp) *MatchRule {
	return &MatchRule{
		OzzoRule: FromOzzo(validation.Match(re)),
		re:       re,
	}
}

// MatchRule is a regular expression rule. Use [Match] to create one.
type MatchRule struct {
	*OzzoRule
	re *regexp.Regexp
}

// SetMessage sets the failure message. Placeholders: value, field, error.
func (r *MatchRule) SetMessage(message string) *MatchRule {
	r.OzzoRule.SetMessage(message)
	return r
}

func (r *MatchRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Pattern = r.re.String()
	return r.OzzoRule.Describe(name, schema, ref)
}

// AsOzzo adapts a [Rule] to an ozzo-validation rule so it can be used with
// [validation.ValidateStruct] and friends. name is passed to the rule as
// the field name; the input map only holds that field.
func AsOzzo(rule Rule, name string) validation.Rule {
	return ozzoAdapter{rule: rule, name: name}
}

type ozzoAdapter struct {
	rule Rule
	name string
}

func (a ozzoAdapter) Validate(value any) error {
	if a.rule.Test(value, a.name, map[string]any{a.name: value}) {
		return nil
	}
	msg := a.rule.Error()
	if msg == "" {
		msg = "is invalid"
	}
	return validation.NewError("validation_field_rule", msg)
}
