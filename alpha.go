package fieldvalidation

import (
	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
)

// AlphabeticRule accepts strings made of ASCII letters only.
// Nil and empty values fail.
type AlphabeticRule struct {
	ruleBase
	message string
}

// Alphabetic returns a rule that checks that a value consists of letters only.
func Alphabetic() *AlphabeticRule {
	return &AlphabeticRule{message: "value should be of type {{ type }}"}
}

// SetMessage sets the failure message. Placeholders: value, type.
func (r *AlphabeticRule) SetMessage(message string) *AlphabeticRule {
	r.message = message
	return r
}

func (r *AlphabeticRule) Test(value any, _ string, _ map[string]any) bool {
	s, ok := scalarString(value)
	if !ok || s == "" || !govalidator.IsAlpha(s) {
		return r.fail(r.message, map[string]any{"value": value, "type": "alphabetic"})
	}
	return r.pass()
}

func (r *AlphabeticRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Pattern = "^[a-zA-Z]+$"
	return nil
}

// AlphanumericRule accepts strings made of ASCII letters and digits.
// Nil passes, so the rule can be used on optional fields; empty strings fail.
type AlphanumericRule struct {
	ruleBase
	message string
}

// Alphanumeric returns a rule that checks that a value consists of letters
// and digits only.
func Alphanumeric() *AlphanumericRule {
	return &AlphanumericRule{message: "value '{{ value }}' should be of type {{ type }}"}
}

// SetMessage sets the failure message. Placeholders: value, type.
func (r *AlphanumericRule) SetMessage(message string) *AlphanumericRule {
	r.message = message
	return r
}

func (r *AlphanumericRule) Test(value any, _ string, _ map[string]any) bool {
	if isNull(value) {
		return r.pass()
	}
	s, ok := scalarString(value)
	if !ok || s == "" || !govalidator.IsAlphanumeric(s) {
		return r.fail(r.message, map[string]any{"value": value, "type": "alphanumeric"})
	}
	return r.pass()
}

func (r *AlphanumericRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Pattern = "^[a-zA-Z0-9]+$"
	return nil
}
