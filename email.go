package fieldvalidation

import (
	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
)

// EmailRule validates email addresses. Nil passes; use [NotNull] in front
// of it for required fields. Non-string values fail.
type EmailRule struct {
	ruleBase
	message string
}

// Email returns a rule that checks that a value is a valid email address.
func Email() *EmailRule {
	return &EmailRule{message: "{{ value }} is not a valid email address"}
}

// SetMessage sets the failure message. Placeholders: value.
func (r *EmailRule) SetMessage(message string) *EmailRule {
	r.message = message
	return r
}

func (r *EmailRule) Test(value any, _ string, _ map[string]any) bool {
	if isNull(value) {
		return r.pass()
	}
	s, ok := stringValue(value)
	if !ok || !govalidator.IsEmail(s) {
		return r.fail(r.message, map[string]any{"value": value})
	}
	return r.pass()
}

func (r *EmailRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Type = &openapi3.Types{openapi3.TypeString}
	ref.Value.Format = "email"
	return nil
}
