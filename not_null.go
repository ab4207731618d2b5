package fieldvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// NotNullRule fails for nil values. Use [NotNull] to create one.
type NotNullRule struct {
	ruleBase
	message string
}

// NotNull returns a rule that checks that a value is not nil. Missing fields
// and blank form values are nil by the time rules run.
func NotNull() *NotNullRule {
	return &NotNullRule{message: "value of field '{{ field }}' should not be null"}
}

// SetMessage sets the failure message. Placeholders: field.
func (r *NotNullRule) SetMessage(message string) *NotNullRule {
	r.message = message
	return r
}

func (r *NotNullRule) Test(value any, name string, _ map[string]any) bool {
	if isNull(value) {
		return r.fail(r.message, map[string]any{"field": name})
	}
	return r.pass()
}

func (r *NotNullRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	schema.Required = appendUnique(schema.Required, name)
	ref.Value.Nullable = false
	return nil
}
