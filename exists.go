package fieldvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// ExistsRule fails when the field is absent from the input. The value
// itself is not inspected, so a present nil value passes.
type ExistsRule struct {
	ruleBase
	message string
}

// Exists returns a rule that checks that the field key is present in the input.
func Exists() *ExistsRule {
	return &ExistsRule{message: "field '{{ field }}' does not exist"}
}

// SetMessage sets the failure message. Placeholders: field.
func (r *ExistsRule) SetMessage(message string) *ExistsRule {
	r.message = message
	return r
}

func (r *ExistsRule) Test(_ any, name string, values map[string]any) bool {
	if _, ok := values[name]; !ok {
		return r.fail(r.message, map[string]any{"field": name})
	}
	return r.pass()
}

func (r *ExistsRule) Describe(name string, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
	schema.Required = appendUnique(schema.Required, name)
	return nil
}
