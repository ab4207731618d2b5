package fieldvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// Rule is the interface that all validation rules must implement.
	//
	// Test reports whether value, found under name in values, is valid. A
	// failing Test records a rendered message that Error returns until the
	// next call to Test. Validation failures are never reported as errors.
	Rule interface {
		Test(value any, name string, values map[string]any) bool
		Error() string
	}

	// Describer is implemented by rules that can document themselves in an
	// OpenAPI schema. schema is the enclosing object schema, ref the schema
	// of the field itself.
	Describer interface {
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}
)

// ruleBase holds the last error message of a rule.
type ruleBase struct {
	err string
}

// Error returns the message recorded by the last failing Test, or an empty
// string if the last Test passed.
func (b *ruleBase) Error() string {
	return b.err
}

func (b *ruleBase) fail(message string, ctx map[string]any) bool {
	b.err = Render(message, ctx)
	return false
}

func (b *ruleBase) pass() bool {
	b.err = ""
	return true
}
