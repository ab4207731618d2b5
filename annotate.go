package fieldvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// annotation is a documentation-only rule: it always passes and only
// changes the generated schema.
type annotation struct {
	ruleBase
	apply func(ref *openapi3.SchemaRef)
}

func (r *annotation) Test(any, string, map[string]any) bool {
	return r.pass()
}

func (r *annotation) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	r.apply(ref)
	return nil
}

// Describe returns a documentation-only rule that appends desc to the schema description.
func Describe(desc string) Rule {
	return &annotation{apply: func(ref *openapi3.SchemaRef) {
		appendDescription(ref, desc)
	}}
}

// Example returns a documentation-only rule that sets the schema example value.
func Example(ex any) Rule {
	return &annotation{apply: func(ref *openapi3.SchemaRef) {
		ref.Value.Example = ex
	}}
}

// Default returns a documentation-only rule that sets the schema default value.
func Default(def any) Rule {
	return &annotation{apply: func(ref *openapi3.SchemaRef) {
		ref.Value.Default = def
	}}
}

// Deprecated returns a documentation-only rule that marks the field as deprecated.
func Deprecated() Rule {
	return &annotation{apply: func(ref *openapi3.SchemaRef) {
		ref.Value.Deprecated = true
	}}
}
