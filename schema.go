package fieldvalidation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Schema generates an OpenAPI object schema for the configured fields.
// Every field becomes a property; rules implementing [Describer] add their
// constraints to it.
func (v *Validator) Schema() (*openapi3.Schema, error) {
	schema := openapi3.NewObjectSchema()
	if schema.Properties == nil {
		schema.Properties = openapi3.Schemas{}
	}

	for _, f := range v.fields {
		ref := &openapi3.SchemaRef{Value: openapi3.NewSchema()}
		if err := describeField(f.name, f.rules, schema, ref); err != nil {
			return nil, fmt.Errorf("describe field %s: %w", f.name, err)
		}
		schema.Properties[f.name] = ref
	}
	return schema, nil
}

func describeField(name string, rules []Rule, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	for _, r := range rules {
		d, ok := r.(Describer)
		if !ok {
			continue
		}
		if err := d.Describe(name, schema, ref); err != nil {
			return err
		}
	}
	return nil
}

// describeRules calls Describe on each rule using a temporary schema/ref,
// then extracts a human-readable summary of the schema mutations.
func describeRules(name string, rules []Rule) (string, error) {
	if len(rules) == 0 {
		return "", nil
	}

	schema := openapi3.NewSchema()
	ref := &openapi3.SchemaRef{Value: openapi3.NewSchema()}

	if err := describeField(name, rules, schema, ref); err != nil {
		return "", err
	}

	var parts []string

	if ref.Value.Description != "" {
		parts = append(parts, ref.Value.Description)
	}
	if len(schema.Required) > 0 {
		parts = append(parts, "required")
	}
	if ref.Value.Format != "" {
		parts = append(parts, ref.Value.Format)
	}
	if ref.Value.Pattern != "" {
		parts = append(parts, "pattern "+ref.Value.Pattern)
	}
	if ref.Value.Min != nil {
		parts = append(parts, fmt.Sprintf("min %g", *ref.Value.Min))
	}
	if ref.Value.Max != nil {
		parts = append(parts, fmt.Sprintf("max %g", *ref.Value.Max))
	}
	if ref.Value.MinLength > 0 {
		parts = append(parts, fmt.Sprintf("min length %d", ref.Value.MinLength))
	}
	if ref.Value.MaxLength != nil {
		parts = append(parts, fmt.Sprintf("max length %d", *ref.Value.MaxLength))
	}
	if len(ref.Value.Enum) > 0 {
		vals := make([]string, len(ref.Value.Enum))
		for i, v := range ref.Value.Enum {
			vals[i] = fmt.Sprint(v)
		}
		parts = append(parts, "one of ["+strings.Join(vals, ", ")+"]")
	}
	if ref.Value.UniqueItems {
		parts = append(parts, "unique")
	}

	return strings.Join(parts, ", "), nil
}

func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if desc == "" {
		return
	}
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}

func appendUnique(list []string, s string) []string {
	if slices.Contains(list, s) {
		return list
	}
	return append(list, s)
}
