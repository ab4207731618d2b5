package fieldvalidation

import (
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
)

// EachRule applies rules to every element of a slice or array, e.g. a form
// field submitted several times. Nil passes; a scalar value is treated as a
// list of one element.
type EachRule struct {
	ruleBase
	rules   []Rule
	message string
}

// Each returns a rule that applies rules to each element of a list value.
func Each(rules ...Rule) *EachRule {
	return &EachRule{
		rules:   rules,
		message: "item {{ index }}: {{ error }}",
	}
}

// SetMessage sets the failure message. Placeholders: value, index, error.
func (r *EachRule) SetMessage(message string) *EachRule {
	r.message = message
	return r
}

func (r *EachRule) Test(value any, name string, values map[string]any) bool {
	if isNull(value) {
		return r.pass()
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return r.testItem(value, 0, name, values)
	}

	for i := 0; i < rv.Len(); i++ {
		if !r.testItem(rv.Index(i).Interface(), i, name, values) {
			return false
		}
	}
	return r.pass()
}

func (r *EachRule) testItem(item any, index int, name string, values map[string]any) bool {
	for _, rule := range r.rules {
		if !rule.Test(item, name, values) {
			return r.fail(r.message, map[string]any{"value": item, "index": index, "error": rule.Error()})
		}
	}
	return r.pass()
}

func (r *EachRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	items := &openapi3.SchemaRef{Value: openapi3.NewSchema()}
	if err := describeField(name, r.rules, openapi3.NewSchema(), items); err != nil {
		return err
	}
	ref.Value.Type = &openapi3.Types{openapi3.TypeArray}
	ref.Value.Items = items
	return nil
}
