package fieldvalidation

import (
	"fmt"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
)

// UniqueRule fails for lists that contain the same item twice. Items are
// compared by their string form. Nil passes, non-list values fail.
type UniqueRule struct {
	ruleBase
	message        string
	invalidMessage string
}

// Unique returns a rule that checks that all elements of a list are unique.
func Unique() *UniqueRule {
	return &UniqueRule{
		message:        "value contains duplicate item {{ item }}",
		invalidMessage: "value should be a list",
	}
}

// SetMessage sets the message for duplicates. Placeholders: value, item.
func (r *UniqueRule) SetMessage(message string) *UniqueRule {
	r.message = message
	return r
}

// SetInvalidMessage sets the message for values that are not lists.
// Placeholders: value.
func (r *UniqueRule) SetInvalidMessage(message string) *UniqueRule {
	r.invalidMessage = message
	return r
}

func (r *UniqueRule) Test(value any, _ string, _ map[string]any) bool {
	if isNull(value) {
		return r.pass()
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return r.fail(r.invalidMessage, map[string]any{"value": value})
	}

	seen := make(map[string]struct{}, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item := rv.Index(i).Interface()
		key := fmt.Sprintf("%T:%s", item, stringify(item))
		if _, ok := seen[key]; ok {
			return r.fail(r.message, map[string]any{"value": value, "item": item})
		}
		seen[key] = struct{}{}
	}
	return r.pass()
}

func (r *UniqueRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.UniqueItems = true
	return nil
}
