package fieldvalidation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Render replaces every {{ key }} placeholder in message with the string
// form of ctx[key]. Substitution is done in a single pass, so placeholders
// inside substituted values are left alone. Unknown placeholders are kept.
func Render(message string, ctx map[string]any) string {
	if len(ctx) == 0 {
		return message
	}

	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, "{{ "+k+" }}", stringify(ctx[k]))
	}
	return strings.NewReplacer(pairs...).Replace(message)
}

// stringify converts a context value for inclusion in a message.
// Maps, slices and arrays are JSON encoded; structs without a String method
// render as their type name.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	case error:
		return t.Error()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return ""
		}
		if rv.Elem().Kind() != reflect.Struct {
			return stringify(rv.Elem().Interface())
		}
		return fmt.Sprintf("%T", v)
	case reflect.Map, reflect.Slice, reflect.Array:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	case reflect.Struct, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return fmt.Sprintf("%T", v)
	}
	return fmt.Sprint(v)
}
