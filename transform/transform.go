package transform

import (
	"strings"
)

// TrimSpace runs [strings.TrimSpace] on the string and []string values of
// data. With keys, only those fields are changed.
func TrimSpace(data map[string]any, keys ...string) {
	StringFunc(data, strings.TrimSpace, keys...)
}

// ToLower runs [strings.ToLower] on the string and []string values of data.
// With keys, only those fields are changed.
func ToLower(data map[string]any, keys ...string) {
	StringFunc(data, strings.ToLower, keys...)
}

// StringFunc applies f to the string and []string values of data. With
// keys, only those fields are changed. Other value types are left alone.
func StringFunc(data map[string]any, f func(string) string, keys ...string) {
	if len(keys) == 0 {
		for k := range data {
			apply(data, k, f)
		}
		return
	}
	for _, k := range keys {
		apply(data, k, f)
	}
}

// Multi runs all given functions on data sequentially.
func Multi(data map[string]any, fns ...func(map[string]any)) {
	for _, f := range fns {
		f(data)
	}
}

func apply(data map[string]any, key string, f func(string) string) {
	switch v := data[key].(type) {
	case string:
		data[key] = f(v)
	case []string:
		out := make([]string, len(v))
		for i := range v {
			out[i] = f(v[i])
		}
		data[key] = out
	}
}
