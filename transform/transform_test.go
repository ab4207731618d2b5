package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimSpace(t *testing.T) {
	data := map[string]any{
		"name": "  Alice ",
		"tags": []string{" a", "b "},
		"age":  21,
	}

	TrimSpace(data)

	assert.Equal(t, "Alice", data["name"])
	assert.Equal(t, []string{"a", "b"}, data["tags"])
	assert.Equal(t, 21, data["age"])
}

func TestToLower_Keys(t *testing.T) {
	data := map[string]any{
		"email": "Alice@Example.COM",
		"name":  "Alice",
	}

	ToLower(data, "email", "missing")

	assert.Equal(t, "alice@example.com", data["email"])
	assert.Equal(t, "Alice", data["name"])
	_, ok := data["missing"]
	assert.False(t, ok)
}

func TestMulti(t *testing.T) {
	data := map[string]any{"code": "  ab-12 "}

	Multi(data,
		func(m map[string]any) { TrimSpace(m) },
		func(m map[string]any) { StringFunc(m, strings.ToUpper) },
	)

	assert.Equal(t, "AB-12", data["code"])
}
