package fieldvalidation_test

import (
	"regexp"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fv "github.com/Gobd/fieldvalidation"
)

func TestValidator_Schema(t *testing.T) {
	v := fv.MustNew(
		fv.Field("name", fv.NotNull(), fv.StringLength().SetMinLength(2).SetMaxLength(50), fv.Describe("display name")),
		fv.Field("age", fv.Integer().SetMinValue(18).SetMaxValue(99), fv.Example(21)),
		fv.Field("email", fv.AnyOf(fv.Not(fv.NotNull()), fv.Email())),
		fv.Field("role", fv.Choice("admin", "user"), fv.Default("user")),
		fv.Field("homepage", fv.URL(), fv.Deprecated()),
		fv.Field("tags", fv.Each(fv.Alphanumeric()), fv.Unique()),
		fv.Field("code", fv.Match(regexp.MustCompile(`^[A-Z]{3}$`))),
		fv.Field("terms", fv.Exists()),
	)

	schema, err := v.Schema()
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "terms"}, schema.Required)
	require.Len(t, schema.Properties, 8)

	name := schema.Properties["name"].Value
	assert.Equal(t, &openapi3.Types{openapi3.TypeString}, name.Type)
	assert.Equal(t, uint64(2), name.MinLength)
	require.NotNil(t, name.MaxLength)
	assert.Equal(t, uint64(50), *name.MaxLength)
	assert.Equal(t, "display name", name.Description)

	age := schema.Properties["age"].Value
	assert.Equal(t, &openapi3.Types{openapi3.TypeInteger}, age.Type)
	require.NotNil(t, age.Min)
	require.NotNil(t, age.Max)
	assert.Equal(t, 18.0, *age.Min)
	assert.Equal(t, 99.0, *age.Max)
	assert.Equal(t, 21, age.Example)

	email := schema.Properties["email"].Value
	require.Len(t, email.AnyOf, 2)
	assert.Equal(t, "email", email.AnyOf[1].Value.Format)

	role := schema.Properties["role"].Value
	assert.Equal(t, []any{"admin", "user"}, role.Enum)
	assert.Equal(t, "user", role.Default)

	homepage := schema.Properties["homepage"].Value
	assert.Equal(t, "uri", homepage.Format)
	assert.True(t, homepage.Deprecated)

	tags := schema.Properties["tags"].Value
	assert.Equal(t, &openapi3.Types{openapi3.TypeArray}, tags.Type)
	require.NotNil(t, tags.Items)
	assert.Equal(t, "^[a-zA-Z0-9]+$", tags.Items.Value.Pattern)
	assert.True(t, tags.UniqueItems)

	assert.Equal(t, "^[A-Z]{3}$", schema.Properties["code"].Value.Pattern)
}

func TestValidator_SchemaConditional(t *testing.T) {
	always := func(map[string]any) bool { return true }
	v := fv.MustNew(
		fv.Field("postcode", fv.When(always, "country is NL", fv.NotNull(), fv.StringLength().SetMaxLength(6)).
			Else(fv.Integer())),
		fv.Field("nickname", fv.Not(fv.Choice("a", "b"))),
	)

	schema, err := v.Schema()
	require.NoError(t, err)

	assert.Empty(t, schema.Required, "conditional rules do not make a field required")
	assert.Equal(t, "when country is NL: required, max length 6", schema.Properties["postcode"].Value.Description)
	assert.Equal(t, "not: one of [a, b]", schema.Properties["nickname"].Value.Description)
}
