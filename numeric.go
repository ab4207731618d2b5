package fieldvalidation

import (
	"reflect"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NumericRule accepts Go numbers and numeric strings such as "1.5", "-3"
// or "2e10". Nil fails.
type NumericRule struct {
	ruleBase
	message string
}

// Numeric returns a rule that checks that a value looks like a number.
func Numeric() *NumericRule {
	return &NumericRule{message: "value should be of type {{ type }}"}
}

// SetMessage sets the failure message. Placeholders: value, type.
func (r *NumericRule) SetMessage(message string) *NumericRule {
	r.message = message
	return r
}

func (r *NumericRule) Test(value any, _ string, _ map[string]any) bool {
	v, isNil := validation.Indirect(value)
	if !isNil {
		rv := reflect.ValueOf(v)
		if isNumberKind(rv.Kind()) {
			return r.pass()
		}
		if rv.Kind() == reflect.String && rv.String() != "" && isNumericString(rv.String()) {
			return r.pass()
		}
	}
	return r.fail(r.message, map[string]any{"value": value, "type": "numeric"})
}

func (r *NumericRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Type = &openapi3.Types{openapi3.TypeNumber}
	return nil
}

// isNumericString accepts govalidator floats that have at least one digit
// before the exponent, so "." and "e5" fail.
func isNumericString(s string) bool {
	if !govalidator.IsFloat(s) {
		return false
	}
	mantissa, _, _ := strings.Cut(strings.ToLower(s), "e")
	return strings.ContainsAny(mantissa, "0123456789")
}
