package fieldvalidation

import (
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
)

// IntegerRule accepts non-negative whole numbers given as Go numbers or
// digit strings, optionally bounded. Use [Integer] to create one.
type IntegerRule struct {
	ruleBase
	invalidMessage string
	minMessage     string
	maxMessage     string
	min, max       *int64
}

// Integer returns a rule that checks that a value is an unsigned integer.
// Bounds are set with [IntegerRule.SetMinValue] and [IntegerRule.SetMaxValue].
func Integer() *IntegerRule {
	return &IntegerRule{
		invalidMessage: "value should be of type {{ type }}",
		minMessage:     "{{ value }} should be {{ limit }} or more",
		maxMessage:     "{{ value }} should be {{ limit }} or less",
	}
}

// SetMinValue sets the inclusive lower bound.
func (r *IntegerRule) SetMinValue(limit int64) *IntegerRule {
	r.min = &limit
	return r
}

// SetMaxValue sets the inclusive upper bound.
func (r *IntegerRule) SetMaxValue(limit int64) *IntegerRule {
	r.max = &limit
	return r
}

// SetInvalidMessage sets the message for values that are not integers.
// Placeholders: value, type.
func (r *IntegerRule) SetInvalidMessage(message string) *IntegerRule {
	r.invalidMessage = message
	return r
}

// SetMinMessage sets the message for values below the minimum.
// Placeholders: value, limit.
func (r *IntegerRule) SetMinMessage(message string) *IntegerRule {
	r.minMessage = message
	return r
}

// SetMaxMessage sets the message for values above the maximum.
// Placeholders: value, limit.
func (r *IntegerRule) SetMaxMessage(message string) *IntegerRule {
	r.maxMessage = message
	return r
}

func (r *IntegerRule) Test(value any, _ string, _ map[string]any) bool {
	s, ok := scalarString(value)
	if !ok || s == "" || !govalidator.IsNumeric(s) {
		return r.fail(r.invalidMessage, map[string]any{"value": value, "type": "integer"})
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return r.fail(r.invalidMessage, map[string]any{"value": value, "type": "integer"})
	}

	if r.min != nil && n < *r.min {
		return r.fail(r.minMessage, map[string]any{"value": value, "limit": *r.min})
	}
	if r.max != nil && n > *r.max {
		return r.fail(r.maxMessage, map[string]any{"value": value, "limit": *r.max})
	}
	return r.pass()
}

func (r *IntegerRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Type = &openapi3.Types{openapi3.TypeInteger}
	if r.min != nil {
		f := float64(*r.min)
		ref.Value.Min = &f
	}
	if r.max != nil {
		f := float64(*r.max)
		ref.Value.Max = &f
	}
	return nil
}
