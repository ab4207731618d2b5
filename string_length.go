package fieldvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// StringLengthRule checks the byte length of a string. Nil passes; any
// other non-string value fails. Use [StringLength] to create one.
type StringLengthRule struct {
	ruleBase
	invalidMessage string
	minMessage     string
	maxMessage     string
	min, max       *int
}

// StringLength returns a rule that checks that a value is a string with a
// length inside the bounds set by [StringLengthRule.SetMinLength] and
// [StringLengthRule.SetMaxLength].
func StringLength() *StringLengthRule {
	return &StringLengthRule{
		invalidMessage: "value is not a string",
		minMessage:     "{{ value }} must be at least {{ limit }} characters long",
		maxMessage:     "{{ value }} cannot be longer than {{ limit }} characters",
	}
}

// SetMinLength sets the inclusive minimum length.
func (r *StringLengthRule) SetMinLength(limit int) *StringLengthRule {
	r.min = &limit
	return r
}

// SetMaxLength sets the inclusive maximum length.
func (r *StringLengthRule) SetMaxLength(limit int) *StringLengthRule {
	r.max = &limit
	return r
}

// SetInvalidMessage sets the message for non-string values. Placeholders: value.
func (r *StringLengthRule) SetInvalidMessage(message string) *StringLengthRule {
	r.invalidMessage = message
	return r
}

// SetMinMessage sets the message for strings that are too short.
// Placeholders: value, limit.
func (r *StringLengthRule) SetMinMessage(message string) *StringLengthRule {
	r.minMessage = message
	return r
}

// SetMaxMessage sets the message for strings that are too long.
// Placeholders: value, limit.
func (r *StringLengthRule) SetMaxMessage(message string) *StringLengthRule {
	r.maxMessage = message
	return r
}

func (r *StringLengthRule) Test(value any, _ string, _ map[string]any) bool {
	if isNull(value) {
		return r.pass()
	}

	s, ok := stringValue(value)
	if !ok {
		return r.fail(r.invalidMessage, map[string]any{"value": value})
	}
	if r.min != nil && len(s) < *r.min {
		return r.fail(r.minMessage, map[string]any{"value": value, "limit": *r.min})
	}
	if r.max != nil && len(s) > *r.max {
		return r.fail(r.maxMessage, map[string]any{"value": value, "limit": *r.max})
	}
	return r.pass()
}

func (r *StringLengthRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Type = &openapi3.Types{openapi3.TypeString}
	if r.min != nil && *r.min > 0 {
		ref.Value.MinLength = uint64(*r.min)
	}
	if r.max != nil && *r.max >= 0 {
		maxLen := uint64(*r.max)
		ref.Value.MaxLength = &maxLen
	}
	return nil
}
