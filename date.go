package fieldvalidation

import (
	"errors"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateRule validates that a string value matches a date layout and
// optionally lies within a range. Nil passes. Use [Date] to create one.
type DateRule struct {
	ruleBase
	layout         string
	min, max       time.Time
	invalidMessage string
	rangeMessage   string
}

// Date creates a date validation rule with the given layout format.
// Use [DateRule.SetMin] and [DateRule.SetMax] to constrain the range.
func Date(layout string) *DateRule {
	return &DateRule{
		layout:         layout,
		invalidMessage: "{{ value }} is not a valid date ({{ layout }})",
		rangeMessage:   "{{ value }} is out of range",
	}
}

// SetMin sets the earliest allowed date.
func (r *DateRule) SetMin(t time.Time) *DateRule {
	r.min = t
	return r
}

// SetMax sets the latest allowed date.
func (r *DateRule) SetMax(t time.Time) *DateRule {
	r.max = t
	return r
}

// SetInvalidMessage sets the message for values that do not parse.
// Placeholders: value, layout.
func (r *DateRule) SetInvalidMessage(message string) *DateRule {
	r.invalidMessage = message
	return r
}

// SetRangeMessage sets the message for dates outside the range.
// Placeholders: value, min, max.
func (r *DateRule) SetRangeMessage(message string) *DateRule {
	r.rangeMessage = message
	return r
}

func (r *DateRule) Test(value any, _ string, _ map[string]any) bool {
	if isNull(value) {
		return r.pass()
	}
	s, ok := stringValue(value)
	if !ok || s == "" {
		return r.fail(r.invalidMessage, map[string]any{"value": value, "layout": r.layout})
	}

	rule := validation.Date(r.layout)
	if !r.min.IsZero() {
		rule = rule.Min(r.min)
	}
	if !r.max.IsZero() {
		rule = rule.Max(r.max)
	}

	err := rule.Validate(s)
	if err == nil {
		return r.pass()
	}

	var verr validation.Error
	if errors.As(err, &verr) && verr.Code() == validation.ErrDateOutOfRange.Code() {
		return r.fail(r.rangeMessage, map[string]any{
			"value": value,
			"min":   r.formatBound(r.min),
			"max":   r.formatBound(r.max),
		})
	}
	return r.fail(r.invalidMessage, map[string]any{"value": value, "layout": r.layout})
}

func (r *DateRule) formatBound(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(r.layout)
}

// Describe implements [Describer] by setting the format and date range on the schema.
func (r *DateRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Type = &openapi3.Types{openapi3.TypeString}
	ref.Value.Format = r.layout
	var parts []string
	if !r.min.IsZero() {
		parts = append(parts, ">= "+r.formatBound(r.min))
	}
	if !r.max.IsZero() {
		parts = append(parts, "<= "+r.formatBound(r.max))
	}
	appendDescription(ref, strings.Join(parts, " "))
	return nil
}
