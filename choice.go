package fieldvalidation

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// ChoiceRule validates that a value is one of a fixed set of choices.
// Scalars compare by their string form, so the form value "2" matches the
// choice 2. A nil value fails unless nil is itself a choice.
type ChoiceRule struct {
	ruleBase
	message string
	choices []any
}

// Choice returns a rule that checks that a value is one of choices.
func Choice(choices ...any) *ChoiceRule {
	return &ChoiceRule{
		message: "'{{ value }}' does not occur in list: {{ choices }}",
		choices: choices,
	}
}

// SetMessage sets the failure message. Placeholders: value, choices.
func (r *ChoiceRule) SetMessage(message string) *ChoiceRule {
	r.message = message
	return r
}

func (r *ChoiceRule) Test(value any, _ string, _ map[string]any) bool {
	for _, c := range r.choices {
		if looseEqual(value, c) {
			return r.pass()
		}
	}

	want := make([]string, len(r.choices))
	for i := range r.choices {
		want[i] = fmt.Sprint(r.choices[i])
	}
	return r.fail(r.message, map[string]any{"value": value, "choices": strings.Join(want, ", ")})
}

func (r *ChoiceRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Enum = r.choices
	return nil
}
