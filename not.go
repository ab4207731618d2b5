package fieldvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

const notMessage = "value of field '{{ field }}' should not match"

// NotRule inverts the result of another rule. Use [Not] to create one.
type NotRule struct {
	ruleBase
	rule    Rule
	message string
}

// Not returns a rule that passes when rule fails and fails when it passes.
func Not(rule Rule) *NotRule {
	return &NotRule{rule: rule}
}

// SetMessage sets the failure message. Placeholders: value, field.
// Without a message, [NotRule.Error] reports the wrapped rule's message.
func (r *NotRule) SetMessage(message string) *NotRule {
	r.message = message
	return r
}

func (r *NotRule) Test(value any, name string, values map[string]any) bool {
	if r.rule.Test(value, name, values) {
		message := r.message
		if message == "" {
			message = notMessage
		}
		return r.fail(message, map[string]any{"value": value, "field": name})
	}
	return r.pass()
}

// Error returns the message of the last failure. Without a configured
// message the wrapped rule's message is used if it has one, otherwise a
// generic negation message.
func (r *NotRule) Error() string {
	if r.message == "" && r.err != "" {
		if msg := r.rule.Error(); msg != "" {
			return msg
		}
	}
	return r.err
}

func (r *NotRule) Describe(name string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	desc, err := describeRules(name, []Rule{r.rule})
	if err != nil {
		return err
	}
	if desc != "" {
		appendDescription(ref, "not: "+desc)
	}
	return nil
}
