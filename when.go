package fieldvalidation

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// WhenRule validates conditionally: it applies one set of rules when the
// condition holds for the whole input, and an optional alternative set
// (via [WhenRule.Else]) otherwise. Use [When] to create one.
//
// Within a branch the rules run in order and the first failing rule decides
// the message, as they would when listed directly on a field.
type WhenRule struct {
	ruleBase
	cond      func(values map[string]any) bool
	desc      string
	whenRules []Rule
	elseRules []Rule
}

// When returns a conditional rule. cond receives the complete input, which
// makes rules like "required when another field is set" possible; desc is
// used for documentation only.
func When(cond func(values map[string]any) bool, desc string, rules ...Rule) *WhenRule {
	return &WhenRule{
		cond:      cond,
		desc:      desc,
		whenRules: rules,
	}
}

// Else specifies alternative rules to apply when the condition does not hold.
func (r *WhenRule) Else(rules ...Rule) *WhenRule {
	r.elseRules = rules
	return r
}

func (r *WhenRule) Test(value any, name string, values map[string]any) bool {
	rules := r.elseRules
	if r.cond != nil && r.cond(values) {
		rules = r.whenRules
	}

	for _, rule := range rules {
		if !rule.Test(value, name, values) {
			r.err = rule.Error()
			return false
		}
	}
	return r.pass()
}

// Describe appends a human-readable summary of the conditional rules to
// the schema description.
func (r *WhenRule) Describe(name string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if len(r.whenRules) > 0 {
		desc, err := describeRules(name, r.whenRules)
		if err != nil {
			return err
		}
		if desc != "" {
			if r.desc != "" {
				appendDescription(ref, fmt.Sprintf("when %s: %s", r.desc, desc))
			} else {
				appendDescription(ref, desc)
			}
		}
	}

	if len(r.elseRules) > 0 {
		desc, err := describeRules(name, r.elseRules)
		if err != nil {
			return err
		}
		if desc != "" {
			appendDescription(ref, "else: "+desc)
		}
	}
	return nil
}
