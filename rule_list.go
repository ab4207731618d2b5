package fieldvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// BoolOp selects how a [RuleList] combines its rules.
type BoolOp int

const (
	// And requires every rule to pass.
	And BoolOp = iota + 1
	// Or requires at least one rule to pass.
	Or
)

func (op BoolOp) String() string {
	if op == Or {
		return "or"
	}
	return "and"
}

// RuleList combines rules with AND or OR semantics. Rules run in the order
// they were added and evaluation stops as soon as the outcome is decided:
// at the first failing rule for AND, at the first passing rule for OR.
// An empty AND list passes, an empty OR list fails.
//
// On failure the list records its own message; the messages of the
// individual rules stay available on the rules themselves.
type RuleList struct {
	ruleBase
	rules   []Rule
	op      BoolOp
	message string
}

// List returns an AND list of rules.
func List(rules ...Rule) *RuleList {
	return &RuleList{
		rules:   rules,
		op:      And,
		message: "value does not meet validation criteria",
	}
}

// AnyOf returns an OR list of rules.
func AnyOf(rules ...Rule) *RuleList {
	return List(rules...).SetBoolOp(Or)
}

// SetBoolOp sets the combination mode.
func (r *RuleList) SetBoolOp(op BoolOp) *RuleList {
	r.op = op
	return r
}

// Add appends rules to the list.
func (r *RuleList) Add(rules ...Rule) *RuleList {
	r.rules = append(r.rules, rules...)
	return r
}

// SetMessage sets the failure message. Placeholders: value, field.
func (r *RuleList) SetMessage(message string) *RuleList {
	r.message = message
	return r
}

// Rules returns the rules of the list in evaluation order.
func (r *RuleList) Rules() []Rule {
	return append([]Rule(nil), r.rules...)
}

func (r *RuleList) Test(value any, name string, values map[string]any) bool {
	result := r.op != Or

	for _, rule := range r.rules {
		if r.op == Or {
			result = result || rule.Test(value, name, values)
			if result {
				break
			}
			continue
		}

		result = result && rule.Test(value, name, values)
		if !result {
			break
		}
	}

	if !result {
		return r.fail(r.message, map[string]any{"value": value, "field": name})
	}
	return r.pass()
}

// Describe applies the rules of an AND list to the field schema directly.
// An OR list becomes an anyOf with one sub-schema per rule.
func (r *RuleList) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.op != Or {
		for _, rule := range r.rules {
			d, ok := rule.(Describer)
			if !ok {
				continue
			}
			if err := d.Describe(name, schema, ref); err != nil {
				return err
			}
		}
		return nil
	}

	for _, rule := range r.rules {
		sub := &openapi3.SchemaRef{Value: openapi3.NewSchema()}
		if d, ok := rule.(Describer); ok {
			if err := d.Describe(name, openapi3.NewSchema(), sub); err != nil {
				return err
			}
		}
		ref.Value.AnyOf = append(ref.Value.AnyOf, sub)
	}
	return nil
}
