package fieldvalidation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// spyRule returns a fixed result and counts how often it ran.
type spyRule struct {
	ruleBase
	result bool
	calls  int
}

func (s *spyRule) Test(any, string, map[string]any) bool {
	s.calls++
	if s.result {
		return s.pass()
	}
	return s.fail("spy failed", nil)
}

func TestRuleList_And(t *testing.T) {
	tests := []struct {
		name    string
		results []bool
		want    bool
		calls   []int
	}{
		{name: "all pass", results: []bool{true, true, true}, want: true, calls: []int{1, 1, 1}},
		{name: "first fails", results: []bool{false, true, true}, want: false, calls: []int{1, 0, 0}},
		{name: "middle fails", results: []bool{true, false, true}, want: false, calls: []int{1, 1, 0}},
		{name: "last fails", results: []bool{true, true, false}, want: false, calls: []int{1, 1, 1}},
		{name: "empty", results: nil, want: true, calls: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spies := make([]*spyRule, len(tt.results))
			rules := make([]Rule, len(tt.results))
			for i, res := range tt.results {
				spies[i] = &spyRule{result: res}
				rules[i] = spies[i]
			}

			got := List(rules...).Test("x", "field", map[string]any{"field": "x"})
			assert.Equal(t, tt.want, got)
			for i, s := range spies {
				assert.Equal(t, tt.calls[i], s.calls, "calls of rule %d", i)
			}
		})
	}
}

func TestRuleList_Or(t *testing.T) {
	tests := []struct {
		name    string
		results []bool
		want    bool
		calls   []int
	}{
		{name: "first passes", results: []bool{true, false, true}, want: true, calls: []int{1, 0, 0}},
		{name: "middle passes", results: []bool{false, true, false}, want: true, calls: []int{1, 1, 0}},
		{name: "none passes", results: []bool{false, false, false}, want: false, calls: []int{1, 1, 1}},
		{name: "empty", results: nil, want: false, calls: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spies := make([]*spyRule, len(tt.results))
			rules := make([]Rule, len(tt.results))
			for i, res := range tt.results {
				spies[i] = &spyRule{result: res}
				rules[i] = spies[i]
			}

			got := List(rules...).SetBoolOp(Or).Test("x", "field", nil)
			assert.Equal(t, tt.want, got)
			for i, s := range spies {
				assert.Equal(t, tt.calls[i], s.calls, "calls of rule %d", i)
			}
		})
	}
}

func TestRuleList_Message(t *testing.T) {
	failing := &spyRule{result: false}
	l := List(failing)

	assert.False(t, l.Test("abc", "code", nil))
	assert.Equal(t, "value does not meet validation criteria", l.Error())
	assert.Equal(t, "spy failed", failing.Error())

	l.SetMessage("{{ field }} rejects '{{ value }}'")
	assert.False(t, l.Test("abc", "code", nil))
	assert.Equal(t, "code rejects 'abc'", l.Error())

	failing.result = true
	assert.True(t, l.Test("abc", "code", nil))
	assert.Empty(t, l.Error())
}

func TestRuleList_DuplicateRules(t *testing.T) {
	spy := &spyRule{result: true}
	l := List(spy, spy).Add(spy)

	assert.True(t, l.Test(1, "n", nil))
	assert.Equal(t, 3, spy.calls)
	assert.Len(t, l.Rules(), 3)
}

func TestRuleList_Nested(t *testing.T) {
	emailOrURL := List(NotNull(), AnyOf(URL(), Email()))

	tests := []struct {
		value any
		want  bool
	}{
		{value: "pieter@obix.nl", want: true},
		{value: "https://www.obix.nl", want: true},
		{value: "#pieter@obix.nl", want: false},
		{value: "#https://www.obix.nl", want: false},
		{value: nil, want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, emailOrURL.Test(tt.value, "contact", nil), "value %v", tt.value)
	}
}

func TestBoolOp_String(t *testing.T) {
	assert.Equal(t, "and", And.String())
	assert.Equal(t, "or", Or.String())
}
