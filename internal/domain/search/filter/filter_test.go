package filter

import "testing"

func TestExpressionZeroValue(t *testing.T) {
	var e Expression
	if !e.IsEmpty() {
		t.Error("zero expression should be empty")
	}
	if len(e.Conditions()) != 0 {
		t.Errorf("zero expression has %d conditions", len(e.Conditions()))
	}
}

func TestAndDoesNotMutate(t *testing.T) {
	base := New(Match("category", "Furniture"))
	extended := base.And(Match("amount_range", "low"))

	if len(base.Conditions()) != 1 {
		t.Errorf("base mutated: %d conditions", len(base.Conditions()))
	}
	if len(extended.Conditions()) != 2 {
		t.Errorf("extended has %d conditions, want 2", len(extended.Conditions()))
	}
}

func TestConditionKinds(t *testing.T) {
	m := Match("category", "Electronics")
	if !m.IsMatch() || m.IsRange() {
		t.Error("Match condition misreports its kind")
	}
	if m.Field() != "category" || m.MatchValue() != "Electronics" {
		t.Errorf("Match accessors: field=%q value=%q", m.Field(), m.MatchValue())
	}

	lo := 100.0
	r := NumRange("amount", Range{GTE: &lo})
	if r.IsMatch() || !r.IsRange() {
		t.Error("NumRange condition misreports its kind")
	}
	if r.Range() == nil || r.Range().GTE == nil || *r.Range().GTE != 100 {
		t.Error("NumRange lost its boundary")
	}
}

func TestConditionValidate(t *testing.T) {
	if err := Match("category", "Furniture").Validate(); err != nil {
		t.Errorf("valid match rejected: %v", err)
	}
	if err := Match("", "Furniture").Validate(); err == nil {
		t.Error("empty field accepted")
	}
	if err := (Condition{}).Validate(); err == nil {
		t.Error("empty condition accepted")
	}
}
