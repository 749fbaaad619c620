// Package filter provides structured search filters: a conjunction of equality
// matches and numeric ranges over indexed attributes. The store adapter owns
// serialization to engine syntax, so field values never get spliced into query
// strings by callers.
package filter

import "fmt"

// Expression is a conjunction of conditions. The zero value matches everything.
type Expression struct {
	conditions []Condition
}

// New creates an expression ANDing the given conditions.
func New(conditions ...Condition) Expression {
	return Expression{conditions: conditions}
}

// Conditions returns the conditions in declaration order.
func (e Expression) Conditions() []Condition { return e.conditions }

// IsEmpty reports whether the expression has no conditions.
func (e Expression) IsEmpty() bool { return len(e.conditions) == 0 }

// And returns a new expression with cond appended.
func (e Expression) And(cond Condition) Expression {
	conds := make([]Condition, 0, len(e.conditions)+1)
	conds = append(conds, e.conditions...)
	conds = append(conds, cond)
	return Expression{conditions: conds}
}

// Condition is a single filter clause: either an exact tag match or a numeric
// range on one field.
type Condition struct {
	field     string
	match     string
	rangeExpr *Range
}

// Match creates an exact match condition on a tag field.
func Match(field, value string) Condition {
	return Condition{field: field, match: value}
}

// NumRange creates a numeric range condition.
func NumRange(field string, r Range) Condition {
	return Condition{field: field, rangeExpr: &r}
}

// Field returns the attribute name.
func (c Condition) Field() string { return c.field }

// MatchValue returns the exact match value.
func (c Condition) MatchValue() string { return c.match }

// Range returns the numeric range, or nil for match conditions.
func (c Condition) Range() *Range { return c.rangeExpr }

// IsMatch reports whether this is an exact match condition.
func (c Condition) IsMatch() bool { return c.rangeExpr == nil && c.match != "" }

// IsRange reports whether this is a numeric range condition.
func (c Condition) IsRange() bool { return c.rangeExpr != nil }

// Validate checks that the condition is well formed.
func (c Condition) Validate() error {
	if c.field == "" {
		return fmt.Errorf("filter field is required")
	}
	if c.match == "" && c.rangeExpr == nil {
		return fmt.Errorf("filter on %q needs a match value or a range", c.field)
	}
	return nil
}

// Range is a numeric interval. Nil boundaries are unbounded; GT/LT are
// exclusive, GTE/LTE inclusive.
type Range struct {
	GT  *float64
	GTE *float64
	LT  *float64
	LTE *float64
}
