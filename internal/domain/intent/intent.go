// Package intent classifies user queries as personal shopping or business
// analytics via keyword-overlap scoring. No external calls, no state: the same
// query always yields the same label.
package intent

import "strings"

// Intent is the classified purpose of a user query.
type Intent string

const (
	// Personal marks consumer shopping queries. It is the default and the
	// tie-break winner.
	Personal Intent = "PERSONAL"
	// Business marks analytics queries and unlocks profit figures downstream.
	Business Intent = "BUSINESS"
)

// Classifier scores queries against two fixed keyword sets. The sets are
// configuration data, supplied lower-cased.
type Classifier struct {
	personal []string
	business []string
}

// NewClassifier creates a classifier from the personal and business keyword sets.
func NewClassifier(personal, business []string) *Classifier {
	return &Classifier{personal: personal, business: business}
}

// Classify returns Business only when strictly more business keywords than
// personal keywords appear in the query and at least one business keyword
// matched; everything else, including the empty query, is Personal.
func (c *Classifier) Classify(query string) Intent {
	q := strings.ToLower(query)

	personal := countMatches(q, c.personal)
	business := countMatches(q, c.business)

	if business > personal && business > 0 {
		return Business
	}
	return Personal
}

// countMatches counts keywords present as substrings; each keyword contributes
// at most one point regardless of how often it occurs.
func countMatches(query string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(query, kw) {
			n++
		}
	}
	return n
}
