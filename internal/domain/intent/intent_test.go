package intent

import "testing"

func newTestClassifier() *Classifier {
	return NewClassifier(
		[]string{"shopping", "gift", "recommend", "buy", "family"},
		[]string{"profit", "margin", "analysis", "revenue", "inventory"},
	)
}

func TestClassify(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name  string
		query string
		want  Intent
	}{
		{"business query", "Which category has the best profit margin analysis?", Business},
		{"personal query", "recommend a gift for my family", Personal},
		{"no keywords", "what is available", Personal},
		{"empty query", "", Personal},
		{"tie goes personal", "gift profit", Personal},
		{"case insensitive", "PROFIT and REVENUE Analysis", Business},
		{"substring match", "profitability report", Business},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.query); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

// Each keyword counts once no matter how often it appears, so repetition
// cannot flip the label.
func TestClassifyPresenceNotOccurrence(t *testing.T) {
	c := newTestClassifier()

	if got := c.Classify("profit profit profit gift shopping"); got != Personal {
		t.Errorf("repeated business keyword outweighed two personal keywords: got %v", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := newTestClassifier()
	query := "inventory analysis for the gift season"

	first := c.Classify(query)
	for i := 0; i < 10; i++ {
		if got := c.Classify(query); got != first {
			t.Fatalf("classification changed between calls: %v then %v", first, got)
		}
	}
}
