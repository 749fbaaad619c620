package config

// Default keyword tables for the order dataset. One table serves both the
// category-guided retrieval stage and any caller that needs the category list;
// the intent sets drive the personal/business classifier.

// DefaultCategories returns the category trigger-keyword rules in the order
// retrieval should try them.
func DefaultCategories() []CategoryRule {
	return []CategoryRule{
		{
			Name: "clothing",
			Keywords: []string{
				"clothing", "clothes", "dress", "shirt", "trousers", "saree",
				"stole", "kurti", "hankerchief", "t-shirt", "gift", "family", "personal",
			},
		},
		{
			Name: "furniture",
			Keywords: []string{
				"furniture", "chair", "chairs", "bookcase", "bookcases", "table",
				"desk", "home office", "office", "home",
			},
		},
		{
			Name: "electronics",
			Keywords: []string{
				"electronics", "electronic", "phone", "phones", "printer", "printers",
				"game", "games", "affordable electronics", "tech", "gadget",
			},
		},
	}
}

// DefaultFallbackTerms returns the fixed domain terms tried by the last
// retrieval stage before the query's own words.
func DefaultFallbackTerms() []string {
	return []string{
		"clothing", "furniture", "electronics", "phone", "chair",
		"saree", "stole", "affordable", "gift", "office",
	}
}

// DefaultPersonalKeywords returns the shopping-intent keyword set.
func DefaultPersonalKeywords() []string {
	return []string{
		"shopping", "buy", "buying", "purchase", "purchasing",
		"gift", "gifts", "present", "presents", "souvenir", "souvenirs",
		"vacation", "travel", "trip", "holiday", "goa", "beach",
		"personal", "family", "friends", "myself", "me",
		"recommend", "recommendation", "suggest", "suggestion",
		"what to buy", "what should i buy", "what can i take",
		"need", "want", "looking for", "searching for",
	}
}

// DefaultBusinessKeywords returns the analytics-intent keyword set.
func DefaultBusinessKeywords() []string {
	return []string{
		"business", "profit", "profitability", "revenue", "loss",
		"margin", "margins", "analysis", "analytics", "performance",
		"inventory", "stock", "quarterly", "annual", "strategy",
		"management", "optimization", "efficiency", "roi",
		"highest", "best", "top", "most profitable", "profit margins",
		"financial", "commercial", "enterprise", "corporate",
	}
}
