package domain

// SearchResult is the normalized shape every search path must produce: a
// non-nil hit list in engine relevance order plus engine stats. The gateway
// adapter, not the caller, is responsible for filling the stats.
type SearchResult struct {
	Hits               []Document
	EstimatedTotalHits int
	ProcessingTimeMs   int64
}

// EmptySearchResult returns a well-formed result with zero hits and zero stats.
func EmptySearchResult() *SearchResult {
	return &SearchResult{Hits: []Document{}}
}
