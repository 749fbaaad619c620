package retrieval

import (
	"context"

	"github.com/shoplens/shoplens/internal/domain"
	"github.com/shoplens/shoplens/internal/domain/search/filter"
)

// Gateway is the search engine contract the orchestrator depends on:
// one ranked, filtered, limited text search.
type Gateway interface {
	Search(ctx context.Context, query string, limit int, filters filter.Expression) (*domain.SearchResult, error)
}
