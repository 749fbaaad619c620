package pipeline

import (
	"context"

	"github.com/shoplens/shoplens/internal/domain"
	"github.com/shoplens/shoplens/internal/domain/search/filter"
)

// Retriever produces a well-formed search result for a query; it never fails
// (engine errors degrade to an empty result inside the retriever).
type Retriever interface {
	Retrieve(ctx context.Context, query string, maxResults int, filters filter.Expression) *domain.SearchResult
}

// Generator sends assembled messages to the hosted model and returns the
// generated text. An empty model falls back to the configured default.
type Generator interface {
	Generate(ctx context.Context, messages []domain.Message, model string) (string, error)
}
