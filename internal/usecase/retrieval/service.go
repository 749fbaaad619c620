// Package retrieval implements the multi-stage fallback search strategy:
// direct search first, then category-guided filtered searches, then
// term-by-term fallback, deduplicating by document id and capping at the
// requested count. A failing engine degrades to an empty result; it never
// fails the query.
package retrieval

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/shoplens/shoplens/internal/config"
	"github.com/shoplens/shoplens/internal/domain"
	"github.com/shoplens/shoplens/internal/domain/search/filter"
	"github.com/shoplens/shoplens/internal/metrics"
	"github.com/shoplens/shoplens/internal/repository/catalog"
)

// Service orchestrates the fallback ladder against the search gateway.
type Service struct {
	gateway       Gateway
	categories    []config.CategoryRule
	fallbackTerms []string
	logger        *zap.Logger
}

// New creates a retrieval service. Category rules are tried in slice order.
func New(gateway Gateway, categories []config.CategoryRule, fallbackTerms []string, logger *zap.Logger) *Service {
	return &Service{
		gateway:       gateway,
		categories:    categories,
		fallbackTerms: fallbackTerms,
		logger:        logger,
	}
}

// Retrieve runs the fallback ladder and always returns a well-formed result:
// hits are never nil, stats are always populated. Engine failures are logged
// and converted to an empty result so a single query never crashes the
// pipeline.
func (s *Service) Retrieve(ctx context.Context, query string, maxResults int, filters filter.Expression) *domain.SearchResult {
	res, err := s.retrieve(ctx, query, maxResults, filters)
	if err != nil {
		s.logger.Error("search failed, degrading to empty result",
			zap.String("query", query),
			zap.Error(err),
		)
		return domain.EmptySearchResult()
	}

	if res.Hits == nil {
		res.Hits = []domain.Document{}
	}
	if res.EstimatedTotalHits == 0 {
		res.EstimatedTotalHits = len(res.Hits)
	}

	s.logger.Debug("retrieval finished",
		zap.String("query", query),
		zap.Int("hits", len(res.Hits)),
	)

	return res
}

func (s *Service) retrieve(ctx context.Context, query string, maxResults int, filters filter.Expression) (*domain.SearchResult, error) {
	metrics.RetrievalStageTotal.WithLabelValues("direct").Inc()

	res, err := s.gateway.Search(ctx, query, maxResults, filters)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("direct search", zap.Int("hits", len(res.Hits)))

	if len(res.Hits) < maxResults {
		if err := s.searchByCategory(ctx, query, maxResults, res); err != nil {
			return nil, err
		}
	}

	if len(res.Hits) < maxResults {
		if err := s.searchByTerms(ctx, query, maxResults, res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// searchByCategory issues a filtered search per category whose trigger
// keywords intersect the query (all categories when none match). Each
// category is asked for twice the requested count; a category that returns
// nothing is retried with its own name as the query. The accumulated hits
// replace the direct result set only when non-empty.
func (s *Service) searchByCategory(ctx context.Context, query string, maxResults int, res *domain.SearchResult) error {
	metrics.RetrievalStageTotal.WithLabelValues("category").Inc()

	queryLower := strings.ToLower(query)

	matching := s.matchCategories(queryLower)
	if len(matching) == 0 {
		s.logger.Debug("no category matched, searching all categories")
		matching = s.categories
	}

	var accumulated []domain.Document
	for _, rule := range matching {
		categoryFilter := filter.New(filter.Match(catalog.FieldCategory, titleCase(rule.Name)))

		catRes, err := s.gateway.Search(ctx, query, maxResults*2, categoryFilter)
		if err != nil {
			return err
		}
		if len(catRes.Hits) == 0 {
			// Broaden: the category name itself as the query.
			catRes, err = s.gateway.Search(ctx, rule.Name, maxResults, categoryFilter)
			if err != nil {
				return err
			}
		}

		s.logger.Debug("category search",
			zap.String("category", rule.Name),
			zap.Int("hits", len(catRes.Hits)),
		)
		accumulated = append(accumulated, catRes.Hits...)
	}

	unique := dedupe(accumulated, maxResults)
	if len(unique) > 0 {
		res.Hits = unique
	}
	return nil
}

// searchByTerms tries a fixed list of domain terms followed by every query
// word longer than two characters, merging unseen hits until the requested
// count is reached.
func (s *Service) searchByTerms(ctx context.Context, query string, maxResults int, res *domain.SearchResult) error {
	metrics.RetrievalStageTotal.WithLabelValues("term").Inc()

	terms := make([]string, 0, len(s.fallbackTerms)+4)
	terms = append(terms, s.fallbackTerms...)
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if len(word) > 2 {
			terms = append(terms, word)
		}
	}

	seen := make(map[string]struct{}, len(res.Hits))
	for _, hit := range res.Hits {
		seen[hit.ID] = struct{}{}
	}

	for _, term := range terms {
		if len(res.Hits) >= maxResults {
			break
		}

		termRes, err := s.gateway.Search(ctx, term, maxResults-len(res.Hits), filter.Expression{})
		if err != nil {
			return err
		}

		if len(res.Hits) == 0 && len(termRes.Hits) > 0 {
			// First hits of the whole ladder: adopt the result wholesale,
			// stats included.
			*res = *termRes
			for _, hit := range res.Hits {
				seen[hit.ID] = struct{}{}
			}
			continue
		}

		for _, hit := range termRes.Hits {
			if len(res.Hits) >= maxResults {
				break
			}
			if _, ok := seen[hit.ID]; ok {
				continue
			}
			seen[hit.ID] = struct{}{}
			res.Hits = append(res.Hits, hit)
		}
	}

	s.logger.Debug("term fallback finished", zap.Int("hits", len(res.Hits)))
	return nil
}

// matchCategories returns the rules whose keyword set intersects the
// lower-cased query, preserving rule order.
func (s *Service) matchCategories(queryLower string) []config.CategoryRule {
	var matching []config.CategoryRule
	for _, rule := range s.categories {
		for _, kw := range rule.Keywords {
			if strings.Contains(queryLower, kw) {
				matching = append(matching, rule)
				break
			}
		}
	}
	return matching
}

// dedupe keeps the first occurrence of each document id, preserving order,
// truncated to limit.
func dedupe(hits []domain.Document, limit int) []domain.Document {
	seen := make(map[string]struct{}, len(hits))
	unique := make([]domain.Document, 0, min(len(hits), limit))
	for _, hit := range hits {
		if _, ok := seen[hit.ID]; ok {
			continue
		}
		seen[hit.ID] = struct{}{}
		unique = append(unique, hit)
		if len(unique) >= limit {
			break
		}
	}
	return unique
}

// titleCase upper-cases the first letter, matching how category values are
// stored in the index ("furniture" -> "Furniture").
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
