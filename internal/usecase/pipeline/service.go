// Package pipeline composes classification, retrieval, prompt assembly, and
// generation into the per-query flow, measuring each stage and shaping the
// response envelope.
package pipeline

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/shoplens/shoplens/internal/domain"
	"github.com/shoplens/shoplens/internal/domain/intent"
	"github.com/shoplens/shoplens/internal/domain/search/filter"
	"github.com/shoplens/shoplens/internal/metrics"
	"github.com/shoplens/shoplens/internal/usecase/prompt"
)

// noResultsAnswer is the canned reply when retrieval produces nothing; not an
// error, and no LLM call is made.
const noResultsAnswer = "I couldn't find any relevant data to answer your question. Please try rephrasing your query."

// Source is one context document summarized for the caller. Profit is shown
// signed and only for business queries; it is null otherwise.
type Source struct {
	OrderID     string  `json:"order_id"`
	Category    string  `json:"category"`
	SubCategory string  `json:"sub_category"`
	Amount      float64 `json:"amount"`
	Profit      *string `json:"profit"`
	Content     string  `json:"content"`
}

// Stats carries search engine statistics for one query.
type Stats struct {
	TotalHits        int   `json:"total_hits"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

// Response is the per-query result envelope.
type Response struct {
	Query       string        `json:"query"`
	Answer      string        `json:"answer"`
	Intent      intent.Intent `json:"intent"`
	Sources     []Source      `json:"sources"`
	SearchTime  float64       `json:"search_time"`
	LLMTime     float64       `json:"llm_time"`
	TotalTime   float64       `json:"total_time"`
	SearchStats Stats         `json:"search_stats"`
}

// Options tune a single query.
type Options struct {
	MaxResults int
	Model      string
	Filters    filter.Expression
}

// Service is the top-level query pipeline. It holds no per-query state, so
// concurrent callers are safe.
type Service struct {
	retriever  Retriever
	classifier *intent.Classifier
	generator  Generator
	maxResults int
	logger     *zap.Logger
}

// New creates a query pipeline.
func New(retriever Retriever, classifier *intent.Classifier, generator Generator, maxResults int, logger *zap.Logger) *Service {
	if maxResults <= 0 {
		maxResults = 5
	}
	return &Service{
		retriever:  retriever,
		classifier: classifier,
		generator:  generator,
		maxResults: maxResults,
		logger:     logger,
	}
}

// Answer runs one query through the pipeline. Search failures have already
// degraded to an empty result by the time they reach this layer; generation
// failures are returned and fail only this query.
func (s *Service) Answer(ctx context.Context, query string, opts Options) (Response, error) {
	if query == "" {
		return Response{}, domain.ErrEmptyQuery
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	start := time.Now()
	s.logger.Info("processing query", zap.String("query", query))

	res := s.retriever.Retrieve(ctx, query, maxResults, opts.Filters)
	searchTime := time.Since(start)
	metrics.SearchDuration.Observe(searchTime.Seconds())

	stats := Stats{
		TotalHits:        res.EstimatedTotalHits,
		ProcessingTimeMs: res.ProcessingTimeMs,
	}

	if len(res.Hits) == 0 {
		s.logger.Warn("no relevant documents found", zap.String("query", query))
		metrics.QueriesTotal.WithLabelValues(string(intent.Personal), "no_results").Inc()
		return Response{
			Query:       query,
			Answer:      noResultsAnswer,
			Intent:      intent.Personal,
			Sources:     []Source{},
			SearchTime:  searchTime.Seconds(),
			LLMTime:     0,
			TotalTime:   time.Since(start).Seconds(),
			SearchStats: Stats{},
		}, nil
	}

	label := s.classifier.Classify(query)
	messages := prompt.Assemble(query, res.Hits, label)

	llmStart := time.Now()
	answer, err := s.generator.Generate(ctx, messages, opts.Model)
	llmTime := time.Since(llmStart)
	if err != nil {
		metrics.QueriesTotal.WithLabelValues(string(label), "error").Inc()
		return Response{}, fmt.Errorf("generate answer: %w", err)
	}
	metrics.LLMDuration.Observe(llmTime.Seconds())
	metrics.QueriesTotal.WithLabelValues(string(label), "answered").Inc()

	totalTime := time.Since(start)
	s.logger.Info("query completed",
		zap.String("intent", string(label)),
		zap.Duration("search", searchTime),
		zap.Duration("llm", llmTime),
		zap.Duration("total", totalTime),
	)

	return Response{
		Query:       query,
		Answer:      answer,
		Intent:      label,
		Sources:     buildSources(res.Hits, label),
		SearchTime:  searchTime.Seconds(),
		LLMTime:     llmTime.Seconds(),
		TotalTime:   totalTime.Seconds(),
		SearchStats: stats,
	}, nil
}

// buildSources summarizes the context documents with the intent-appropriate
// rendering; profit figures are exposed only for business queries.
func buildSources(hits []domain.Document, label intent.Intent) []Source {
	sources := make([]Source, 0, len(hits))
	for _, doc := range hits {
		src := Source{
			OrderID:     doc.OrderID,
			Category:    doc.Category,
			SubCategory: doc.SubCategory,
			Amount:      doc.Amount,
			Content:     prompt.ContentFor(doc, label),
		}
		if label == intent.Business {
			p := FormatProfit(doc.Profit)
			src.Profit = &p
		}
		sources = append(sources, src)
	}
	return sources
}

// FormatProfit renders a signed currency string: +$12.50, -$3.20, or $0.00.
func FormatProfit(profit float64) string {
	switch {
	case profit > 0:
		return fmt.Sprintf("+$%.2f", profit)
	case profit < 0:
		return fmt.Sprintf("-$%.2f", math.Abs(profit))
	default:
		return "$0.00"
	}
}
