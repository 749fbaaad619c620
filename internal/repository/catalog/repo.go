// Package catalog is the search gateway: it owns the order index lifecycle and
// translates structured search requests into engine calls. It is the only
// layer that knows the engine's key layout and stats shape.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shoplens/shoplens/internal/db"
	"github.com/shoplens/shoplens/internal/domain"
	"github.com/shoplens/shoplens/internal/domain/search/filter"
)

// store is the consumer interface for catalog operations (ISP).
type store interface {
	Ping(ctx context.Context) error
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	DelMulti(ctx context.Context, keys []string) error
	Scan(ctx context.Context, pattern string) ([]string, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
	IndexInfo(ctx context.Context, name string) (*db.IndexInfo, error)
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

// Config holds index lifecycle settings.
type Config struct {
	IndexName    string
	KeyPrefix    string
	BatchSize    int
	IndexingWait time.Duration
}

// Catalog implements the search gateway over a db store.
type Catalog struct {
	store  store
	cfg    Config
	logger *zap.Logger
}

// New creates a catalog gateway.
func New(s store, cfg Config, logger *zap.Logger) *Catalog {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.IndexingWait <= 0 {
		cfg.IndexingWait = 30 * time.Second
	}
	return &Catalog{store: s, cfg: cfg, logger: logger}
}

// keyPrefix is the hash key prefix all order documents live under.
func (c *Catalog) keyPrefix() string {
	return c.cfg.KeyPrefix + c.cfg.IndexName + ":"
}

func (c *Catalog) docKey(id string) string {
	return c.keyPrefix() + id
}

// Ping checks engine connectivity.
func (c *Catalog) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}

// Rebuild drops any existing index and documents, recreates the index, and
// upserts all documents in batches, then waits (bounded) for background
// indexing to finish. Running it twice from the same input yields the same
// document set: ids are stable and the old keys are deleted first.
func (c *Catalog) Rebuild(ctx context.Context, docs []domain.Document) error {
	exists, err := c.store.IndexExists(ctx, c.cfg.IndexName)
	if err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	if exists {
		if err := c.store.DropIndex(ctx, c.cfg.IndexName); err != nil && !errors.Is(err, db.ErrIndexNotFound) {
			return fmt.Errorf("drop index: %w", err)
		}
	}

	keys, err := c.store.Scan(ctx, c.keyPrefix()+"*")
	if err != nil {
		return fmt.Errorf("scan old documents: %w", err)
	}
	if len(keys) > 0 {
		if err := c.store.DelMulti(ctx, keys); err != nil {
			return fmt.Errorf("delete old documents: %w", err)
		}
		c.logger.Info("deleted stale documents", zap.Int("count", len(keys)))
	}

	if err := c.store.CreateIndex(ctx, c.indexDefinition()); err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	for start := 0; start < len(docs); start += c.cfg.BatchSize {
		end := min(start+c.cfg.BatchSize, len(docs))

		items := make([]db.HashSetItem, 0, end-start)
		for _, doc := range docs[start:end] {
			items = append(items, db.HashSetItem{
				Key:    c.docKey(doc.ID),
				Fields: docToFields(doc),
			})
		}
		if err := c.store.HSetMulti(ctx, items); err != nil {
			return fmt.Errorf("upsert batch at %d: %w", start, err)
		}
	}

	c.logger.Info("documents upserted",
		zap.Int("count", len(docs)),
		zap.String("index", c.cfg.IndexName),
	)

	return c.waitForIndexing(ctx)
}

// indexDefinition declares the searchable, filterable, and sortable attributes
// of the order index. Content is the only TEXT field; categorical attributes
// are TAGs and numeric ones NUMERIC SORTABLE.
func (c *Catalog) indexDefinition() *db.IndexDefinition {
	return &db.IndexDefinition{
		Name:        c.cfg.IndexName,
		StorageType: db.StorageHash,
		Prefixes:    []string{c.keyPrefix()},
		Fields: []db.IndexField{
			{Name: FieldContent, Type: db.IndexFieldText},
			{Name: FieldCategory, Type: db.IndexFieldTag},
			{Name: FieldSubCategory, Type: db.IndexFieldTag},
			{Name: FieldOrderID, Type: db.IndexFieldTag},
			{Name: FieldAmountRange, Type: db.IndexFieldTag},
			{Name: FieldProfitRange, Type: db.IndexFieldTag},
			{Name: FieldQuantityRange, Type: db.IndexFieldTag},
			{Name: FieldAmount, Type: db.IndexFieldNumeric, Sortable: true},
			{Name: FieldProfit, Type: db.IndexFieldNumeric, Sortable: true},
			{Name: FieldQuantity, Type: db.IndexFieldNumeric, Sortable: true},
		},
	}
}

// waitForIndexing polls the index once per second until background indexing
// completes or the configured wait elapses. Timing out is not an error; the
// engine keeps indexing in the background.
func (c *Catalog) waitForIndexing(ctx context.Context) error {
	deadline := time.Now().Add(c.cfg.IndexingWait)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			info, err := c.store.IndexInfo(ctx, c.cfg.IndexName)
			if err != nil {
				return fmt.Errorf("index info: %w", err)
			}
			if !info.Indexing {
				c.logger.Info("indexing complete", zap.Int64("docs", info.NumDocs))
				return nil
			}
			if time.Now().After(deadline) {
				c.logger.Warn("indexing still running after wait limit",
					zap.Duration("waited", c.cfg.IndexingWait),
					zap.Float64("percent_indexed", info.PercentIndexed),
				)
				return nil
			}
		}
	}
}

// Search runs one engine query and produces the contract-required stats shape:
// hits in engine relevance order, an estimated total, and the round-trip time
// in milliseconds measured by this adapter.
func (c *Catalog) Search(ctx context.Context, query string, limit int, filters filter.Expression) (*domain.SearchResult, error) {
	for _, cond := range filters.Conditions() {
		if err := cond.Validate(); err != nil {
			return nil, err
		}
	}

	start := time.Now()

	sr, err := c.store.SearchText(ctx, &db.TextQuery{
		IndexName:    c.cfg.IndexName,
		Query:        query,
		Filters:      filters,
		Limit:        limit,
		ReturnFields: allFields,
	})
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	elapsed := time.Since(start)

	hits := make([]domain.Document, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		id := strings.TrimPrefix(entry.Key, c.keyPrefix())
		hits = append(hits, docFromFields(id, entry.Fields))
	}

	return &domain.SearchResult{
		Hits:               hits,
		EstimatedTotalHits: sr.Total,
		ProcessingTimeMs:   elapsed.Milliseconds(),
	}, nil
}

// Count returns the number of indexed documents.
func (c *Catalog) Count(ctx context.Context) (int64, error) {
	info, err := c.store.IndexInfo(ctx, c.cfg.IndexName)
	if err != nil {
		return 0, err
	}
	return info.NumDocs, nil
}
