package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shoplens/shoplens/internal/metrics"
)

func newReindexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Load the order dataset and rebuild the search index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReindex(cmd.Context(), a)
		},
	}
}

func runReindex(ctx context.Context, a *app) error {
	docs, err := a.newLoader().LoadDocuments()
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	if err := a.connect(); err != nil {
		return err
	}

	if err := a.catalog.Rebuild(ctx, docs); err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}
	metrics.IndexedDocuments.Set(float64(len(docs)))

	a.logger.Info("index rebuilt",
		zap.String("index", a.cfg.Index.Name),
		zap.Int("documents", len(docs)),
	)
	fmt.Printf("Indexed %d documents into %q\n", len(docs), a.cfg.Index.Name)
	return nil
}
