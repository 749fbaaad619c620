// Command shoplens is the e-commerce RAG assistant: it indexes the order
// dataset into the search engine and answers shopping and business queries
// over HTTP or the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shoplens/shoplens/internal/config"
	"github.com/shoplens/shoplens/internal/dataset"
	"github.com/shoplens/shoplens/internal/db"
	dbRedis "github.com/shoplens/shoplens/internal/db/redis"
	"github.com/shoplens/shoplens/internal/domain/intent"
	logpkg "github.com/shoplens/shoplens/internal/logger"
	"github.com/shoplens/shoplens/internal/metrics"
	"github.com/shoplens/shoplens/internal/repository/catalog"
	openaiTransport "github.com/shoplens/shoplens/internal/transport/openai"
	"github.com/shoplens/shoplens/internal/usecase/pipeline"
	"github.com/shoplens/shoplens/internal/usecase/retrieval"
	"github.com/shoplens/shoplens/internal/version"
)

// app carries the wired dependencies shared by all commands. Commands that
// talk to the search engine call connect() themselves so that plain commands
// (version, help) never dial anything.
type app struct {
	cfg    config.Config
	logger *zap.Logger

	store   db.Store
	catalog *catalog.Catalog
}

func (a *app) setup() error {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger

	metrics.RegisterPipelineMetrics()
	return nil
}

// connect dials the search engine and waits for it to become ready.
func (a *app) connect() error {
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    a.cfg.Redis.Addrs,
		Password: a.cfg.Redis.Password,
	})
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}

	readiness := time.Duration(a.cfg.Redis.ReadinessTimeout) * time.Second
	if err := store.WaitForReady(context.Background(), readiness); err != nil {
		store.Close()
		return fmt.Errorf("search engine not ready: %w", err)
	}

	a.store = store
	a.catalog = catalog.New(store, catalog.Config{
		IndexName:    a.cfg.Index.Name,
		KeyPrefix:    a.cfg.Index.KeyPrefix,
		BatchSize:    a.cfg.Index.BatchSize,
		IndexingWait: time.Duration(a.cfg.Index.IndexingWaitSec) * time.Second,
	}, a.logger)

	a.logger.Info("connected to search engine", zap.Strings("addrs", a.cfg.Redis.Addrs))
	return nil
}

func (a *app) close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// newPipeline wires the full query path: retrieval ladder, intent classifier,
// and LLM gateway.
func (a *app) newPipeline() (*pipeline.Service, *openaiTransport.Client) {
	llm := openaiTransport.NewClient(&openaiTransport.Config{
		APIKey:      a.cfg.LLM.APIKey,
		BaseURL:     a.cfg.LLM.BaseURL,
		Model:       a.cfg.LLM.Model,
		Temperature: a.cfg.LLM.Temperature,
		MaxTokens:   a.cfg.LLM.MaxTokens,
		Timeout:     time.Duration(a.cfg.LLM.TimeoutSec) * time.Second,
		Logger:      a.logger,
	})

	retriever := retrieval.New(a.catalog, a.cfg.Search.Categories, a.cfg.Search.FallbackTerms, a.logger)
	classifier := intent.NewClassifier(a.cfg.Search.PersonalKeywords, a.cfg.Search.BusinessKeywords)

	return pipeline.New(retriever, classifier, llm, a.cfg.Search.MaxResults, a.logger), llm
}

func (a *app) newLoader() *dataset.Loader {
	return dataset.New(a.cfg.Data.File, a.logger)
}

func main() {
	a := &app{}

	root := &cobra.Command{
		Use:           "shoplens",
		Short:         "RAG assistant over the e-commerce order dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup()
		},
	}

	root.AddCommand(
		newServeCmd(a),
		newReindexCmd(a),
		newQueryCmd(a),
		newChatCmd(a),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		a.close()
		os.Exit(1)
	}
	a.close()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Printf("shoplens %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
