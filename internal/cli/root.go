package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"docagent/config"
	"docagent/docstore"
	"docagent/embedding"
	"docagent/logger"
	"docagent/metrics"
	"docagent/vectorstore"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "docagent",
	Short: "Manage documents in a Qdrant-backed vector store",
	Long: `docagent manages vector-store collections and documents: it embeds
text through an OpenAI-compatible inference endpoint and stores the
vectors in Qdrant for similarity search.

Example usage:
  docagent collections list
  docagent add my-docs "Qdrant is a vector database"
  docagent search my-docs -q "what is qdrant" -k 3`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "configs/docagent.yaml", "config file path")
}

// withService assembles the dependency graph, starts it, runs fn
// against the document service and tears the graph down again. Each
// CLI invocation is one short-lived application.
func withService(fn func(ctx context.Context, svc docstore.Service) error) error {
	var svc docstore.Service

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			cfg.LoggerConfig,
			cfg.MetricsConfig,
			cfg.VectorstoreConfig,
			cfg.EmbeddingConfig,
			cfg.DocstoreConfig,
		),
		logger.FXModule,
		metrics.FXModule,
		vectorstore.FXModule,
		embedding.FXModule,
		docstore.FXModule,
		fx.Populate(&svc),
	)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	runErr := fn(context.Background(), svc)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
