package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/knowledge-engine/recommender/internal/catalog"
	"github.com/knowledge-engine/recommender/internal/config"
	"github.com/knowledge-engine/recommender/internal/provider"
	"github.com/knowledge-engine/recommender/internal/recommend"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recommender",
	Short: "AI-powered product recommendations from a fixed catalog",
	Long: `recommender embeds a product catalog into a prompt, asks an
OpenAI-compatible chat completion API for the best matches to a free-text
preference, and shows the reply.

Examples:
  # Serve the HTTP API
  recommender serve

  # One-shot recommendation
  recommender recommend --preference "phone under $600 with long battery life" --api-key xai-...

  # Show the catalog embedded into every prompt
  recommender catalog`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $CONFIG_PATH or ./config.yaml)")
}

// app bundles everything a command needs, built from configuration
type app struct {
	cfg       *config.Config
	logger    *logrus.Entry
	requester *recommend.Requester
}

func loadApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	entry := newLogger(cfg.Log).WithField("service", "recommender")

	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	llm := newProvider(cfg.LLM)
	entry.WithFields(logrus.Fields{
		"provider": llm.Name(),
		"products": cat.Len(),
	}).Debug("Recommender initialized")

	return &app{
		cfg:       cfg,
		logger:    entry,
		requester: recommend.NewRequester(cat, llm, cfg.LLM.DocsURL, entry),
	}, nil
}

func newLogger(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if level, err := logrus.ParseLevel(cfg.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

func loadCatalog(cfg config.CatalogConfig) (*catalog.Catalog, error) {
	if cfg.Path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.Path)
}

func newProvider(cfg config.LLMConfig) provider.LLMProvider {
	client := &http.Client{Timeout: cfg.Timeout}
	switch cfg.Provider {
	case "ollama":
		return provider.NewOllamaProvider(cfg.BaseURL, client)
	default:
		return provider.NewOpenAIProvider(cfg.BaseURL, client)
	}
}

// printf writes to the command's stdout, ignoring write errors like fmt.Printf
func printf(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
