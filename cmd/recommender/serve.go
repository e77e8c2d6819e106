package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/knowledge-engine/recommender/internal/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the recommendation HTTP API",
	Long: `Start the HTTP API.

Endpoints:
  POST /api/v1/recommendations  {"preference", "model", "api_key"}
  GET  /api/v1/catalog
  GET  /api/v1/models
  GET  /healthz
  GET  /metrics`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(a.requester, a.logger, a.cfg.Server.CORSOrigins)

	a.logger.Infof("Recommender API ready on %s", a.cfg.Server.Addr)
	if err := server.Run(ctx, a.cfg.Server.Addr, a.cfg.LLM.Timeout); err != nil {
		a.logger.WithError(err).Error("API server stopped")
		return err
	}
	return nil
}
