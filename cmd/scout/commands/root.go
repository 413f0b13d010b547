// Package commands wires the interactive scout command: prompt for a region,
// run the lookup pipeline, render results, and export on request.
package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/hackathon-scout/internal/adapter/gemini"
	httpadapter "github.com/couchcryptid/hackathon-scout/internal/adapter/http"
	"github.com/couchcryptid/hackathon-scout/internal/config"
	"github.com/couchcryptid/hackathon-scout/internal/history"
	"github.com/couchcryptid/hackathon-scout/internal/observability"
	"github.com/couchcryptid/hackathon-scout/internal/pipeline"
)

// NewRootCmd builds the scout command.
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scout",
		Short: "Find recent community hackathons for a region",
		Long: `scout looks up 2024-25 community hackathon programs for a region via a
schema-constrained query to a generative knowledge engine, caches results for
the session, keeps a short watch list of past regions, and exports record
sets as CSV or spreadsheet documents.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return err
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	var store history.Store
	if cfg.RedisAddr != "" {
		rs := history.NewRedisStore(cfg.RedisAddr)
		defer rs.Close()
		store = rs
		logger.Info("using redis history store", "addr", cfg.RedisAddr)
	} else {
		store = history.NewFileStore(cfg.HistoryFile)
		logger.Info("using file history store", "path", cfg.HistoryFile)
	}

	hist := history.NewManager(ctx, store, logger)

	client := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout, metrics, logger)
	p := pipeline.New(client, hist, logger, metrics, clockwork.NewRealClock())

	if cfg.MetricsAddr != "" {
		srv := httpadapter.NewServer(cfg.MetricsAddr, p, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("debug listener error", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("debug listener shutdown error", "error", err)
			}
		}()
	}

	return runLoop(ctx, os.Stdin, os.Stdout, p, metrics)
}
