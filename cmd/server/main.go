package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/scogonw/sheetstack/internal/config"
	"github.com/scogonw/sheetstack/internal/logging"
	"github.com/scogonw/sheetstack/internal/source"
	"github.com/scogonw/sheetstack/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"cache_enabled", cfg.Cache.Enabled,
		"cache_ttl", cfg.Cache.TTL,
		"rate_limit_enabled", cfg.Rate.Enabled,
		"api_key_required", cfg.Security.RequireAPIKey,
	)

	// Build the Sheets API client
	ctx := context.Background()
	client, err := source.NewClient(ctx, cfg.Sheets.CredentialsFile)
	if err != nil {
		slog.Error("failed to initialize sheets client", "error", err)
		os.Exit(1)
	}

	// Wrap with the snapshot cache unless disabled
	var fetcher source.Fetcher = client
	if cfg.Cache.Enabled {
		fetcher = source.NewCachingFetcher(client, cfg.Cache.MaxEntries, cfg.Cache.TTL)
		slog.Info("table cache enabled",
			"max_entries", cfg.Cache.MaxEntries,
			"ttl", cfg.Cache.TTL,
		)
	}

	// Create server with config
	server := web.NewServer(fetcher, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	// Start server (uses addr from config internally)
	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
