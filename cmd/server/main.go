// Package main implements the entry point for the biztime API server,
// which exposes companies, industries and invoices over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/phrazzld/biztime-api/internal/config"
	"github.com/phrazzld/biztime-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"Run database migrations instead of the server (up|down|status|version|reset)",
	)
	verbose := flag.Bool("verbose", false, "Enable verbose migration logging")
	flag.Parse()

	cfg, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if *migrateCmd != "" {
		if err := runMigrations(cfg, *migrateCmd, *verbose); err != nil {
			slog.Error("Migration failed", "command", *migrateCmd, "error", err)
			os.Exit(1)
		}
		return
	}

	if err := startServer(context.Background(), cfg); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads the optional .env file and configuration, then sets up
// structured logging using the configured log level.
func initializeApp() (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)
	slog.Debug("Database configuration",
		"url", maskDatabaseURL(cfg.Database.URL),
		"max_open_conns", cfg.Database.MaxOpenConns)

	return cfg, nil
}

// startServer connects to the database, builds the application and serves
// HTTP until a shutdown signal arrives.
func startServer(ctx context.Context, cfg *config.Config) error {
	db, err := setupDatabase(ctx, cfg, slog.Default())
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, slog.Default(), db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
