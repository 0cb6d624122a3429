package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/biztime-api/internal/config"
	"github.com/phrazzld/biztime-api/internal/platform/postgres"
	"github.com/pressly/goose/v3"
)

// supportedMigrationCommands lists the goose commands accepted by -migrate.
var supportedMigrationCommands = map[string]bool{
	"up":      true,
	"down":    true,
	"status":  true,
	"version": true,
	"reset":   true,
}

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf forwards goose progress messages at info level.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf logs at error level. It does not exit; the failure is returned to
// main through goose's error result.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// runMigrations opens a dedicated connection and runs command against the
// embedded migration files.
func runMigrations(cfg *config.Config, command string, verbose bool) error {
	if !supportedMigrationCommands[command] {
		return fmt.Errorf("unsupported migration command %q (use up, down, status, version or reset)", command)
	}

	migrationLogger := slog.Default().With(
		"correlation_id", uuid.New().String(),
		"component", "migrations",
		"command", command,
	)

	startTime := time.Now()
	migrationLogger.Info("Starting migration operation",
		"url", maskDatabaseURL(cfg.Database.URL),
		"verbose", verbose)

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			migrationLogger.Error("Error closing database connection", "error", err)
		}
	}()

	pingCtx, cancel := context.WithTimeout(context.Background(), databasePingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := executeMigration(db, migrationLogger, command, verbose); err != nil {
		return err
	}

	migrationLogger.Info("Migration operation completed",
		"duration_ms", time.Since(startTime).Milliseconds())
	return nil
}

// executeMigration configures goose for the embedded files and runs command.
func executeMigration(db *sql.DB, logger *slog.Logger, command string, verbose bool) error {
	goose.SetLogger(&slogGooseLogger{logger: logger})
	goose.SetVerbose(verbose)
	goose.SetBaseFS(postgres.Migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.RunContext(context.Background(), command, db, postgres.MigrationsDir); err != nil {
		return fmt.Errorf("goose %s failed: %w", command, err)
	}
	return nil
}

// maskDatabaseURL replaces the password in a connection URL for logging.
func maskDatabaseURL(dbURL string) string {
	parsedURL, err := url.Parse(dbURL)
	if err != nil {
		return "invalid-url"
	}

	if parsedURL.User == nil {
		return dbURL
	}
	if _, hasPassword := parsedURL.User.Password(); !hasPassword {
		return parsedURL.String()
	}

	// url.UserPassword would percent-escape the mask, so the password is
	// dropped and the mask spliced in after the escaped username.
	parsedURL.User = url.User(parsedURL.User.Username())
	return strings.Replace(parsedURL.String(), "@", ":****@", 1)
}
