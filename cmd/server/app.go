package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/biztime-api/internal/config"
	"github.com/phrazzld/biztime-api/internal/platform/postgres"
	"github.com/phrazzld/biztime-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all dependencies shared by the HTTP layer.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	registry *prometheus.Registry

	companyStore  store.CompanyStore
	industryStore store.IndustryStore
	invoiceStore  store.InvoiceStore
}

// newApplication wires the stores and the metrics registry around an
// already established database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if db == nil {
		return nil, errors.New("database connection cannot be nil")
	}

	registry := newRegistry()
	if err := registry.Register(collectors.NewDBStatsCollector(db, "biztime")); err != nil {
		return nil, fmt.Errorf("failed to register database collector: %w", err)
	}

	app := &application{
		config:        cfg,
		logger:        logger,
		db:            db,
		registry:      registry,
		companyStore:  postgres.NewPostgresCompanyStore(db, logger),
		industryStore: postgres.NewPostgresIndustryStore(db, logger),
		invoiceStore:  postgres.NewPostgresInvoiceStore(db, logger),
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// newRegistry returns a registry carrying the Go runtime and process
// collectors.
func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Run serves HTTP until ctx is canceled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
