// Package logger provides structured logging for the application using the
// standard library log/slog package. Setup builds the process-wide JSON
// logger; the context helpers carry request-scoped loggers (enriched with a
// trace ID by the trace middleware) down into handlers and stores.
package logger
