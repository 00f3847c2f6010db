// Package logger provides structured logging factories for mail dispatch.
//
// The package builds on the standard library's log/slog and adds optional
// Sentry error reporting with graceful fallback when unconfigured.
//
// # Basic Usage
//
//	log := logger.New().With("app", "mailer")
//	log.Info("dispatcher ready")
//
// Pass the logger to the dispatcher so every send logs its lifecycle:
//
//	d := mailbridge.New(creds, factory, mailbridge.WithLogger(log))
//
// # Sentry Integration
//
// For production error tracking, use NewWithSentry:
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//	})
//
// Error-level records create Issues in Sentry; warnings are stored as logs
// for context. If the DSN is empty or initialization fails, the logger
// falls back to stdout-only, making the same code path safe in development.
package logger
