package logger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `mapstructure:"dsn"`
	Environment string `mapstructure:"environment"`
	// MinLevel is "warn" (warnings and errors) or "error".
	MinLevel string `mapstructure:"min_level"`
}

// New creates a logger writing to cfg.Output and, when a Sentry DSN is set, to Sentry.
// Context extractors are applied to records sent to both destinations.
// If Sentry fails to initialize, the logger falls back to cfg.Output only.
func New(cfg Config, extractors ...ContextExtractor) (*slog.Logger, error) {
	base, err := cfg.handler()
	if err != nil {
		return nil, err
	}

	if cfg.Sentry.DSN == "" {
		return slog.New(NewLogHandlerDecorator(base, extractors...)), nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(base).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(base, extractors...)), nil
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.Sentry.MinLevel == "error" {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError}, // failed runs become Issues
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return slog.New(NewLogHandlerDecorator(newMultiHandler(base, sentryHandler), extractors...)), nil
}

// Flush waits for buffered Sentry events to be delivered.
// It is a no-op when Sentry was not initialized.
func Flush(timeout time.Duration) error {
	if sentry.CurrentHub().Client() == nil {
		return nil
	}
	if !sentry.Flush(timeout) {
		return fmt.Errorf("logger: sentry flush timed out after %s", timeout)
	}
	return nil
}
