package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/luckymail"
	"github.com/dmitrymomot/luckymail/internal/config"
	"github.com/dmitrymomot/luckymail/pkg/logger"
	"github.com/dmitrymomot/luckymail/pkg/mailer"
	"github.com/dmitrymomot/luckymail/pkg/sanitizer"
)

const flushTimeout = 2 * time.Second

func runSend(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	app, log, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer logger.Flush(flushTimeout) //nolint:errcheck

	sent, err := app.Send(ctx)
	if err != nil {
		log.ErrorContext(ctx, "send failed",
			slog.String("stage", luckymail.ErrorStage(err)),
			slog.Any("error", err),
		)
		return err
	}
	if !sent {
		fmt.Fprintln(cmd.OutOrStdout(), "No row selected.")
	}
	return nil
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	loc, err := cfg.Schedule.Location()
	if err != nil {
		return err
	}

	app, _, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	return app.Schedule(
		luckymail.Cron(cfg.Schedule.Cron),
		luckymail.RunNow(cfg.Schedule.RunNow),
		luckymail.Location(loc),
		luckymail.WithContext(cmd.Context()),
		luckymail.ShutdownHook(func(context.Context) error {
			return logger.Flush(flushTimeout)
		}),
	)
}

// loadConfig loads the config file and environment, then applies flags
// that were set explicitly on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	file, _ := flags.GetString("config")
	cfg, err := config.Load(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flags.Changed("csv") {
		cfg.CSV, _ = flags.GetString("csv")
	}
	if flags.Changed("template") {
		cfg.Template, _ = flags.GetString("template")
	}
	if flags.Changed("subject") {
		cfg.Subject, _ = flags.GetString("subject")
	}
	if flags.Changed("debug-output") {
		cfg.DebugOutput, _ = flags.GetString("debug-output")
	}
	if noHeader, _ := flags.GetBool("no-header"); noHeader {
		cfg.Header = false
	}
	if prod, _ := flags.GetBool("prod"); prod {
		cfg.Production = true
	}
	if flags.Changed("var") {
		pairs, _ := flags.GetStringArray("var")
		vars, err := parseVars(pairs)
		if err != nil {
			return nil, err
		}
		if cfg.VariableMap == nil {
			cfg.VariableMap = make(map[string]string, len(vars))
		}
		for name, column := range vars {
			cfg.VariableMap[name] = column
		}
	}
	if flags.Changed("cron") {
		cfg.Schedule.Cron, _ = flags.GetString("cron")
	}
	if flags.Changed("run-now") {
		cfg.Schedule.RunNow, _ = flags.GetBool("run-now")
	}

	return cfg, nil
}

// parseVars parses name=column pairs. The column may contain '='.
func parseVars(pairs []string) (map[string]string, error) {
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, column, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --var %q: want name=column", pair)
		}
		vars[name] = column
	}
	return vars, nil
}

// newApp wires the logger, storage, mail provider and sanitizer from cfg.
// The mail provider is only created in production mode, so debug runs need
// no credentials.
func newApp(ctx context.Context, cfg *config.Config) (*luckymail.App, *slog.Logger, error) {
	log, err := logger.New(cfg.Log, logger.RunIDExtractor())
	if err != nil {
		return nil, nil, err
	}

	store, err := cfg.NewStorage(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up storage: %w", err)
	}

	sanitize, err := sanitizer.Policy(cfg.Sanitize)
	if err != nil {
		return nil, nil, err
	}

	opts := []luckymail.Option{
		luckymail.WithLogger(log),
		luckymail.WithStorage(store),
		luckymail.WithCSV(cfg.CSV),
		luckymail.WithTemplate(cfg.Template),
		luckymail.WithSubject(cfg.Subject),
		luckymail.WithHeader(cfg.Header),
		luckymail.WithDebugOutput(cfg.DebugOutput),
		luckymail.WithSender(cfg.Sender),
		luckymail.WithRecipients(cfg.Recipients...),
		luckymail.WithProduction(cfg.Production),
		luckymail.WithSanitize(sanitize),
	}
	if cfg.VariableMap != nil {
		opts = append(opts, luckymail.WithVariableMap(mailer.VariableMap(cfg.VariableMap)))
	}

	if cfg.Production {
		sender, err := cfg.Mail.NewSender(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to set up %s provider: %w", cfg.Mail.Provider, err)
		}
		opts = append(opts, luckymail.WithMailSender(sender))
	}

	log.Debug("configuration loaded",
		slog.Bool("production", cfg.Production),
		slog.String("provider", cfg.Mail.Provider),
		slog.String("csv", cfg.CSV),
		slog.String("template", cfg.Template),
		slog.Int("recipients", len(cfg.Recipients)),
	)

	return luckymail.New(opts...), log, nil
}
