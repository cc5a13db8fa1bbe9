package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/luckymail/pkg/logger"
)

// Schedule sends one email per cron tick and blocks until shutdown.
// It handles SIGINT and SIGTERM for graceful shutdown. A tick that fires while
// the previous send is still running is skipped. Send failures are logged and
// do not stop the schedule.
//
// Example:
//
//	err := app.Schedule(
//	    luckymail.Cron("0 8 * * *"),
//	    luckymail.RunNow(true),
//	)
func (a *App) Schedule(opts ...RunOption) error {
	cfg := buildRunConfig(opts...)

	schedule, err := cron.ParseStandard(cfg.spec)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, cfg.spec, err)
	}

	baseCtx := cfg.baseCtx
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cronLog := cronLogger{a.logger}
	c := cron.New(
		cron.WithLocation(cfg.location),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)
	id := c.Schedule(schedule, cron.FuncJob(func() { a.tick(ctx) }))

	c.Start()
	a.logger.Info("scheduler started",
		slog.String("cron", cfg.spec),
		slog.Time("next", schedule.Next(time.Now().In(cfg.location))),
	)

	var g errgroup.Group
	if cfg.runNow {
		// The wrapped job shares the skip guard with scheduled ticks.
		job := c.Entry(id).WrappedJob
		g.Go(func() error {
			job.Run()
			return nil
		})
	}

	<-ctx.Done()
	_ = g.Wait()

	return a.shutdown(c, cfg)
}

func (a *App) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	ctx, _ = logger.WithRunID(ctx)
	sent, err := a.Send(ctx)
	if err != nil {
		a.logger.ErrorContext(ctx, "scheduled send failed",
			slog.String("stage", ErrorStage(err)),
			slog.Any("error", err),
		)
		return
	}
	if !sent {
		a.logger.InfoContext(ctx, "nothing to send")
	}
}

func (a *App) shutdown(c *cron.Cron, cfg *runConfig) error {
	a.logger.Info("shutting down scheduler")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.shutdownTimeout)
	defer shutdownCancel()

	var errs []error

	// 1. Stop scheduling and wait for a running send
	select {
	case <-c.Stop().Done():
	case <-shutdownCtx.Done():
		errs = append(errs, fmt.Errorf("waiting for running send: %w", shutdownCtx.Err()))
	}

	// 2. Run shutdown hooks (flush logs, etc.)
	for _, hook := range cfg.shutdownHooks {
		if err := hook(shutdownCtx); err != nil {
			errs = append(errs, err)
			a.logger.Error("shutdown hook failed", slog.Any("error", err))
		}
	}

	if len(errs) > 0 {
		a.logger.Error("shutdown completed with errors")
		return errors.Join(errs...)
	}

	a.logger.Info("shutdown completed")
	return nil
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
