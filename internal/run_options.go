package internal

import (
	"context"
	"time"
)

// defaultShutdownTimeout bounds how long Schedule waits for a running send
// and the shutdown hooks after a stop signal.
const defaultShutdownTimeout = 30 * time.Second

// RunOption configures the scheduler runtime.
type RunOption func(*runConfig)

// runConfig holds runtime configuration for Schedule.
type runConfig struct {
	baseCtx         context.Context
	location        *time.Location
	spec            string
	shutdownHooks   []func(context.Context) error
	shutdownTimeout time.Duration
	runNow          bool
}

// buildRunConfig creates a runConfig from the provided options.
func buildRunConfig(opts ...RunOption) *runConfig {
	cfg := &runConfig{
		location:        time.Local,
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Cron sets the schedule as a standard five-field cron expression or a
// descriptor such as "@daily" or "@every 1h".
func Cron(spec string) RunOption {
	return func(c *runConfig) {
		c.spec = spec
	}
}

// RunNow triggers one send immediately, before the first scheduled tick.
func RunNow(enabled bool) RunOption {
	return func(c *runConfig) {
		c.runNow = enabled
	}
}

// Location sets the time zone cron expressions are evaluated in.
// Defaults to the local time zone.
func Location(loc *time.Location) RunOption {
	return func(c *runConfig) {
		if loc != nil {
			c.location = loc
		}
	}
}

// ShutdownTimeout sets how long to wait for an in-flight send and the
// shutdown hooks. Defaults to 30 seconds.
func ShutdownTimeout(d time.Duration) RunOption {
	return func(c *runConfig) {
		if d > 0 {
			c.shutdownTimeout = d
		}
	}
}

// ShutdownHook registers a cleanup function to run during shutdown.
// Hooks are called in the order they were registered.
//
// Example:
//
//	luckymail.ShutdownHook(func(context.Context) error {
//	    return logger.Flush(2 * time.Second)
//	})
func ShutdownHook(fn func(context.Context) error) RunOption {
	return func(c *runConfig) {
		if fn != nil {
			c.shutdownHooks = append(c.shutdownHooks, fn)
		}
	}
}

// WithContext sets a custom base context for signal handling.
// Useful for testing. Defaults to context.Background().
func WithContext(ctx context.Context) RunOption {
	return func(c *runConfig) {
		if ctx != nil {
			c.baseCtx = ctx
		}
	}
}
