package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// ErrInvalidConfig is returned for an unknown level or format.
var ErrInvalidConfig = errors.New("logger: invalid config")

// Config holds logger configuration.
type Config struct {
	Level  string       `mapstructure:"level"`  // debug, info, warn, error
	Format string       `mapstructure:"format"` // json or text
	Sentry SentryConfig `mapstructure:"sentry"`

	// Output defaults to os.Stdout.
	Output io.Writer `mapstructure:"-"`
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	if c.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("%w: level %q", ErrInvalidConfig, c.Level)
	}
	return lvl, nil
}

func (c Config) handler() (slog.Handler, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}

	out := c.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(c.Format) {
	case "", FormatJSON:
		return slog.NewJSONHandler(out, opts), nil
	case FormatText:
		return slog.NewTextHandler(out, opts), nil
	}
	return nil, fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format)
}
