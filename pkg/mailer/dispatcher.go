package mailer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// DefaultDebugOutput is the file non-production dispatches write to.
const DefaultDebugOutput = "debug-email.html"

// Dispatcher delivers rendered messages through a Sender, or writes them to a
// local debug file when not in production mode.
type Dispatcher struct {
	sender    Sender
	logger    *slog.Logger
	debugPath string
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithDebugOutput overrides the debug file path.
func WithDebugOutput(path string) DispatcherOption {
	return func(d *Dispatcher) {
		if path != "" {
			d.debugPath = path
		}
	}
}

// WithDispatchLogger sets the logger used to report dispatch outcomes.
func WithDispatchLogger(l *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDispatcher creates a Dispatcher. sender may be nil when only
// non-production dispatches are made.
func NewDispatcher(sender Sender, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		sender:    sender,
		debugPath: DefaultDebugOutput,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DebugPath returns the file non-production dispatches write to.
func (d *Dispatcher) DebugPath() string {
	return d.debugPath
}

// Dispatch sends msg when production is true and returns the sender's result
// unchanged. Otherwise msg.HTML is written to the debug file, replacing any
// previous content, and the sender is never called.
// An empty recipient list is valid in both modes.
func (d *Dispatcher) Dispatch(ctx context.Context, msg *Message, production bool) (*Result, error) {
	if !production {
		return d.writeDebug(ctx, msg)
	}

	if d.sender == nil {
		return nil, ErrSenderNotConfigured
	}

	result, err := d.sender.Send(ctx, msg)
	if err != nil {
		return nil, errors.Join(ErrSendFailed, err)
	}

	d.logger.InfoContext(ctx, "email sent",
		slog.String("subject", msg.Subject),
		slog.Int("recipients", len(msg.To)),
		slog.String("result", result.String()),
	)
	return result, nil
}

func (d *Dispatcher) writeDebug(ctx context.Context, msg *Message) (*Result, error) {
	if err := os.WriteFile(d.debugPath, []byte(msg.HTML), 0o644); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDebugWrite, err)
	}

	d.logger.InfoContext(ctx, "production mode is off, email written to file",
		slog.String("path", d.debugPath),
		slog.String("subject", msg.Subject),
	)

	return &Result{
		Debug: true,
		Path:  d.debugPath,
		Note:  fmt.Sprintf("production mode is off; email written to %s", d.debugPath),
	}, nil
}
