package luckymail

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/dmitrymomot/luckymail/internal"
	"github.com/dmitrymomot/luckymail/pkg/logger"
	"github.com/dmitrymomot/luckymail/pkg/mailer"
	"github.com/dmitrymomot/luckymail/pkg/storage"
)

// Type aliases - public API
type (
	// App draws a random CSV row, renders it and dispatches the email.
	App = internal.App

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the scheduler runtime.
	RunOption = internal.RunOption

	// StageError reports which stage of a send run failed.
	StageError = internal.StageError

	// Identity is an email sender or recipient.
	Identity = mailer.Identity

	// VariableMap renames CSV columns to template placeholders.
	VariableMap = mailer.VariableMap

	// Sender delivers rendered messages in production mode.
	Sender = mailer.Sender

	// Storage reads CSV files and templates.
	Storage = storage.Storage

	// ContextExtractor extracts a slog attribute from context.
	ContextExtractor = logger.ContextExtractor
)

// DefaultSubject is used when neither WithSubject nor template frontmatter sets one.
const DefaultSubject = internal.DefaultSubject

// Stages reported by StageError.
const (
	StageSelect   = internal.StageSelect
	StageRender   = internal.StageRender
	StageDispatch = internal.StageDispatch
)

// Errors
var (
	ErrCSVRequired      = internal.ErrCSVRequired
	ErrTemplateRequired = internal.ErrTemplateRequired
	ErrInvalidSchedule  = internal.ErrInvalidSchedule
)

// Constructors

// New creates a new application with the given options.
// The App is immutable after creation.
//
// Example:
//
//	app := luckymail.New(
//	    luckymail.WithCSV("quotes.csv"),
//	    luckymail.WithTemplate("template.html"),
//	    luckymail.WithSender(luckymail.Identity{Email: "bot@example.com"}),
//	    luckymail.WithRecipients(luckymail.Identity{Email: "me@example.com"}),
//	)
//
//	sent, err := app.Send(ctx)
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// Send runs one select, render and dispatch cycle.
// It returns (false, nil) when the CSV has nothing to send.
func Send(ctx context.Context, opts ...Option) (bool, error) {
	return internal.Send(ctx, opts...)
}

// ErrorStage returns the stage err failed in, or "" when err carries none.
func ErrorStage(err error) string {
	return internal.ErrorStage(err)
}

// App options

// WithCSV sets the path of the CSV file rows are drawn from.
func WithCSV(path string) Option {
	return internal.WithCSV(path)
}

// WithTemplate sets the path of the HTML (or .md) template.
func WithTemplate(path string) Option {
	return internal.WithTemplate(path)
}

// WithSender sets the From identity.
func WithSender(from Identity) Option {
	return internal.WithSender(from)
}

// WithRecipients sets the recipient list. An empty list is allowed.
func WithRecipients(to ...Identity) Option {
	return internal.WithRecipients(to...)
}

// WithVariableMap renames CSV columns to template placeholders.
func WithVariableMap(vars VariableMap) Option {
	return internal.WithVariableMap(vars)
}

// WithSubject sets an explicit subject.
func WithSubject(subject string) Option {
	return internal.WithSubject(subject)
}

// WithProduction enables real delivery.
func WithProduction(production bool) Option {
	return internal.WithProduction(production)
}

// WithDebugOutput overrides the debug file path.
func WithDebugOutput(path string) Option {
	return internal.WithDebugOutput(path)
}

// WithHeader controls whether the first CSV row is a header.
func WithHeader(header bool) Option {
	return internal.WithHeader(header)
}

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithMailSender sets the provider used in production mode.
func WithMailSender(s Sender) Option {
	return internal.WithMailSender(s)
}

// WithStorage sets the storage CSV and template paths are read from.
func WithStorage(s Storage) Option {
	return internal.WithStorage(s)
}

// WithRand sets the random source used to pick rows.
func WithRand(r *rand.Rand) Option {
	return internal.WithRand(r)
}

// WithSanitize sets a function applied to the rendered HTML.
func WithSanitize(fn func(string) string) Option {
	return internal.WithSanitize(fn)
}

// Run options

// Cron sets the schedule expression.
func Cron(spec string) RunOption {
	return internal.Cron(spec)
}

// RunNow triggers one send immediately, before the first scheduled tick.
func RunNow(enabled bool) RunOption {
	return internal.RunNow(enabled)
}

// Location sets the time zone cron expressions are evaluated in.
func Location(loc *time.Location) RunOption {
	return internal.Location(loc)
}

// ShutdownTimeout sets how long to wait for an in-flight send on shutdown.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// ShutdownHook registers a cleanup function to run during shutdown.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets a custom base context for signal handling.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}
