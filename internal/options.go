package internal

import (
	"log/slog"
	"math/rand/v2"

	"github.com/dmitrymomot/luckymail/pkg/mailer"
	"github.com/dmitrymomot/luckymail/pkg/storage"
)

// Option configures the application.
type Option func(*App)

// WithCSV sets the path of the CSV file rows are drawn from.
// Paths starting with s3:// are read from S3 when WithStorage routes them.
func WithCSV(path string) Option {
	return func(a *App) {
		a.csvPath = path
	}
}

// WithTemplate sets the path of the HTML (or .md) template.
func WithTemplate(path string) Option {
	return func(a *App) {
		a.templatePath = path
	}
}

// WithSender sets the From identity.
func WithSender(from mailer.Identity) Option {
	return func(a *App) {
		a.from = from
	}
}

// WithRecipients sets the recipient list. An empty list is allowed.
func WithRecipients(to ...mailer.Identity) Option {
	return func(a *App) {
		a.recipients = append(a.recipients[:0:0], to...)
	}
}

// WithVariableMap renames CSV columns to template placeholders.
// A nil map passes the row through unchanged. A non-nil empty map yields an
// empty context, so any placeholder fails to resolve.
func WithVariableMap(vars mailer.VariableMap) Option {
	return func(a *App) {
		a.vars = vars
	}
}

// WithSubject sets an explicit subject. It takes precedence over the
// template's frontmatter subject and DefaultSubject.
func WithSubject(subject string) Option {
	return func(a *App) {
		a.subject = subject
	}
}

// WithProduction enables real delivery. Without it emails are written to
// the debug output file.
func WithProduction(production bool) Option {
	return func(a *App) {
		a.production = production
	}
}

// WithDebugOutput overrides the debug file path (default "debug-email.html").
func WithDebugOutput(path string) Option {
	return func(a *App) {
		if path != "" {
			a.debugOutput = path
		}
	}
}

// WithHeader controls whether the first CSV row is a header. Defaults to true.
func WithHeader(header bool) Option {
	return func(a *App) {
		a.header = header
	}
}

// WithLogger sets the application logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMailSender sets the provider used in production mode.
func WithMailSender(s mailer.Sender) Option {
	return func(a *App) {
		a.mailSender = s
	}
}

// WithStorage sets the storage CSV and template paths are read from.
// Defaults to the local filesystem.
func WithStorage(s storage.Storage) Option {
	return func(a *App) {
		if s != nil {
			a.store = s
		}
	}
}

// WithRand sets the random source used to pick rows.
func WithRand(r *rand.Rand) Option {
	return func(a *App) {
		a.rand = r
	}
}

// WithSanitize sets a function applied to the rendered HTML before dispatch.
func WithSanitize(fn func(string) string) Option {
	return func(a *App) {
		a.sanitize = fn
	}
}
