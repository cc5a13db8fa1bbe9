package internal

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/dmitrymomot/luckymail/pkg/csvrow"
	"github.com/dmitrymomot/luckymail/pkg/logger"
	"github.com/dmitrymomot/luckymail/pkg/mailer"
	"github.com/dmitrymomot/luckymail/pkg/storage"
)

// DefaultSubject is used when neither an explicit subject nor a template
// frontmatter subject is set.
const DefaultSubject = "New Data Row!"

// App draws a random CSV row, renders it into a template and dispatches the result.
// App is immutable after creation - all configuration is done via New().
// Send is not safe for concurrent use when a shared *rand.Rand is configured.
type App struct {
	logger       *slog.Logger
	store        storage.Storage
	mailSender   mailer.Sender
	rand         *rand.Rand
	sanitize     func(string) string
	vars         mailer.VariableMap
	from         mailer.Identity
	csvPath      string
	templatePath string
	subject      string
	debugOutput  string
	recipients   []mailer.Identity
	header       bool
	production   bool

	renderer   *mailer.Renderer
	dispatcher *mailer.Dispatcher
}

// New creates a new application with the given options.
//
// Example:
//
//	app := luckymail.New(
//	    luckymail.WithCSV("quotes.csv"),
//	    luckymail.WithTemplate("template.html"),
//	    luckymail.WithSender(mailer.Identity{Email: "bot@example.com"}),
//	)
//	sent, err := app.Send(ctx)
func New(opts ...Option) *App {
	a := &App{
		logger:      logger.NewNope(),
		store:       storage.NewLocal(""),
		header:      true,
		debugOutput: mailer.DefaultDebugOutput,
	}

	for _, opt := range opts {
		opt(a)
	}

	var renderOpts []mailer.RendererOption
	if a.sanitize != nil {
		renderOpts = append(renderOpts, mailer.WithSanitizer(a.sanitize))
	}
	a.renderer = mailer.NewRenderer(a.store, renderOpts...)
	a.dispatcher = mailer.NewDispatcher(a.mailSender,
		mailer.WithDebugOutput(a.debugOutput),
		mailer.WithDispatchLogger(a.logger),
	)

	return a
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Send runs one select, render and dispatch cycle.
//
// It returns false with a nil error when there is nothing to send: the CSV
// file is missing or empty, or holds a header without data rows. Every other
// failure is returned as a *StageError naming the failed stage.
func (a *App) Send(ctx context.Context) (bool, error) {
	if a.csvPath == "" {
		return false, ErrCSVRequired
	}
	if a.templatePath == "" {
		return false, ErrTemplateRequired
	}

	if _, ok := logger.RunID(ctx); !ok {
		ctx, _ = logger.WithRunID(ctx)
	}

	sel, err := csvrow.Select(ctx, a.store, a.csvPath,
		csvrow.WithHeader(a.header),
		csvrow.WithRand(a.rand),
	)
	if err != nil {
		return false, stageError(StageSelect, err)
	}
	switch sel.Kind {
	case csvrow.KindNotFound:
		a.logger.WarnContext(ctx, "could not read input", slog.String("csv", a.csvPath))
		return false, nil
	case csvrow.KindNoRows:
		a.logger.WarnContext(ctx, "no data rows", slog.String("csv", a.csvPath))
		return false, nil
	}

	rendered, err := a.render(ctx, sel.Row)
	if err != nil {
		return false, stageError(StageRender, err)
	}

	msg := &mailer.Message{
		From:    a.from,
		To:      a.recipients,
		Subject: a.resolveSubject(rendered.Subject),
		HTML:    rendered.HTML,
	}

	result, err := a.dispatcher.Dispatch(ctx, msg, a.production)
	if err != nil {
		return false, stageError(StageDispatch, err)
	}

	a.logger.InfoContext(ctx, "run completed",
		slog.Bool("production", a.production),
		slog.String("result", result.String()),
	)
	return true, nil
}

// render skips the frontmatter subject when an explicit subject overrides it.
func (a *App) render(ctx context.Context, row map[string]string) (*mailer.RenderResult, error) {
	if a.subject == "" {
		return a.renderer.RenderTemplate(ctx, a.templatePath, row, a.vars)
	}
	html, err := a.renderer.Render(ctx, a.templatePath, row, a.vars)
	if err != nil {
		return nil, err
	}
	return &mailer.RenderResult{HTML: html}, nil
}

func (a *App) resolveSubject(fromTemplate string) string {
	switch {
	case a.subject != "":
		return a.subject
	case fromTemplate != "":
		return fromTemplate
	}
	return DefaultSubject
}

// Send is shorthand for New(opts...).Send(ctx).
func Send(ctx context.Context, opts ...Option) (bool, error) {
	return New(opts...).Send(ctx)
}
