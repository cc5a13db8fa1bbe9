package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/dmitrymomot/luckymail/pkg/storage"
)

// Renderer loads templates from storage and substitutes placeholders.
// Templates are read on every call, so edits are picked up without a restart.
type Renderer struct {
	store    storage.Storage
	md       goldmark.Markdown
	sanitize func(string) string
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithSanitizer sets a function applied to the final HTML.
// Substituted values are inserted verbatim unless a sanitizer is set.
func WithSanitizer(fn func(string) string) RendererOption {
	return func(r *Renderer) {
		r.sanitize = fn
	}
}

// NewRenderer creates a renderer reading templates from store.
func NewRenderer(store storage.Storage, opts ...RendererOption) *Renderer {
	r := &Renderer{
		store: store,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			// Raw HTML in Markdown templates is intended content.
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderResult contains the rendered HTML and the resolved frontmatter.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	Subject  string // Substituted frontmatter subject, empty when absent
}

// Render renders the template at templatePath with data, renamed through vars.
// See BuildContext for the meaning of a nil or empty vars.
// The frontmatter subject is not substituted, so its placeholders need not resolve.
func (r *Renderer) Render(ctx context.Context, templatePath string, data map[string]string, vars VariableMap) (string, error) {
	result, err := r.render(ctx, templatePath, data, vars, false)
	if err != nil {
		return "", err
	}
	return result.HTML, nil
}

// RenderTemplate is Render plus the substituted frontmatter subject and metadata.
func (r *Renderer) RenderTemplate(ctx context.Context, templatePath string, data map[string]string, vars VariableMap) (*RenderResult, error) {
	return r.render(ctx, templatePath, data, vars, true)
}

func (r *Renderer) render(ctx context.Context, templatePath string, data map[string]string, vars VariableMap, withSubject bool) (*RenderResult, error) {
	content, err := r.load(ctx, templatePath)
	if err != nil {
		return nil, err
	}

	tmpl, err := ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", templatePath, err)
	}

	values := BuildContext(data, vars)

	body, err := Substitute(tmpl.Body, values)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", templatePath, err)
	}

	var subject string
	if s, ok := tmpl.Subject(); ok && withSubject {
		subject, err = Substitute(s, values)
		if err != nil {
			return nil, fmt.Errorf("%s: subject: %w", templatePath, err)
		}
	}

	if isMarkdown(templatePath) {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(body), &buf); err != nil {
			return nil, fmt.Errorf("%w: failed to convert markdown: %v", ErrRenderFailed, err)
		}
		body = buf.String()
	}

	if r.sanitize != nil {
		body = r.sanitize(body)
	}

	return &RenderResult{
		HTML:     body,
		Subject:  subject,
		Metadata: tmpl.Metadata,
	}, nil
}

func (r *Renderer) load(ctx context.Context, name string) ([]byte, error) {
	rc, err := r.store.Get(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(transform.NewReader(rc, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}
	return content, nil
}

func isMarkdown(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
