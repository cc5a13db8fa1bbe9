// Package mailer renders HTML emails from flat placeholder templates and
// hands them to a delivery provider or to a local debug file.
//
// # Architecture
//
// The package consists of three main components:
//
//   - Sender: Interface that email providers implement (see the resend,
//     mailersend, smtp and ses subpackages)
//   - Renderer: Loads a template and substitutes {name} placeholders
//   - Dispatcher: Sends a Message in production mode, writes it to a debug
//     file otherwise
//
// # Templates
//
// Templates are plain text (usually HTML) with {name} placeholders. Every
// placeholder must resolve, otherwise rendering fails with
// ErrMissingPlaceholder. Literal braces are written doubled:
//
//	<style>p {{ color: #333; }}</style>
//	<p>{quote}</p>
//	<span>{author}</span>
//
// Values are inserted verbatim; they are not HTML-escaped.
//
// A template may start with a YAML frontmatter block. Its subject key is
// substituted like the body by RenderTemplate and used when the caller gives
// no subject. Render skips it, so its placeholders only have to resolve when
// the subject is actually used:
//
//	---
//	subject: Quote of the day by {author}
//	---
//	<p>{quote}</p>
//
// A template whose first line is "---" always opens a frontmatter block. If
// the closing "---" line is missing, rendering fails with
// ErrInvalidFrontmatter rather than treating the content as body.
//
// Templates with a .md extension are converted from Markdown to HTML after
// substitution.
//
// # Variable Maps
//
// A VariableMap renames row columns for the template. Its keys are the
// placeholder names and its values the source columns:
//
//	ctx := mailer.BuildContext(row, mailer.VariableMap{"text": "Quote"})
//
// A nil map passes the row through unchanged. A non-nil empty map produces an
// empty context, so any placeholder in the template then fails to resolve.
//
// # Usage
//
//	renderer := mailer.NewRenderer(storage.NewLocal(""))
//	html, err := renderer.Render(ctx, "quote.html", row, nil)
//	if err != nil {
//		return err
//	}
//
//	d := mailer.NewDispatcher(resend.New(resend.Config{APIKey: key}))
//	result, err := d.Dispatch(ctx, &mailer.Message{
//		From:    mailer.Identity{Email: "bot@example.com", Name: "Bot"},
//		To:      []mailer.Identity{{Email: "me@example.com"}},
//		Subject: "Quote of the day",
//		HTML:    html,
//	}, production)
//
// # Errors
//
//   - ErrTemplateNotFound: Template file not found
//   - ErrMissingPlaceholder: Placeholder without a value
//   - ErrMalformedTemplate: Unbalanced or invalid braces
//   - ErrInvalidFrontmatter: Invalid YAML frontmatter
//   - ErrRenderFailed: Template could not be loaded or converted
//   - ErrSenderNotConfigured: Production dispatch without a Sender
//   - ErrSendFailed: Email sending failed
//   - ErrDebugWrite: Debug file could not be written
package mailer
