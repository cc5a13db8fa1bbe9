package mailer

import "errors"

var (
	// ErrTemplateNotFound indicates the template file was not found.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingPlaceholder indicates a placeholder has no value in the render context.
	ErrMissingPlaceholder = errors.New("missing placeholder value")

	// ErrMalformedTemplate indicates unbalanced or invalid placeholder syntax.
	ErrMalformedTemplate = errors.New("malformed template")

	// ErrInvalidFrontmatter indicates invalid YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")

	// ErrRenderFailed indicates template loading or conversion failed.
	ErrRenderFailed = errors.New("failed to render template")

	// ErrSenderNotConfigured indicates production dispatch without a Sender.
	ErrSenderNotConfigured = errors.New("email sender is not configured")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")

	// ErrDebugWrite indicates the debug output file could not be written.
	ErrDebugWrite = errors.New("failed to write debug email")
)
