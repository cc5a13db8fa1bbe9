package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully rendered Message and handles the actual delivery.
type Sender interface {
	// Send delivers an email message and returns the provider's result.
	// Implementations do not retry.
	Send(ctx context.Context, msg *Message) (*Result, error)
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, msg *Message) (*Result, error)

// Send implements Sender.
func (f SenderFunc) Send(ctx context.Context, msg *Message) (*Result, error) {
	return f(ctx, msg)
}
