// Package resend implements mailer.Sender on top of the Resend API.
package resend

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/luckymail/pkg/mailer"
)

// ProviderName identifies Resend in mailer.Result.
const ProviderName = "resend"

// ErrMissingAPIKey is returned when the API key is empty.
var ErrMissingAPIKey = errors.New("resend: api key is required")

// emailAPI is the subset of the Resend client used by Sender.
type emailAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	emails emailAPI
}

// New creates a new Resend sender.
func New(cfg Config) (*Sender, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Sender{emails: resend.NewClient(cfg.APIKey).Emails}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, msg *mailer.Message) (*mailer.Result, error) {
	resp, err := s.emails.SendWithContext(ctx, newRequest(msg))
	if err != nil {
		return nil, fmt.Errorf("resend: failed to send email: %w", err)
	}

	result := &mailer.Result{Provider: ProviderName}
	if resp != nil {
		result.ID = resp.Id
	}
	return result, nil
}

func newRequest(msg *mailer.Message) *resend.SendEmailRequest {
	return &resend.SendEmailRequest{
		From:    msg.From.Address(),
		To:      mailer.Addresses(msg.To),
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
}

var _ mailer.Sender = (*Sender)(nil)
