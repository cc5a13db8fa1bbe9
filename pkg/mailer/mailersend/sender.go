// Package mailersend implements mailer.Sender on top of the MailerSend API.
package mailersend

import (
	"context"
	"errors"
	"fmt"

	"github.com/mailersend/mailersend-go"

	"github.com/dmitrymomot/luckymail/pkg/mailer"
)

// ProviderName identifies MailerSend in mailer.Result.
const ProviderName = "mailersend"

// ErrMissingAPIKey is returned when the API key is empty.
var ErrMissingAPIKey = errors.New("mailersend: api key is required")

// emailAPI is the subset of the MailerSend client used by Sender.
type emailAPI interface {
	Send(ctx context.Context, message *mailersend.Message) (*mailersend.Response, error)
}

// Sender implements mailer.Sender using the MailerSend API.
type Sender struct {
	emails emailAPI
}

// New creates a new MailerSend sender.
func New(cfg Config) (*Sender, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Sender{emails: mailersend.NewMailersend(cfg.APIKey).Email}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, msg *mailer.Message) (*mailer.Result, error) {
	resp, err := s.emails.Send(ctx, newMessage(msg))
	if err != nil {
		return nil, fmt.Errorf("mailersend: failed to send email: %w", err)
	}

	result := &mailer.Result{Provider: ProviderName}
	if resp != nil && resp.Response != nil {
		result.ID = resp.Header.Get("X-Message-Id")
	}
	return result, nil
}

func newMessage(msg *mailer.Message) *mailersend.Message {
	recipients := make([]mailersend.Recipient, len(msg.To))
	for i, to := range msg.To {
		recipients[i] = mailersend.Recipient{Name: to.Name, Email: to.Email}
	}

	m := new(mailersend.Message)
	m.SetFrom(mailersend.From{Name: msg.From.Name, Email: msg.From.Email})
	m.SetRecipients(recipients)
	m.SetSubject(msg.Subject)
	m.SetHTML(msg.HTML)
	return m
}

var _ mailer.Sender = (*Sender)(nil)
