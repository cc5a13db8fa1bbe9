// Package smtp implements mailer.Sender over plain SMTP.
package smtp

import (
	"context"
	"errors"
	"fmt"

	gomail "gopkg.in/mail.v2"

	"github.com/dmitrymomot/luckymail/pkg/mailer"
)

// ProviderName identifies SMTP in mailer.Result.
const ProviderName = "smtp"

// ErrMissingHost is returned when no SMTP host is configured.
var ErrMissingHost = errors.New("smtp: host is required")

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Sender implements mailer.Sender by dialing an SMTP server for each message.
type Sender struct {
	dialer dialer
}

// New creates a new SMTP sender.
func New(cfg Config) (*Sender, error) {
	if cfg.Host == "" {
		return nil, ErrMissingHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if cfg.SSL {
		d.SSL = true
	}
	if cfg.Timeout > 0 {
		d.Timeout = cfg.Timeout
	}
	return &Sender{dialer: d}, nil
}

// Send implements mailer.Sender.
// SMTP returns no message ID, so the result carries only the provider name.
func (s *Sender) Send(ctx context.Context, msg *mailer.Message) (*mailer.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.dialer.DialAndSend(newMessage(msg)); err != nil {
		return nil, fmt.Errorf("smtp: failed to send email: %w", err)
	}
	return &mailer.Result{Provider: ProviderName}, nil
}

func newMessage(msg *mailer.Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", msg.From.Email, msg.From.Name)
	if len(msg.To) > 0 {
		to := make([]string, len(msg.To))
		for i, id := range msg.To {
			to[i] = m.FormatAddress(id.Email, id.Name)
		}
		m.SetHeader("To", to...)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)
	return m
}

var _ mailer.Sender = (*Sender)(nil)
