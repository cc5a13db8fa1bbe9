package config

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrymomot/luckymail/pkg/mailer"
	"github.com/dmitrymomot/luckymail/pkg/mailer/mailersend"
	"github.com/dmitrymomot/luckymail/pkg/mailer/resend"
	"github.com/dmitrymomot/luckymail/pkg/mailer/ses"
	"github.com/dmitrymomot/luckymail/pkg/mailer/smtp"
	"github.com/dmitrymomot/luckymail/pkg/storage"
)

// Supported mail providers.
const (
	ProviderResend     = "resend"
	ProviderMailerSend = "mailersend"
	ProviderSMTP       = "smtp"
	ProviderSES        = "ses"
)

// NewSender creates the configured mail provider.
func (c MailConfig) NewSender(ctx context.Context) (mailer.Sender, error) {
	switch c.Provider {
	case ProviderResend:
		return resend.New(c.Resend)
	case ProviderMailerSend:
		return mailersend.New(c.MailerSend)
	case ProviderSMTP:
		return smtp.New(c.SMTP)
	case ProviderSES:
		return ses.New(ctx, c.SES)
	}
	return nil, fmt.Errorf("%w: unknown mail provider %q", ErrInvalidConfig, c.Provider)
}

// NewStorage creates the storage CSV and template paths are read from.
// An S3 backend is set up only when a bucket is configured or one of the
// paths uses the s3:// scheme. With a bucket configured, bare paths are
// object keys inside it.
func (c Config) NewStorage(ctx context.Context) (storage.Storage, error) {
	local := storage.NewLocal("")
	if c.Storage.Bucket == "" && !storage.IsRemote(c.CSV) && !storage.IsRemote(c.Template) {
		return storage.NewRouter(local, nil), nil
	}

	remote, err := storage.NewS3(ctx, c.Storage)
	if err != nil {
		return nil, err
	}
	return storage.NewRouter(local, remote, storage.RemoteByDefault(c.Storage.Bucket != "")), nil
}

// Location returns the schedule time zone, or time.Local when unset.
func (c ScheduleConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	return loc, nil
}
