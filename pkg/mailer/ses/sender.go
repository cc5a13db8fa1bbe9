// Package ses implements mailer.Sender on top of Amazon SES.
package ses

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/dmitrymomot/luckymail/pkg/mailer"
)

// ProviderName identifies SES in mailer.Result.
const ProviderName = "ses"

const charset = "UTF-8"

type api interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Sender implements mailer.Sender using the SES SendEmail API.
type Sender struct {
	client api
}

// New creates a SES sender from cfg.
func New(ctx context.Context, cfg Config) (*Sender, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("ses: failed to load aws config: %w", err)
	}

	client := ses.NewFromConfig(awsCfg, func(o *ses.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewWithClient(client), nil
}

// NewWithClient creates a SES sender around an existing client.
func NewWithClient(client *ses.Client) *Sender {
	return &Sender{client: client}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, msg *mailer.Message) (*mailer.Result, error) {
	out, err := s.client.SendEmail(ctx, newInput(msg))
	if err != nil {
		return nil, fmt.Errorf("ses: failed to send email: %w", err)
	}

	result := &mailer.Result{Provider: ProviderName}
	if out != nil {
		result.ID = aws.ToString(out.MessageId)
	}
	return result, nil
}

func newInput(msg *mailer.Message) *ses.SendEmailInput {
	return &ses.SendEmailInput{
		Source: aws.String(msg.From.Address()),
		Destination: &types.Destination{
			ToAddresses: mailer.Addresses(msg.To),
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String(charset)},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(msg.HTML), Charset: aws.String(charset)},
			},
		},
	}
}

var _ mailer.Sender = (*Sender)(nil)
