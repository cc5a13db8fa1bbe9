package mailersend

// Config holds MailerSend email provider configuration.
type Config struct {
	APIKey string `mapstructure:"api_key"`
}
