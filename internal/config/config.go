package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/dmitrymomot/luckymail/pkg/logger"
	"github.com/dmitrymomot/luckymail/pkg/mailer"
	"github.com/dmitrymomot/luckymail/pkg/mailer/mailersend"
	"github.com/dmitrymomot/luckymail/pkg/mailer/resend"
	"github.com/dmitrymomot/luckymail/pkg/mailer/ses"
	"github.com/dmitrymomot/luckymail/pkg/mailer/smtp"
	"github.com/dmitrymomot/luckymail/pkg/storage"
)

// EnvPrefix is the prefix of all environment variables read by Load.
const EnvPrefix = "LUCKYMAIL"

// ErrInvalidConfig is returned when the loaded configuration is inconsistent.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all configuration for the application
type Config struct {
	// Production enables real delivery. It is true only for the
	// case-insensitive value "true".
	Production bool `mapstructure:"-"`

	CSV         string            `mapstructure:"csv"`
	Template    string            `mapstructure:"template"`
	Subject     string            `mapstructure:"subject"`
	Header      bool              `mapstructure:"header"`
	DebugOutput string            `mapstructure:"debug_output"`
	Sanitize    string            `mapstructure:"sanitize"`
	Sender      mailer.Identity   `mapstructure:"sender"`
	Recipients  []mailer.Identity `mapstructure:"recipients"`
	// VariableMap maps placeholder names to CSV columns. Placeholder names
	// are lowercased by the config loader.
	VariableMap map[string]string `mapstructure:"variable_map"`

	Schedule ScheduleConfig `mapstructure:"schedule"`
	Mail     MailConfig     `mapstructure:"mail"`
	Storage  storage.Config `mapstructure:"storage"`
	Log      logger.Config  `mapstructure:"log"`
}

// ScheduleConfig holds cron scheduling configuration
type ScheduleConfig struct {
	Cron     string `mapstructure:"cron"`
	RunNow   bool   `mapstructure:"run_now"`
	Timezone string `mapstructure:"timezone"`
}

// MailConfig holds email provider configuration
type MailConfig struct {
	// Provider is one of "resend", "mailersend", "smtp" or "ses".
	Provider   string            `mapstructure:"provider"`
	Resend     resend.Config     `mapstructure:"resend"`
	MailerSend mailersend.Config `mapstructure:"mailersend"`
	SMTP       smtp.Config       `mapstructure:"smtp"`
	SES        ses.Config        `mapstructure:"ses"`
}

// Load reads configuration from defaults, an optional YAML file and
// environment variables, in increasing order of precedence.
// If file is empty, luckymail.yaml is looked up in the working directory
// and in $HOME/.config/luckymail; a missing file is not an error.
func Load(file string) (*Config, error) {
	v := viper.New()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("luckymail")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/luckymail")
	}

	// Set defaults
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Bind environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Production = ParseProdMode(v.GetString("production"))

	if len(cfg.Recipients) == 0 {
		legacy := mailer.Identity{
			Email: v.GetString("recipient.email"),
			Name:  v.GetString("recipient.name"),
		}
		if legacy.Email != "" || legacy.Name != "" {
			cfg.Recipients = []mailer.Identity{legacy}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseProdMode reports whether s is the case-insensitive literal "true".
// Any other value, including "1", "yes" and "", means non-production.
func ParseProdMode(s string) bool {
	return strings.EqualFold(s, "true")
}

// Validate checks values that cannot be caught by defaults.
func (c *Config) Validate() error {
	switch c.Mail.Provider {
	case ProviderResend, ProviderMailerSend, ProviderSMTP, ProviderSES:
	default:
		return fmt.Errorf("%w: unknown mail provider %q", ErrInvalidConfig, c.Mail.Provider)
	}
	if c.DebugOutput == "" {
		return fmt.Errorf("%w: debug_output must not be empty", ErrInvalidConfig)
	}
	return nil
}

// bindLegacyEnv maps the environment variable names used by earlier
// deployments onto config keys. Prefixed names win over legacy ones.
func bindLegacyEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"production":              {EnvPrefix + "_PRODUCTION", "PROD_MODE"},
		"sender.name":             {EnvPrefix + "_SENDER_NAME", "EMAIL_SENDER"},
		"sender.email":            {EnvPrefix + "_SENDER_EMAIL", "EMAIL_SENDER_ADDRESS"},
		"recipient.name":          {"EMAIL_RECIPIENT_0_NAME"},
		"recipient.email":         {"EMAIL_RECIPIENT_0_ADDRESS"},
		"mail.resend.api_key":     {EnvPrefix + "_MAIL_RESEND_API_KEY", "RESEND_API_KEY"},
		"mail.mailersend.api_key": {EnvPrefix + "_MAIL_MAILERSEND_API_KEY", "MAILERSEND_API_KEY"},
		"log.sentry.dsn":          {EnvPrefix + "_LOG_SENTRY_DSN", "SENTRY_DSN"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Run defaults
	v.SetDefault("production", "false")
	v.SetDefault("csv", "data.csv")
	v.SetDefault("template", "template.html")
	v.SetDefault("subject", "")
	v.SetDefault("header", true)
	v.SetDefault("debug_output", mailer.DefaultDebugOutput)
	v.SetDefault("sanitize", "none")
	v.SetDefault("sender.email", "")
	v.SetDefault("sender.name", "")

	// Schedule defaults
	v.SetDefault("schedule.cron", "0 8 * * *")
	v.SetDefault("schedule.run_now", false)
	v.SetDefault("schedule.timezone", "")

	// Mail defaults
	v.SetDefault("mail.provider", ProviderResend)
	v.SetDefault("mail.resend.api_key", "")
	v.SetDefault("mail.mailersend.api_key", "")
	v.SetDefault("mail.smtp.host", "")
	v.SetDefault("mail.smtp.port", smtp.DefaultPort)
	v.SetDefault("mail.smtp.username", "")
	v.SetDefault("mail.smtp.password", "")
	v.SetDefault("mail.smtp.ssl", false)
	v.SetDefault("mail.smtp.timeout", "10s")
	v.SetDefault("mail.ses.region", "")
	v.SetDefault("mail.ses.access_key", "")
	v.SetDefault("mail.ses.secret_key", "")
	v.SetDefault("mail.ses.endpoint", "")

	// Storage defaults
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.access_key", "")
	v.SetDefault("storage.secret_key", "")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.region", storage.DefaultRegion)
	v.SetDefault("storage.path_style", false)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logger.FormatJSON)
	v.SetDefault("log.sentry.dsn", "")
	v.SetDefault("log.sentry.environment", "production")
	v.SetDefault("log.sentry.min_level", "warn")
}
