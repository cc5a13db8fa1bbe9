package smtp

import "time"

// Config holds SMTP server configuration.
type Config struct {
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	SSL      bool          `mapstructure:"ssl"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// DefaultPort is used when Config.Port is zero.
const DefaultPort = 587
