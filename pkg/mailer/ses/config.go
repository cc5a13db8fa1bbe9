package ses

// Config holds Amazon SES configuration.
// Empty credentials fall back to the default AWS credential chain.
type Config struct {
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Endpoint  string `mapstructure:"endpoint"`
}
