package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the settings read from the optional config file and the
// environment. It is loaded once per process invocation and read-only
// thereafter.
type Config struct {
	Encoding Encoding `mapstructure:"encoding"`
	Label    Label    `mapstructure:"label"`
	Storage  Storage  `mapstructure:"storage"`
	Debug    bool     `mapstructure:"debug"`
}

// Encoding holds output encoding settings.
type Encoding struct {
	Quality int `mapstructure:"quality"` // JPEG quality, 1-100
}

// Label holds settings for the optional label stamp.
type Label struct {
	FontPath string `mapstructure:"font_path"`
}

// Storage holds credentials for the optional S3-compatible output sink.
type Storage struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

const defaultQuality = 85

// Load reads the configuration from ./config/config.yml and the environment.
// A missing config file is not an error; defaults apply. DEBUG=true in the
// environment enables verbose logging, equivalent to the --debug flag.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("encoding.quality", defaultQuality)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.BindEnv("debug", "DEBUG"); err != nil {
		return nil, fmt.Errorf("failed to bind env DEBUG: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// GetBool coerces the env string form ("true") that Unmarshal would not.
	cfg.Debug = v.GetBool("debug")

	return &cfg, nil
}
