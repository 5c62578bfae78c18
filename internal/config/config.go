// Package config resolves runtime settings from a .env file, environment
// variables, and an optional YAML config file, in the usual viper precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mamercad/clickops/internal/doapi"
)

const envPrefix = "CLICKOPS"

// Config is the resolved runtime configuration.
type Config struct {
	Token    string        `mapstructure:"token"`
	APIURL   string        `mapstructure:"api_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	LogLevel string        `mapstructure:"log_level"`
}

// Load resolves the configuration. When configFile is empty, a clickops.yaml
// in the working directory is used if present.
func Load(configFile string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("clickops")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The token is also picked up from the names the DigitalOcean tooling
	// ecosystem already uses.
	if err := v.BindEnv("token", "CLICKOPS_TOKEN", "DIGITALOCEAN_TOKEN", "DIGITALOCEAN_ACCESS_TOKEN"); err != nil {
		return Config{}, fmt.Errorf("binding token env vars: %w", err)
	}

	v.SetDefault("api_url", doapi.DefaultBaseURL)
	v.SetDefault("timeout", doapi.DefaultTimeout)
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	return cfg, nil
}

// Validate checks the preconditions that must hold before a client is built.
func (c Config) Validate() error {
	if c.Token == "" {
		return errors.New("missing API token: set DIGITALOCEAN_TOKEN or token in clickops.yaml")
	}
	return nil
}

// ClientConfig maps the resolved settings onto the API client configuration.
func (c Config) ClientConfig() doapi.Config {
	return doapi.Config{
		Token:   c.Token,
		BaseURL: c.APIURL,
		Timeout: c.Timeout,
	}
}
