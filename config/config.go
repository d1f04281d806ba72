package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/s0up4200/fetchserp/fetchserp"
	"github.com/s0up4200/fetchserp/output"
)

// EnvPrefix is prepended to every environment override, e.g. FETCHSERP_API_KEY
const EnvPrefix = "FETCHSERP"

// Load loads the configuration from file and environment.
//
// An explicit configPath must exist. Without one, the standard locations
// are searched and a missing file is not an error, so the API key may come
// from the environment alone. Overrides, keyed like the config file, take
// precedence over both.
func Load(configPath string, overrides map[string]any) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".fetchserp"))
		}

		v.AddConfigPath("/etc/fetchserp/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("api_key", "")
	v.SetDefault("base_url", fetchserp.DefaultBaseURL)
	v.SetDefault("timeout_ms", int(fetchserp.DefaultTimeout/time.Millisecond))
	v.SetDefault("concurrency", fetchserp.DefaultConcurrency)
	v.SetDefault("user_agent", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	v.SetDefault("output.format", string(output.FormatJSON))

	v.SetDefault("metrics.enabled", false)
}

// Timeout returns the configured request timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.APIKey) == "" || cfg.APIKey == "your-api-key-here" {
		return fmt.Errorf("api_key must be set (config file or %s_API_KEY)", EnvPrefix)
	}

	if cfg.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}

	if cfg.TimeoutMS <= 0 {
		return fmt.Errorf("timeout_ms must be positive, got %d", cfg.TimeoutMS)
	}

	if cfg.Concurrency < 1 || cfg.Concurrency > fetchserp.MaxConcurrency {
		return fmt.Errorf("concurrency must be between 1 and %d, got %d", fetchserp.MaxConcurrency, cfg.Concurrency)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	if _, err := output.ParseFormat(cfg.Output.Format); err != nil {
		return fmt.Errorf("invalid output.format: %w", err)
	}

	for name, expression := range cfg.Output.Expressions {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("output.expressions.%s is empty", name)
		}
	}

	return nil
}
