package config

// Config represents the complete configuration structure
type Config struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	TimeoutMS   int           `mapstructure:"timeout_ms"`
	Concurrency int           `mapstructure:"concurrency"`
	UserAgent   string        `mapstructure:"user_agent"`
	Logging     LoggingConfig `mapstructure:"logging"`
	Output      OutputConfig  `mapstructure:"output"`
	Metrics     MetricsConfig `mapstructure:"metrics"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// OutputConfig controls how responses are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
	// Expressions maps a name to a projection usable with --expr @name
	Expressions map[string]string `mapstructure:"expressions"`
}

// MetricsConfig enables a Prometheus summary of the run
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
