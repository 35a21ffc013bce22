package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env      string  `mapstructure:"env"`       // current application environment (local, dev, production)
	LogLevel string  `mapstructure:"log_level"` // overrides the environment's default log level when set
	OpenTDB  OpenTDB `mapstructure:"opentdb"`   // trivia service section
	Server   Server  `mapstructure:"server"`    // HTTP API section
	Store    Store   `mapstructure:"store"`     // session store section
}

// OpenTDB configures the trivia service client.
type OpenTDB struct {
	BaseURL          string        `mapstructure:"base_url"`          // service root, e.g. https://opentdb.com
	Timeout          time.Duration `mapstructure:"timeout"`           // per-request HTTP timeout
	CountConcurrency int           `mapstructure:"count_concurrency"` // parallel per-category count fetches
}

// Server configures the HTTP API.
type Server struct {
	Addr              string        `mapstructure:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	SessionTTL        time.Duration `mapstructure:"session_ttl"` // idle sessions older than this are pruned
}

// Store configures the session store.
type Store struct {
	Path string `mapstructure:"path"` // SQLite path; ":memory:" keeps sessions in process memory
}

// Load reads configuration from an optional .env file, config files and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("log_level", "")
	v.SetDefault("opentdb.base_url", "https://opentdb.com")
	v.SetDefault("opentdb.timeout", "10s")
	v.SetDefault("opentdb.count_concurrency", 4)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_header_timeout", "5s")
	v.SetDefault("server.session_ttl", "1h")
	v.SetDefault("store.path", ":memory:")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("log_level", "LOG_LEVEL")
	_ = v.BindEnv("opentdb.base_url", "OPENTDB_BASE_URL")
	_ = v.BindEnv("opentdb.timeout", "OPENTDB_TIMEOUT")
	_ = v.BindEnv("opentdb.count_concurrency", "OPENTDB_COUNT_CONCURRENCY")
	_ = v.BindEnv("server.addr", "ADDR")
	_ = v.BindEnv("server.session_ttl", "SESSION_TTL")
	_ = v.BindEnv("store.path", "STORE_PATH")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.OpenTDB.BaseURL) == "" {
		return errors.New("opentdb.base_url must not be empty")
	}
	if c.OpenTDB.Timeout <= 0 {
		return errors.New("opentdb.timeout must be positive")
	}
	if c.OpenTDB.CountConcurrency < 1 {
		return errors.New("opentdb.count_concurrency must be at least 1")
	}
	return nil
}
