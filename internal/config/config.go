package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	API      APIConfig      `yaml:"api"`
	Database DatabaseConfig `yaml:"database"`
	Hermes   HermesConfig   `yaml:"hermes"`
	Activity ActivityConfig `yaml:"activity"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port               int  `yaml:"port"`
	MetricsPort        int  `yaml:"metrics_port"`
	RateLimitPerMinute int  `yaml:"rate_limit_per_minute"`
	CookieSecure       bool `yaml:"cookie_secure"`
}

// APIConfig points at the remote TOPSIS API.
type APIConfig struct {
	URL       string `yaml:"url"`
	Prefix    string `yaml:"prefix"`
	Docs      string `yaml:"docs"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type HermesConfig struct {
	URL string `yaml:"url"`
}

type ActivityConfig struct {
	Limit int `yaml:"limit"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.API.TimeoutMs) * time.Millisecond
}

// DocsURL is the link to the API's interactive documentation.
func (c *Config) DocsURL() string {
	return c.API.URL + c.API.Docs
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               8700,
			MetricsPort:        8701,
			RateLimitPerMinute: 240,
		},
		API: APIConfig{
			URL:       "http://localhost:8000",
			Prefix:    "/api/v1",
			Docs:      "/docs",
			TimeoutMs: 10000,
		},
		Activity: ActivityConfig{
			Limit: 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ROLLERSKATES_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("ROLLERSKATES_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("ROLLERSKATES_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimitPerMinute = n
		}
	}
	if v := os.Getenv("ROLLERSKATES_COOKIE_SECURE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Server.CookieSecure = b
		}
	}
	if v := os.Getenv("ROLLERSKATES_API_URL"); v != "" {
		cfg.API.URL = v
	}
	if v := os.Getenv("ROLLERSKATES_API_PREFIX"); v != "" {
		cfg.API.Prefix = v
	}
	if v := os.Getenv("ROLLERSKATES_API_DOCS"); v != "" {
		cfg.API.Docs = v
	}
	if v := os.Getenv("ROLLERSKATES_API_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.API.TimeoutMs = n
		}
	}
	if v := os.Getenv("ROLLERSKATES_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("ROLLERSKATES_HERMES_URL"); v != "" {
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("ROLLERSKATES_ACTIVITY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Activity.Limit = n
		}
	}
	if v := os.Getenv("ROLLERSKATES_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ROLLERSKATES_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
