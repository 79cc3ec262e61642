package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Deployment defaults
const (
	DefaultBackendURL   = "http://127.0.0.1:5000/api"
	DefaultPollInterval = 2 * time.Second
	DefaultHTTPTimeout  = 15 * time.Second
)

// AppConfig holds deployment configuration: where the backend lives and how
// the poller paces itself. Loaded from an optional YAML file, then a .env
// file, then environment variables, later sources winning.
type AppConfig struct {
	Backend struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"backend"`
	Poll struct {
		IntervalSeconds int `yaml:"interval_seconds"`
	} `yaml:"poll"`
}

// Load reads the config file at path when it exists, applies .env and
// environment overrides, and fills in defaults. A missing file is not an
// error; a malformed one is.
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig

	if path != "" {
		f, err := os.Open(path)
		switch {
		case err == nil:
			dec := yaml.NewDecoder(f)
			decodeErr := dec.Decode(&cfg)
			f.Close()
			if decodeErr != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, decodeErr)
			}
		case os.IsNotExist(err):
			// run on defaults
		default:
			return nil, fmt.Errorf("failed to open config %s: %w", path, err)
		}
	}

	// .env values become environment variables; existing ones win
	_ = godotenv.Load()

	if v := getEnv("DLMASTER_BACKEND_URL", ""); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := getEnvInt("DLMASTER_HTTP_TIMEOUT_SECONDS", 0); v > 0 {
		cfg.Backend.TimeoutSeconds = v
	}
	if v := getEnvInt("DLMASTER_POLL_INTERVAL_SECONDS", 0); v > 0 {
		cfg.Poll.IntervalSeconds = v
	}

	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = DefaultBackendURL
	}
	return &cfg, nil
}

// PollInterval returns the configured poll interval or the default
func (c *AppConfig) PollInterval() time.Duration {
	if c.Poll.IntervalSeconds > 0 {
		return time.Duration(c.Poll.IntervalSeconds) * time.Second
	}
	return DefaultPollInterval
}

// HTTPTimeout returns the configured request timeout or the default
func (c *AppConfig) HTTPTimeout() time.Duration {
	if c.Backend.TimeoutSeconds > 0 {
		return time.Duration(c.Backend.TimeoutSeconds) * time.Second
	}
	return DefaultHTTPTimeout
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}
