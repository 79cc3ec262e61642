package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}

	if cfg.Backend.BaseURL != DefaultBackendURL {
		t.Errorf("BaseURL = %s, expected %s", cfg.Backend.BaseURL, DefaultBackendURL)
	}
	if cfg.PollInterval() != DefaultPollInterval {
		t.Errorf("PollInterval() = %v, expected %v", cfg.PollInterval(), DefaultPollInterval)
	}
	if cfg.HTTPTimeout() != DefaultHTTPTimeout {
		t.Errorf("HTTPTimeout() = %v, expected %v", cfg.HTTPTimeout(), DefaultHTTPTimeout)
	}
}

func TestLoad_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "backend:\n  base_url: http://10.0.0.2:5000/api\n  timeout_seconds: 5\npoll:\n  interval_seconds: 3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Backend.BaseURL != "http://10.0.0.2:5000/api" {
		t.Errorf("BaseURL = %s", cfg.Backend.BaseURL)
	}
	if cfg.PollInterval() != 3*time.Second {
		t.Errorf("PollInterval() = %v, expected 3s", cfg.PollInterval())
	}
	if cfg.HTTPTimeout() != 5*time.Second {
		t.Errorf("HTTPTimeout() = %v, expected 5s", cfg.HTTPTimeout())
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("backend:\n  base_url: http://file-wins:5000/api\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("DLMASTER_BACKEND_URL", "http://env-wins:5000/api")
	t.Setenv("DLMASTER_POLL_INTERVAL_SECONDS", "7")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Backend.BaseURL != "http://env-wins:5000/api" {
		t.Errorf("BaseURL = %s, expected the env override", cfg.Backend.BaseURL)
	}
	if cfg.PollInterval() != 7*time.Second {
		t.Errorf("PollInterval() = %v, expected 7s", cfg.PollInterval())
	}
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("backend: ["), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
