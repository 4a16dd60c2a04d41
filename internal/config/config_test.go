package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.API.BaseURL != "https://api.artic.edu/api/v1" {
		t.Errorf("Unexpected default base URL: %s", cfg.API.BaseURL)
	}
	if cfg.API.GetTimeout() != 30*time.Second {
		t.Errorf("Unexpected default timeout: %v", cfg.API.GetTimeout())
	}
	if cfg.Server.Name != "art-institute-chicago" {
		t.Errorf("Unexpected server name: %s", cfg.Server.Name)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Unexpected log level: %s", cfg.Logging.Level)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Missing config file should not error: %v", err)
	}
	if cfg.API.BaseURL != "https://api.artic.edu/api/v1" {
		t.Errorf("Defaults not applied: %s", cfg.API.BaseURL)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aic-mcp.toml")
	content := `
[server]
name = "aic-test"
port = "9999"

[api]
base_url = "http://localhost:8080/api/v1"
timeout = "5s"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Server.Name != "aic-test" {
		t.Errorf("Expected server name aic-test, got %s", cfg.Server.Name)
	}
	if cfg.API.BaseURL != "http://localhost:8080/api/v1" {
		t.Errorf("Expected overridden base URL, got %s", cfg.API.BaseURL)
	}
	if cfg.API.GetTimeout() != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", cfg.API.GetTimeout())
	}
	// Unset file values keep their defaults
	if cfg.API.IIIFBaseURL != "https://www.artic.edu/iiif/2" {
		t.Errorf("Default IIIF URL lost: %s", cfg.API.IIIFBaseURL)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error for invalid TOML")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AIC_API_BASE_URL", "http://localhost:7777/api/v1")
	t.Setenv("AIC_MCP_PORT", "4299")
	t.Setenv("AIC_LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:7777/api/v1" {
		t.Errorf("Env override not applied: %s", cfg.API.BaseURL)
	}
	if cfg.Server.Port != "4299" {
		t.Errorf("Env override not applied: %s", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Env override not applied: %s", cfg.Logging.Level)
	}
}

func TestGetTimeout_Invalid(t *testing.T) {
	api := APIConfig{Timeout: "soon"}
	if api.GetTimeout() != 30*time.Second {
		t.Errorf("Invalid timeout should fall back to 30s, got %v", api.GetTimeout())
	}
	api = APIConfig{Timeout: "-5s"}
	if api.GetTimeout() != 30*time.Second {
		t.Errorf("Negative timeout should fall back to 30s, got %v", api.GetTimeout())
	}
}
