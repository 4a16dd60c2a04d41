// Package config loads AIC MCP server configuration.
package config

import (
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/AlexLin1234/chicago-art-museum-mcp-server/internal/common"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	API     APIConfig            `toml:"api"`
	Logging common.LoggingConfig `toml:"logging"`
}

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// APIConfig holds the remote Art Institute of Chicago API settings.
type APIConfig struct {
	BaseURL     string `toml:"base_url"`
	IIIFBaseURL string `toml:"iiif_base_url"`
	WebBaseURL  string `toml:"web_base_url"`
	Timeout     string `toml:"timeout"`
}

// GetTimeout parses and returns the request timeout duration.
func (c *APIConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "art-institute-chicago",
			Port: "4280",
		},
		API: APIConfig{
			BaseURL:     "https://api.artic.edu/api/v1",
			IIIFBaseURL: "https://www.artic.edu/iiif/2",
			WebBaseURL:  "https://www.artic.edu",
			Timeout:     "30s",
		},
		Logging: common.LoggingConfig{
			Level:   "info",
			Outputs: []string{"console"},
		},
	}
}

// Load loads configuration with priority: defaults -> file -> env.
// A missing config file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else {
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides applies AIC_* environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	if url := os.Getenv("AIC_API_BASE_URL"); url != "" {
		cfg.API.BaseURL = url
	}
	if url := os.Getenv("AIC_IIIF_BASE_URL"); url != "" {
		cfg.API.IIIFBaseURL = url
	}
	if url := os.Getenv("AIC_WEB_BASE_URL"); url != "" {
		cfg.API.WebBaseURL = url
	}
	if timeout := os.Getenv("AIC_API_TIMEOUT"); timeout != "" {
		cfg.API.Timeout = timeout
	}
	if port := os.Getenv("AIC_MCP_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if level := os.Getenv("AIC_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}
