// Package config loads the diary settings.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Market data providers.
const (
	ProviderYahoo = "yahoo"
	ProviderEODHD = "eodhd"
)

// Config holds all application configuration.
//
// Empty credentials are legal: without a Google API key the diary works
// offline, and without Notion settings it cannot save.
type Config struct {
	Google struct {
		APIKey   string `yaml:"api_key"`
		Model    string `yaml:"model"`
		Language string `yaml:"language"`
	} `yaml:"google"`
	Notion struct {
		Token      string `yaml:"token"`
		DatabaseID string `yaml:"database_id"`
		Status     string `yaml:"status"`
	} `yaml:"notion"`
	Market struct {
		Provider    string `yaml:"provider"`
		EODHDAPIKey string `yaml:"eodhd_api_key"`
	} `yaml:"market"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Variables are read from the process environment and from a .env
// file in the current directory, if any.
//
// A missing file at path is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// .env does not override the process environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	// Environment variable overrides
	override(&cfg.Google.APIKey, "GOOGLE_API_KEY", "GEMINI_API_KEY")
	override(&cfg.Google.Model, "DIARY_MODEL")
	override(&cfg.Google.Language, "DIARY_LANGUAGE")
	override(&cfg.Notion.Token, "NOTION_TOKEN")
	override(&cfg.Notion.DatabaseID, "NOTION_DB_ID")
	override(&cfg.Notion.Status, "DIARY_STATUS")
	override(&cfg.Market.Provider, "DIARY_PROVIDER")
	override(&cfg.Market.EODHDAPIKey, "EODHD_API_KEY")

	// Defaults
	if cfg.Google.Model == "" {
		cfg.Google.Model = "gemini-2.0-flash"
	}
	if cfg.Google.Language == "" {
		cfg.Google.Language = "Korean"
	}
	if cfg.Notion.Status == "" {
		cfg.Notion.Status = "Analyzed"
	}
	if cfg.Market.Provider == "" {
		cfg.Market.Provider = ProviderYahoo
	}
	cfg.Market.Provider = strings.ToLower(cfg.Market.Provider)

	return cfg, cfg.Validate()
}

// override sets *dst to the first non empty variable among names.
func override(dst *string, names ...string) {
	for _, name := range names {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			*dst = v
			return
		}
	}
}

// Validate checks the settings that have no fallback.
func (c *Config) Validate() error {
	switch c.Market.Provider {
	case ProviderYahoo, ProviderEODHD:
	default:
		return fmt.Errorf("market.provider must be %q or %q, got %q", ProviderYahoo, ProviderEODHD, c.Market.Provider)
	}
	return nil
}

// HasModel reports whether a language model is configured.
func (c *Config) HasModel() bool { return c.Google.APIKey != "" }

// HasNotion reports whether publication to Notion is configured.
func (c *Config) HasNotion() bool { return c.Notion.Token != "" && c.Notion.DatabaseID != "" }
