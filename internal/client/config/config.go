package config

import (
	"errors"
	"time"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

var (
	ErrMissingStoreURL = errors.New("store url is not configured")
	ErrMissingStoreKey = errors.New("store public key is not configured")
	ErrUnknownProvider = errors.New("unknown text generation provider")
)

// Config holds runtime settings for the TouchBase CLI.
//
//   - StoreURL, StorePublicKey: where the data store lives and the key sent
//     with every call. Both are required.
//   - Provider, ProviderAPIKey, ProviderModel, ProviderBaseURL: the hosted
//     model used for message generation.
//   - SessionDB: path of the local SQLite file that keeps the refresh token
//     between runs.
type Config struct {
	StoreURL        string
	StorePublicKey  string
	Provider        string
	ProviderAPIKey  string
	ProviderModel   string
	ProviderBaseURL string
	ProviderTimeout time.Duration
	MaxTokens       int
	SessionDB       string
	LogLevel        string
}

// LoadDefaults populates c with defaults. The store settings have none.
func (c *Config) LoadDefaults() {
	c.Provider = ProviderAnthropic
	c.ProviderTimeout = 60 * time.Second
	c.MaxTokens = 1000
	c.SessionDB = "touchbase.db"
	c.LogLevel = "warn"
}

// LoadConfig applies defaults, then the optional JSON file, then the
// environment, then flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	resolveProviderKey(cfg)
	return cfg
}

// Validate reports settings the CLI cannot start without.
func (c *Config) Validate() error {
	if c.StoreURL == "" {
		return ErrMissingStoreURL
	}
	if c.StorePublicKey == "" {
		return ErrMissingStoreKey
	}
	switch c.Provider {
	case ProviderAnthropic, ProviderGemini:
	default:
		return ErrUnknownProvider
	}
	return nil
}
