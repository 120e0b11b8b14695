package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/touchbase/internal/flagx"
	"github.com/dmitrijs2005/touchbase/internal/timex"
)

// fileConfig is the JSON shape of Config. Absent keys stay nil and leave
// the current value alone.
type fileConfig struct {
	StoreURL        *string         `json:"store_url"`
	StorePublicKey  *string         `json:"store_public_key"`
	Provider        *string         `json:"provider"`
	ProviderAPIKey  *string         `json:"provider_api_key"`
	ProviderModel   *string         `json:"provider_model"`
	ProviderBaseURL *string         `json:"provider_base_url"`
	ProviderTimeout *timex.Duration `json:"provider_timeout"`
	MaxTokens       *int            `json:"max_tokens"`
	SessionDB       *string         `json:"session_db"`
	LogLevel        *string         `json:"log_level"`
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// parseJSON overlays values from the file named by -c/-config, if any.
// Read and decode errors panic.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		panic(err)
	}

	setString(&cfg.StoreURL, fc.StoreURL)
	setString(&cfg.StorePublicKey, fc.StorePublicKey)
	setString(&cfg.Provider, fc.Provider)
	setString(&cfg.ProviderAPIKey, fc.ProviderAPIKey)
	setString(&cfg.ProviderModel, fc.ProviderModel)
	setString(&cfg.ProviderBaseURL, fc.ProviderBaseURL)
	setString(&cfg.SessionDB, fc.SessionDB)
	setString(&cfg.LogLevel, fc.LogLevel)

	if fc.ProviderTimeout != nil {
		cfg.ProviderTimeout = fc.ProviderTimeout.Duration
	}
	if fc.MaxTokens != nil {
		cfg.MaxTokens = *fc.MaxTokens
	}
}
