package config

import "os"

// parseEnv picks up the store settings from the environment.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("TOUCHBASE_STORE_URL"); ok {
		cfg.StoreURL = v
	}
	if v, ok := os.LookupEnv("TOUCHBASE_STORE_KEY"); ok {
		cfg.StorePublicKey = v
	}
}

// providerKeyEnv names the variable holding the API key for provider.
func providerKeyEnv(provider string) string {
	if provider == ProviderGemini {
		return "GEMINI_API_KEY"
	}
	return "ANTHROPIC_API_KEY"
}

// resolveProviderKey runs after flags, once the provider is final. A key
// from the JSON file wins over the environment.
func resolveProviderKey(cfg *Config) {
	if cfg.ProviderAPIKey != "" {
		return
	}
	cfg.ProviderAPIKey = os.Getenv(providerKeyEnv(cfg.Provider))
}
