// Package config loads runtime configuration for the TouchBase CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file given with -c or -config.
//  3. Environment: TOUCHBASE_STORE_URL, TOUCHBASE_STORE_KEY and
//     ANTHROPIC_API_KEY or GEMINI_API_KEY depending on the provider.
//  4. Command-line flags.
//
// Flags
//
//	-a string   data store address
//	-k string   data store public key
//	-p string   provider: anthropic|gemini
//	-m string   provider model id
//	-s string   session database path
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so "60s" and integer nanoseconds both work:
//
//	{
//	  "store_url": "127.0.0.1:50051",
//	  "store_public_key": "publicKey",
//	  "provider": "anthropic",
//	  "provider_model": "claude-sonnet-4-20250514",
//	  "provider_timeout": "60s",
//	  "max_tokens": 1000,
//	  "session_db": "touchbase.db",
//	  "log_level": "warn"
//	}
//
// The store URL and public key have no defaults; Validate reports them
// missing and the CLI refuses to start.
package config
