package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/touchbase/internal/flagx"
)

// parseFlags overlays command-line flags:
//
//	-a string   data store address (host:port)
//	-k string   data store public key
//	-p string   text generation provider: anthropic|gemini
//	-m string   provider model id
//	-s string   session database path
//	-l string   log level: debug|info|warn|error
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-p", "-m", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreURL, "a", cfg.StoreURL, "data store address")
	fs.StringVar(&cfg.StorePublicKey, "k", cfg.StorePublicKey, "data store public key")
	fs.StringVar(&cfg.Provider, "p", cfg.Provider, "text generation provider")
	fs.StringVar(&cfg.ProviderModel, "m", cfg.ProviderModel, "provider model")
	fs.StringVar(&cfg.SessionDB, "s", cfg.SessionDB, "session database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
