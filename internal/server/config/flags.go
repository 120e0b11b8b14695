package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/touchbase/internal/flagx"
)

// parseFlags overlays command-line flags:
//
//	-a string   gRPC bind address
//	-d string   PostgreSQL DSN
//	-s string   JWT secret key
//	-k string   public api key
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-y          confirm new accounts immediately
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-k", "-t", "-r", "-y"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.PublicKey, "k", config.PublicKey, "public api key")

	access := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	refresh := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh token validity (in minutes)")

	fs.BoolVar(&config.AutoConfirm, "y", config.AutoConfirm, "confirm sign-ups without a token")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*access) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refresh) * time.Minute
}
