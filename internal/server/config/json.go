package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/touchbase/internal/flagx"
	"github.com/dmitrijs2005/touchbase/internal/timex"
)

// fileConfig mirrors Config for JSON decoding. Pointer fields distinguish
// "absent" from zero so a partial file only overrides what it names.
type fileConfig struct {
	EndpointAddrGRPC             *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                  *string         `json:"database_dsn"`
	SecretKey                    *string         `json:"secret_key"`
	PublicKey                    *string         `json:"public_key"`
	AccessTokenValidityDuration  *timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration *timex.Duration `json:"refresh_token_validity_duration"`
	AutoConfirm                  *bool           `json:"auto_confirm"`
}

// parseJSON overlays values from the file named by -c/-config, if any.
// An unreadable or malformed file panics, like a bad flag does.
func parseJSON(config *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var c fileConfig
	if err := json.Unmarshal(data, &c); err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != nil {
		config.EndpointAddrGRPC = *c.EndpointAddrGRPC
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.PublicKey != nil {
		config.PublicKey = *c.PublicKey
	}
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration != nil {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	if c.AutoConfirm != nil {
		config.AutoConfirm = *c.AutoConfirm
	}
}
