package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/dmitrijs2005/gophauth/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations
// accept "24h" style strings or integer nanoseconds.
type JsonConfig struct {
	BusEndpoints []string        `json:"bus_endpoints"`
	SecretKey    string          `json:"secret_key"`
	DatabaseDSN  string          `json:"database_dsn"`
	StoreDriver  string          `json:"store_driver"`
	RedisAddr    string          `json:"redis_addr"`
	TokenTTL     *timex.Duration `json:"token_ttl"`
	LogLevel     string          `json:"log_level"`
	OTelEndpoint string          `json:"otel_endpoint"`
}

// parseJson loads configuration values from the file named by -c or
// -config into config. Only keys present in the file override the current
// values. An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if len(c.BusEndpoints) > 0 {
		config.BusEndpoints = c.BusEndpoints
	}
	setIfNotEmpty(&config.SecretKey, c.SecretKey)
	setIfNotEmpty(&config.DatabaseDSN, c.DatabaseDSN)
	setIfNotEmpty(&config.StoreDriver, c.StoreDriver)
	setIfNotEmpty(&config.RedisAddr, c.RedisAddr)
	setIfNotEmpty(&config.LogLevel, c.LogLevel)
	setIfNotEmpty(&config.OTelEndpoint, c.OTelEndpoint)
	if c.TokenTTL != nil {
		config.TokenTTL = c.TokenTTL.Duration
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
