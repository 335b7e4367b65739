package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   comma-separated bus endpoints (e.g. ":50051,:50052")
//	-d string   database DSN
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-k string   store driver (postgres, sqlite, redis, memory)
//	-r string   redis address
//	-l string   log level
//	-o string   OTLP/HTTP endpoint
//
// Only the flags above are parsed; os.Args is filtered with
// flagx.FilterArgs so that -c/-config and -env-file do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-k", "-r", "-l", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	endpoints := fs.String("a", strings.Join(config.BusEndpoints, ","), "bus endpoints to listen on")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	tokenTTL := fs.Int("t", int(config.TokenTTL.Minutes()), "token validity (in minutes)")
	fs.StringVar(&config.StoreDriver, "k", config.StoreDriver, "store driver")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.OTelEndpoint, "o", config.OTelEndpoint, "OTLP/HTTP endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.BusEndpoints = splitEndpoints(*endpoints)

	// minutes truncate sub-minute TTLs; only replace when -t was given
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.TokenTTL = time.Duration(*tokenTTL) * time.Minute
		}
	})
}
