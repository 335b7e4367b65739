package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// parseEnv loads the dotenv file (the -env-file flag, else ./.env) into the
// process environment without overriding variables that are already set,
// then overlays every tagged Config field present in the environment.
// A missing default .env is fine; a missing explicit file is an error.
func parseEnv(config *Config) error {
	path := flagx.EnvFileFlags()
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := env.Parse(config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	config.BusEndpoints = splitEndpoints(strings.Join(config.BusEndpoints, ","))
	return nil
}

