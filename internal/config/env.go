package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds environment-variable overrides for first-run defaults.
// Persisted preferences, once written, take precedence.
type Env struct {
	DownloadDir string `env:"TUBETUNE_DOWNLOAD_DIR"`
	BitrateKbps int    `env:"TUBETUNE_BITRATE"`
	LogLevel    string `env:"TUBETUNE_LOG_LEVEL"`
	LogConsole  bool   `env:"TUBETUNE_LOG_CONSOLE" envDefault:"true"`
}

// LoadEnv parses the process environment into Env.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse environment: %w", err)
	}
	return e, nil
}
