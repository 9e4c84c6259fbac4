package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Env holds the environment overrides honoured by assetsym.
type Env struct {
	// Catalogs replaces the configured catalogs.
	Catalogs []string `env:"ASSETSYM_CATALOG" envSeparator:","`
	// LogLevel replaces logging.level.
	LogLevel string `env:"ASSETSYM_LOG_LEVEL"`
	// LogPath replaces logging.path.
	LogPath string `env:"ASSETSYM_LOG_PATH"`
}

// ParseEnv loads the overrides from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// ApplyEnv overlays the environment overrides on cfg.
func ApplyEnv(cfg *Config) error {
	e, err := ParseEnv()
	if err != nil {
		return err
	}
	if len(e.Catalogs) > 0 {
		cfg.Catalogs = nil
		for _, c := range e.Catalogs {
			cfg.Catalogs = append(cfg.Catalogs, filepath.Clean(c))
		}
	}
	if e.LogLevel != "" {
		cfg.Logging.Level = e.LogLevel
	}
	if e.LogPath != "" {
		cfg.Logging.Path = e.LogPath
	}
	return nil
}
