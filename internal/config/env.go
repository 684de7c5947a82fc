package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds overrides read from the environment. Zero values mean unset.
type EnvConfig struct {
	Lang     string `env:"TYPESPRINT_LANG"`
	Duration int    `env:"TYPESPRINT_DURATION"`
	Phrases  string `env:"TYPESPRINT_PHRASES"`
	Bank     string `env:"TYPESPRINT_BANK"`
	LogLevel string `env:"TYPESPRINT_LOG_LEVEL"`
	LogFile  string `env:"TYPESPRINT_LOG_FILE"`
}

// LoadEnv parses TYPESPRINT_* variables.
func LoadEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Merge returns fc with every value set in e taking precedence.
func Merge(fc FileConfig, e EnvConfig) FileConfig {
	if e.Lang != "" {
		fc.Practice.Lang = &e.Lang
	}
	if e.Duration != 0 {
		fc.Practice.Duration = &e.Duration
	}
	if e.Phrases != "" {
		fc.Practice.Phrases = &e.Phrases
	}
	if e.Bank != "" {
		fc.Practice.Bank = &e.Bank
	}
	if e.LogLevel != "" {
		fc.Log.Level = &e.LogLevel
	}
	if e.LogFile != "" {
		fc.Log.File = &e.LogFile
	}
	return fc
}
