package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings are process-level knobs read from the environment. Command
// line flags take precedence over them.
type Settings struct {
	Seed      int64  `env:"HEROBATTLE_SEED"`
	Rounds    int    `env:"HEROBATTLE_ROUNDS"`
	ConfigDir string `env:"HEROBATTLE_CONFIG_DIR"`
	LogLevel  string `env:"HEROBATTLE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"HEROBATTLE_LOG_FORMAT" envDefault:"console"`
	Workers   int    `env:"HEROBATTLE_WORKERS" envDefault:"8"`
}

// LoadSettings reads an optional .env file from the working directory
// and then the process environment.
func LoadSettings() (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("load .env: %w", err)
	}
	return ParseEnv()
}

// ParseEnv reads Settings from the environment only.
func ParseEnv() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
