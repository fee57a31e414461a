// Package config loads runtime defaults from the environment. Flag values
// always take precedence over environment defaults.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/kmarchant/chromat/internal/palette"
)

// Environment variable names.
const (
	EnvSize   = "CHROMAT_SIZE"
	EnvSeed   = "CHROMAT_SEED"
	EnvMode   = "CHROMAT_MODE"
	EnvOutput = "CHROMAT_OUTPUT"
)

// Config holds environment-derived defaults.
type Config struct {
	Size   int          // default palette size
	Seed   *uint64      // default seed; nil means random
	Mode   palette.Mode // default generation mode
	Output string       // default export path
}

// Load reads a .env file if one exists, then the process environment.
// Unset or unparsable variables fall back to built-in defaults.
func Load() Config {
	// Ignore the error: a missing .env file just means plain env vars.
	_ = godotenv.Load()

	cfg := Config{
		Size:   palette.DefaultSize,
		Mode:   palette.ModeRandom,
		Output: palette.ExportFile,
	}

	if v := os.Getenv(EnvSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Size = n
		}
	}

	if v := os.Getenv(EnvSeed); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = &n
		}
	}

	if v := os.Getenv(EnvMode); v != "" {
		if mode, err := palette.ParseMode(v); err == nil {
			cfg.Mode = mode
		}
	}

	if v := os.Getenv(EnvOutput); v != "" {
		cfg.Output = v
	}

	return cfg
}
