package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable, e.g. MATHDUEL_GAME_DIFFICULTY.
const EnvPrefix = "MATHDUEL_"

// ApplyEnv overrides cfg with any MATHDUEL_* variables that are set.
// Unset variables leave the loaded values alone.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}
