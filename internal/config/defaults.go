package config

import (
	_ "embed"
)

//go:embed defaults/mathduel.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameSection{
			Mode:       "1",
			Difficulty: "easy",
			Timer:      "none",
		},
		Server: ServerSection{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		Log: LogSection{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
