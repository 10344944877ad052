// Package config provides YAML-based configuration loading for mathduel.
// Environment variables prefixed with MATHDUEL_ override file values.
package config

import (
	"time"

	"github.com/vovakirdan/mathduel/internal/quiz"
)

// Config is the full application configuration.
type Config struct {
	Game   GameSection   `yaml:"game" envPrefix:"GAME_"`
	Server ServerSection `yaml:"server" envPrefix:"SERVER_"`
	Log    LogSection    `yaml:"log" envPrefix:"LOG_"`
}

// GameSection holds the values preselected on the setup screen.
// They use the same string forms as the command-line flags.
type GameSection struct {
	Mode       string `yaml:"mode" env:"MODE"`             // "1" or "2"
	Difficulty string `yaml:"difficulty" env:"DIFFICULTY"` // easy, medium, hard, expert
	Timer      string `yaml:"timer" env:"TIMER"`           // "none" or seconds
}

// ServerSection configures the SSH server.
type ServerSection struct {
	Address            string `yaml:"address" env:"ADDRESS"`
	HostKey            string `yaml:"host_key" env:"HOST_KEY"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes" env:"IDLE_TIMEOUT_MINUTES"`
}

// LogSection configures logging.
type LogSection struct {
	Level string `yaml:"level" env:"LEVEL"`
	File  string `yaml:"file" env:"FILE"`
}

// GameConfig validates the game section.
func (g GameSection) GameConfig() (quiz.GameConfig, error) {
	return quiz.ParseConfig(g.Mode, g.Difficulty, g.Timer)
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerSection) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}
