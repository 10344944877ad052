// mathduel is a terminal arithmetic quiz for one or two players.
//
// Usage:
//
//	mathduel play            - Play in this terminal
//	mathduel serve           - Start SSH server for remote play
//	mathduel levels          - List difficulty levels
//
// Global flags:
//
//	--config <path>      - Config file (default: ~/.mathduel/config.yaml)
//	--seed <value>       - Set RNG seed for reproducible problems
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mathduel/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mathduel",
	Short: "Math Duel - an arithmetic quiz in your terminal",
	Long: `Math Duel asks arithmetic problems one at a time. Play alone or
take turns with a friend on the same keyboard.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  levels   - Show difficulty levels

Examples:
  mathduel play
  mathduel play --mode 2 --difficulty hard --timer 60
  mathduel serve --ssh :2222
  mathduel levels`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
}

// loadConfig reads the config file, then MATHDUEL_* variables, then --log-level.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return config.Config{}, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// logLevel parses the configured level, falling back to info.
func logLevel(cfg config.Config) log.Level {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
