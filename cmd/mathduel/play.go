package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mathduel/internal/config"
	"github.com/vovakirdan/mathduel/internal/platform/tui"
)

var (
	flagMode       string
	flagDifficulty string
	flagTimer      string
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a quiz in this terminal.

Controls:
  Up/Down     - Select option (setup)
  Left/Right  - Change option (setup)
  Enter       - Start game / submit answer
  Esc         - End game early
  R           - Back to setup (after game over)
  Ctrl+C      - Quit

When --mode, --difficulty and --timer are all given the setup screen is
skipped. Otherwise they are preselected on it.

Difficulty options:
  easy    - addition
  medium  - addition and subtraction
  hard    - adds multiplication
  expert  - all four operations

Examples:
  mathduel play
  mathduel play --difficulty medium
  mathduel play --mode 2 --difficulty expert --timer 120
  mathduel play --log-file ./mathduel.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Game mode: 1 (single) or 2 (two players)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium, hard, expert")
	playCmd.Flags().StringVar(&flagTimer, "timer", "", "Timer: none or seconds")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Flags override the config file
	game := cfg.Game
	if cmd.Flags().Changed("mode") {
		game.Mode = flagMode
	}
	if cmd.Flags().Changed("difficulty") {
		game.Difficulty = flagDifficulty
	}
	if cmd.Flags().Changed("timer") {
		game.Timer = flagTimer
	}
	defaults, err := game.GameConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	autoStart := cmd.Flags().Changed("mode") &&
		cmd.Flags().Changed("difficulty") &&
		cmd.Flags().Changed("timer")

	return tui.Run(tui.Options{
		Defaults:  defaults,
		AutoStart: autoStart,
		Seed:      flagSeed,
		Logger:    logger,
		Width:     width,
		Height:    height,
	})
}

// openLogger returns a file logger, or a discarding one when no file is set.
// The alt screen owns the terminal, so play never logs to stderr.
func openLogger(cfg config.Config) (*log.Logger, func(), error) {
	if cfg.Log.File == "" {
		return log.New(io.Discard), func() {}, nil
	}

	path := config.ExpandHome(cfg.Log.File)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "mathduel",
		Level:           logLevel(cfg),
	})
	return logger, func() { _ = f.Close() }, nil
}
