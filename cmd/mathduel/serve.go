package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mathduel/internal/config"
	"github.com/vovakirdan/mathduel/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Math Duel SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own independent game. Two-player mode is
hot-seat on the connecting terminal.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mathduel/host_key

Examples:
  mathduel serve                           # Listen on :23234 with auto-generated key
  mathduel serve --ssh :2222               # Listen on port 2222
  mathduel serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	defaults, err := cfg.Game.GameConfig()
	if err != nil {
		return err
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Defaults = defaults
	srvCfg.LogLevel = logLevel(cfg)
	if cfg.Server.Address != "" {
		srvCfg.Address = cfg.Server.Address
	}
	if cfg.Server.HostKey != "" {
		srvCfg.HostKeyPath = config.ExpandHome(cfg.Server.HostKey)
	}
	if cfg.Server.IdleTimeoutMinutes > 0 {
		srvCfg.IdleTimeout = cfg.Server.IdleTimeout()
	}

	// Flags override the config file
	if cmd.Flags().Changed("ssh") {
		srvCfg.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		srvCfg.HostKeyPath = config.ExpandHome(flagHostKey)
	}
	if cmd.Flags().Changed("idle-timeout") {
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	fmt.Printf("Starting Math Duel SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
