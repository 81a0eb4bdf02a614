package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/games/breakout"
	"github.com/vovakirdan/brickfall/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the brickfall SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own round and high score.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.brickfall/host_key

Examples:
  brickfall serve                           # Listen on :23234 with auto-generated key
  brickfall serve --ssh :2222               # Listen on port 2222
  brickfall serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleTimeoutMinutes = flagIdleTimeout
	}

	logger, closeLog := mustLogger(cfg.Log, "brickfall-ssh", os.Stderr)
	defer closeLog()

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = cfg.Server.Address
	serverCfg.HostKeyPath = cfg.Server.HostKeyPath
	serverCfg.IdleTimeout = cfg.Server.IdleTimeout()
	serverCfg.Frame.TickRate = cfg.Terminal.TickRate
	serverCfg.Frame.KeyHold = cfg.Terminal.KeyHold()
	serverCfg.Frame.ShowHelp = cfg.Terminal.HelpVisible()
	serverCfg.NewSimulation = func() core.Simulation {
		return breakout.NewRound()
	}

	server, err := tui.NewSSHServer(serverCfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	fmt.Printf("Starting brickfall SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
