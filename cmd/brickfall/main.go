// brickfall is a single-screen block breaker for the terminal, a desktop
// window, or remote players over SSH.
//
// Usage:
//
//	brickfall play           - Play in the terminal
//	brickfall window         - Play in a desktop window
//	brickfall serve          - Start SSH server for remote play
//	brickfall layout         - Print the block grid
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.brickfall/config.yaml, ./configs/brickfall.yaml)
//	--log-level <level> - Override log level (debug, info, warn, error)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickfall/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickfall",
	Short: "Brickfall - break blocks with a paddle and a ball",
	Long: `Brickfall is a single-screen block breaker. Keep the ball in play with
the paddle and clear the grid for points.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  layout   - Print the generated block grid

Examples:
  brickfall play
  brickfall window --scale 1.5
  brickfall serve --ssh :2222
  brickfall layout --format yaml`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(layoutCmd)
}

// mustLoadConfig loads the configuration or exits.
func mustLoadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}

// newLogger builds the logger described by cfg. Output goes to cfg.File
// when set and to fallback otherwise. The returned close func releases the
// log file, if any.
func newLogger(cfg config.LogConfig, prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	out := fallback
	closeFn := func() {}
	if cfg.File != "" {
		f, openErr := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		//nolint:errcheck // Best-effort close on exit
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: cfg.ReportTimestamps(),
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// mustLogger is newLogger that exits on error.
func mustLogger(cfg config.LogConfig, prefix string, fallback io.Writer) (*log.Logger, func()) {
	logger, closeFn, err := newLogger(cfg, prefix, fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closeFn
}
