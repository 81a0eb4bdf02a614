package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickfall/internal/games/breakout"
	"github.com/vovakirdan/brickfall/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and start a round.

Controls:
  Left/A       - Move paddle left
  Right/D      - Move paddle right
  Enter        - Restart after game over
  Esc          - Quit

Examples:
  brickfall window
  brickfall window --scale 2`,
	Run: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window size multiplier override")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	logger, closeLog := mustLogger(cfg.Log, "brickfall", os.Stderr)
	defer closeLog()

	opts := window.Options{
		Title:  cfg.Window.Title,
		Width:  int(breakout.ScreenWidth),
		Height: int(breakout.ScreenHeight),
		Scale:  cfg.Window.Scale,
		TPS:    cfg.Window.TPS,
	}
	if flagScale > 0 {
		opts.Scale = flagScale
	}

	if err := window.Run(breakout.NewRound(), opts, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
