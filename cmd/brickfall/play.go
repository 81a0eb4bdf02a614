package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickfall/internal/games/breakout"
	"github.com/vovakirdan/brickfall/internal/platform/tui"
)

var flagFPS int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a round in the current terminal.

The 800x600 playfield is scaled to the terminal size.

Controls:
  Left/A/H     - Move paddle left
  Right/D/L    - Move paddle right
  Enter        - Restart after game over
  Q/Esc/Ctrl+C - Quit

Examples:
  brickfall play
  brickfall play --fps 30
  brickfall play --config ./my-brickfall.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate override (frames per second)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	// The alternate screen owns the terminal, so only a log file gets output.
	logger, closeLog := mustLogger(cfg.Log, "brickfall", io.Discard)
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		TickRate: cfg.Terminal.TickRate,
		KeyHold:  cfg.Terminal.KeyHold(),
		ShowHelp: cfg.Terminal.HelpVisible(),
		Width:    width,
		Height:   height,
	}
	if flagFPS > 0 {
		opts.TickRate = flagFPS
	}

	logger.Info("starting terminal round", "width", width, "height", height, "fps", opts.TickRate)

	if err := tui.Run(breakout.NewRound(), opts, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
