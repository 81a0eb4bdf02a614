package config

import (
	_ "embed"
)

//go:embed defaults/brickfall.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	enabled := true
	timestamps := true
	return Config{
		Terminal: TerminalConfig{
			TickRate:  60,
			KeyHoldMS: 150,
			ShowHelp:  &enabled,
		},
		Window: WindowConfig{
			Title: "Breakout",
			Scale: 1.0,
			TPS:   60,
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level:      "info",
			Timestamps: &timestamps,
		},
	}
}

