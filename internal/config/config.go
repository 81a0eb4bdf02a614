// Package config provides YAML-based configuration loading for the
// terminal, window and SSH frontends.
package config

import (
	"time"
)

// Config is the complete runtime configuration. Game rules are fixed; only
// how the game is driven can be tuned.
type Config struct {
	Terminal TerminalConfig `yaml:"terminal"`
	Window   WindowConfig   `yaml:"window"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// TerminalConfig configures the Bubble Tea frame driver.
type TerminalConfig struct {
	TickRate  int   `yaml:"tick_rate"`   // Frames per second
	KeyHoldMS int   `yaml:"key_hold_ms"` // How long a key press counts as held
	ShowHelp  *bool `yaml:"show_help"`   // Key help line under the playfield
}

// WindowConfig configures the ebiten frame driver.
type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"` // Window size multiplier over 800x600
	TPS   int     `yaml:"tps"`   // Simulation frames per second
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"` // Empty means ~/.brickfall/host_key
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	File       string `yaml:"file"`  // Empty means stderr, or nowhere while the terminal UI runs
	Timestamps *bool  `yaml:"timestamps"`
}

// KeyHold returns the key hold window as a duration.
func (c TerminalConfig) KeyHold() time.Duration {
	return time.Duration(c.KeyHoldMS) * time.Millisecond
}

// HelpVisible reports whether the help line is shown.
func (c TerminalConfig) HelpVisible() bool {
	return c.ShowHelp == nil || *c.ShowHelp
}

// IdleTimeout returns the idle timeout as a duration.
func (c ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// ReportTimestamps reports whether log lines carry timestamps.
func (c LogConfig) ReportTimestamps() bool {
	return c.Timestamps == nil || *c.Timestamps
}
