package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the local configs directory.
const FileName = "brickfall.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.brickfall/config.yaml -> ./configs/brickfall.yaml -> embedded default
//
// Only an explicit customPath that cannot be read or parsed is an error.
// Missing fields are filled from DefaultConfig.
func Load(customPath string) (Config, error) {
	return load(customPath, searchPaths())
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath(); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

func load(customPath string, candidates []string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return Normalize(cfg), nil
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return Normalize(cfg), nil
		}
		cfg = Config{}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return Normalize(cfg), nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickfall", "config.yaml")
}

// Normalize fills zero or out-of-range fields from DefaultConfig.
func Normalize(cfg Config) Config {
	def := DefaultConfig()

	if cfg.Terminal.TickRate <= 0 {
		cfg.Terminal.TickRate = def.Terminal.TickRate
	}
	if cfg.Terminal.KeyHoldMS <= 0 {
		cfg.Terminal.KeyHoldMS = def.Terminal.KeyHoldMS
	}
	if cfg.Terminal.ShowHelp == nil {
		cfg.Terminal.ShowHelp = def.Terminal.ShowHelp
	}

	if cfg.Window.Title == "" {
		cfg.Window.Title = def.Window.Title
	}
	if cfg.Window.Scale <= 0 {
		cfg.Window.Scale = def.Window.Scale
	}
	if cfg.Window.TPS <= 0 {
		cfg.Window.TPS = def.Window.TPS
	}

	if cfg.Server.Address == "" {
		cfg.Server.Address = def.Server.Address
	}
	if cfg.Server.IdleTimeoutMinutes <= 0 {
		cfg.Server.IdleTimeoutMinutes = def.Server.IdleTimeoutMinutes
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Timestamps == nil {
		cfg.Log.Timestamps = def.Log.Timestamps
	}

	return cfg
}
