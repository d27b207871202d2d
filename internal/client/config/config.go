// Package config handles configuration for the client component, layering
// defaults, an optional JSON file, environment variables, and command-line
// flags. Later sources win.
package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the SoulSpace terminal client.
//
// Fields:
//   - BaseURL: address of the SoulSpace API server.
//   - ThemeFile: file persisting the dark-mode preference as the literal
//     string "true" or "false".
//   - LogFile: where client diagnostics go. The terminal belongs to the UI,
//     so logs never write to stdout.
type Config struct {
	BaseURL   string `env:"SOULSPACE_SERVER_URL"`
	ThemeFile string `env:"SOULSPACE_THEME_FILE"`
	LogFile   string `env:"SOULSPACE_LOG_FILE"`
}

// LoadDefaults populates Config with development defaults. State files live
// under ~/.soulspace, falling back to the working directory when the home
// directory cannot be resolved.
func (c *Config) LoadDefaults() {
	stateDir := ".soulspace"
	if home, err := os.UserHomeDir(); err == nil {
		stateDir = filepath.Join(home, ".soulspace")
	}
	c.BaseURL = "http://localhost:5555"
	c.ThemeFile = filepath.Join(stateDir, "theme")
	c.LogFile = filepath.Join(stateDir, "client.log")
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
