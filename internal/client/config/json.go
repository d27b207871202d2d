package config

import (
	"encoding/json"
	"os"

	"github.com/Algo-jtx/SoulSpace/internal/flagx"
)

type jsonConfig struct {
	BaseURL   *string `json:"base_url"`
	ThemeFile *string `json:"theme_file"`
	LogFile   *string `json:"log_file"`
}

// parseJSON overlays cfg with values from the file named by -c/-config.
// Absent file path means no JSON stage. Read or decode errors panic; the
// process cannot run on a config it cannot read.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.ThemeFile != nil {
		cfg.ThemeFile = *jc.ThemeFile
	}
	if jc.LogFile != nil {
		cfg.LogFile = *jc.LogFile
	}
}
