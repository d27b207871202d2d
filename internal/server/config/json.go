package config

import (
	"encoding/json"
	"os"

	"github.com/Algo-jtx/SoulSpace/internal/flagx"
	"github.com/Algo-jtx/SoulSpace/internal/timex"
)

// jsonConfig is the file-facing shape of Config. timex.Duration lets the
// file say "24h" instead of nanoseconds.
type jsonConfig struct {
	EndpointAddr *string         `json:"endpoint_addr"`
	DatabaseDSN  *string         `json:"database_dsn"`
	SecretKey    *string         `json:"secret_key"`
	SessionTTL   *timex.Duration `json:"session_ttl"`
	DevMode      *bool           `json:"dev_mode"`
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

	if jc.EndpointAddr != nil {
		cfg.EndpointAddr = *jc.EndpointAddr
	}
	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.SecretKey != nil {
		cfg.SecretKey = *jc.SecretKey
	}
	if jc.SessionTTL != nil {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
	if jc.DevMode != nil {
		cfg.DevMode = *jc.DevMode
	}
}
