package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"soulspace-server"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfigDefaults(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()
	require.Equal(t, ":5555", cfg.EndpointAddr)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.False(t, cfg.DevMode)
}

func TestLoadConfigFlagsOverride(t *testing.T) {
	resetArgs(t, "-a", ":9999", "-t", "1", "-dev")

	cfg := LoadConfig()
	require.Equal(t, ":9999", cfg.EndpointAddr)
	require.Equal(t, time.Hour, cfg.SessionTTL)
	require.True(t, cfg.DevMode)
}

func TestLoadConfigEnvOverridesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"endpoint_addr":":7000","session_ttl":"2h"}`), 0o600))

	resetArgs(t, "-c", path)
	t.Setenv("SOULSPACE_ADDR", ":7001")

	cfg := LoadConfig()
	require.Equal(t, ":7001", cfg.EndpointAddr, "env stage should win over JSON")
	require.Equal(t, 2*time.Hour, cfg.SessionTTL)
}

func TestLoadConfigPanicsOnBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"endpoint_addr":`), 0o600))

	resetArgs(t, "-c", path)
	require.Panics(t, func() { LoadConfig() })
}
