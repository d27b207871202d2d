package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultsToLight(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "theme"))
	require.False(t, m.IsDark())
}

func TestReadsPersistedValue(t *testing.T) {
	tests := []struct {
		stored string
		dark   bool
	}{
		{"true", true},
		{"false", false},
		{"TRUE", false},
		{"1", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run("stored "+tt.stored, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "theme")
			require.NoError(t, os.WriteFile(path, []byte(tt.stored), 0o600))
			require.Equal(t, tt.dark, NewManager(path).IsDark())
		})
	}
}

func TestToggleRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme")
	m := NewManager(path)

	dark, err := m.Toggle()
	require.NoError(t, err)
	require.True(t, dark)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "true", string(data))

	// Two toggles return both the flag and the file to where they started.
	dark, err = m.Toggle()
	require.NoError(t, err)
	require.False(t, dark)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "false", string(data))

	// A fresh manager reads the persisted value back.
	require.False(t, NewManager(path).IsDark())
}
