// Package theme persists the light/dark preference across restarts. The
// stored value is the literal string "true" or "false"; anything else,
// including a missing file, reads as light mode.
package theme

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Manager holds the dark-mode flag and mirrors every change to disk.
type Manager struct {
	mu   sync.Mutex
	path string
	dark bool
}

// NewManager reads the persisted preference from path. Dark mode is on only
// when the file holds exactly "true".
func NewManager(path string) *Manager {
	m := &Manager{path: path}
	if data, err := os.ReadFile(path); err == nil {
		m.dark = strings.TrimSpace(string(data)) == "true"
	}
	return m
}

// IsDark reports the current preference.
func (m *Manager) IsDark() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dark
}

// Toggle flips the preference, persists it, and returns the new value. A
// persistence failure is returned but the in-memory flip still holds; the
// preference just will not survive a restart.
func (m *Manager) Toggle() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dark = !m.dark
	return m.dark, m.persist()
}

func (m *Manager) persist() error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return err
	}
	value := "false"
	if m.dark {
		value = "true"
	}
	return os.WriteFile(m.path, []byte(value), 0o600)
}
