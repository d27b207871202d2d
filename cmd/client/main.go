package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Algo-jtx/SoulSpace/internal/client/api"
	"github.com/Algo-jtx/SoulSpace/internal/client/config"
	"github.com/Algo-jtx/SoulSpace/internal/client/session"
	"github.com/Algo-jtx/SoulSpace/internal/client/theme"
	"github.com/Algo-jtx/SoulSpace/internal/client/ui"
	"github.com/Algo-jtx/SoulSpace/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	// The terminal belongs to the UI; diagnostics go to a file.
	logger, closeLog, err := openLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := api.New(cfg.BaseURL, logger)
	if err != nil {
		return err
	}

	store := session.NewStore()
	ctrl := session.NewController(client, store, logger)
	themes := theme.NewManager(cfg.ThemeFile)

	model := ui.NewModel(client, store, ctrl, themes, logger)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func openLogger(path string) (logging.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, fmt.Errorf("error creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening log file: %w", err)
	}
	return logging.NewText(f), func() { f.Close() }, nil
}
