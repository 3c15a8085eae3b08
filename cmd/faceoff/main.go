package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"faceoff/internal/config"
	"faceoff/internal/engine"
	"faceoff/internal/ui"
)

func main() {
	setupLogging()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	eng := engine.New(engine.WithSessionPath(cfg.SessionPath()))

	m := ui.NewModel(eng, cfg)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer (clears terminal)
	)

	final, err := p.Run()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if fm, ok := final.(*ui.Model); ok && fm.Err() != nil {
		fmt.Printf("Error: %v\n", fm.Err())
		os.Exit(1)
	}
}

// setupLogging routes slog to a file when FACEOFF_DEBUG is set and
// discards it otherwise, so log output never corrupts the TUI.
func setupLogging() {
	path := os.Getenv("FACEOFF_DEBUG")
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}
