package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JunhyunKang/mock-sol/internal/api"
	"github.com/JunhyunKang/mock-sol/internal/config"
	"github.com/JunhyunKang/mock-sol/internal/logging"
	"github.com/JunhyunKang/mock-sol/internal/tui"
)

// runApp loads configuration and runs the TUI until the user quits.
func runApp(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	client := api.NewClient(cfg.API, log)

	app := tui.New(ctx, client, log)
	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}
