package app

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/pipemind/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Title      string
	Width      int
	Height     int
	ShowFooter bool
}

// NewModel builds the console model for cfg.
func NewModel(cfg Config) (*ui.Model, error) {
	model, err := ui.NewModel(ui.Options{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
	})
	if err != nil {
		return nil, fmt.Errorf("build model: %w", err)
	}
	return model, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config, opts ...tea.ProgramOption) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, opts...)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
