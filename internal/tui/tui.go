package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/config"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/schedule"
)

// Run starts the interactive schedule editor.
func Run(cfg *config.Config, store *schedule.Store) error {
	p := tea.NewProgram(NewModel(cfg, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
