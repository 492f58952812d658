package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for the schedule view.
type Styles struct {
	Header      lipgloss.Style
	DayLabel    lipgloss.Style
	DirtyMark   lipgloss.Style
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	RowMoving   lipgloss.Style
	RowLive     lipgloss.Style
	RowDone     lipgloss.Style
	TimeCell    lipgloss.Style
	StatusBar   lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles builds the style set for the configured theme.
func NewStyles(theme string) *Styles {
	var (
		accent  = lipgloss.Color("205")
		live    = lipgloss.Color("196")
		done    = lipgloss.Color("240")
		subtle  = lipgloss.Color("243")
		warning = lipgloss.Color("214")
	)
	if theme == "light" {
		accent = lipgloss.Color("127")
		done = lipgloss.Color("250")
		subtle = lipgloss.Color("245")
	}

	return &Styles{
		Header:      lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1),
		DayLabel:    lipgloss.NewStyle().Bold(true),
		DirtyMark:   lipgloss.NewStyle().Foreground(warning),
		Row:         lipgloss.NewStyle().Padding(0, 1),
		RowSelected: lipgloss.NewStyle().Padding(0, 1).Reverse(true),
		RowMoving:   lipgloss.NewStyle().Padding(0, 1).Foreground(accent).Bold(true),
		RowLive:     lipgloss.NewStyle().Padding(0, 1).Foreground(live).Bold(true),
		RowDone:     lipgloss.NewStyle().Padding(0, 1).Foreground(done),
		TimeCell:    lipgloss.NewStyle().Foreground(subtle),
		StatusBar:   lipgloss.NewStyle().Foreground(subtle).Padding(0, 1),
		StatusError: lipgloss.NewStyle().Foreground(live).Padding(0, 1),
		Help:        lipgloss.NewStyle().Foreground(subtle).Padding(0, 1),
	}
}
