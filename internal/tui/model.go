// Package tui provides the terminal user interface for slike-epg.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/config"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/schedule"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/tui/commands"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/window"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeMove        // A program is being dragged within its day
	ModeForm        // The add-program form is open
)

// formField identifies which add-form input is focused.
type formField int

const (
	fieldTitle formField = iota
	fieldStart
	fieldDuration
)

// Position is the cursor location in the schedule view.
type Position struct {
	Day     int // index into the materialized day windows
	Program int // index into the day's program list
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	cfg     *config.Config
	store   *schedule.Store
	session *EditSession
	loader  *window.Loader
	markers *schedule.MarkerSet

	styles *Styles

	// State
	cursor Position
	mode   Mode

	// Pending-operation guards: a second save or expansion while one is
	// in flight is refused, never queued twice.
	saving    bool
	expanding bool
	loading   bool

	// Add form
	formTitle    textinput.Model
	formStart    textinput.Model
	formDuration textinput.Model
	formFocus    formField

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg   string
	statusIsErr bool

	err error
}

// NewModel creates the TUI model.
func NewModel(cfg *config.Config, store *schedule.Store) Model {
	loader := window.NewLoader(time.Now(),
		window.WithInitialDays(cfg.Window.InitialDays),
		window.WithChunkDays(cfg.Window.ChunkDays),
		window.WithMaxHorizon(cfg.Window.MaxHorizon),
	)

	title := textinput.New()
	title.Placeholder = "Program title"
	title.CharLimit = 80
	start := textinput.New()
	start.Placeholder = "Start (HH:MM)"
	start.CharLimit = 5
	duration := textinput.New()
	duration.Placeholder = "Duration (minutes)"
	duration.CharLimit = 4

	return Model{
		cfg:          cfg,
		store:        store,
		session:      NewEditSession(store),
		loader:       loader,
		markers:      schedule.NewMarkerSet(),
		styles:       NewStyles(cfg.UI.Theme),
		formTitle:    title,
		formStart:    start,
		formDuration: duration,
		loading:      true,
	}
}

// Init kicks off the initial window load.
func (m Model) Init() tea.Cmd {
	keys := m.loader.BeginInitialLoad()
	return commands.LoadInitialDays(m.store, keys)
}

// currentDayKey returns the day key under the cursor, or "".
func (m Model) currentDayKey() string {
	windows := m.loader.Windows()
	if m.cursor.Day < 0 || m.cursor.Day >= len(windows) {
		return ""
	}
	return windows[m.cursor.Day].DayKey
}

// clampCursor keeps the program cursor inside the current day's list.
func (m *Model) clampCursor() {
	programs := m.store.DayPrograms(m.currentDayKey())
	if m.cursor.Program >= len(programs) {
		m.cursor.Program = len(programs) - 1
	}
	if m.cursor.Program < 0 {
		m.cursor.Program = 0
	}
}

// setStatus sets a transient status line.
func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusIsErr = isErr
}
