package tui

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/program"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/schedule"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/timeutil"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/tui/commands"
)

const statusLinger = 4 * time.Second

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.InitialDaysLoadedMsg:
		m.loader.CompleteInitialLoad()
		m.loading = false
		return m, nil

	case commands.DaysLoadedMsg:
		m.loader.CompleteExpansion()
		m.expanding = false
		return m, nil

	case commands.SaveDoneMsg:
		m.saving = false
		m.setStatus("saved "+strconv.Itoa(len(msg.Saved))+" day(s)", false)
		return m, commands.ClearStatusAfter(statusLinger)

	case commands.ReplicateDoneMsg:
		m.setStatus("replicated onto "+strconv.Itoa(len(msg.Result.ReplacedDayKeys))+" day(s)", false)
		return m, commands.ClearStatusAfter(statusLinger)

	case commands.ErrMsg:
		m.saving = false
		if m.expanding {
			m.loader.CancelExpansion()
			m.expanding = false
		}
		m.setStatus(msg.Err.Error(), true)
		return m, commands.ClearStatusAfter(statusLinger)

	case commands.ClearStatusMsg:
		m.statusMsg = ""
		m.statusIsErr = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg dispatches keyboard input by mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeMove:
		return m.handleMoveKeys(msg)
	case ModeForm:
		return m.handleFormKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Day navigation; nearing the window's end fires the proximity signal.
	case "h", "left":
		if m.cursor.Day > 0 {
			m.cursor.Day--
			m.clampCursor()
		}
	case "l", "right":
		if m.cursor.Day < m.loader.Len()-1 {
			m.cursor.Day++
			m.clampCursor()
		}
		if m.loader.NearEnd(m.cursor.Day, 1) {
			return m.requestExpansion()
		}

	// Program navigation
	case "k", "up":
		if m.cursor.Program > 0 {
			m.cursor.Program--
		}
	case "j", "down":
		if m.cursor.Program < len(m.store.DayPrograms(m.currentDayKey()))-1 {
			m.cursor.Program++
		}

	case "m", "enter":
		if err := m.session.StartMove(m.currentDayKey(), m.cursor.Program); err != nil {
			m.setStatus(err.Error(), true)
			return m, commands.ClearStatusAfter(statusLinger)
		}
		m.mode = ModeMove

	case "a":
		m.mode = ModeForm
		m.formFocus = fieldTitle
		m.formTitle.SetValue("")
		m.formStart.SetValue("")
		m.formDuration.SetValue("")
		m.formTitle.Focus()
		return m, nil

	case "d":
		return m.deleteUnderCursor()

	case "u":
		dayKey, err := m.session.Undo()
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, commands.ClearStatusAfter(statusLinger)
		}
		m.clampCursor()
		m.setStatus("undid last change on "+dayKey, false)
		return m, commands.ClearStatusAfter(statusLinger)

	case "s":
		if m.saving {
			m.setStatus(schedule.ErrSaveInProgress.Error(), true)
			return m, commands.ClearStatusAfter(statusLinger)
		}
		m.saving = true
		return m, commands.SaveAll(m.store)

	case "g":
		source := m.currentDayKey()
		if source == "" {
			return m, nil
		}
		return m, commands.Replicate(m.store, source, m.cfg.Window.MaxHorizon)

	case "A":
		dayKey := m.currentDayKey()
		if dayKey == "" {
			return m, nil
		}
		markers := m.markers.Regenerate(dayKey, "default", m.cfg.Ads.DefaultDuration, m.cfg.Ads.DefaultFrequency)
		m.setStatus("generated "+strconv.Itoa(len(markers))+" ad markers", false)
		return m, commands.ClearStatusAfter(statusLinger)
	}

	return m, nil
}

// handleMoveKeys handles keys while dragging a program.
// Only confirming the drop mutates the store; escape cancels cleanly.
func (m Model) handleMoveKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "k", "up":
		_ = m.session.TrackMove(m.session.MoveTarget() - 1)
	case "j", "down":
		_ = m.session.TrackMove(m.session.MoveTarget() + 1)

	case "enter":
		target := m.session.MoveTarget()
		_, err := m.session.EndMove()
		m.mode = ModeNormal
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, commands.ClearStatusAfter(statusLinger)
		}
		m.cursor.Program = target
		m.clampCursor()

	case "esc":
		m.session.CancelMove()
		m.mode = ModeNormal
	}

	return m, nil
}

// handleFormKeys drives the add-program form.
func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.blurForm()
		return m, nil

	case "tab", "shift+tab":
		m.cycleFormFocus(msg.String() == "tab")
		return m, nil

	case "enter":
		if m.formFocus != fieldDuration {
			m.cycleFormFocus(true)
			return m, nil
		}
		return m.submitForm()
	}

	var cmd tea.Cmd
	switch m.formFocus {
	case fieldTitle:
		m.formTitle, cmd = m.formTitle.Update(msg)
	case fieldStart:
		m.formStart, cmd = m.formStart.Update(msg)
	case fieldDuration:
		m.formDuration, cmd = m.formDuration.Update(msg)
	}
	return m, cmd
}

// submitForm validates the form and adds the program to the cursor's day.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	dayKey := m.currentDayKey()
	start := m.formStart.Value()
	if !timeutil.ValidClock(start) {
		m.setStatus("start must be HH:MM", true)
		return m, commands.ClearStatusAfter(statusLinger)
	}
	duration, err := strconv.Atoi(m.formDuration.Value())
	if err != nil || duration <= 0 {
		duration = m.cfg.Schedule.DefaultDuration
	}

	p, err := program.New(m.formTitle.Value(), string(program.ContentVOD), dayKey, timeutil.ToMinutes(start), duration)
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, commands.ClearStatusAfter(statusLinger)
	}
	p.GeoZone = m.cfg.Schedule.GeoZone

	before := m.store.DayPrograms(dayKey)
	if _, err := m.store.AddProgram(dayKey, p); err != nil {
		m.setStatus(err.Error(), true)
		return m, commands.ClearStatusAfter(statusLinger)
	}
	m.session.RecordMutation("add program", dayKey, before)

	m.mode = ModeNormal
	m.blurForm()
	m.setStatus("added "+p.Title, false)
	return m, commands.ClearStatusAfter(statusLinger)
}

// deleteUnderCursor removes the selected program. No reflow is triggered;
// the slot grid renumbers only on an explicit reorder.
func (m Model) deleteUnderCursor() (tea.Model, tea.Cmd) {
	dayKey := m.currentDayKey()
	programs := m.store.DayPrograms(dayKey)
	if m.cursor.Program < 0 || m.cursor.Program >= len(programs) {
		return m, nil
	}

	target := programs[m.cursor.Program]
	if _, err := m.store.DeleteProgram(dayKey, target.ID); err != nil {
		m.setStatus(err.Error(), true)
		return m, commands.ClearStatusAfter(statusLinger)
	}
	m.session.RecordMutation("delete program", dayKey, programs)
	m.clampCursor()
	m.setStatus("deleted "+target.Title, false)
	return m, commands.ClearStatusAfter(statusLinger)
}

// requestExpansion fires the proximity signal at the loader. Signals while
// expanding or exhausted are safe no-ops.
func (m Model) requestExpansion() (tea.Model, tea.Cmd) {
	if m.expanding {
		return m, nil
	}
	keys, err := m.loader.BeginExpansion()
	if err != nil || len(keys) == 0 {
		return m, nil
	}
	m.expanding = true
	return m, commands.ExpandWindow(m.store, keys)
}

// cycleFormFocus moves focus between form fields.
func (m *Model) cycleFormFocus(forward bool) {
	m.blurForm()
	if forward {
		m.formFocus = (m.formFocus + 1) % 3
	} else {
		m.formFocus = (m.formFocus + 2) % 3
	}
	switch m.formFocus {
	case fieldTitle:
		m.formTitle.Focus()
	case fieldStart:
		m.formStart.Focus()
	case fieldDuration:
		m.formDuration.Focus()
	}
}

func (m *Model) blurForm() {
	m.formTitle.Blur()
	m.formStart.Blur()
	m.formDuration.Blur()
}
