package tui

import (
	"fmt"
	"strings"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/timeutil"
)

// View renders the schedule for the day under the cursor.
func (m Model) View() string {
	if m.err != nil {
		return "error: " + m.err.Error() + "\n"
	}
	if m.loading {
		return m.styles.Header.Render("loading schedule…") + "\n"
	}

	var b strings.Builder

	windows := m.loader.Windows()
	dayKey := m.currentDayKey()

	header := fmt.Sprintf("%s — day %d/%d (%s)",
		m.cfg.Schedule.Channel, m.cursor.Day+1, len(windows), m.loader.State())
	b.WriteString(m.styles.Header.Render(header))
	b.WriteString("\n")

	if m.cursor.Day < len(windows) {
		label := windows[m.cursor.Day].Label
		if m.store.IsDirty(dayKey) {
			label += " " + m.styles.DirtyMark.Render("●")
		}
		b.WriteString(m.styles.DayLabel.Render(label))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderPrograms(dayKey))

	if stats := m.store.DayStats(dayKey); stats.TotalPrograms > 0 {
		summary := fmt.Sprintf("%d program(s), %s airtime", stats.TotalPrograms, timeutil.DurationLabel(stats.TotalMinutes()))
		if stats.LivePrograms > 0 {
			summary += ", 1 live"
		}
		b.WriteString(m.styles.Help.Render(summary))
		b.WriteString("\n")
	}

	if markers := m.markers.ForDay(dayKey); len(markers) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render(fmt.Sprintf("%d ad markers (%s)", len(markers), markers[0].DurationLabel)))
		b.WriteString("\n")
	}

	if m.mode == ModeForm {
		b.WriteString("\n")
		b.WriteString(m.renderForm())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

// renderPrograms renders the day's program rows.
func (m Model) renderPrograms(dayKey string) string {
	programs := m.store.DayPrograms(dayKey)
	if len(programs) == 0 {
		return m.styles.Help.Render("no programs — press 'a' to add one") + "\n"
	}

	moveDay, moveSource := m.session.MoveSource()
	moveTarget := m.session.MoveTarget()

	var b strings.Builder
	for i, p := range programs {
		row := fmt.Sprintf("%-14s %-32s %-9s %s",
			m.styles.TimeCell.Render(p.TimeRange()),
			truncate(p.Title, 32),
			p.Status,
			strings.Join(p.Tags, ","))

		style := m.styles.Row
		switch {
		case m.mode == ModeMove && moveDay == dayKey && i == moveTarget:
			style = m.styles.RowMoving
		case m.mode == ModeMove && moveDay == dayKey && i == moveSource:
			style = m.styles.RowSelected
		case m.mode == ModeNormal && i == m.cursor.Program:
			style = m.styles.RowSelected
		case p.IsLive():
			style = m.styles.RowLive
		case p.IsCompleted():
			style = m.styles.RowDone
		}

		b.WriteString(style.Render(row))
		b.WriteString("\n")
	}
	return b.String()
}

// renderForm renders the add-program inputs.
func (m Model) renderForm() string {
	var b strings.Builder
	b.WriteString(m.styles.DayLabel.Render("New program"))
	b.WriteString("\n")
	b.WriteString(m.formTitle.View())
	b.WriteString("\n")
	b.WriteString(m.formStart.View())
	b.WriteString("\n")
	b.WriteString(m.formDuration.View())
	b.WriteString("\n")
	return b.String()
}

// renderStatusBar renders the transient status line and key help.
func (m Model) renderStatusBar() string {
	if m.statusMsg != "" {
		if m.statusIsErr {
			return m.styles.StatusError.Render(m.statusMsg)
		}
		return m.styles.StatusBar.Render(m.statusMsg)
	}

	help := "h/l day  j/k program  m move  a add  d delete  u undo  s save  g replicate  A ads  q quit"
	if m.mode == ModeMove {
		help = "j/k choose slot  enter drop  esc cancel"
	}
	if m.saving {
		help = "saving…"
	}
	if m.expanding {
		help = "loading more days…"
	}
	return m.styles.Help.Render(help)
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
