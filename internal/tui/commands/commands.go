// Package commands provides TUI command constructors and message types.
//
// Save and window expansion are the two "pending" operations: the model
// sets a pending flag, the command runs the synchronous computation, and
// the completion message clears the flag. No concurrent store access
// happens during the pending interval.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/schedule"
)

// InitialDaysLoadedMsg is sent when the first window chunk is materialized.
type InitialDaysLoadedMsg struct {
	Keys []string
}

// DaysLoadedMsg is sent when an expansion chunk is materialized.
type DaysLoadedMsg struct {
	Keys []string
}

// SaveDoneMsg is sent when a save completes.
type SaveDoneMsg struct {
	Saved []string
}

// ReplicateDoneMsg is sent when master replication completes.
type ReplicateDoneMsg struct {
	Result *schedule.ReplicationResult
}

// ErrMsg is sent when an operation fails.
type ErrMsg struct {
	Err error
}

// ClearStatusMsg is sent to clear the status line.
type ClearStatusMsg struct{}

// LoadInitialDays materializes the first window chunk from the store.
func LoadInitialDays(store *schedule.Store, keys []string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		for _, key := range keys {
			if _, err := store.LoadDay(ctx, key); err != nil {
				return ErrMsg{Err: err}
			}
		}
		return InitialDaysLoadedMsg{Keys: keys}
	}
}

// ExpandWindow materializes the next chunk of days.
func ExpandWindow(store *schedule.Store, keys []string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		for _, key := range keys {
			if _, err := store.LoadDay(ctx, key); err != nil {
				return ErrMsg{Err: err}
			}
		}
		return DaysLoadedMsg{Keys: keys}
	}
}

// SaveAll persists every dirty day and reports what was saved.
func SaveAll(store *schedule.Store) tea.Cmd {
	return func() tea.Msg {
		saved, err := store.SaveAll(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return SaveDoneMsg{Saved: saved}
	}
}

// Replicate runs master replication from the source day.
func Replicate(store *schedule.Store, sourceDayKey string, horizonDays int) tea.Cmd {
	return func() tea.Msg {
		result, err := store.ReplicateMaster(sourceDayKey, horizonDays)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return ReplicateDoneMsg{Result: result}
	}
}

// ClearStatusAfter clears the status line after the given delay.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
