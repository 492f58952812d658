package tui

import (
	"errors"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/program"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/schedule"
)

// Session errors.
var (
	ErrNothingToUndo  = errors.New("nothing to undo")
	ErrNotMoving      = errors.New("no move in progress")
	ErrAlreadyMoving  = errors.New("already moving a program")
	ErrMoveOutOfRange = errors.New("move target out of range")
)

const defaultMaxHistory = 50

// historyEntry is one undo-able committed mutation: the day's snapshot
// before the operation ran.
type historyEntry struct {
	description string
	dayKey      string
	programs    []*program.Program
}

// moveSession is a short-lived drag interaction. Tracking only shuffles the
// preview; the store is mutated exactly once, on End. Cancel leaves the
// store untouched.
type moveSession struct {
	dayKey      string
	sourceIndex int
	overIndex   int
}

// EditSession owns the interactive mutation protocol over the schedule
// store: the move (drag) session and a bounded undo history of day
// snapshots.
type EditSession struct {
	store      *schedule.Store
	history    []historyEntry
	maxHistory int
	move       *moveSession
}

// NewEditSession wraps a store with interactive session state.
func NewEditSession(store *schedule.Store) *EditSession {
	return &EditSession{
		store:      store,
		maxHistory: defaultMaxHistory,
	}
}

// IsMoving reports whether a drag session is active.
func (s *EditSession) IsMoving() bool {
	return s.move != nil
}

// MoveSource returns the day and source index of the active move, or
// ("", -1) when idle.
func (s *EditSession) MoveSource() (string, int) {
	if s.move == nil {
		return "", -1
	}
	return s.move.dayKey, s.move.sourceIndex
}

// MoveTarget returns the currently tracked target index, or -1.
func (s *EditSession) MoveTarget() int {
	if s.move == nil {
		return -1
	}
	return s.move.overIndex
}

// StartMove opens a drag session on the program at sourceIndex.
func (s *EditSession) StartMove(dayKey string, sourceIndex int) error {
	if s.move != nil {
		return ErrAlreadyMoving
	}
	programs := s.store.DayPrograms(dayKey)
	if sourceIndex < 0 || sourceIndex >= len(programs) {
		return ErrMoveOutOfRange
	}
	s.move = &moveSession{
		dayKey:      dayKey,
		sourceIndex: sourceIndex,
		overIndex:   sourceIndex,
	}
	return nil
}

// TrackMove updates the hover target. The store is not touched.
func (s *EditSession) TrackMove(overIndex int) error {
	if s.move == nil {
		return ErrNotMoving
	}
	programs := s.store.DayPrograms(s.move.dayKey)
	if overIndex < 0 || overIndex >= len(programs) {
		return ErrMoveOutOfRange
	}
	s.move.overIndex = overIndex
	return nil
}

// EndMove commits the drag: the store validates the live boundary and
// reflows on success. The session closes either way; a rejection is
// returned to the caller for display with the store unchanged.
func (s *EditSession) EndMove() ([]*program.Program, error) {
	if s.move == nil {
		return nil, ErrNotMoving
	}
	mv := s.move
	s.move = nil

	if mv.sourceIndex == mv.overIndex {
		return s.store.DayPrograms(mv.dayKey), nil
	}

	before := s.store.DayPrograms(mv.dayKey)
	programs, err := s.store.ReorderPrograms(mv.dayKey, mv.sourceIndex, mv.overIndex)
	if err != nil {
		return nil, err
	}

	s.pushHistory("move program", mv.dayKey, before)
	return programs, nil
}

// CancelMove abandons the drag; the store was never touched.
func (s *EditSession) CancelMove() {
	s.move = nil
}

// RecordMutation snapshots a day before a non-drag mutation (add, edit,
// delete) so it participates in undo.
func (s *EditSession) RecordMutation(description, dayKey string, before []*program.Program) {
	s.pushHistory(description, dayKey, before)
}

// CanUndo reports whether any committed mutation can be reverted.
func (s *EditSession) CanUndo() bool {
	return len(s.history) > 0
}

// Undo restores the most recent pre-mutation snapshot. Restoration is
// positional: a snapshot taken after a reflow keeps fixed programs at the
// ranks they held, so the store must not re-sort it by start time.
func (s *EditSession) Undo() (dayKey string, err error) {
	if len(s.history) == 0 {
		return "", ErrNothingToUndo
	}
	entry := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	s.store.RestoreDay(entry.dayKey, entry.programs)
	return entry.dayKey, nil
}

// pushHistory appends a snapshot, evicting the oldest past maxHistory.
func (s *EditSession) pushHistory(description, dayKey string, programs []*program.Program) {
	if len(s.history) >= s.maxHistory {
		s.history = s.history[1:]
	}
	s.history = append(s.history, historyEntry{
		description: description,
		dayKey:      dayKey,
		programs:    programs,
	})
}
