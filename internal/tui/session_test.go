package tui

import (
	"errors"
	"testing"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/program"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/schedule"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/storage"
)

const testDay = "2026-08-28"

func newSessionWithPrograms(t *testing.T, titles ...string) (*EditSession, *schedule.Store) {
	t.Helper()
	store := schedule.NewStore(storage.NewMemory())
	for i, title := range titles {
		p, err := program.New(title, "VOD", testDay, i*60, 30)
		if err != nil {
			t.Fatalf("New(%q) error = %v", title, err)
		}
		if _, err := store.AddProgram(testDay, p); err != nil {
			t.Fatalf("AddProgram(%q) error = %v", title, err)
		}
	}
	return NewEditSession(store), store
}

func dayTitles(store *schedule.Store, dayKey string) []string {
	programs := store.DayPrograms(dayKey)
	out := make([]string, len(programs))
	for i, p := range programs {
		out[i] = p.Title
	}
	return out
}

func TestMoveProtocol(t *testing.T) {
	t.Run("tracking does not touch the store", func(t *testing.T) {
		session, store := newSessionWithPrograms(t, "a", "b", "c")

		if err := session.StartMove(testDay, 0); err != nil {
			t.Fatalf("StartMove() error = %v", err)
		}
		if err := session.TrackMove(2); err != nil {
			t.Fatalf("TrackMove() error = %v", err)
		}

		got := dayTitles(store, testDay)
		if got[0] != "a" || got[2] != "c" {
			t.Errorf("store changed during tracking: %v", got)
		}
		if session.MoveTarget() != 2 {
			t.Errorf("MoveTarget() = %d, want 2", session.MoveTarget())
		}
	})

	t.Run("end commits exactly once", func(t *testing.T) {
		session, store := newSessionWithPrograms(t, "a", "b", "c")

		if err := session.StartMove(testDay, 0); err != nil {
			t.Fatalf("StartMove() error = %v", err)
		}
		if err := session.TrackMove(2); err != nil {
			t.Fatalf("TrackMove() error = %v", err)
		}
		got, err := session.EndMove()
		if err != nil {
			t.Fatalf("EndMove() error = %v", err)
		}
		if got[2].Title != "a" {
			t.Errorf("order after drop = %v, want a last", dayTitles(store, testDay))
		}
		if session.IsMoving() {
			t.Error("session still open after EndMove()")
		}
		// Reflowed onto slot times.
		if got[0].StartMinutes != 0 || got[1].StartMinutes != 60 || got[2].StartMinutes != 120 {
			t.Errorf("reflowed starts = %d/%d/%d, want 0/60/120",
				got[0].StartMinutes, got[1].StartMinutes, got[2].StartMinutes)
		}
	})

	t.Run("cancel leaves the store untouched", func(t *testing.T) {
		session, store := newSessionWithPrograms(t, "a", "b")

		if err := session.StartMove(testDay, 0); err != nil {
			t.Fatalf("StartMove() error = %v", err)
		}
		if err := session.TrackMove(1); err != nil {
			t.Fatalf("TrackMove() error = %v", err)
		}
		session.CancelMove()

		got := dayTitles(store, testDay)
		if got[0] != "a" || got[1] != "b" {
			t.Errorf("cancelled move changed the store: %v", got)
		}
		if session.CanUndo() {
			t.Error("cancelled move must not enter the undo history")
		}
	})

	t.Run("dropping on the source index is a no-op", func(t *testing.T) {
		session, _ := newSessionWithPrograms(t, "a", "b")
		if err := session.StartMove(testDay, 1); err != nil {
			t.Fatalf("StartMove() error = %v", err)
		}
		if _, err := session.EndMove(); err != nil {
			t.Fatalf("EndMove() error = %v", err)
		}
		if session.CanUndo() {
			t.Error("no-op drop must not enter the undo history")
		}
	})

	t.Run("double start refused", func(t *testing.T) {
		session, _ := newSessionWithPrograms(t, "a", "b")
		if err := session.StartMove(testDay, 0); err != nil {
			t.Fatalf("StartMove() error = %v", err)
		}
		if err := session.StartMove(testDay, 1); !errors.Is(err, ErrAlreadyMoving) {
			t.Errorf("StartMove() error = %v, want ErrAlreadyMoving", err)
		}
	})

	t.Run("track and end without start", func(t *testing.T) {
		session, _ := newSessionWithPrograms(t, "a")
		if err := session.TrackMove(0); !errors.Is(err, ErrNotMoving) {
			t.Errorf("TrackMove() error = %v, want ErrNotMoving", err)
		}
		if _, err := session.EndMove(); !errors.Is(err, ErrNotMoving) {
			t.Errorf("EndMove() error = %v, want ErrNotMoving", err)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		session, _ := newSessionWithPrograms(t, "a", "b")
		if err := session.StartMove(testDay, 5); !errors.Is(err, ErrMoveOutOfRange) {
			t.Errorf("StartMove(5) error = %v, want ErrMoveOutOfRange", err)
		}
		if err := session.StartMove(testDay, 0); err != nil {
			t.Fatalf("StartMove() error = %v", err)
		}
		if err := session.TrackMove(-1); !errors.Is(err, ErrMoveOutOfRange) {
			t.Errorf("TrackMove(-1) error = %v, want ErrMoveOutOfRange", err)
		}
	})

	t.Run("rejected drop closes the session and preserves state", func(t *testing.T) {
		session, store := newSessionWithPrograms(t, "live", "next", "later")

		// Mark the first program live through a wholesale replace.
		programs := store.DayPrograms(testDay)
		programs[0].Status = program.StatusLive
		store.ReplaceDay(testDay, programs)

		if err := session.StartMove(testDay, 2); err != nil {
			t.Fatalf("StartMove() error = %v", err)
		}
		if err := session.TrackMove(0); err != nil {
			t.Fatalf("TrackMove() error = %v", err)
		}

		_, err := session.EndMove()
		if _, ok := schedule.IsRejection(err); !ok {
			t.Fatalf("EndMove() error = %v, want rejection", err)
		}
		if session.IsMoving() {
			t.Error("session must close on rejection")
		}
		got := dayTitles(store, testDay)
		if got[0] != "live" || got[2] != "later" {
			t.Errorf("rejected drop changed the store: %v", got)
		}
	})
}

func TestUndo(t *testing.T) {
	t.Run("undo restores the pre-move snapshot", func(t *testing.T) {
		session, store := newSessionWithPrograms(t, "a", "b", "c")

		if err := session.StartMove(testDay, 0); err != nil {
			t.Fatalf("StartMove() error = %v", err)
		}
		if err := session.TrackMove(2); err != nil {
			t.Fatalf("TrackMove() error = %v", err)
		}
		if _, err := session.EndMove(); err != nil {
			t.Fatalf("EndMove() error = %v", err)
		}
		if !session.CanUndo() {
			t.Fatal("CanUndo() = false after a committed move")
		}

		dayKey, err := session.Undo()
		if err != nil {
			t.Fatalf("Undo() error = %v", err)
		}
		if dayKey != testDay {
			t.Errorf("Undo() dayKey = %q, want %q", dayKey, testDay)
		}
		got := dayTitles(store, testDay)
		if got[0] != "a" || got[1] != "b" || got[2] != "c" {
			t.Errorf("order after undo = %v, want [a b c]", got)
		}
	})

	t.Run("undo keeps a fixed program at its rank", func(t *testing.T) {
		session, store := newSessionWithPrograms(t, "live", "b", "c")

		programs := store.DayPrograms(testDay)
		programs[0].StartMinutes = 600
		programs[0].Status = program.StatusLive
		store.RestoreDay(testDay, programs)

		// Reorder below the live program; reflow leaves the live start
		// (600) out of rank order: [live@600 c@60 b@120].
		if err := session.StartMove(testDay, 1); err != nil {
			t.Fatalf("StartMove() error = %v", err)
		}
		if err := session.TrackMove(2); err != nil {
			t.Fatalf("TrackMove() error = %v", err)
		}
		if _, err := session.EndMove(); err != nil {
			t.Fatalf("EndMove() error = %v", err)
		}

		// A later mutation, then undo: the snapshot's display order must
		// come back exactly, live program first.
		before := store.DayPrograms(testDay)
		last := before[2]
		if _, err := store.DeleteProgram(testDay, last.ID); err != nil {
			t.Fatalf("DeleteProgram() error = %v", err)
		}
		session.RecordMutation("delete program", testDay, before)

		if _, err := session.Undo(); err != nil {
			t.Fatalf("Undo() error = %v", err)
		}
		got := store.DayPrograms(testDay)
		want := []string{"live", "c", "b"}
		for i := range want {
			if got[i].Title != want[i] {
				t.Fatalf("order after undo = %v, want %v", dayTitles(store, testDay), want)
			}
		}
		if got[0].StartMinutes != 600 {
			t.Errorf("live StartMinutes = %d, want retained 600", got[0].StartMinutes)
		}
	})

	t.Run("undo with empty history", func(t *testing.T) {
		session, _ := newSessionWithPrograms(t, "a")
		if _, err := session.Undo(); !errors.Is(err, ErrNothingToUndo) {
			t.Errorf("Undo() error = %v, want ErrNothingToUndo", err)
		}
	})

	t.Run("recorded mutations participate in undo", func(t *testing.T) {
		session, store := newSessionWithPrograms(t, "a")

		before := store.DayPrograms(testDay)
		p, err := program.New("b", "VOD", testDay, 600, 30)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if _, err := store.AddProgram(testDay, p); err != nil {
			t.Fatalf("AddProgram() error = %v", err)
		}
		session.RecordMutation("add program", testDay, before)

		if _, err := session.Undo(); err != nil {
			t.Fatalf("Undo() error = %v", err)
		}
		if got := dayTitles(store, testDay); len(got) != 1 || got[0] != "a" {
			t.Errorf("after undo = %v, want [a]", got)
		}
	})

	t.Run("history is bounded", func(t *testing.T) {
		session, store := newSessionWithPrograms(t, "a", "b")
		for i := 0; i < defaultMaxHistory+10; i++ {
			session.RecordMutation("noop", testDay, store.DayPrograms(testDay))
		}
		undone := 0
		for session.CanUndo() {
			if _, err := session.Undo(); err != nil {
				t.Fatalf("Undo() error = %v", err)
			}
			undone++
		}
		if undone != defaultMaxHistory {
			t.Errorf("history held %d entries, want %d", undone, defaultMaxHistory)
		}
	})
}
