package schedule

import (
	"testing"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/program"
)

func newTestProgram(t *testing.T, title string, start, dur int) *program.Program {
	t.Helper()
	p, err := program.New(title, "VOD", "2026-08-28", start, dur)
	if err != nil {
		t.Fatalf("New(%q) error = %v", title, err)
	}
	return p
}

func TestCheckOverlap(t *testing.T) {
	a := newTestProgram(t, "a", 540, 60)
	b := newTestProgram(t, "b", 600, 60)
	existing := []*program.Program{a, b}

	tests := []struct {
		name      string
		candidate Interval
		excludeID string
		wantTitle string
		wantHit   bool
	}{
		{"inside existing slot", Interval{StartMinutes: 550, DurationMinutes: 30}, "", "a", true},
		{"straddles two slots", Interval{StartMinutes: 590, DurationMinutes: 30}, "", "a", true},
		{"boundary touch before", Interval{StartMinutes: 480, DurationMinutes: 60}, "", "", false},
		{"boundary touch after", Interval{StartMinutes: 660, DurationMinutes: 60}, "", "", false},
		{"disjoint", Interval{StartMinutes: 0, DurationMinutes: 60}, "", "", false},
		{"self excluded", Interval{StartMinutes: 540, DurationMinutes: 60}, a.ID, "", false},
		{"self excluded but hits other", Interval{StartMinutes: 540, DurationMinutes: 120}, a.ID, "b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflict, hit := CheckOverlap(tt.candidate, existing, tt.excludeID)
			if hit != tt.wantHit {
				t.Fatalf("CheckOverlap() hit = %v, want %v", hit, tt.wantHit)
			}
			if hit && conflict.Title != tt.wantTitle {
				t.Errorf("conflict = %q, want %q", conflict.Title, tt.wantTitle)
			}
		})
	}
}

func TestCheckOverlapIsSymmetric(t *testing.T) {
	a := newTestProgram(t, "a", 540, 60)
	b := newTestProgram(t, "b", 570, 60)

	_, hitAB := CheckOverlap(Interval{StartMinutes: b.StartMinutes, DurationMinutes: b.DurationMinutes}, []*program.Program{a}, b.ID)
	_, hitBA := CheckOverlap(Interval{StartMinutes: a.StartMinutes, DurationMinutes: a.DurationMinutes}, []*program.Program{b}, a.ID)

	if hitAB != hitBA {
		t.Errorf("overlap must be symmetric: a-vs-b = %v, b-vs-a = %v", hitAB, hitBA)
	}
}

func TestCanReorderPast(t *testing.T) {
	tests := []struct {
		name        string
		targetIndex int
		liveIndex   int
		want        bool
	}{
		{"no live program", 0, -1, true},
		{"above live", 0, 2, false},
		{"onto live", 2, 2, false},
		{"below live", 3, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanReorderPast(tt.targetIndex, tt.liveIndex); got != tt.want {
				t.Errorf("CanReorderPast(%d, %d) = %v, want %v", tt.targetIndex, tt.liveIndex, got, tt.want)
			}
		})
	}
}

func TestRejectionMessages(t *testing.T) {
	t.Run("time conflict names the program", func(t *testing.T) {
		conflict := newTestProgram(t, "Program A", 540, 60)
		rej := newTimeConflict(conflict)
		want := `time conflict with "Program A" (9:00am–10:00am)`
		if rej.Error() != want {
			t.Errorf("Error() = %q, want %q", rej.Error(), want)
		}
		if rej.Kind != RejectTimeConflict {
			t.Errorf("Kind = %q, want %q", rej.Kind, RejectTimeConflict)
		}
	})

	t.Run("illegal reorder uses the fixed message", func(t *testing.T) {
		rej := newIllegalReorder()
		if rej.Error() != "cannot move above live program" {
			t.Errorf("Error() = %q, want fixed live-boundary message", rej.Error())
		}
	})

	t.Run("IsRejection unwraps", func(t *testing.T) {
		err := error(newIllegalReorder())
		rej, ok := IsRejection(err)
		if !ok || rej.Kind != RejectIllegalReorder {
			t.Errorf("IsRejection() = (%v, %v), want illegal reorder", rej, ok)
		}
		if _, ok := IsRejection(ErrUnknownDay); ok {
			t.Error("IsRejection(ErrUnknownDay) = true, want false")
		}
	})
}
