package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/dateutil"
)

// 2026-08-28 is a Friday.
var testNow = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

func TestResolveDayKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"empty defaults to today", "", "2026-08-28", nil},
		{"absolute date", "2026-08-30", "2026-08-30", nil},
		{"absolute past date stays addressable", "2026-08-01", "2026-08-01", nil},
		{"tomorrow", "tomorrow", "2026-08-29", nil},
		{"weekday name", "monday", "2026-08-31", nil},
		{"next-week", "next-week", "2026-09-04", nil},
		{"same weekday jumps a week", "next-friday", "2026-09-04", nil},
		{"garbage", "someday", "", dateutil.ErrInvalidDayKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveDayKey(tt.input, testNow)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("resolveDayKey(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolveDayKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestListDayKeys(t *testing.T) {
	t.Run("days flag expands consecutively", func(t *testing.T) {
		got, err := listDayKeys("2026-08-28", "", 3, testNow)
		if err != nil {
			t.Fatalf("listDayKeys() error = %v", err)
		}
		want := []string{"2026-08-28", "2026-08-29", "2026-08-30"}
		if len(got) != len(want) {
			t.Fatalf("listDayKeys() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("listDayKeys()[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("end date wins over days", func(t *testing.T) {
		got, err := listDayKeys("2026-08-28", "2026-08-29", 7, testNow)
		if err != nil {
			t.Fatalf("listDayKeys() error = %v", err)
		}
		if len(got) != 2 || got[0] != "2026-08-28" || got[1] != "2026-08-29" {
			t.Errorf("listDayKeys() = %v, want the two-day range", got)
		}
	})

	t.Run("relative end date", func(t *testing.T) {
		got, err := listDayKeys("today", "tomorrow", 0, testNow)
		if err != nil {
			t.Fatalf("listDayKeys() error = %v", err)
		}
		if len(got) != 2 || got[0] != "2026-08-28" || got[1] != "2026-08-29" {
			t.Errorf("listDayKeys() = %v, want [2026-08-28 2026-08-29]", got)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		if _, err := listDayKeys("2026-08-28", "2026-08-27", 0, testNow); !errors.Is(err, dateutil.ErrEndDateBeforeStart) {
			t.Errorf("listDayKeys() error = %v, want ErrEndDateBeforeStart", err)
		}
	})

	t.Run("zero days defaults to one", func(t *testing.T) {
		got, err := listDayKeys("", "", 0, testNow)
		if err != nil {
			t.Fatalf("listDayKeys() error = %v", err)
		}
		if len(got) != 1 || got[0] != "2026-08-28" {
			t.Errorf("listDayKeys() = %v, want [2026-08-28]", got)
		}
	})
}
