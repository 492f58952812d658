package schedule

import (
	"testing"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/timeutil"
)

func TestGenerateMarkers(t *testing.T) {
	t.Run("half-hour frequency fills the day", func(t *testing.T) {
		markers := GenerateMarkers(testDay, "cmp-1", "30 sec", "00:30hr")
		if len(markers) != 48 {
			t.Fatalf("generated %d markers, want 48", len(markers))
		}
		if markers[0].Time != "00:00" {
			t.Errorf("first marker = %q, want %q", markers[0].Time, "00:00")
		}
		if markers[47].Time != "23:30" {
			t.Errorf("last marker = %q, want %q", markers[47].Time, "23:30")
		}
	})

	t.Run("hourly frequency", func(t *testing.T) {
		markers := GenerateMarkers(testDay, "cmp-1", "30 sec", "01:00hr")
		if len(markers) != 24 {
			t.Errorf("generated %d markers, want 24", len(markers))
		}
	})

	t.Run("zero frequency falls back to default step", func(t *testing.T) {
		markers := GenerateMarkers(testDay, "cmp-1", "30 sec", "0:00hr")
		want := timeutil.MinutesPerDay / timeutil.DefaultFrequencyStep
		if len(markers) != want {
			t.Errorf("generated %d markers, want %d", len(markers), want)
		}
	})

	t.Run("malformed frequency falls back to default step", func(t *testing.T) {
		markers := GenerateMarkers(testDay, "cmp-1", "30 sec", "whenever")
		want := timeutil.MinutesPerDay / timeutil.DefaultFrequencyStep
		if len(markers) != want {
			t.Errorf("generated %d markers, want %d", len(markers), want)
		}
	})

	t.Run("markers stay within the day", func(t *testing.T) {
		for _, freq := range []string{"00:07hr", "03:00hr", "11:59hr"} {
			markers := GenerateMarkers(testDay, "cmp-1", "30 sec", freq)
			last := markers[len(markers)-1]
			if timeutil.ToMinutes(last.Time) >= timeutil.MinutesPerDay {
				t.Errorf("frequency %q: last marker %q past midnight", freq, last.Time)
			}
		}
	})

	t.Run("marker fields", func(t *testing.T) {
		markers := GenerateMarkers(testDay, "cmp-9", "60 sec", "06:00hr")
		for _, m := range markers {
			if m.DayKey != testDay || m.CampaignID != "cmp-9" || m.DurationLabel != "60 sec" {
				t.Fatalf("marker fields = %+v", m)
			}
		}
	})
}

func TestMarkerSet(t *testing.T) {
	set := NewMarkerSet()

	if got := set.ForDay(testDay); got != nil {
		t.Errorf("ForDay() on empty set = %v, want nil", got)
	}

	set.Regenerate(testDay, "cmp-1", "30 sec", "01:00hr")
	if got := set.ForDay(testDay); len(got) != 24 {
		t.Errorf("ForDay() = %d markers, want 24", len(got))
	}

	// Regeneration replaces, never merges.
	set.Regenerate(testDay, "cmp-2", "30 sec", "00:30hr")
	got := set.ForDay(testDay)
	if len(got) != 48 {
		t.Errorf("ForDay() after regenerate = %d markers, want 48", len(got))
	}
	for _, m := range got {
		if m.CampaignID != "cmp-2" {
			t.Fatal("regeneration left markers from the previous campaign")
		}
	}

	set.Clear(testDay)
	if got := set.ForDay(testDay); got != nil {
		t.Errorf("ForDay() after Clear = %v, want nil", got)
	}
}
