package program

import (
	"errors"
	"testing"
)

func TestToRecordCompositeStart(t *testing.T) {
	p, err := New("Morning News", "VOD", "2026-08-28", 570, 60)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	r := p.ToRecord()
	if r.Start != "2026-08-28T09:30" {
		t.Errorf("Start = %q, want %q", r.Start, "2026-08-28T09:30")
	}
}

func TestFromRecordSplitsStart(t *testing.T) {
	r := Record{
		ID:              "abc",
		Start:           "2026-08-28T09:30",
		DurationMinutes: 60,
		Title:           "Morning News",
		ContentType:     "VOD",
		Status:          "scheduled",
		Videos: []VideoRecord{
			{ID: "v1", Name: "clip", DurationMinutes: 10, Source: "Playlist"},
		},
	}

	p, err := FromRecord(r)
	if err != nil {
		t.Fatalf("FromRecord() error = %v", err)
	}
	if p.DayKey != "2026-08-28" {
		t.Errorf("DayKey = %q, want %q", p.DayKey, "2026-08-28")
	}
	if p.StartMinutes != 570 {
		t.Errorf("StartMinutes = %d, want 570", p.StartMinutes)
	}
	if p.Videos[0].Source != SourcePlaylist {
		t.Errorf("video Source = %q, want %q", p.Videos[0].Source, SourcePlaylist)
	}
}

func TestFromRecordInvalidStart(t *testing.T) {
	for _, start := range []string{"", "2026-08-28", "09:30", "2026-08-28 09:30"} {
		_, err := FromRecord(Record{Start: start})
		if !errors.Is(err, ErrInvalidRecordTime) {
			t.Errorf("FromRecord(start=%q) error = %v, want ErrInvalidRecordTime", start, err)
		}
	}
}

func TestRecordsRoundTrip(t *testing.T) {
	a, err := New("A", "VOD", "2026-08-28", 540, 60)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	b, err := New("B", "Event", "2026-08-28", 600, 90)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	b.Status = StatusLive
	b.Tags = []string{"sports", "live"}

	restored, err := FromRecords(ToRecords([]*Program{a, b}))
	if err != nil {
		t.Fatalf("FromRecords() error = %v", err)
	}
	if len(restored) != 2 {
		t.Fatalf("FromRecords() returned %d programs, want 2", len(restored))
	}
	if restored[1].Status != StatusLive {
		t.Errorf("Status = %q, want %q", restored[1].Status, StatusLive)
	}
	if restored[1].StartMinutes != 600 {
		t.Errorf("StartMinutes = %d, want 600", restored[1].StartMinutes)
	}
	if len(restored[1].Tags) != 2 {
		t.Errorf("Tags = %v, want 2 entries", restored[1].Tags)
	}
}
