package timeutil

import "testing"

func TestToMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"13:45", 825},
		{"23:59", 1439},
		{"bad", 0},
		{"AB:CD", 0},
		{"24:00", 0},
		{"12:60", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToMinutes(tt.input); got != tt.want {
				t.Errorf("ToMinutes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromMinutes(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "00:00"},
		{570, "09:30"},
		{1439, "23:59"},
		{-10, "00:00"},
		{2000, "23:59"},
	}

	for _, tt := range tests {
		if got := FromMinutes(tt.input); got != tt.want {
			t.Errorf("FromMinutes(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidClock(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	for _, s := range valid {
		if !ValidClock(s) {
			t.Errorf("ValidClock(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "9:30", "24:00", "12:60", "12-30", "12:3a"}
	for _, s := range invalid {
		if ValidClock(s) {
			t.Errorf("ValidClock(%q) = true, want false", s)
		}
	}
}

func TestFormat12h(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "12:00am"},
		{30, "12:30am"},
		{540, "9:00am"},
		{720, "12:00pm"},
		{750, "12:30pm"},
		{780, "1:00pm"},
		{1439, "11:59pm"},
		{1440, "12:00am"}, // day boundary wraps for display
	}

	for _, tt := range tests {
		if got := Format12h(tt.minutes); got != tt.want {
			t.Errorf("Format12h(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatRange12h(t *testing.T) {
	if got := FormatRange12h(540, 60); got != "9:00am–10:00am" {
		t.Errorf("FormatRange12h(540, 60) = %q, want %q", got, "9:00am–10:00am")
	}
	if got := FormatRange12h(690, 60); got != "11:30am–12:30pm" {
		t.Errorf("FormatRange12h(690, 60) = %q, want %q", got, "11:30am–12:30pm")
	}
}

func TestDurationLabel(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{-5, "0m"},
	}

	for _, tt := range tests {
		if got := DurationLabel(tt.minutes); got != tt.want {
			t.Errorf("DurationLabel(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"half hour with suffix", "00:30hr", 30},
		{"one hour with suffix", "01:00hr", 60},
		{"spaced suffix", "1:00 hr", 60},
		{"no suffix", "02:15", 135},
		{"zero falls back", "0:00hr", DefaultFrequencyStep},
		{"empty falls back", "", DefaultFrequencyStep},
		{"garbage falls back", "often", DefaultFrequencyStep},
		{"missing minutes falls back", "30", DefaultFrequencyStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseFrequency(tt.input); got != tt.want {
				t.Errorf("ParseFrequency(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
