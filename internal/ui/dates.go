package ui

import (
	"time"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/dateutil"
)

// resolveDayKey turns a date flag value into a canonical day key. Absolute
// YYYY-MM-DD dates are accepted as-is, so past days stay addressable for
// listing; anything else goes through the relative vocabulary: "today",
// "tomorrow", weekday names, "next-monday", "next-week".
func resolveDayKey(input string, now time.Time) (string, error) {
	if t, err := dateutil.ParseDayKey(input); err == nil {
		return dateutil.DayKey(t), nil
	}
	t, err := dateutil.ParseRelativeDate(input, now)
	if err != nil {
		return "", err
	}
	return dateutil.DayKey(t), nil
}

// listDayKeys expands the list command's date flags into the day keys to
// print. An --end date takes precedence over --days and is validated as a
// range; without either the single resolved start day is returned.
func listDayKeys(date, end string, days int, now time.Time) ([]string, error) {
	startKey, err := resolveDayKey(date, now)
	if err != nil {
		return nil, err
	}

	if end != "" {
		endKey, err := resolveDayKey(end, now)
		if err != nil {
			return nil, err
		}
		r, err := dateutil.NewDateRange(startKey, endKey)
		if err != nil {
			return nil, err
		}
		var keys []string
		for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
			keys = append(keys, dateutil.DayKey(d))
		}
		return keys, nil
	}

	if days < 1 {
		days = 1
	}
	start, err := dateutil.ParseDayKey(startKey)
	if err != nil {
		return nil, err
	}
	return dateutil.DayKeysFrom(start, days), nil
}
