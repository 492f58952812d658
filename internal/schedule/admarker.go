package schedule

import (
	"github.com/PallavSamaddar/slike-epg-sub000/internal/program"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/timeutil"
)

// markerIterationCeiling bounds the marker walk so malformed frequency
// input can never loop past a day's worth of minutes.
const markerIterationCeiling = timeutil.MinutesPerDay + 1

// GenerateMarkers lays a fixed grid of recurring ad markers across the
// 24-hour day. The campaign frequency is parsed as hours:minutes with any
// trailing unit suffix stripped; a non-positive or malformed step falls
// back to the 30-minute default rather than failing. Regeneration fully
// replaces any prior marker set for the day.
func GenerateMarkers(dayKey, campaignID, durationLabel, frequency string) []program.AdMarker {
	step := timeutil.ParseFrequency(frequency)

	var markers []program.AdMarker
	for minutes, iterations := 0, 0; minutes < timeutil.MinutesPerDay && iterations < markerIterationCeiling; minutes, iterations = minutes+step, iterations+1 {
		markers = append(markers, program.AdMarker{
			DayKey:        dayKey,
			Time:          timeutil.FromMinutes(minutes),
			CampaignID:    campaignID,
			DurationLabel: durationLabel,
		})
	}
	return markers
}

// MarkerSet holds the per-day ad markers, merged only for display.
type MarkerSet struct {
	byDay map[string][]program.AdMarker
}

// NewMarkerSet creates an empty marker set.
func NewMarkerSet() *MarkerSet {
	return &MarkerSet{byDay: make(map[string][]program.AdMarker)}
}

// Regenerate replaces the day's markers with a fresh grid.
func (m *MarkerSet) Regenerate(dayKey, campaignID, durationLabel, frequency string) []program.AdMarker {
	markers := GenerateMarkers(dayKey, campaignID, durationLabel, frequency)
	m.byDay[dayKey] = markers
	return markers
}

// ForDay returns the markers generated for a day, or nil.
func (m *MarkerSet) ForDay(dayKey string) []program.AdMarker {
	return m.byDay[dayKey]
}

// Clear drops the day's markers.
func (m *MarkerSet) Clear(dayKey string) {
	delete(m.byDay, dayKey)
}
