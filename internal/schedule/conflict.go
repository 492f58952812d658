package schedule

import (
	"github.com/PallavSamaddar/slike-epg-sub000/internal/program"
)

// Interval is a candidate placement on the flat 0..1439 minute scale.
// A candidate whose end would pass midnight is evaluated as
// start+duration with no wraparound; cross-midnight programs are clipped
// to the day boundary by the caller, never by the validator.
type Interval struct {
	StartMinutes    int
	DurationMinutes int
}

// End returns start + duration.
func (iv Interval) End() int {
	return iv.StartMinutes + iv.DurationMinutes
}

// CheckOverlap decides whether the candidate interval collides with any
// existing program on the day, excluding the program with excludeID (the
// one being edited). Intervals are half-open: an exact boundary touch
// (candidate end == existing start, or vice versa) is not an overlap.
//
// Returns the first conflicting program and true on collision.
func CheckOverlap(candidate Interval, existing []*program.Program, excludeID string) (*program.Program, bool) {
	for _, p := range existing {
		if p == nil || p.ID == excludeID {
			continue
		}
		if candidate.StartMinutes < p.EndMinutes() && candidate.End() > p.StartMinutes {
			return p, true
		}
	}
	return nil, false
}

// CanReorderPast is the live-boundary rule for single-day reorder
// operations: no program may land at or before the currently airing slot.
// liveIndex is -1 when the day has no live program, in which case any
// target is legal. A violation is reported to the caller, never silently
// corrected.
func CanReorderPast(targetIndex, liveIndex int) bool {
	if liveIndex == -1 {
		return true
	}
	return targetIndex > liveIndex
}
