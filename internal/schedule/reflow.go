package schedule

import (
	"github.com/PallavSamaddar/slike-epg-sub000/internal/program"
)

// DefaultSlotMinutes is the canonical width of one display slot.
const DefaultSlotMinutes = 60

// Reflow recomputes start times for a day's scheduled programs after a
// positional reorder, using the configured slot width. The display order is
// authoritative: each scheduled program is assigned
//
//	startMinutes = rank * slotMinutes
//
// where rank is its 0-based position among ALL programs of the day,
// including fixed live/completed ones. Fixed programs keep their original
// times but still occupy ranks.
//
// Reflow ignores each program's actual duration: time is derived from
// order, and downstream export and persistence read the derived
// startMinutes. Callers must run the live-boundary check
// first; reflow is never invoked on a rejected reorder.
func Reflow(dayPrograms []*program.Program, slotMinutes int) []*program.Program {
	if slotMinutes <= 0 {
		slotMinutes = DefaultSlotMinutes
	}

	result := make([]*program.Program, len(dayPrograms))
	for rank, p := range dayPrograms {
		c := p.Clone()
		if c.IsScheduled() {
			c.StartMinutes = rank * slotMinutes
		}
		result[rank] = c
	}
	return result
}
