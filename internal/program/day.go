package program

import (
	"slices"
)

// Day holds all programs for a single day key, sorted by start time.
type Day struct {
	Key      string
	programs []*Program
}

// NewDay creates an empty Day for the given day key.
func NewDay(dayKey string) *Day {
	return &Day{
		Key:      dayKey,
		programs: make([]*Program, 0),
	}
}

// NewDayWithPrograms creates a Day from a slice of programs.
// Returns an error if a second live program is inserted.
func NewDayWithPrograms(dayKey string, programs []*Program) (*Day, error) {
	d := NewDay(dayKey)
	for _, p := range programs {
		if err := d.Insert(p); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Programs returns a copy of the program slice.
func (d *Day) Programs() []*Program {
	result := make([]*Program, len(d.programs))
	copy(result, d.programs)
	return result
}

// Insert adds a program to the day, maintaining sorted order by start time.
// It enforces the single-live invariant but performs no overlap checking;
// conflict detection belongs to the validator so every mutation path shares
// one rule.
func (d *Day) Insert(p *Program) error {
	if p == nil {
		return nil
	}

	if p.IsLive() && d.LiveIndex() != -1 {
		return ErrDuplicateLiveProgram
	}

	d.programs = append(d.programs, p)
	d.sort()
	return nil
}

// sort orders programs by start minutes, stable on insertion order for ties.
func (d *Day) sort() {
	slices.SortStableFunc(d.programs, func(a, b *Program) int {
		return a.StartMinutes - b.StartMinutes
	})
}

// SetPrograms replaces the day's contents with the given slice in positional
// order, without re-sorting. Reflow-derived orders are authoritative even
// when a fixed program's retained start time disagrees with its rank.
func (d *Day) SetPrograms(programs []*Program) {
	d.programs = make([]*Program, len(programs))
	copy(d.programs, programs)
}

// LiveIndex returns the position of the live program, or -1 if none.
func (d *Day) LiveIndex() int {
	for i, p := range d.programs {
		if p.IsLive() {
			return i
		}
	}
	return -1
}

// Find returns the program with the given ID and its position, or nil and -1.
func (d *Day) Find(id string) (*Program, int) {
	for i, p := range d.programs {
		if p.ID == id {
			return p, i
		}
	}
	return nil, -1
}

// Remove removes a program from the day by ID.
// Returns the removed program, or nil if not found.
func (d *Day) Remove(id string) *Program {
	for i, p := range d.programs {
		if p.ID == id {
			d.programs = append(d.programs[:i], d.programs[i+1:]...)
			return p
		}
	}
	return nil
}

// Len returns the number of programs in the day.
func (d *Day) Len() int {
	return len(d.programs)
}

// Clone returns a deep copy of the day. Mutation paths work on clones so a
// rejected operation leaves the original collection untouched.
func (d *Day) Clone() *Day {
	c := NewDay(d.Key)
	c.programs = make([]*Program, len(d.programs))
	for i, p := range d.programs {
		c.programs[i] = p.Clone()
	}
	return c
}

// DayStats holds aggregate numbers for a single day.
type DayStats struct {
	TotalPrograms   int
	LivePrograms    int
	VODMinutes      int
	EventMinutes    int
	ScheduledBlocks int
}

// TotalMinutes returns the combined scheduled airtime.
func (s DayStats) TotalMinutes() int {
	return s.VODMinutes + s.EventMinutes
}

// Stats calculates statistics for the day.
func (d *Day) Stats() DayStats {
	var stats DayStats
	for _, p := range d.programs {
		stats.TotalPrograms++
		if p.IsLive() {
			stats.LivePrograms++
		}
		if p.IsScheduled() {
			stats.ScheduledBlocks++
		}
		switch p.ContentType {
		case ContentEvent:
			stats.EventMinutes += p.DurationMinutes
		default:
			stats.VODMinutes += p.DurationMinutes
		}
	}
	return stats
}
