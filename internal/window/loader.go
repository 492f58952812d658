// Package window maintains the growing, bounded multi-day view of the
// rolling horizon. The loader controls which day keys are materialized in
// the view; it never owns the underlying schedule data.
package window

import (
	"errors"
	"time"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/dateutil"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/program"
)

// Loader errors.
var (
	ErrNotReady          = errors.New("window is not ready for expansion")
	ErrExpansionInFlight = errors.New("window expansion already in flight")
)

// Defaults for the rolling horizon.
const (
	DefaultInitialDays = 3
	DefaultChunkDays   = 2
	DefaultMaxHorizon  = 15
)

// State is the loader's lifecycle phase.
type State int

const (
	Idle State = iota
	InitialLoad
	Ready
	Expanding
	Exhausted
)

// String returns the state name for logs and tests.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case InitialLoad:
		return "initial_load"
	case Ready:
		return "ready"
	case Expanding:
		return "expanding"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Loader materializes day windows in monotonic, idempotent steps:
// Idle -> InitialLoad -> Ready <-> Expanding -> ... -> Exhausted.
// A proximity signal while Expanding is ignored (no duplicated in-flight
// work); a signal at Exhausted is a safe no-op.
type Loader struct {
	state       State
	start       time.Time
	initialDays int
	chunkDays   int
	maxHorizon  int
	windows     []program.DayWindow
}

// Option configures a Loader.
type Option func(*Loader)

// WithInitialDays sets the number of days materialized on first load.
func WithInitialDays(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.initialDays = n
		}
	}
}

// WithChunkDays sets the number of days appended per expansion.
func WithChunkDays(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.chunkDays = n
		}
	}
}

// WithMaxHorizon caps the total materialized days.
func WithMaxHorizon(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.maxHorizon = n
		}
	}
}

// NewLoader creates an Idle loader whose horizon starts at the given day.
func NewLoader(start time.Time, opts ...Option) *Loader {
	l := &Loader{
		start:       dateutil.TruncateToDay(start),
		initialDays: DefaultInitialDays,
		chunkDays:   DefaultChunkDays,
		maxHorizon:  DefaultMaxHorizon,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.initialDays > l.maxHorizon {
		l.initialDays = l.maxHorizon
	}
	return l
}

// State returns the loader's current phase.
func (l *Loader) State() State {
	return l.state
}

// Windows returns a copy of the materialized day windows in order.
func (l *Loader) Windows() []program.DayWindow {
	out := make([]program.DayWindow, len(l.windows))
	copy(out, l.windows)
	return out
}

// Len returns the number of materialized days.
func (l *Loader) Len() int {
	return len(l.windows)
}

// BeginInitialLoad starts materializing the first chunk of the horizon and
// returns the day keys to load. Idempotent: repeated calls after the first
// return nil.
func (l *Loader) BeginInitialLoad() []string {
	if l.state != Idle {
		return nil
	}
	l.state = InitialLoad
	return dateutil.DayKeysFrom(l.start, l.initialDays)
}

// CompleteInitialLoad records the materialized days and moves to Ready, or
// straight to Exhausted when the initial chunk already fills the horizon.
func (l *Loader) CompleteInitialLoad() {
	if l.state != InitialLoad {
		return
	}
	l.appendDays(l.initialDays)
	l.settle()
}

// BeginExpansion handles a scroll-proximity signal: it reserves the next
// chunk of days (capped at the horizon) and returns their keys. It returns
// ErrExpansionInFlight while a previous expansion is pending, and a nil
// key slice with no error at Exhausted.
func (l *Loader) BeginExpansion() ([]string, error) {
	switch l.state {
	case Exhausted:
		return nil, nil
	case Expanding:
		return nil, ErrExpansionInFlight
	case Ready:
	default:
		return nil, ErrNotReady
	}

	remaining := l.maxHorizon - len(l.windows)
	if remaining <= 0 {
		l.state = Exhausted
		return nil, nil
	}

	chunk := l.chunkDays
	if chunk > remaining {
		chunk = remaining
	}

	next := l.start.AddDate(0, 0, len(l.windows))
	l.state = Expanding
	return dateutil.DayKeysFrom(next, chunk), nil
}

// CompleteExpansion appends the reserved chunk and settles back to Ready,
// or to Exhausted once the horizon is full.
func (l *Loader) CompleteExpansion() {
	if l.state != Expanding {
		return
	}
	remaining := l.maxHorizon - len(l.windows)
	chunk := l.chunkDays
	if chunk > remaining {
		chunk = remaining
	}
	l.appendDays(chunk)
	l.settle()
}

// CancelExpansion abandons an in-flight expansion (load failure) without
// materializing anything; the loader returns to Ready so the signal can
// fire again.
func (l *Loader) CancelExpansion() {
	if l.state == Expanding {
		l.state = Ready
	}
}

// NearEnd reports whether the visible index is within threshold days of the
// materialized window's end, the proximity signal that triggers expansion.
func (l *Loader) NearEnd(visibleIndex, threshold int) bool {
	if len(l.windows) == 0 {
		return false
	}
	return visibleIndex >= len(l.windows)-threshold
}

// CurrentDayIndex derives the "current day" pointer from the viewport's
// reference anchor: the materialized day whose anchor is nearest wins, and
// ties resolve to the lowest index. The pointer is recomputed, never stored.
func (l *Loader) CurrentDayIndex(ref float64, anchors []float64) int {
	if len(anchors) == 0 || len(l.windows) == 0 {
		return -1
	}
	limit := len(anchors)
	if limit > len(l.windows) {
		limit = len(l.windows)
	}

	best := 0
	bestDist := abs(anchors[0] - ref)
	for i := 1; i < limit; i++ {
		if d := abs(anchors[i] - ref); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// CurrentDayKey is CurrentDayIndex resolved to a day key, or "" when
// nothing is materialized.
func (l *Loader) CurrentDayKey(ref float64, anchors []float64) string {
	i := l.CurrentDayIndex(ref, anchors)
	if i < 0 {
		return ""
	}
	return l.windows[i].DayKey
}

// appendDays materializes n more consecutive days after the current window.
func (l *Loader) appendDays(n int) {
	next := l.start.AddDate(0, 0, len(l.windows))
	for _, key := range dateutil.DayKeysFrom(next, n) {
		day, _ := dateutil.ParseDayKey(key)
		l.windows = append(l.windows, program.DayWindow{
			DayKey: key,
			Label:  day.Format("Mon, Jan 2"),
		})
	}
}

// settle picks Ready or Exhausted based on horizon occupancy.
func (l *Loader) settle() {
	if len(l.windows) >= l.maxHorizon {
		l.state = Exhausted
	} else {
		l.state = Ready
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
