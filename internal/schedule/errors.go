// Package schedule implements the scheduling core: conflict validation,
// slot reflow, the authoritative per-day store, master-day replication, and
// ad-marker generation. Every mutation path runs through the same conflict
// and reflow rules.
package schedule

import (
	"errors"
	"fmt"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/program"
)

// Domain errors.
var (
	ErrUnknownDay              = errors.New("no schedule loaded for day")
	ErrEmptyScheduleOnFinalize = errors.New("cannot finalize a channel with no programs")
	ErrSaveInProgress          = errors.New("a save is already in progress")
	ErrNothingToSave           = errors.New("no unsaved changes")
	ErrIndexOutOfRange         = errors.New("program index out of range")
	errRejected                = errors.New("operation rejected")
)

// illegalReorderMessage is the fixed user-facing text for live-boundary
// violations.
const illegalReorderMessage = "cannot move above live program"

// RejectionKind classifies why a mutation was refused.
type RejectionKind string

const (
	RejectTimeConflict   RejectionKind = "time_conflict"
	RejectIllegalReorder RejectionKind = "illegal_reorder"
)

// Rejection is a structured, recoverable refusal of a mutation. The prior
// state is always preserved exactly; Message is ready for direct display.
type Rejection struct {
	Kind         RejectionKind
	Message      string
	ConflictWith *program.Program // set for time conflicts
}

// Error implements the error interface.
func (r *Rejection) Error() string {
	return r.Message
}

// Unwrap lets errors.Is match any rejection.
func (r *Rejection) Unwrap() error {
	return errRejected
}

// IsRejection reports whether err is a mutation rejection and returns it.
func IsRejection(err error) (*Rejection, bool) {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

// newTimeConflict builds the user-facing conflict rejection, naming the
// colliding program and its formatted 12-hour range.
func newTimeConflict(conflict *program.Program) *Rejection {
	return &Rejection{
		Kind:         RejectTimeConflict,
		ConflictWith: conflict,
		Message: fmt.Sprintf("time conflict with %q (%s)",
			conflict.Title, conflict.TimeRange()),
	}
}

// newIllegalReorder builds the fixed live-boundary rejection.
func newIllegalReorder() *Rejection {
	return &Rejection{
		Kind:    RejectIllegalReorder,
		Message: illegalReorderMessage,
	}
}
