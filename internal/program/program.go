// Package program defines the core domain types for slike-epg.
package program

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/dateutil"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/timeutil"
)

// Validation errors.
var (
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrInvalidContentType = errors.New("content type must be 'VOD' or 'Event'")
	ErrInvalidDuration    = errors.New("duration must be positive")
	ErrInvalidStart       = errors.New("start must be within 0..1439 minutes")
)

// Domain errors.
var (
	ErrProgramNotFound      = errors.New("program not found")
	ErrVideoNotFound        = errors.New("video not found")
	ErrCrossSourceReorder   = errors.New("videos can only be reordered within their source group")
	ErrDuplicateLiveProgram = errors.New("day already has a live program")
)

// Status represents the airing state of a program.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
)

// ContentType distinguishes on-demand assets from live events.
type ContentType string

const (
	ContentVOD   ContentType = "VOD"
	ContentEvent ContentType = "Event"
)

// VideoSource identifies which catalog a video reference came from.
type VideoSource string

const (
	SourcePlaylist VideoSource = "playlist"
	SourceCustom   VideoSource = "custom"
)

// VideoRef is a content item owned by exactly one program.
type VideoRef struct {
	ID              string
	Name            string
	DurationMinutes int
	Source          VideoSource
}

// Program is a single entry in a channel's day schedule.
// Programs are value records: mutation paths copy before changing.
type Program struct {
	ID              string
	DayKey          string // YYYY-MM-DD
	StartMinutes    int    // 0..1439
	DurationMinutes int    // > 0
	Title           string
	ContentType     ContentType
	Status          Status
	GeoZone         string
	Tags            []string
	Description     string
	Videos          []VideoRef
	CreatedAt       time.Time
}

// New creates a scheduled Program with validation.
// dayKey can be empty (defaults to today) or in YYYY-MM-DD format.
func New(title, contentType, dayKey string, startMinutes, durationMinutes int) (*Program, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	ct, err := parseContentType(contentType)
	if err != nil {
		return nil, err
	}

	day, err := dateutil.ParseDayKey(dayKey)
	if err != nil {
		return nil, err
	}

	if startMinutes < 0 || startMinutes >= timeutil.MinutesPerDay {
		return nil, ErrInvalidStart
	}
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	return &Program{
		ID:              uuid.NewString(),
		DayKey:          dateutil.DayKey(day),
		StartMinutes:    startMinutes,
		DurationMinutes: durationMinutes,
		Title:           title,
		ContentType:     ct,
		Status:          StatusScheduled,
		CreatedAt:       time.Now(),
	}, nil
}

func parseContentType(s string) (ContentType, error) {
	switch s {
	case "VOD", "vod":
		return ContentVOD, nil
	case "Event", "event":
		return ContentEvent, nil
	default:
		return "", ErrInvalidContentType
	}
}

// EndMinutes returns start + duration on the flat 0..1439 minute scale.
// Cross-midnight programs are clipped to the day boundary by callers, never
// wrapped here.
func (p *Program) EndMinutes() int {
	return p.StartMinutes + p.DurationMinutes
}

// IsScheduled returns true if the program has scheduled status.
func (p *Program) IsScheduled() bool {
	return p.Status == StatusScheduled
}

// IsLive returns true if the program is currently airing.
func (p *Program) IsLive() bool {
	return p.Status == StatusLive
}

// IsCompleted returns true if the program has finished airing.
func (p *Program) IsCompleted() bool {
	return p.Status == StatusCompleted
}

// IsFixed returns true when the program's position and time may not change:
// live and completed programs never reflow.
func (p *Program) IsFixed() bool {
	return p.Status == StatusLive || p.Status == StatusCompleted
}

// OverlapsWith returns true if this program overlaps another on the same day.
// Intervals are half-open: touching boundaries do not overlap.
func (p *Program) OverlapsWith(other *Program) bool {
	if other == nil || p.DayKey != other.DayKey {
		return false
	}
	return p.StartMinutes < other.EndMinutes() && other.StartMinutes < p.EndMinutes()
}

// TimeRange renders the program's slot as "9:00am–10:00am".
func (p *Program) TimeRange() string {
	return timeutil.FormatRange12h(p.StartMinutes, p.DurationMinutes)
}

// Clone returns a deep copy of the program.
func (p *Program) Clone() *Program {
	c := *p
	if p.Tags != nil {
		c.Tags = make([]string, len(p.Tags))
		copy(c.Tags, p.Tags)
	}
	if p.Videos != nil {
		c.Videos = make([]VideoRef, len(p.Videos))
		copy(c.Videos, p.Videos)
	}
	return &c
}

// CopyTo returns a scheduled copy of the program on another day with a fresh
// identity. Live/completed markings never survive the copy: a replica cannot
// inherit "currently airing" semantics.
func (p *Program) CopyTo(dayKey string) *Program {
	c := p.Clone()
	c.ID = uuid.NewString()
	c.DayKey = dayKey
	c.Status = StatusScheduled
	c.CreatedAt = time.Now()
	for i := range c.Videos {
		c.Videos[i].ID = uuid.NewString()
	}
	return c
}

// ReorderVideos moves the video at from to position to. Reordering is scoped
// to siblings sharing the same Source tag; moving a video into a slot owned
// by a different source group returns ErrCrossSourceReorder.
func (p *Program) ReorderVideos(from, to int) error {
	if from < 0 || from >= len(p.Videos) || to < 0 || to >= len(p.Videos) {
		return ErrVideoNotFound
	}
	if from == to {
		return nil
	}
	if p.Videos[from].Source != p.Videos[to].Source {
		return fmt.Errorf("%w: %q is %s, target slot is %s",
			ErrCrossSourceReorder, p.Videos[from].Name, p.Videos[from].Source, p.Videos[to].Source)
	}

	moved := p.Videos[from]
	videos := append(p.Videos[:from:from], p.Videos[from+1:]...)
	videos = append(videos[:to], append([]VideoRef{moved}, videos[to:]...)...)
	p.Videos = videos
	return nil
}

// TotalVideoMinutes sums the durations of all owned video references.
func (p *Program) TotalVideoMinutes() int {
	total := 0
	for _, v := range p.Videos {
		total += v.DurationMinutes
	}
	return total
}

// AdMarker is a derived, regenerable annotation: a recurring ad campaign
// break on a day's timeline. Markers are not programs; they are keyed per
// day and fully replaced on regeneration.
type AdMarker struct {
	DayKey        string
	Time          string // "HH:MM"
	CampaignID    string
	DurationLabel string
}

// DayWindow is a visible slice of the rolling horizon. It controls which
// day keys are materialized in the view, not whether the underlying data
// exists.
type DayWindow struct {
	DayKey string
	Label  string
}
