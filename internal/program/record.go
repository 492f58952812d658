package program

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/timeutil"
)

// ErrInvalidRecordTime reports a malformed composite start time in a
// persisted record.
var ErrInvalidRecordTime = errors.New("record start must be in YYYY-MM-DDTHH:MM format")

// recordTimeLayout is the composite date+time form used at the storage
// boundary. In memory the day key and minute offset are kept split; the
// persisted shape carries them as one string.
const recordTimeLayout = "2006-01-02T15:04"

// VideoRecord is the persisted shape of a VideoRef.
type VideoRecord struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Source          string `json:"source"`
}

// Record is the persisted shape of a Program: one element of the JSON array
// stored under a day key.
type Record struct {
	ID              string        `json:"id"`
	Start           string        `json:"start"` // "YYYY-MM-DDTHH:MM"
	DurationMinutes int           `json:"durationMinutes"`
	Title           string        `json:"title"`
	ContentType     string        `json:"contentType"`
	Status          string        `json:"status"`
	GeoZone         string        `json:"geoZone,omitempty"`
	Tags            []string      `json:"tags,omitempty"`
	Description     string        `json:"description,omitempty"`
	Videos          []VideoRecord `json:"videos,omitempty"`
	CreatedAt       string        `json:"createdAt"`
}

// ToRecord converts a program to its storage shape.
func (p *Program) ToRecord() Record {
	r := Record{
		ID:              p.ID,
		Start:           p.DayKey + "T" + timeutil.FromMinutes(p.StartMinutes),
		DurationMinutes: p.DurationMinutes,
		Title:           p.Title,
		ContentType:     string(p.ContentType),
		Status:          string(p.Status),
		GeoZone:         p.GeoZone,
		Tags:            p.Tags,
		Description:     p.Description,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
	for _, v := range p.Videos {
		r.Videos = append(r.Videos, VideoRecord{
			ID:              v.ID,
			Name:            v.Name,
			DurationMinutes: v.DurationMinutes,
			Source:          string(v.Source),
		})
	}
	return r
}

// FromRecord converts a storage record back into a Program, splitting the
// composite start into day key and minute offset.
func FromRecord(r Record) (*Program, error) {
	start, err := time.Parse(recordTimeLayout, r.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRecordTime, r.Start)
	}

	p := &Program{
		ID:              r.ID,
		DayKey:          start.Format("2006-01-02"),
		StartMinutes:    start.Hour()*60 + start.Minute(),
		DurationMinutes: r.DurationMinutes,
		Title:           r.Title,
		ContentType:     ContentType(r.ContentType),
		Status:          Status(r.Status),
		GeoZone:         r.GeoZone,
		Tags:            r.Tags,
		Description:     r.Description,
	}

	if r.CreatedAt != "" {
		if created, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
			p.CreatedAt = created
		}
	}

	for _, v := range r.Videos {
		p.Videos = append(p.Videos, VideoRef{
			ID:              v.ID,
			Name:            v.Name,
			DurationMinutes: v.DurationMinutes,
			Source:          VideoSource(strings.ToLower(v.Source)),
		})
	}

	return p, nil
}

// ToRecords converts a day's programs to storage shape.
func ToRecords(programs []*Program) []Record {
	records := make([]Record, 0, len(programs))
	for _, p := range programs {
		records = append(records, p.ToRecord())
	}
	return records
}

// FromRecords converts persisted records back into programs.
func FromRecords(records []Record) ([]*Program, error) {
	programs := make([]*Program, 0, len(records))
	for _, r := range records {
		p, err := FromRecord(r)
		if err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, nil
}
