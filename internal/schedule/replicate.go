package schedule

import (
	"fmt"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/dateutil"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/program"
)

// ReplicationResult reports what a master replication produced.
type ReplicationResult struct {
	ReplacedDayKeys []string
	Programs        []*program.Program
}

// ReplicateMaster projects the source day's schedule onto the next
// horizonDays calendar days. Each target day is replaced wholesale with
// fresh-identity copies whose status is forced to scheduled; a copy cannot
// inherit "currently airing" semantics. Days outside the horizon are left
// untouched. Pre-existing edits inside the horizon are overwritten: this is
// a full replacement per target day, not a merge.
func (s *Store) ReplicateMaster(sourceDayKey string, horizonDays int) (*ReplicationResult, error) {
	if _, err := dateutil.ParseDayKey(sourceDayKey); err != nil {
		return nil, err
	}
	if horizonDays <= 0 {
		return &ReplicationResult{}, nil
	}

	source := s.DayPrograms(sourceDayKey)
	result := &ReplicationResult{}

	for offset := 1; offset <= horizonDays; offset++ {
		targetKey, err := dateutil.AddDays(sourceDayKey, offset)
		if err != nil {
			return nil, fmt.Errorf("computing target day: %w", err)
		}

		copies := make([]*program.Program, 0, len(source))
		for _, p := range source {
			copies = append(copies, p.CopyTo(targetKey))
		}

		replaced := s.ReplaceDay(targetKey, copies)
		result.ReplacedDayKeys = append(result.ReplacedDayKeys, targetKey)
		result.Programs = append(result.Programs, replaced...)
	}

	return result, nil
}
