package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sort"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/notify"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/program"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/storage"
)

// dayKeyPrefix namespaces schedule entries in the key-value store.
const dayKeyPrefix = "schedule/"

// Store is the authoritative in-memory collection of programs per day key.
// Every mutation is atomic over one day, runs through the shared conflict
// and reflow rules, and returns a fresh program slice; callers never see
// shared-mutable state. Store is not goroutine-safe: all scheduling
// operations execute on a single logical thread of control.
type Store struct {
	slotMinutes int
	days        map[string]*program.Day
	dirty       map[string]bool
	kv          storage.KeyValueStore
	notifier    *notify.Broadcaster
}

// Option configures a Store.
type Option func(*Store)

// WithSlotMinutes overrides the reflow slot width (default 60).
func WithSlotMinutes(m int) Option {
	return func(s *Store) {
		if m > 0 {
			s.slotMinutes = m
		}
	}
}

// WithNotifier attaches the save broadcast channel.
func WithNotifier(b *notify.Broadcaster) Option {
	return func(s *Store) { s.notifier = b }
}

// NewStore creates a Store backed by the given key-value store.
func NewStore(kv storage.KeyValueStore, opts ...Option) *Store {
	s := &Store{
		slotMinutes: DefaultSlotMinutes,
		days:        make(map[string]*program.Day),
		dirty:       make(map[string]bool),
		kv:          kv,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SlotMinutes returns the configured reflow slot width.
func (s *Store) SlotMinutes() int {
	return s.slotMinutes
}

// day returns the Day for dayKey, creating an empty one on first touch.
func (s *Store) day(dayKey string) *program.Day {
	d, ok := s.days[dayKey]
	if !ok {
		d = program.NewDay(dayKey)
		s.days[dayKey] = d
	}
	return d
}

// DayPrograms returns a read-only snapshot of the day's programs in
// display order. Consumers must not mutate the returned programs.
func (s *Store) DayPrograms(dayKey string) []*program.Program {
	d, ok := s.days[dayKey]
	if !ok {
		return nil
	}
	return d.Programs()
}

// DayKeys returns the day keys currently held in memory, sorted.
func (s *Store) DayKeys() []string {
	keys := make([]string, 0, len(s.days))
	for k := range s.days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TotalPrograms counts programs across all loaded days.
func (s *Store) TotalPrograms() int {
	total := 0
	for _, d := range s.days {
		total += d.Len()
	}
	return total
}

// IsDirty reports whether the day has unsaved changes.
func (s *Store) IsDirty(dayKey string) bool {
	return s.dirty[dayKey]
}

// DirtyDays returns the day keys with unsaved changes, sorted.
func (s *Store) DirtyDays() []string {
	keys := make([]string, 0, len(s.dirty))
	for k, v := range s.dirty {
		if v {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// AddProgram validates the candidate against every existing program on the
// day and inserts it sorted by start time. On collision the store is left
// unchanged and a *Rejection naming the conflicting program is returned.
func (s *Store) AddProgram(dayKey string, p *program.Program) ([]*program.Program, error) {
	if p == nil {
		return s.DayPrograms(dayKey), nil
	}

	d := s.day(dayKey)
	candidate := Interval{StartMinutes: p.StartMinutes, DurationMinutes: p.DurationMinutes}
	if conflict, ok := CheckOverlap(candidate, d.Programs(), p.ID); ok {
		return nil, newTimeConflict(conflict)
	}

	c := p.Clone()
	c.DayKey = dayKey
	if err := d.Insert(c); err != nil {
		return nil, err
	}
	s.markDirty(dayKey)
	return d.Programs(), nil
}

// Patch is a partial program update; nil fields are left unchanged.
type Patch struct {
	Title           *string
	StartMinutes    *int
	DurationMinutes *int
	GeoZone         *string
	Tags            []string
	Description     *string
	Videos          []program.VideoRef
}

// EditProgram applies the patch to the program with the given id,
// re-validating the patched interval with self-exclusion. The day is
// untouched on rejection.
func (s *Store) EditProgram(dayKey, id string, patch Patch) ([]*program.Program, error) {
	d, ok := s.days[dayKey]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDay, dayKey)
	}
	existing, _ := d.Find(id)
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", program.ErrProgramNotFound, id)
	}

	patched := existing.Clone()
	if patch.Title != nil {
		patched.Title = *patch.Title
	}
	if patch.StartMinutes != nil {
		patched.StartMinutes = *patch.StartMinutes
	}
	if patch.DurationMinutes != nil {
		patched.DurationMinutes = *patch.DurationMinutes
	}
	if patch.GeoZone != nil {
		patched.GeoZone = *patch.GeoZone
	}
	if patch.Tags != nil {
		patched.Tags = slices.Clone(patch.Tags)
	}
	if patch.Description != nil {
		patched.Description = *patch.Description
	}
	if patch.Videos != nil {
		patched.Videos = slices.Clone(patch.Videos)
	}

	candidate := Interval{StartMinutes: patched.StartMinutes, DurationMinutes: patched.DurationMinutes}
	if conflict, ok := CheckOverlap(candidate, d.Programs(), id); ok {
		return nil, newTimeConflict(conflict)
	}

	d.Remove(id)
	if err := d.Insert(patched); err != nil {
		return nil, err
	}
	s.markDirty(dayKey)
	return d.Programs(), nil
}

// ReorderPrograms moves the program at fromIndex to toIndex in the day's
// display order, then reflows every scheduled program's start time from its
// new rank. The live-boundary rule runs first: a move that would land at or
// before the live program's rank, or that grabs a fixed program, is
// rejected and the day collection is left byte-for-byte unchanged.
func (s *Store) ReorderPrograms(dayKey string, fromIndex, toIndex int) ([]*program.Program, error) {
	d, ok := s.days[dayKey]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDay, dayKey)
	}

	programs := d.Programs()
	if fromIndex < 0 || fromIndex >= len(programs) || toIndex < 0 || toIndex >= len(programs) {
		return nil, ErrIndexOutOfRange
	}
	if fromIndex == toIndex {
		return programs, nil
	}

	liveIndex := d.LiveIndex()
	if programs[fromIndex].IsFixed() || !CanReorderPast(toIndex, liveIndex) {
		return nil, newIllegalReorder()
	}

	moved := programs[fromIndex]
	reordered := append(programs[:fromIndex:fromIndex], programs[fromIndex+1:]...)
	reordered = append(reordered[:toIndex], append([]*program.Program{moved}, reordered[toIndex:]...)...)

	d.SetPrograms(Reflow(reordered, s.slotMinutes))
	s.markDirty(dayKey)
	return d.Programs(), nil
}

// ReplaceDay overwrites the day's collection wholesale. Used by the master
// replicator, whose source day is assumed already valid, so per-add
// validation is bypassed.
func (s *Store) ReplaceDay(dayKey string, programs []*program.Program) []*program.Program {
	ordered := make([]*program.Program, 0, len(programs))
	for _, p := range programs {
		c := p.Clone()
		c.DayKey = dayKey
		ordered = append(ordered, c)
	}
	slices.SortStableFunc(ordered, func(a, b *program.Program) int {
		return a.StartMinutes - b.StartMinutes
	})

	d := s.day(dayKey)
	d.SetPrograms(ordered)
	s.markDirty(dayKey)
	return d.Programs()
}

// RestoreDay reinstates a previously captured day snapshot exactly as
// ordered. Unlike ReplaceDay it never re-sorts: a reflowed display order
// keeps fixed live/completed programs at their retained ranks even when
// their kept start times disagree with the rank sequence.
func (s *Store) RestoreDay(dayKey string, programs []*program.Program) []*program.Program {
	ordered := make([]*program.Program, 0, len(programs))
	for _, p := range programs {
		c := p.Clone()
		c.DayKey = dayKey
		ordered = append(ordered, c)
	}

	d := s.day(dayKey)
	d.SetPrograms(ordered)
	s.markDirty(dayKey)
	return d.Programs()
}

// DayStats returns aggregate numbers for the day's collection.
func (s *Store) DayStats(dayKey string) program.DayStats {
	d, ok := s.days[dayKey]
	if !ok {
		return program.DayStats{}
	}
	return d.Stats()
}

// DeleteProgram removes a program unconditionally. No reflow is triggered;
// callers that want slot renumbering reorder afterwards.
func (s *Store) DeleteProgram(dayKey, id string) ([]*program.Program, error) {
	d, ok := s.days[dayKey]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDay, dayKey)
	}
	if d.Remove(id) == nil {
		return nil, fmt.Errorf("%w: %s", program.ErrProgramNotFound, id)
	}
	s.markDirty(dayKey)
	return d.Programs(), nil
}

// LoadDay materializes a day from the key-value store. A day with no
// persisted entry loads empty. Loading never marks the day dirty.
func (s *Store) LoadDay(ctx context.Context, dayKey string) ([]*program.Program, error) {
	value, err := s.kv.Get(ctx, dayKeyPrefix+dayKey)
	if err == storage.ErrNotFound {
		return s.day(dayKey).Programs(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading day %s: %w", dayKey, err)
	}

	var records []program.Record
	if err := json.Unmarshal(value, &records); err != nil {
		return nil, fmt.Errorf("decoding day %s: %w", dayKey, err)
	}
	programs, err := program.FromRecords(records)
	if err != nil {
		return nil, fmt.Errorf("decoding day %s: %w", dayKey, err)
	}

	d, err := program.NewDayWithPrograms(dayKey, programs)
	if err != nil {
		return nil, fmt.Errorf("loading day %s: %w", dayKey, err)
	}
	s.days[dayKey] = d
	delete(s.dirty, dayKey)
	return d.Programs(), nil
}

// SaveDay persists one day to the key-value store, clears its dirty flag,
// and broadcasts the save signal.
func (s *Store) SaveDay(ctx context.Context, dayKey string) error {
	d, ok := s.days[dayKey]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDay, dayKey)
	}

	value, err := json.Marshal(program.ToRecords(d.Programs()))
	if err != nil {
		return fmt.Errorf("encoding day %s: %w", dayKey, err)
	}
	if err := s.kv.Set(ctx, dayKeyPrefix+dayKey, value); err != nil {
		return fmt.Errorf("saving day %s: %w", dayKey, err)
	}

	delete(s.dirty, dayKey)
	s.publish()
	return nil
}

// SaveAll persists every dirty day. This is the master save: dirtiness is
// cleared across all days it touches, and a single save signal fires after
// the batch.
func (s *Store) SaveAll(ctx context.Context) (saved []string, err error) {
	dirty := s.DirtyDays()
	if len(dirty) == 0 {
		return nil, ErrNothingToSave
	}

	for _, dayKey := range dirty {
		d := s.days[dayKey]
		value, err := json.Marshal(program.ToRecords(d.Programs()))
		if err != nil {
			return saved, fmt.Errorf("encoding day %s: %w", dayKey, err)
		}
		if err := s.kv.Set(ctx, dayKeyPrefix+dayKey, value); err != nil {
			return saved, fmt.Errorf("saving day %s: %w", dayKey, err)
		}
		delete(s.dirty, dayKey)
		saved = append(saved, dayKey)
	}

	s.publish()
	return saved, nil
}

// Finalize is the new-channel gate: it refuses to save a schedule that
// holds zero programs, otherwise it behaves as SaveAll.
func (s *Store) Finalize(ctx context.Context) ([]string, error) {
	if s.TotalPrograms() == 0 {
		return nil, ErrEmptyScheduleOnFinalize
	}
	return s.SaveAll(ctx)
}

func (s *Store) markDirty(dayKey string) {
	s.dirty[dayKey] = true
}

func (s *Store) publish() {
	if s.notifier != nil {
		s.notifier.Publish()
	}
}
