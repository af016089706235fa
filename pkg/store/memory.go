package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory store for development and testing.
// It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	history []Record // newest first
	saved   map[string]Record
	presets map[string]Preset
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		saved:   make(map[string]Record),
		presets: make(map[string]Preset),
	}
}

func (s *MemoryStore) AddHistory(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append([]Record{rec}, s.history...)
	if len(s.history) > HistoryLimit {
		s.history = s.history[:HistoryLimit]
	}
	return nil
}

func (s *MemoryStore) History(ctx context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := clampLimit(limit)
	if n > len(s.history) {
		n = len(s.history)
	}
	out := make([]Record, n)
	copy(out, s.history[:n])
	return out, nil
}

func (s *MemoryStore) SaveResult(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved[rec.ID] = rec
	return nil
}

func (s *MemoryStore) SavedResults(ctx context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, 0, len(s.saved))
	for _, rec := range s.saved {
		out = append(out, rec)
	}
	sortRecords(out)
	return out, nil
}

func (s *MemoryStore) DeleteSaved(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.saved[id]; !ok {
		return ErrNotFound
	}
	delete(s.saved, id)
	return nil
}

func (s *MemoryStore) SavePreset(ctx context.Context, p Preset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presets[p.ID] = p
	return nil
}

func (s *MemoryStore) Presets(ctx context.Context) ([]Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Preset, 0, len(s.presets))
	for _, p := range s.presets {
		out = append(out, p)
	}
	sortPresets(out)
	return out, nil
}

func (s *MemoryStore) Preset(ctx context.Context, id string) (Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.presets[id]
	if !ok {
		return Preset{}, ErrNotFound
	}
	return p, nil
}

func (s *MemoryStore) DeletePreset(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.presets[id]; !ok {
		return ErrNotFound
	}
	delete(s.presets, id)
	return nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

// sortRecords orders records newest first, breaking timestamp ties by
// ID for deterministic listings.
func sortRecords(recs []Record) {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].CreatedAt.Equal(recs[j].CreatedAt) {
			return recs[i].ID < recs[j].ID
		}
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})
}

// sortPresets orders presets newest first, breaking ties by ID.
func sortPresets(ps []Preset) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].CreatedAt.Equal(ps[j].CreatedAt) {
			return ps[i].ID < ps[j].ID
		}
		return ps[i].CreatedAt.After(ps[j].CreatedAt)
	})
}

var _ Store = (*MemoryStore)(nil)
