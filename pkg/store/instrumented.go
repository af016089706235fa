package store

import (
	"context"
	"time"

	"github.com/tintlab/dyeseq/pkg/observability"
)

// InstrumentedStore decorates a Store with observability hooks.
// Every operation is reported to the registered [observability.StoreHooks]
// with the backend name, the operation and its duration.
type InstrumentedStore struct {
	inner   Store
	backend string
}

// Instrument wraps a store so its operations emit store hooks.
// The backend name ("memory", "file", "redis", "mongo") tags every event.
func Instrument(inner Store, backend string) *InstrumentedStore {
	return &InstrumentedStore{inner: inner, backend: backend}
}

func (s *InstrumentedStore) read(ctx context.Context, op string, start time.Time, err error) {
	observability.Store().OnStoreRead(ctx, s.backend, op, time.Since(start), err)
}

func (s *InstrumentedStore) write(ctx context.Context, op string, start time.Time, err error) {
	observability.Store().OnStoreWrite(ctx, s.backend, op, time.Since(start), err)
}

func (s *InstrumentedStore) AddHistory(ctx context.Context, rec Record) error {
	start := time.Now()
	err := s.inner.AddHistory(ctx, rec)
	s.write(ctx, "add_history", start, err)
	return err
}

func (s *InstrumentedStore) History(ctx context.Context, limit int) ([]Record, error) {
	start := time.Now()
	recs, err := s.inner.History(ctx, limit)
	s.read(ctx, "history", start, err)
	return recs, err
}

func (s *InstrumentedStore) SaveResult(ctx context.Context, rec Record) error {
	start := time.Now()
	err := s.inner.SaveResult(ctx, rec)
	s.write(ctx, "save_result", start, err)
	return err
}

func (s *InstrumentedStore) SavedResults(ctx context.Context) ([]Record, error) {
	start := time.Now()
	recs, err := s.inner.SavedResults(ctx)
	s.read(ctx, "saved_results", start, err)
	return recs, err
}

func (s *InstrumentedStore) DeleteSaved(ctx context.Context, id string) error {
	start := time.Now()
	err := s.inner.DeleteSaved(ctx, id)
	s.write(ctx, "delete_saved", start, err)
	return err
}

func (s *InstrumentedStore) SavePreset(ctx context.Context, p Preset) error {
	start := time.Now()
	err := s.inner.SavePreset(ctx, p)
	s.write(ctx, "save_preset", start, err)
	return err
}

func (s *InstrumentedStore) Presets(ctx context.Context) ([]Preset, error) {
	start := time.Now()
	ps, err := s.inner.Presets(ctx)
	s.read(ctx, "presets", start, err)
	return ps, err
}

func (s *InstrumentedStore) Preset(ctx context.Context, id string) (Preset, error) {
	start := time.Now()
	p, err := s.inner.Preset(ctx, id)
	s.read(ctx, "preset", start, err)
	return p, err
}

func (s *InstrumentedStore) DeletePreset(ctx context.Context, id string) error {
	start := time.Now()
	err := s.inner.DeletePreset(ctx, id)
	s.write(ctx, "delete_preset", start, err)
	return err
}

// Close closes the wrapped store.
func (s *InstrumentedStore) Close() error { return s.inner.Close() }

var _ Store = (*InstrumentedStore)(nil)
