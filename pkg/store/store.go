// Package store persists search history, saved results and base color
// presets.
//
// This package defines the Store interface with implementations for
// different backends:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for CLI usage
//   - redis: Redis-backed storage for server deployments
//   - mongo: MongoDB-backed storage for server deployments
//
// History is a bounded log: only the [HistoryLimit] most recent records
// are retained, newest first. Saved results and presets are explicit
// collections with full CRUD.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tintlab/dyeseq/pkg/dye"
	"github.com/tintlab/dyeseq/pkg/search"
)

// HistoryLimit is the number of history records a store retains.
const HistoryLimit = 10

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a record or preset does not exist.
	ErrNotFound = errors.New("not found")
)

// Record is one completed search: the requested target plus the best
// result the engine returned for it.
type Record struct {
	ID        string    `json:"id"`
	Target    dye.Color `json:"target"`
	Steps     []dye.Dye `json:"steps"`
	Mask      dye.Mask  `json:"mask"`
	Color     dye.Color `json:"color"`
	Distance  int       `json:"distance"`
	CreatedAt time.Time `json:"created_at"`
}

// Preset is a named base color.
type Preset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     dye.Color `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRecord builds a Record from a search result with a fresh ID and
// timestamp.
func NewRecord(target dye.Color, res search.Result) Record {
	return Record{
		ID:        uuid.NewString(),
		Target:    target,
		Steps:     res.Steps,
		Mask:      res.Mask,
		Color:     res.Color,
		Distance:  res.Distance,
		CreatedAt: time.Now().UTC(),
	}
}

// NewPreset builds a Preset with a fresh ID and timestamp.
func NewPreset(name string, color dye.Color) Preset {
	return Preset{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}
}

// Store is the interface for persistence backends.
// All listing methods return newest-first ordering.
type Store interface {
	// AddHistory appends a record to the history log, discarding the
	// oldest entries beyond HistoryLimit.
	AddHistory(ctx context.Context, rec Record) error

	// History returns up to limit history records, newest first.
	// A limit <= 0 or > HistoryLimit means HistoryLimit.
	History(ctx context.Context, limit int) ([]Record, error)

	// SaveResult stores a record in the saved collection.
	SaveResult(ctx context.Context, rec Record) error

	// SavedResults returns all saved records, newest first.
	SavedResults(ctx context.Context) ([]Record, error)

	// DeleteSaved removes a saved record.
	// Returns ErrNotFound if no record has the given ID.
	DeleteSaved(ctx context.Context, id string) error

	// SavePreset stores a named base color.
	SavePreset(ctx context.Context, p Preset) error

	// Presets returns all presets, newest first.
	Presets(ctx context.Context) ([]Preset, error)

	// Preset returns one preset by ID, or ErrNotFound.
	Preset(ctx context.Context, id string) (Preset, error)

	// DeletePreset removes a preset.
	// Returns ErrNotFound if no preset has the given ID.
	DeletePreset(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}

// clampLimit normalizes a caller-supplied history limit.
func clampLimit(limit int) int {
	if limit <= 0 || limit > HistoryLimit {
		return HistoryLimit
	}
	return limit
}
