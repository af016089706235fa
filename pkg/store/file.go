package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore is a file-based store for CLI usage.
// Records are stored as JSON documents under a data directory, one
// subdirectory per collection.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

const (
	dirHistory = "history"
	dirSaved   = "saved"
	dirPresets = "presets"
)

// NewFileStore creates a file-based store rooted at baseDir.
// If baseDir is empty, it defaults to the XDG data directory
// (~/.local/share/dyeseq).
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		dir, err := defaultDataDir()
		if err != nil {
			return nil, err
		}
		baseDir = dir
	}
	for _, sub := range []string{dirHistory, dirSaved, dirPresets} {
		if err := os.MkdirAll(filepath.Join(baseDir, sub), 0700); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	return &FileStore{baseDir: baseDir}, nil
}

func defaultDataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "dyeseq"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "dyeseq"), nil
}

// Path returns the store's base directory.
func (s *FileStore) Path() string { return s.baseDir }

func (s *FileStore) docPath(collection, id string) string {
	return filepath.Join(s.baseDir, collection, id+".json")
}

func (s *FileStore) writeDoc(collection, id string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s document: %w", collection, err)
	}
	if err := os.WriteFile(s.docPath(collection, id), data, 0600); err != nil {
		return fmt.Errorf("write %s document: %w", collection, err)
	}
	return nil
}

func (s *FileStore) removeDoc(collection, id string) error {
	err := os.Remove(s.docPath(collection, id))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

// readAllDocs calls visit with the raw bytes of every JSON document in
// a collection directory. Unreadable documents are skipped rather than
// failing the listing.
func readAllDocs(dir string, visit func(data []byte)) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read store dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		visit(data)
	}
	return nil
}

func (s *FileStore) AddHistory(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeDoc(dirHistory, rec.ID, rec); err != nil {
		return err
	}
	return s.trimHistory()
}

// trimHistory deletes history documents beyond HistoryLimit, oldest
// first. Caller must hold the write lock.
func (s *FileStore) trimHistory() error {
	recs, err := s.readHistory()
	if err != nil {
		return err
	}
	for _, rec := range recs[min(len(recs), HistoryLimit):] {
		if err := os.Remove(s.docPath(dirHistory, rec.ID)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func (s *FileStore) readHistory() ([]Record, error) {
	var recs []Record
	err := readAllDocs(filepath.Join(s.baseDir, dirHistory), func(data []byte) {
		var rec Record
		if json.Unmarshal(data, &rec) == nil {
			recs = append(recs, rec)
		}
	})
	if err != nil {
		return nil, err
	}
	sortRecords(recs)
	return recs, nil
}

func (s *FileStore) History(ctx context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs, err := s.readHistory()
	if err != nil {
		return nil, err
	}
	n := clampLimit(limit)
	if n > len(recs) {
		n = len(recs)
	}
	return recs[:n], nil
}

func (s *FileStore) SaveResult(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeDoc(dirSaved, rec.ID, rec)
}

func (s *FileStore) SavedResults(ctx context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var recs []Record
	err := readAllDocs(filepath.Join(s.baseDir, dirSaved), func(data []byte) {
		var rec Record
		if json.Unmarshal(data, &rec) == nil {
			recs = append(recs, rec)
		}
	})
	if err != nil {
		return nil, err
	}
	sortRecords(recs)
	return recs, nil
}

func (s *FileStore) DeleteSaved(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeDoc(dirSaved, id)
}

func (s *FileStore) SavePreset(ctx context.Context, p Preset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeDoc(dirPresets, p.ID, p)
}

func (s *FileStore) Presets(ctx context.Context) ([]Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ps []Preset
	err := readAllDocs(filepath.Join(s.baseDir, dirPresets), func(data []byte) {
		var p Preset
		if json.Unmarshal(data, &p) == nil {
			ps = append(ps, p)
		}
	})
	if err != nil {
		return nil, err
	}
	sortPresets(ps)
	return ps, nil
}

func (s *FileStore) Preset(ctx context.Context, id string) (Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, err := os.ReadFile(s.docPath(dirPresets, id))
	if os.IsNotExist(err) {
		return Preset{}, ErrNotFound
	}
	if err != nil {
		return Preset{}, fmt.Errorf("read preset: %w", err)
	}
	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("parse preset: %w", err)
	}
	return p, nil
}

func (s *FileStore) DeletePreset(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeDoc(dirPresets, id)
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

var _ Store = (*FileStore)(nil)
