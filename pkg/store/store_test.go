package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/tintlab/dyeseq/pkg/dye"
	"github.com/tintlab/dyeseq/pkg/search"
)

// testRecord builds a record with a deterministic ID and timestamp so
// listing order is stable across backends.
func testRecord(i int) Record {
	rec := NewRecord(dye.Color{R: uint8(i)}, search.Result{
		Steps:    []dye.Dye{dye.Red, dye.Black},
		Mask:     dye.Mask{R: 255, G: 207, B: 207},
		Color:    dye.Color{R: 241, G: 178, B: 24},
		Distance: 216,
	})
	rec.ID = fmt.Sprintf("rec-%03d", i)
	rec.CreatedAt = time.Date(2026, 8, 1, 12, 0, i, 0, time.UTC)
	return rec
}

func testPreset(i int) Preset {
	p := NewPreset(fmt.Sprintf("preset-%d", i), dye.Color{G: uint8(i)})
	p.ID = fmt.Sprintf("pre-%03d", i)
	p.CreatedAt = time.Date(2026, 8, 1, 12, 0, i, 0, time.UTC)
	return p
}

// runStoreTests exercises the Store contract against a backend.
func runStoreTests(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("history newest first", func(t *testing.T) {
		st := newStore(t)
		defer st.Close()
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			if err := st.AddHistory(ctx, testRecord(i)); err != nil {
				t.Fatalf("AddHistory: %v", err)
			}
		}

		recs, err := st.History(ctx, HistoryLimit)
		if err != nil {
			t.Fatalf("History: %v", err)
		}
		if len(recs) != 3 {
			t.Fatalf("len = %d, want 3", len(recs))
		}
		for i, want := range []string{"rec-002", "rec-001", "rec-000"} {
			if recs[i].ID != want {
				t.Errorf("recs[%d].ID = %s, want %s", i, recs[i].ID, want)
			}
		}
	})

	t.Run("history trimmed at limit", func(t *testing.T) {
		st := newStore(t)
		defer st.Close()
		ctx := context.Background()

		for i := 0; i < HistoryLimit+5; i++ {
			if err := st.AddHistory(ctx, testRecord(i)); err != nil {
				t.Fatalf("AddHistory: %v", err)
			}
		}

		recs, err := st.History(ctx, HistoryLimit)
		if err != nil {
			t.Fatalf("History: %v", err)
		}
		if len(recs) != HistoryLimit {
			t.Fatalf("len = %d, want %d", len(recs), HistoryLimit)
		}
		// The oldest five must be gone.
		if recs[len(recs)-1].ID != "rec-005" {
			t.Errorf("oldest retained = %s, want rec-005", recs[len(recs)-1].ID)
		}
	})

	t.Run("history limit parameter", func(t *testing.T) {
		st := newStore(t)
		defer st.Close()
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			if err := st.AddHistory(ctx, testRecord(i)); err != nil {
				t.Fatalf("AddHistory: %v", err)
			}
		}

		recs, err := st.History(ctx, 2)
		if err != nil {
			t.Fatalf("History: %v", err)
		}
		if len(recs) != 2 {
			t.Errorf("History(2) len = %d, want 2", len(recs))
		}

		recs, err = st.History(ctx, 0)
		if err != nil {
			t.Fatalf("History: %v", err)
		}
		if len(recs) != 5 {
			t.Errorf("History(0) len = %d, want 5", len(recs))
		}
	})

	t.Run("saved results", func(t *testing.T) {
		st := newStore(t)
		defer st.Close()
		ctx := context.Background()

		rec := testRecord(1)
		if err := st.SaveResult(ctx, rec); err != nil {
			t.Fatalf("SaveResult: %v", err)
		}

		recs, err := st.SavedResults(ctx)
		if err != nil {
			t.Fatalf("SavedResults: %v", err)
		}
		if len(recs) != 1 || recs[0].ID != rec.ID {
			t.Fatalf("SavedResults = %v", recs)
		}
		if recs[0].Distance != rec.Distance {
			t.Errorf("Distance = %d, want %d", recs[0].Distance, rec.Distance)
		}
		if len(recs[0].Steps) != 2 || recs[0].Steps[0] != dye.Red || recs[0].Steps[1] != dye.Black {
			t.Errorf("Steps = %v, want [red black]", recs[0].Steps)
		}

		if err := st.DeleteSaved(ctx, rec.ID); err != nil {
			t.Fatalf("DeleteSaved: %v", err)
		}
		recs, err = st.SavedResults(ctx)
		if err != nil {
			t.Fatalf("SavedResults: %v", err)
		}
		if len(recs) != 0 {
			t.Errorf("SavedResults after delete = %v, want empty", recs)
		}
	})

	t.Run("delete saved not found", func(t *testing.T) {
		st := newStore(t)
		defer st.Close()
		if err := st.DeleteSaved(context.Background(), "missing"); err != ErrNotFound {
			t.Errorf("DeleteSaved = %v, want ErrNotFound", err)
		}
	})

	t.Run("presets", func(t *testing.T) {
		st := newStore(t)
		defer st.Close()
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			if err := st.SavePreset(ctx, testPreset(i)); err != nil {
				t.Fatalf("SavePreset: %v", err)
			}
		}

		ps, err := st.Presets(ctx)
		if err != nil {
			t.Fatalf("Presets: %v", err)
		}
		if len(ps) != 3 {
			t.Fatalf("len = %d, want 3", len(ps))
		}
		if ps[0].ID != "pre-002" {
			t.Errorf("newest preset = %s, want pre-002", ps[0].ID)
		}

		p, err := st.Preset(ctx, "pre-001")
		if err != nil {
			t.Fatalf("Preset: %v", err)
		}
		if p.Name != "preset-1" || p.Color != (dye.Color{G: 1}) {
			t.Errorf("Preset = %+v", p)
		}

		if err := st.DeletePreset(ctx, "pre-001"); err != nil {
			t.Fatalf("DeletePreset: %v", err)
		}
		if _, err := st.Preset(ctx, "pre-001"); err != ErrNotFound {
			t.Errorf("Preset after delete = %v, want ErrNotFound", err)
		}
		if err := st.DeletePreset(ctx, "pre-001"); err != ErrNotFound {
			t.Errorf("DeletePreset again = %v, want ErrNotFound", err)
		}
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, func(t *testing.T) Store {
		return NewMemoryStore()
	})
}

func TestFileStore(t *testing.T) {
	runStoreTests(t, func(t *testing.T) Store {
		st, err := NewFileStore(t.TempDir())
		if err != nil {
			t.Fatalf("NewFileStore: %v", err)
		}
		return st
	})
}

func TestNewRecordFieldsFilled(t *testing.T) {
	res := search.Result{Steps: []dye.Dye{dye.Blue}, Mask: dye.Mask{R: 239, G: 239, B: 255}, Color: dye.Color{R: 226, G: 205, B: 29}, Distance: 263}
	rec := NewRecord(dye.Color{R: 255}, res)
	if rec.ID == "" {
		t.Error("ID not set")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
	if rec.Target != (dye.Color{R: 255}) || rec.Distance != 263 {
		t.Errorf("record = %+v", rec)
	}
}
