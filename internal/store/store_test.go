package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/valpere/flashsub/internal"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_New_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "data", "test.db")

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer s.Close()
}

func TestStore_New_InvalidPath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := New(filepath.Join(file, "test.db")); err == nil {
		t.Error("expected error when parent path is a regular file")
	}
}

func TestStore_SaveAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.Save(ctx, internal.Result{OriginalText: "  Hello\n", TranslatedText: "Bonjour", DetectedSourceLanguage: "en"}, "Netflix")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if first.ID == "" {
		t.Error("expected generated ID")
	}
	if first.Result.OriginalText != "Hello" {
		t.Errorf("expected normalized original text, got %q", first.Result.OriginalText)
	}

	if _, err := s.Save(ctx, internal.Result{OriginalText: "Goodbye", TranslatedText: "Au revoir"}, "Hulu"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	subs, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(subs))
	}
	if subs[0].Result.OriginalText != "Goodbye" {
		t.Errorf("expected newest first, got %q", subs[0].Result.OriginalText)
	}
	if subs[1].Result.DetectedSourceLanguage != "en" || subs[1].Platform != "Netflix" {
		t.Errorf("unexpected entry %+v", subs[1])
	}
	if subs[1].SavedAt.IsZero() {
		t.Error("expected saved timestamp")
	}

	limited, err := s.List(ctx, 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected 1 entry with limit, got %d", len(limited))
	}
}

func TestStore_Lookup_NormalizesUnicode(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Decomposed "é" (e + combining acute) must match the precomposed form.
	if _, err := s.Save(ctx, internal.Result{OriginalText: "Cafe\u0301", TranslatedText: "Coffee"}, "Netflix"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	sub, ok, err := s.Lookup(ctx, "Caf\u00e9")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if !ok {
		t.Fatal("expected lookup hit")
	}
	if sub.Result.TranslatedText != "Coffee" {
		t.Errorf("expected 'Coffee', got %q", sub.Result.TranslatedText)
	}

	_, ok, err = s.Lookup(ctx, "Tea")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if ok {
		t.Error("expected lookup miss")
	}
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sub, err := s.Save(ctx, internal.Result{OriginalText: "Hello", TranslatedText: "Hola"}, "VLC")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := s.Delete(ctx, sub.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete(ctx, sub.ID); err == nil {
		t.Error("expected error deleting a missing entry")
	}

	subs, _ := s.List(ctx, 0)
	if len(subs) != 0 {
		t.Errorf("expected empty history, got %d entries", len(subs))
	}
}

func TestStore_ClearAndStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	entries := []struct {
		res      internal.Result
		platform string
	}{
		{internal.Result{OriginalText: "a", TranslatedText: "1", DetectedSourceLanguage: "en"}, "Netflix"},
		{internal.Result{OriginalText: "b", TranslatedText: "2", DetectedSourceLanguage: "en"}, "Netflix"},
		{internal.Result{OriginalText: "c", TranslatedText: "3", DetectedSourceLanguage: "ja"}, "Hulu"},
	}
	for _, e := range entries {
		if err := s.Record(ctx, e.res, e.platform); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalEntries != 3 {
		t.Errorf("expected 3 entries, got %d", stats.TotalEntries)
	}
	if stats.ByPlatform["Netflix"] != 2 || stats.ByPlatform["Hulu"] != 1 {
		t.Errorf("unexpected platform counts %v", stats.ByPlatform)
	}
	if stats.ByLanguage["en"] != 2 || stats.ByLanguage["ja"] != 1 {
		t.Errorf("unexpected language counts %v", stats.ByLanguage)
	}

	n, err := s.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 deleted, got %d", n)
	}

	stats, err = s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalEntries != 0 {
		t.Errorf("expected empty history, got %d", stats.TotalEntries)
	}
}
