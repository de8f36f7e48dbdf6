// Package store keeps the history of translated subtitles in sqlite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite"

	"github.com/valpere/flashsub/internal"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS saved_subs (
		id TEXT PRIMARY KEY,
		original_text TEXT NOT NULL,
		translated_text TEXT NOT NULL,
		detected_source_language TEXT NOT NULL DEFAULT '',
		platform TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_saved_subs_created ON saved_subs(created_at);
	CREATE INDEX IF NOT EXISTS idx_saved_subs_original ON saved_subs(original_text);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Save appends a result to the history and returns the stored entry.
func (s *Store) Save(ctx context.Context, res internal.Result, platform string) (*internal.SavedSub, error) {
	sub := &internal.SavedSub{
		ID:       uuid.NewString(),
		Result:   res,
		Platform: platform,
		SavedAt:  time.Now().UTC(),
	}
	sub.Result.OriginalText = normalizeText(res.OriginalText)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO saved_subs (id, original_text, translated_text, detected_source_language, platform, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.Result.OriginalText, res.TranslatedText, res.DetectedSourceLanguage, platform, sub.SavedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save subtitle: %w", err)
	}
	return sub, nil
}

// Record saves res without returning the entry.
func (s *Store) Record(ctx context.Context, res internal.Result, platform string) error {
	_, err := s.Save(ctx, res, platform)
	return err
}

// Lookup returns the most recent entry whose original text matches text
// after normalization.
func (s *Store) Lookup(ctx context.Context, text string) (*internal.SavedSub, bool, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, original_text, translated_text, detected_source_language, platform, created_at FROM saved_subs WHERE original_text = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`,
		normalizeText(text))
	if err != nil {
		return nil, false, err
	}
	subs, err := scanSubs(rows)
	if err != nil {
		return nil, false, err
	}
	if len(subs) == 0 {
		return nil, false, nil
	}
	return &subs[0], true, nil
}

// List returns saved subtitles, newest first. A limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]internal.SavedSub, error) {
	query := `SELECT id, original_text, translated_text, detected_source_language, platform, created_at FROM saved_subs ORDER BY created_at DESC, rowid DESC`
	var args []interface{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanSubs(rows)
}

func scanSubs(rows *sql.Rows) ([]internal.SavedSub, error) {
	defer rows.Close()

	var results []internal.SavedSub
	for rows.Next() {
		var e internal.SavedSub
		if err := rows.Scan(&e.ID, &e.Result.OriginalText, &e.Result.TranslatedText, &e.Result.DetectedSourceLanguage, &e.Platform, &e.SavedAt); err != nil {
			return nil, err
		}
		results = append(results, e)
	}
	return results, rows.Err()
}

// Delete removes one entry. Deleting an unknown ID is an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM saved_subs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("saved subtitle not found: %s", id)
	}
	return nil
}

// Clear removes every entry and reports how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM saved_subs`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// HistoryStats summarises the saved subtitles.
type HistoryStats struct {
	TotalEntries int
	ByPlatform   map[string]int
	ByLanguage   map[string]int
}

func (s *Store) Stats(ctx context.Context) (*HistoryStats, error) {
	stats := &HistoryStats{
		ByPlatform: make(map[string]int),
		ByLanguage: make(map[string]int),
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM saved_subs`).Scan(&stats.TotalEntries); err != nil {
		return nil, err
	}
	if err := s.countBy(ctx, "platform", stats.ByPlatform); err != nil {
		return nil, err
	}
	if err := s.countBy(ctx, "detected_source_language", stats.ByLanguage); err != nil {
		return nil, err
	}
	return stats, nil
}

// countBy groups on a fixed column name; column is never user input.
func (s *Store) countBy(ctx context.Context, column string, into map[string]int) error {
	rows, err := s.db.QueryContext(ctx, `SELECT `+column+`, COUNT(*) FROM saved_subs GROUP BY `+column)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return err
		}
		into[key] = n
	}
	return rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}

// normalizeText trims whitespace and applies Unicode NFC normalization
// for consistent lookup key comparison.
func normalizeText(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}
