// Package store handles the SQLite phrase bank.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	"github.com/verte-zerg/typesprint/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for phrases.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS phrases (
			id INTEGER PRIMARY KEY,
			lang TEXT NOT NULL,
			text TEXT NOT NULL,
			UNIQUE (lang, text)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_phrases_lang ON phrases(lang);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ImportPhrases stores phrases for lang, skipping ones already present.
// It returns the number of phrases inserted.
func (s *Store) ImportPhrases(ctx context.Context, lang string, phrases []string) (n int, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO phrases (lang, text) VALUES (?, ?)`)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	lang = strings.ToLower(lang)
	for _, p := range phrases {
		res, err := stmt.ExecContext(ctx, lang, p)
		if err != nil {
			return 0, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		n += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

// ListPhrases returns the phrases stored for lang in insertion order.
func (s *Store) ListPhrases(ctx context.Context, lang string) ([]model.Phrase, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, lang, text FROM phrases WHERE lang = ? ORDER BY id ASC`, strings.ToLower(lang))
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.Phrase
	for rows.Next() {
		var p model.Phrase
		if err := rows.Scan(&p.ID, &p.Lang, &p.Text); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListLangs returns the languages present in the bank with phrase counts.
func (s *Store) ListLangs(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT lang, COUNT(*) FROM phrases GROUP BY lang ORDER BY lang`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	result := map[string]int{}
	for rows.Next() {
		var lang string
		var count int
		if err := rows.Scan(&lang, &count); err != nil {
			return nil, err
		}
		result[lang] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CountPhrases returns the number of phrases stored for lang.
func (s *Store) CountPhrases(ctx context.Context, lang string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM phrases WHERE lang = ?`, strings.ToLower(lang)).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Texts extracts phrase texts.
func Texts(phrases []model.Phrase) []string {
	out := make([]string, len(phrases))
	for i, p := range phrases {
		out[i] = p.Text
	}
	return out
}
