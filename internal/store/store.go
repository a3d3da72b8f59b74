// Package store handles SQLite persistence of user snippets.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/typesnip/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for user snippets.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens the snippet database at path, creating parent directories and
// the schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)
	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS snippets (
		id INTEGER PRIMARY KEY,
		category TEXT NOT NULL,
		body TEXT NOT NULL,
		added_at TEXT NOT NULL,
		UNIQUE (category, body)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_snippets_category ON snippets(category);`,
}

func (s *Store) migrate() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		// Best-effort rows close.
		_ = err
	}
}

// AddSnippets stores bodies under category in one transaction. Bodies
// already present in the category are skipped. It returns the number added.
func (s *Store) AddSnippets(ctx context.Context, category model.Category, bodies []string) (added int, err error) {
	if len(bodies) == 0 {
		return 0, nil
	}
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

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO snippets (category, body, added_at) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	addedAt := s.now().UTC().Format(time.RFC3339Nano)
	for _, body := range bodies {
		res, execErr := stmt.ExecContext(ctx, string(category), body, addedAt)
		if execErr != nil {
			return 0, execErr
		}
		n, raErr := res.RowsAffected()
		if raErr != nil {
			return 0, raErr
		}
		added += int(n)
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// ListCategories returns user snippet counts per category ordered by name.
func (s *Store) ListCategories(ctx context.Context) ([]model.CategoryCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, COUNT(*) FROM snippets GROUP BY category ORDER BY category ASC`)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var result []model.CategoryCount
	for rows.Next() {
		var (
			name  string
			count int
		)
		if err := rows.Scan(&name, &count); err != nil {
			return nil, err
		}
		result = append(result, model.CategoryCount{Category: model.Category(name), User: count})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListSnippets returns the user snippets of a category in insertion order.
func (s *Store) ListSnippets(ctx context.Context, category model.Category) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT body FROM snippets WHERE category = ? ORDER BY id ASC`, string(category))
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var result []string
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		result = append(result, body)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteCategory removes all user snippets of a category.
func (s *Store) DeleteCategory(ctx context.Context, category model.Category) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM snippets WHERE category = ?`, string(category))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
