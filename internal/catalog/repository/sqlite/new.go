// Package sqlite stores the project catalog in SQLite with an FTS5 index
// over task text and project fields.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"task-suggestion/internal/catalog/repository"
	pkgLog "task-suggestion/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New opens (creating if needed) the catalog database at path.
// ":memory:" opens a private in-memory database.
func New(ctx context.Context, path string, l pkgLog.Logger) (repository.CatalogRepository, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("catalog: create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open database: %w", err)
	}
	// One connection keeps ":memory:" databases shared and serialises writers.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("catalog: pragma %q: %w", p, err)
		}
	}

	r := &implRepository{db: db, l: l}
	if err := r.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: migration: %w", err)
	}
	return r, nil
}

func (r *implRepository) Close() error {
	return r.db.Close()
}

func (r *implRepository) migrate(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS projects (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS tasks (
			id         TEXT PRIMARY KEY,
			project_id TEXT NOT NULL,
			text       TEXT NOT NULL,
			FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id);

		CREATE VIRTUAL TABLE IF NOT EXISTS tasks_fts USING fts5(
			task_id UNINDEXED,
			task_text,
			project_name,
			project_description
		);
	`
	_, err := r.db.ExecContext(ctx, schema)
	return err
}
