package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"task-suggestion/internal/model"
)

// ImportProjects upserts projects and tasks in one transaction and refreshes
// the FTS rows of every touched project.
func (r *implRepository) ImportProjects(ctx context.Context, projects []model.Project, tasks []model.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	touched := make(map[string]struct{}, len(projects))
	for _, p := range projects {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO projects (id, name, description) VALUES (?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name, description = excluded.description`,
			p.ID, p.Name, p.Description,
		); err != nil {
			return fmt.Errorf("upsert project %s: %w", p.ID, err)
		}
		touched[p.ID] = struct{}{}
	}

	for _, t := range tasks {
		// A task moving between projects leaves a stale FTS row behind.
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks_fts WHERE task_id = ?`, t.ID); err != nil {
			return fmt.Errorf("clear fts for task %s: %w", t.ID, err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO tasks (id, project_id, text) VALUES (?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET project_id = excluded.project_id, text = excluded.text`,
			t.ID, t.ProjectID, t.Text,
		); err != nil {
			return fmt.Errorf("upsert task %s: %w", t.ID, err)
		}
		touched[t.ProjectID] = struct{}{}
	}

	for id := range touched {
		if err := refreshFTS(ctx, tx, id); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	r.l.Debugf(ctx, "catalog.repository.sqlite.ImportProjects: %d projects, %d tasks", len(projects), len(tasks))
	return nil
}

func refreshFTS(ctx context.Context, tx *sql.Tx, projectID string) error {
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM tasks_fts WHERE task_id IN (SELECT id FROM tasks WHERE project_id = ?)`,
		projectID,
	); err != nil {
		return fmt.Errorf("clear fts for project %s: %w", projectID, err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO tasks_fts (task_id, task_text, project_name, project_description)
		SELECT t.id, t.text, p.name, p.description
		FROM tasks t JOIN projects p ON p.id = t.project_id
		WHERE p.id = ?`,
		projectID,
	); err != nil {
		return fmt.Errorf("index project %s: %w", projectID, err)
	}
	return nil
}

// ListTasks returns every task joined with its project, ordered by project then task id.
func (r *implRepository) ListTasks(ctx context.Context) ([]model.CatalogTask, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.text, p.id, p.name, p.description
		FROM tasks t JOIN projects p ON p.id = t.project_id
		ORDER BY p.id, t.id`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.CatalogTask
	for rows.Next() {
		var t model.CatalogTask
		if err := rows.Scan(&t.TaskID, &t.TaskText, &t.ProjectID, &t.ProjectName, &t.ProjectDescription); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Counts returns the number of projects and tasks.
func (r *implRepository) Counts(ctx context.Context) (int, int, error) {
	var projects, tasks int
	err := r.db.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM projects), (SELECT COUNT(*) FROM tasks)`,
	).Scan(&projects, &tasks)
	if err != nil {
		return 0, 0, fmt.Errorf("count catalog: %w", err)
	}
	return projects, tasks, nil
}
