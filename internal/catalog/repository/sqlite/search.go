package sqlite

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"task-suggestion/internal/model"
)

var ftsTokenRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// SearchLexical ranks tasks by BM25 with task text weighted 3, project name 2
// and project description 1. Scores are negated so higher is better.
func (r *implRepository) SearchLexical(ctx context.Context, query string, limit int) ([]model.RetrievedTask, error) {
	match := sanitizeFTS(query)
	if match == "" || limit <= 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.text, p.id, p.name, p.description,
		       -bm25(tasks_fts, 0.0, 3.0, 2.0, 1.0) AS score
		FROM tasks_fts
		JOIN tasks t ON t.id = tasks_fts.task_id
		JOIN projects p ON p.id = t.project_id
		WHERE tasks_fts MATCH ?
		ORDER BY score DESC
		LIMIT ?`,
		match, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("lexical search: %w", err)
	}
	defer rows.Close()

	var hits []model.RetrievedTask
	for rows.Next() {
		var h model.RetrievedTask
		if err := rows.Scan(&h.TaskID, &h.TaskText, &h.ProjectID, &h.ProjectName, &h.ProjectDescription, &h.RawScore); err != nil {
			return nil, fmt.Errorf("scan hit: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// sanitizeFTS turns free text into an OR of quoted tokens so FTS5 operators
// in user input are never interpreted.
func sanitizeFTS(query string) string {
	tokens := ftsTokenRe.FindAllString(strings.ToLower(query), -1)
	seen := make(map[string]struct{}, len(tokens))
	quoted := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		quoted = append(quoted, `"`+t+`"`)
	}
	return strings.Join(quoted, " OR ")
}
