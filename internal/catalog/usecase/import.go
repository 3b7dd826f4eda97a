package usecase

import (
	"context"
	"fmt"
	"strings"

	"task-suggestion/internal/catalog"
	"task-suggestion/internal/model"
)

// Import validates and upserts projects with their tasks into the catalog.
// The vector index is untouched until the next reload.
func (uc *implUseCase) Import(ctx context.Context, input catalog.ImportInput) (catalog.ImportOutput, error) {
	if len(input.Projects) == 0 {
		return catalog.ImportOutput{}, catalog.ErrEmptyImport
	}

	projects := make([]model.Project, 0, len(input.Projects))
	var tasks []model.Task
	for _, p := range input.Projects {
		id, name := strings.TrimSpace(p.ID), strings.TrimSpace(p.Name)
		if id == "" || name == "" {
			return catalog.ImportOutput{}, fmt.Errorf("%w: %q", catalog.ErrInvalidProject, p.ID)
		}
		projects = append(projects, model.Project{ID: id, Name: name, Description: strings.TrimSpace(p.Description)})

		for _, t := range p.Tasks {
			taskID := strings.TrimSpace(t.ID)
			if taskID == "" {
				return catalog.ImportOutput{}, fmt.Errorf("%w: project %q", catalog.ErrInvalidTask, id)
			}
			tasks = append(tasks, model.Task{ID: taskID, ProjectID: id, Text: strings.TrimSpace(t.Text)})
		}
	}

	if err := uc.repo.ImportProjects(ctx, projects, tasks); err != nil {
		uc.l.Errorf(ctx, "catalog.usecase.Import: %v", err)
		return catalog.ImportOutput{}, err
	}

	uc.l.Infof(ctx, "catalog.usecase.Import: imported %d projects, %d tasks", len(projects), len(tasks))
	return catalog.ImportOutput{Projects: len(projects), Tasks: len(tasks)}, nil
}
