package retrieval

import "task-suggestion/internal/model"

// GroupByProject folds hits into ProjectContexts in first-seen order.
// The representative score of a project is its best normalised task score.
// maxProjects <= 0 means no cap.
func GroupByProject(results []model.RetrievedTask, maxProjects int) []model.ProjectContext {
	index := make(map[string]int)
	var projects []model.ProjectContext

	for _, r := range results {
		i, ok := index[r.ProjectID]
		if !ok {
			if maxProjects > 0 && len(projects) == maxProjects {
				continue
			}
			i = len(projects)
			index[r.ProjectID] = i
			projects = append(projects, model.ProjectContext{
				ProjectID:           r.ProjectID,
				ProjectName:         r.ProjectName,
				ProjectDescription:  r.ProjectDescription,
				RepresentativeScore: r.NormalizedScore,
			})
		}

		p := &projects[i]
		p.Tasks = append(p.Tasks, model.ProjectTask{TaskID: r.TaskID, TaskText: r.TaskText})
		if r.NormalizedScore > p.RepresentativeScore {
			p.RepresentativeScore = r.NormalizedScore
		}
	}

	return projects
}

// Flatten lists the tasks of projects back as hits, keeping the normalised
// score of the original hit.
func Flatten(projects []model.ProjectContext, hits []model.RetrievedTask) []model.RetrievedTask {
	kept := make(map[string]struct{})
	for _, p := range projects {
		for _, t := range p.Tasks {
			kept[t.TaskID] = struct{}{}
		}
	}

	out := make([]model.RetrievedTask, 0, len(kept))
	for _, h := range hits {
		if _, ok := kept[h.TaskID]; ok {
			out = append(out, h)
		}
	}
	return out
}
