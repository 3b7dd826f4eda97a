package model

// Project is a historical project from the catalog.
type Project struct {
	ID          string
	Name        string
	Description string
}

// Task is a historical task belonging to a project.
type Task struct {
	ID        string
	ProjectID string
	Text      string
}

// CatalogTask is a task joined with its project, the unit that gets indexed.
type CatalogTask struct {
	TaskID             string
	TaskText           string
	ProjectID          string
	ProjectName        string
	ProjectDescription string
}

// RetrievedTask is a search hit. RawScore comes from the search engine,
// NormalizedScore is filled by the retrieval filter.
type RetrievedTask struct {
	TaskID             string
	TaskText           string
	ProjectID          string
	ProjectName        string
	ProjectDescription string
	RawScore           float64
	NormalizedScore    float64
}

// ProjectTask is a task listed inside a ProjectContext.
type ProjectTask struct {
	TaskID   string
	TaskText string
}

// ProjectContext groups retrieved tasks by originating project.
type ProjectContext struct {
	ProjectID           string
	ProjectName         string
	ProjectDescription  string
	Tasks               []ProjectTask
	RepresentativeScore float64
}
