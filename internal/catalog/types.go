package catalog

import "time"

// ReloadState describes the most recent reload.
type ReloadState string

const (
	ReloadNever     ReloadState = "never"
	ReloadRunning   ReloadState = "running"
	ReloadSucceeded ReloadState = "succeeded"
	ReloadFailed    ReloadState = "failed"
)

// TaskInput is one task of an imported project.
type TaskInput struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ProjectInput is one imported project with its tasks.
type ProjectInput struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Tasks       []TaskInput `json:"tasks"`
}

// ImportInput is the input for Import.
type ImportInput struct {
	Projects []ProjectInput `json:"projects"`
}

// ImportOutput is the result of Import.
type ImportOutput struct {
	Projects int
	Tasks    int
}

// ReloadInput is the input for Reload.
type ReloadInput struct {
	Recreate bool // drop and recreate the collection first
}

// ReloadOutput is the result of Reload.
type ReloadOutput struct {
	Indexed int
	Skipped int // tasks with empty text
}

// LastReload records the outcome of the most recent reload.
type LastReload struct {
	State      ReloadState
	StartedAt  time.Time
	FinishedAt time.Time
	Indexed    int
	Skipped    int
	Error      string
}

// VectorStoreStatus reports the Qdrant collection.
type VectorStoreStatus struct {
	Collection  string
	PointsCount int64
	Status      string
	Available   bool
}

// CatalogCounts reports the sizes of the sqlite catalog.
type CatalogCounts struct {
	Projects int
	Tasks    int
}

// StatusOutput is the result of Status.
type StatusOutput struct {
	Status           string // "ok" or "degraded"
	VectorStore      VectorStoreStatus
	Catalog          CatalogCounts
	EmbeddingModel   string
	GenerationModels []string
	LastReload       LastReload
}
