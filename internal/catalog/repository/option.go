package repository

import "task-suggestion/internal/model"

// IndexedTask is a catalog task with its document embedding.
type IndexedTask struct {
	Task   model.CatalogTask
	Vector []float32
}

// IndexInfo is the collection state reported by the index.
type IndexInfo struct {
	Status      string
	PointsCount int64
}
