package http

import (
	"task-suggestion/internal/catalog"
	"task-suggestion/pkg/response"
)

// --- Request DTOs ---

type reloadReq struct {
	Recreate bool `json:"recreate"`
}

func (r reloadReq) toInput() catalog.ReloadInput {
	return catalog.ReloadInput{Recreate: r.Recreate}
}

// --- Response DTOs ---

type reloadResp struct {
	Message  string `json:"message"`
	Recreate bool   `json:"recreate"`
}

type vectorStoreResp struct {
	Collection  string `json:"collection"`
	PointsCount int64  `json:"points_count"`
	Status      string `json:"status,omitempty"`
	Available   bool   `json:"available"`
}

type catalogResp struct {
	Projects int `json:"projects"`
	Tasks    int `json:"tasks"`
}

type lastReloadResp struct {
	State      string            `json:"state"`
	StartedAt  response.DateTime `json:"started_at"`
	FinishedAt response.DateTime `json:"finished_at"`
	Indexed    int               `json:"indexed"`
	Skipped    int               `json:"skipped"`
	Error      string            `json:"error,omitempty"`
}

type statusResp struct {
	Status           string          `json:"status"`
	VectorStore      vectorStoreResp `json:"vector_store"`
	Catalog          catalogResp     `json:"catalog"`
	EmbeddingModel   string          `json:"embedding_model"`
	GenerationModels []string        `json:"generation_models"`
	LastReload       lastReloadResp  `json:"last_reload"`
}

func (h *handler) newStatusResp(out catalog.StatusOutput) statusResp {
	models := out.GenerationModels
	if models == nil {
		models = []string{}
	}
	return statusResp{
		Status: out.Status,
		VectorStore: vectorStoreResp{
			Collection:  out.VectorStore.Collection,
			PointsCount: out.VectorStore.PointsCount,
			Status:      out.VectorStore.Status,
			Available:   out.VectorStore.Available,
		},
		Catalog: catalogResp{
			Projects: out.Catalog.Projects,
			Tasks:    out.Catalog.Tasks,
		},
		EmbeddingModel:   out.EmbeddingModel,
		GenerationModels: models,
		LastReload: lastReloadResp{
			State:      string(out.LastReload.State),
			StartedAt:  response.DateTime(out.LastReload.StartedAt),
			FinishedAt: response.DateTime(out.LastReload.FinishedAt),
			Indexed:    out.LastReload.Indexed,
			Skipped:    out.LastReload.Skipped,
			Error:      out.LastReload.Error,
		},
	}
}
