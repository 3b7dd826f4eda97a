package catalog

import "context"

// UseCase manages the historical task catalog and its vector index.
type UseCase interface {
	Import(ctx context.Context, input ImportInput) (ImportOutput, error)
	Reload(ctx context.Context, input ReloadInput) (ReloadOutput, error)
	StartReload(ctx context.Context, input ReloadInput) error
	Status(ctx context.Context) (StatusOutput, error)
}
