package repository

import (
	"context"

	"repurpose-srv/internal/model"
	"repurpose-srv/pkg/paginator"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateSavedReel(ctx context.Context, opts CreateSavedReelOptions) (model.SavedReel, error)
	ListSavedReels(ctx context.Context, opts ListSavedReelsOptions) ([]model.SavedReel, paginator.Paginator, error)
	DeleteSavedReel(ctx context.Context, opts DeleteSavedReelOptions) error
}
