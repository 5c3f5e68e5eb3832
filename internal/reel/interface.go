package reel

import (
	"context"

	"repurpose-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	GetTopReels(ctx context.Context, sc model.Scope, input GetTopReelsInput) (GetTopReelsOutput, error)
	GetReelMetadata(ctx context.Context, sc model.Scope, input GetReelMetadataInput) (model.Reel, error)
	SaveReel(ctx context.Context, sc model.Scope, input SaveReelInput) (model.SavedReel, error)
	ListSavedReels(ctx context.Context, sc model.Scope, input ListSavedReelsInput) (ListSavedReelsOutput, error)
	DeleteSavedReel(ctx context.Context, sc model.Scope, input DeleteSavedReelInput) error
}
