package repository

import (
	"context"

	"repurpose-srv/internal/model"
	"repurpose-srv/pkg/paginator"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateContent(ctx context.Context, opts CreateContentOptions) (model.RepurposedContent, error)
	ListContents(ctx context.Context, opts ListContentsOptions) ([]model.RepurposedContent, paginator.Paginator, error)
}
