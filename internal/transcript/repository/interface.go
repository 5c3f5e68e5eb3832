package repository

import (
	"context"

	"repurpose-srv/internal/model"
)

//go:generate mockery --name RedisRepository
type RedisRepository interface {
	SetTranscript(ctx context.Context, opts SetTranscriptOptions) error
	GetTranscript(ctx context.Context, url string) (model.Transcript, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateTranscript(ctx context.Context, opts CreateTranscriptOptions) (model.StoredTranscript, error)
	ListTranscripts(ctx context.Context, opts ListTranscriptsOptions) ([]model.StoredTranscript, error)
}
