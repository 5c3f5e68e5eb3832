package repurpose

import (
	"context"

	"repurpose-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate rewrites a reel's content for another platform/tone and
	// persists the result for the caller.
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Translate(ctx context.Context, sc model.Scope, input TranslateInput) (TranslateOutput, error)
}
