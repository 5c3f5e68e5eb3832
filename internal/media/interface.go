package media

import (
	"context"

	"repurpose-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ProxyImage caches a CDN thumbnail in object storage and returns a
	// presigned URL to the cached copy.
	ProxyImage(ctx context.Context, sc model.Scope, input ProxyImageInput) (ProxyImageOutput, error)
}
