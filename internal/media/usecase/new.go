package usecase

import (
	"repurpose-srv/internal/media"
	pkgHTTP "repurpose-srv/pkg/http"
	"repurpose-srv/pkg/log"
	"repurpose-srv/pkg/minio"
)

type implUseCase struct {
	l          log.Logger
	httpClient pkgHTTP.IClient
	minio      minio.MinIO
	bucket     string
}

var _ media.UseCase = &implUseCase{}

// New - Factory
func New(l log.Logger, httpClient pkgHTTP.IClient, minioClient minio.MinIO, bucket string) media.UseCase {
	return &implUseCase{
		l:          l,
		httpClient: httpClient,
		minio:      minioClient,
		bucket:     bucket,
	}
}
