package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"repurpose-srv/internal/media"
	"repurpose-srv/internal/model"
	pkgMinio "repurpose-srv/pkg/minio"
)

const presignTTL = 24 * time.Hour

// fetchHeaders mimic a browser so Instagram's CDN serves the thumbnail.
var fetchHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "image/avif,image/webp,image/apng,image/svg+xml,image/*,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
	"Referer":         "https://www.instagram.com/",
}

// ProxyImage serves a thumbnail through object storage. The first request for
// a URL downloads it from the CDN; every later request presigns the cached
// object without touching the CDN again.
func (uc *implUseCase) ProxyImage(ctx context.Context, sc model.Scope, input media.ProxyImageInput) (media.ProxyImageOutput, error) {
	if strings.TrimSpace(input.URL) == "" {
		return media.ProxyImageOutput{}, media.ErrURLRequired
	}

	objectName := objectNameFor(input.URL)

	exists, err := uc.minio.FileExists(ctx, uc.bucket, objectName)
	if err != nil {
		uc.l.Warnf(ctx, "media.usecase.ProxyImage: FileExists check failed: %v", err)
	}
	if !exists {
		if err := uc.cacheImage(ctx, input.URL, objectName); err != nil {
			return media.ProxyImageOutput{}, err
		}
	}

	redirectURL, err := uc.minio.GetPresignedDownloadURL(ctx, uc.bucket, objectName, presignTTL)
	if err != nil {
		uc.l.Errorf(ctx, "media.usecase.ProxyImage: GetPresignedDownloadURL failed: %v", err)
		return media.ProxyImageOutput{}, media.ErrStoreFailed
	}

	return media.ProxyImageOutput{RedirectURL: redirectURL}, nil
}

// cacheImage downloads the CDN image and uploads it to the bucket.
func (uc *implUseCase) cacheImage(ctx context.Context, url, objectName string) error {
	stream, err := uc.httpClient.GetStream(ctx, url, fetchHeaders)
	if err != nil {
		uc.l.Errorf(ctx, "media.usecase.cacheImage: GetStream failed: %v", err)
		return media.ErrFetchFailed
	}
	defer stream.Body.Close()

	if stream.StatusCode < 200 || stream.StatusCode >= 300 {
		uc.l.Errorf(ctx, "media.usecase.cacheImage: CDN answered %d for %s", stream.StatusCode, url)
		return media.ErrFetchFailed
	}

	contentType := stream.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	if err := uc.minio.EnsureBucket(ctx, uc.bucket); err != nil {
		uc.l.Errorf(ctx, "media.usecase.cacheImage: EnsureBucket failed: %v", err)
		return media.ErrStoreFailed
	}

	if _, err := uc.minio.UploadFile(ctx, &pkgMinio.UploadRequest{
		BucketName:   uc.bucket,
		ObjectName:   objectName,
		OriginalName: objectName,
		Reader:       stream.Body,
		Size:         stream.ContentLength,
		ContentType:  contentType,
		Metadata:     map[string]string{"source-url": url},
	}); err != nil {
		uc.l.Errorf(ctx, "media.usecase.cacheImage: UploadFile failed: %v", err)
		return media.ErrStoreFailed
	}

	return nil
}

// objectNameFor derives a stable object name from the source URL.
func objectNameFor(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "thumbnails/" + hex.EncodeToString(sum[:])
}
