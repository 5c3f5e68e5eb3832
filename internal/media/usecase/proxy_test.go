package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"repurpose-srv/internal/media"
	"repurpose-srv/internal/model"
	pkgHTTP "repurpose-srv/pkg/http"
	pkgMinio "repurpose-srv/pkg/minio"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Info(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warn(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Error(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Fatal(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...interface{}) {}

type stubHTTPClient struct {
	stream      *pkgHTTP.StreamResponse
	err         error
	calls       int
	lastHeaders map[string]string
}

func (s *stubHTTPClient) Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	return nil, 0, errors.New("not implemented")
}

func (s *stubHTTPClient) Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error) {
	return nil, 0, errors.New("not implemented")
}

func (s *stubHTTPClient) GetStream(ctx context.Context, url string, headers map[string]string) (*pkgHTTP.StreamResponse, error) {
	s.calls++
	s.lastHeaders = headers
	return s.stream, s.err
}

type stubMinIO struct {
	objects    map[string]bool
	uploads    []pkgMinio.UploadRequest
	presignErr error
}

func (s *stubMinIO) Connect(ctx context.Context) error                          { return nil }
func (s *stubMinIO) ConnectWithRetry(ctx context.Context, maxRetries int) error { return nil }
func (s *stubMinIO) HealthCheck(ctx context.Context) error                      { return nil }
func (s *stubMinIO) Close() error                                               { return nil }
func (s *stubMinIO) EnsureBucket(ctx context.Context, bucketName string) error  { return nil }

func (s *stubMinIO) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return true, nil
}

func (s *stubMinIO) UploadFile(ctx context.Context, req *pkgMinio.UploadRequest) (*pkgMinio.FileInfo, error) {
	if s.objects == nil {
		s.objects = map[string]bool{}
	}
	s.objects[req.ObjectName] = true
	s.uploads = append(s.uploads, *req)
	return &pkgMinio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName}, nil
}

func (s *stubMinIO) StreamFile(ctx context.Context, bucketName, objectName string) (io.ReadCloser, *pkgMinio.DownloadHeaders, error) {
	return nil, nil, errors.New("not implemented")
}

func (s *stubMinIO) GetPresignedDownloadURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	if s.presignErr != nil {
		return "", s.presignErr
	}
	return "https://minio.local/" + bucketName + "/" + objectName + "?signed", nil
}

func (s *stubMinIO) GetFileInfo(ctx context.Context, bucketName, objectName string) (*pkgMinio.FileInfo, error) {
	return nil, errors.New("not implemented")
}

func (s *stubMinIO) DeleteFile(ctx context.Context, bucketName, objectName string) error { return nil }

func (s *stubMinIO) FileExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	return s.objects[objectName], nil
}

func imageStream(body string) *pkgHTTP.StreamResponse {
	return &pkgHTTP.StreamResponse{
		Body:          io.NopCloser(strings.NewReader(body)),
		StatusCode:    200,
		ContentType:   "image/webp",
		ContentLength: int64(len(body)),
	}
}

func TestProxyImage(t *testing.T) {
	const imageURL = "https://cdn.example.com/thumb.jpg"

	t.Run("url required", func(t *testing.T) {
		uc := New(nopLogger{}, &stubHTTPClient{}, &stubMinIO{}, "reel-media")

		_, err := uc.ProxyImage(context.Background(), model.Scope{}, media.ProxyImageInput{URL: "  "})
		if !errors.Is(err, media.ErrURLRequired) {
			t.Errorf("got %v, want ErrURLRequired", err)
		}
	})

	t.Run("first request caches and presigns", func(t *testing.T) {
		client := &stubHTTPClient{stream: imageStream("img-bytes")}
		store := &stubMinIO{}
		uc := New(nopLogger{}, client, store, "reel-media")

		o, err := uc.ProxyImage(context.Background(), model.Scope{}, media.ProxyImageInput{URL: imageURL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(store.uploads) != 1 {
			t.Fatalf("got %d uploads, want 1", len(store.uploads))
		}
		upload := store.uploads[0]
		if upload.BucketName != "reel-media" {
			t.Errorf("got bucket %q, want reel-media", upload.BucketName)
		}
		if !strings.HasPrefix(upload.ObjectName, "thumbnails/") {
			t.Errorf("got object name %q, want thumbnails/ prefix", upload.ObjectName)
		}
		if upload.ContentType != "image/webp" {
			t.Errorf("got content type %q, want image/webp", upload.ContentType)
		}
		if !strings.Contains(o.RedirectURL, upload.ObjectName) {
			t.Errorf("redirect URL %q should point at the cached object", o.RedirectURL)
		}
		if client.lastHeaders["Referer"] != "https://www.instagram.com/" {
			t.Errorf("got Referer %q, want instagram", client.lastHeaders["Referer"])
		}
	})

	t.Run("second request skips the CDN", func(t *testing.T) {
		client := &stubHTTPClient{stream: imageStream("img-bytes")}
		store := &stubMinIO{}
		uc := New(nopLogger{}, client, store, "reel-media")

		if _, err := uc.ProxyImage(context.Background(), model.Scope{}, media.ProxyImageInput{URL: imageURL}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		client.stream = imageStream("img-bytes")
		if _, err := uc.ProxyImage(context.Background(), model.Scope{}, media.ProxyImageInput{URL: imageURL}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if client.calls != 1 {
			t.Errorf("got %d CDN fetches, want 1", client.calls)
		}
		if len(store.uploads) != 1 {
			t.Errorf("got %d uploads, want 1", len(store.uploads))
		}
	})

	t.Run("cdn failure", func(t *testing.T) {
		client := &stubHTTPClient{stream: &pkgHTTP.StreamResponse{
			Body:       io.NopCloser(strings.NewReader("")),
			StatusCode: 403,
		}}
		uc := New(nopLogger{}, client, &stubMinIO{}, "reel-media")

		_, err := uc.ProxyImage(context.Background(), model.Scope{}, media.ProxyImageInput{URL: imageURL})
		if !errors.Is(err, media.ErrFetchFailed) {
			t.Errorf("got %v, want ErrFetchFailed", err)
		}
	})

	t.Run("fetch error", func(t *testing.T) {
		client := &stubHTTPClient{err: errors.New("dns failure")}
		uc := New(nopLogger{}, client, &stubMinIO{}, "reel-media")

		_, err := uc.ProxyImage(context.Background(), model.Scope{}, media.ProxyImageInput{URL: imageURL})
		if !errors.Is(err, media.ErrFetchFailed) {
			t.Errorf("got %v, want ErrFetchFailed", err)
		}
	})

	t.Run("presign failure", func(t *testing.T) {
		client := &stubHTTPClient{stream: imageStream("img-bytes")}
		store := &stubMinIO{presignErr: errors.New("bucket gone")}
		uc := New(nopLogger{}, client, store, "reel-media")

		_, err := uc.ProxyImage(context.Background(), model.Scope{}, media.ProxyImageInput{URL: imageURL})
		if !errors.Is(err, media.ErrStoreFailed) {
			t.Errorf("got %v, want ErrStoreFailed", err)
		}
	})
}
