// Package storage keeps uploaded photos in an object store reached through
// gocloud.dev/blob. The bucket URL scheme picks the backend: s3:// in
// production, file:// for local runs and mem:// for tests.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"time"

	"blog/config"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/lifecycle"
	"blog/internal/domain/service"
	"blog/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const defaultSignedURLTTL = 15 * time.Minute

// Params defines the dependencies for the blob storage.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket     *blob.Bucket
	prefix     string
	publicBase string
	signedTTL  time.Duration
}

// New opens the configured bucket and closes it when the app stops.
func New(params Params) (service.PhotoStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("storage url must be configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", redactBucketURL(cfg.URL))
	}

	storage := newBlobStorage(bucket, cfg)

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			params.Logger.Info("Photo storage ready", slog.String("bucket", redactBucketURL(cfg.URL)))

			return nil
		},
		OnStop: func(context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}

func newBlobStorage(bucket *blob.Bucket, cfg *config.StorageConfig) *blobStorage {
	s := &blobStorage{
		bucket:    bucket,
		signedTTL: defaultSignedURLTTL,
	}
	if cfg != nil {
		s.prefix = strings.Trim(cfg.Prefix, "/")
		s.publicBase = strings.TrimRight(cfg.PublicBaseURL, "/")
		if cfg.SignedURLTTL > 0 {
			s.signedTTL = cfg.SignedURLTTL
		}
	}

	return s
}

// Upload streams r into the bucket. A failed copy cancels the writer so no
// partial object becomes visible.
func (s *blobStorage) Upload(ctx context.Context, key string, r io.Reader, contentType string) (int64, error) {
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, s.objectKey(key), &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return 0, errors.Wrap(domainerrors.ErrStorageUnavailable, err.Error())
	}

	n, copyErr := io.Copy(w, r)
	if copyErr != nil {
		cancel()
		_ = w.Close()

		return 0, errors.Wrap(domainerrors.ErrStorageUnavailable, copyErr.Error())
	}

	if err := w.Close(); err != nil {
		return 0, errors.Wrap(domainerrors.ErrStorageUnavailable, err.Error())
	}

	return n, nil
}

// URL returns the public link when a public base is configured, otherwise a
// signed GET URL valid for ttl.
func (s *blobStorage) URL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	objectKey := s.objectKey(key)
	if s.publicBase != "" {
		return s.publicBase + "/" + objectKey, nil
	}

	if ttl <= 0 {
		ttl = s.signedTTL
	}

	signed, err := s.bucket.SignedURL(ctx, objectKey, &blob.SignedURLOptions{Expiry: ttl})
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrStorageUnavailable, err.Error())
	}

	return signed, nil
}

// Delete removes the object at key and ignores objects that are already gone.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, s.objectKey(key)); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(domainerrors.ErrStorageUnavailable, err.Error())
	}

	return nil
}

func (s *blobStorage) Close() error {
	return s.bucket.Close()
}

func (s *blobStorage) objectKey(key string) string {
	key = strings.TrimLeft(key, "/")
	if s.prefix == "" {
		return key
	}

	return path.Join(s.prefix, key)
}

// redactBucketURL drops the query string, which may carry credentials.
func redactBucketURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "invalid-url"
	}
	u.RawQuery = ""
	u.User = nil

	return u.String()
}
