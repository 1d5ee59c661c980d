// Package storage persists uploaded images through a gocloud.dev blob
// bucket. Local disk is the default backend; the bucket URL scheme can
// point at any supported provider.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"

	"github.com/MatheusHenriquePrates/rankfome-backend/config"
	domainerrors "github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/errors"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/service"
)

type blobImageStorage struct {
	bucket  *blob.Bucket
	maxSize int64
	logger  *slog.Logger
}

// StorageParams holds dependencies for ImageStorage, injected by Fx.
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobImageStorage opens a fileblob bucket rooted at the configured
// upload directory, creating the directory when missing.
func NewBlobImageStorage(params StorageParams) (service.ImageStorage, error) {
	cfg := params.Config.Upload

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create upload directory")
	}

	bucket, err := fileblob.OpenBucket(cfg.Dir, nil)
	if err != nil {
		return nil, errors.Wrap(err, "open upload bucket")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStorage{
		bucket:  bucket,
		maxSize: cfg.MaxSizeBytes,
		logger:  params.Logger,
	}, nil
}

// Save streams the upload into the bucket under a fresh key derived from
// the original extension. Returns the stored key for later retrieval.
func (s *blobImageStorage) Save(ctx context.Context, filename string, contentType string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.NewString(), ext)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "open blob writer")
	}

	written, err := io.Copy(writer, io.LimitReader(r, s.maxSize+1))
	if err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "write upload")
	}
	if written > s.maxSize {
		_ = writer.Close()
		_ = s.bucket.Delete(ctx, key)

		return "", domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("upload exceeds maximum size of %d bytes", s.maxSize))
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "close blob writer")
	}

	s.logger.Info("Stored uploaded image",
		slog.String("key", key),
		slog.Int64("bytes", written),
	)

	return key, nil
}
