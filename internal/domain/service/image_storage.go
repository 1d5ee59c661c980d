package service

import (
	"context"
	"io"
)

// ImageStorage persists uploaded images and returns the stored path.
// The backing store is a blob bucket; callers never see filesystem details.
type ImageStorage interface {
	// Save writes the image under a unique name derived from filename's
	// extension and returns the stored path.
	Save(ctx context.Context, filename string, contentType string, r io.Reader) (string, error)
}
