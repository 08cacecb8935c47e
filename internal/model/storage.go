package model

import (
	"context"
	"io"
)

// Storage holds uploaded media (article images, profile pictures) keyed by
// an opaque object key.
type Storage interface {
	Upload(ctx context.Context, key, contentType string, reader io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
