package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/abarbosa/redator-server/internal/logger"
	"github.com/abarbosa/redator-server/internal/model"
)

// Media stores uploaded images referenced by articles and user profiles.
type Media struct {
	storage model.Storage
	logger  *logger.Logger
}

func NewMedia(storage model.Storage, logger *logger.Logger) *Media {
	return &Media{
		storage: storage,
		logger:  logger,
	}
}

// Upload stores the image under a fresh opaque key and returns the key.
func (s *Media) Upload(ctx context.Context, contentType string, reader io.Reader) (string, error) {
	key := uuid.NewString()

	if err := s.storage.Upload(ctx, key, contentType, reader); err != nil {
		return "", fmt.Errorf("failed to upload media: %w", err)
	}

	s.logger.Info("Media service: object uploaded", "key", key, "content_type", contentType)

	return key, nil
}

// Download streams the stored image back together with its content type.
func (s *Media) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check media existence: %w", err)
	}
	if !exists {
		return nil, "", model.ErrNotFound
	}

	reader, contentType, err := s.storage.Download(ctx, key)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download media: %w", err)
	}

	return reader, contentType, nil
}
