package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/abarbosa/redator-server/internal/logger"
	"github.com/abarbosa/redator-server/internal/model"
)

// MediaService stores and serves uploaded images.
type MediaService interface {
	Upload(ctx context.Context, contentType string, reader io.Reader) (string, error)
	Download(ctx context.Context, key string) (io.ReadCloser, string, error)
}

// Media handles HTTP endpoints for image upload and retrieval.
type Media struct {
	mediaService MediaService
	logger       *logger.Logger
}

// NewMedia creates a new Media handler.
func NewMedia(mediaService MediaService, logger *logger.Logger) *Media {
	return &Media{
		mediaService: mediaService,
		logger:       logger,
	}
}

// Upload handles POST /uploads. The request body is the raw image; the
// response carries the key to reference from article or profile fields.
func (h *Media) Upload(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key, err := h.mediaService.Upload(r.Context(), contentType, r.Body)
	if err != nil {
		h.logger.Error("Media handler: upload failed", "error", err.Error())
		if err := render.Render(w, r, errInternal(err)); err != nil {
			h.logger.Error("Media handler: failed to render error", "error", err.Error())
		}
		return
	}

	render.JSON(w, r, map[string]string{
		"key": key,
		"url": "/uploads/" + key,
	})
}

// Download handles GET /uploads/{key} and streams the stored image.
func (h *Media) Download(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	reader, contentType, err := h.mediaService.Download(r.Context(), key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			if err := render.Render(w, r, errNotFound("media not found")); err != nil {
				h.logger.Error("Media handler: failed to render error", "error", err.Error())
			}
			return
		}
		h.logger.Error("Media handler: download failed", "key", key, "error", err.Error())
		if err := render.Render(w, r, errInternal(err)); err != nil {
			h.logger.Error("Media handler: failed to render error", "error", err.Error())
		}
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", contentType)
	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Error("Media handler: failed to stream media", "key", key, "error", err.Error())
	}
}
