package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/render"

	"github.com/abarbosa/redator-server/internal/logger"
)

// Pinger reports storage liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health answers liveness probes.
type Health struct {
	db     Pinger
	logger *logger.Logger
}

// NewHealth creates a new Health handler.
func NewHealth(db Pinger, logger *logger.Logger) *Health {
	return &Health{db: db, logger: logger}
}

// Check handles GET /healthz.
func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		h.logger.Error("Health handler: database ping failed", "error", err.Error())
		if err := render.Render(w, r, errInternal(err)); err != nil {
			h.logger.Error("Health handler: failed to render error", "error", err.Error())
		}
		return
	}

	render.JSON(w, r, map[string]any{"ok": true})
}
