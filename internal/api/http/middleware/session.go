package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/abarbosa/redator-server/internal/logger"
	"github.com/abarbosa/redator-server/internal/model"
)

// SessionStore resolves session tokens to sessions.
type SessionStore interface {
	Get(ctx context.Context, token string) (model.Session, error)
}

// Session resolves the session cookie and injects the session into the
// request context. Resolution is best-effort: anonymous requests pass
// through untouched, and RequireSession gates the routes that need auth.
type Session struct {
	sessionStore   SessionStore
	contextManager model.ContextManager
	cookieName     string
	logger         *logger.Logger
}

// NewSession creates the session middleware.
func NewSession(sessionStore SessionStore, contextManager model.ContextManager, cookieName string, logger *logger.Logger) *Session {
	return &Session{
		sessionStore:   sessionStore,
		contextManager: contextManager,
		cookieName:     cookieName,
		logger:         logger,
	}
}

// Load resolves the cookie to a session when present and valid.
func (m *Session) Load(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.sessionStore.Get(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, model.ErrNoSession) {
				m.logger.Error("Session middleware: failed to resolve session", "error", err.Error())
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := m.contextManager.SetSessionToContext(r.Context(), session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSession rejects anonymous requests with 401.
func (m *Session) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := m.contextManager.GetSessionFromContext(r.Context()); !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, map[string]string{"message": "user not authenticated"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
