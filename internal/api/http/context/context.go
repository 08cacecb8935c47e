package context

import (
	"context"

	"github.com/abarbosa/redator-server/internal/model"
)

type contextKey int

const (
	sessionKey contextKey = iota
)

// Manager moves the authenticated session in and out of request contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetSessionToContext returns a child context carrying the session.
func (m *Manager) SetSessionToContext(ctx context.Context, session model.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetSessionFromContext retrieves the session, reporting whether the
// request is authenticated.
func (m *Manager) GetSessionFromContext(ctx context.Context) (model.Session, bool) {
	session, ok := ctx.Value(sessionKey).(model.Session)
	return session, ok
}
