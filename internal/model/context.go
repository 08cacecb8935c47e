package model

import "context"

// ContextManager moves the authenticated session in and out of a request
// context.
type ContextManager interface {
	SetSessionToContext(ctx context.Context, session Session) context.Context
	GetSessionFromContext(ctx context.Context) (Session, bool)
}
