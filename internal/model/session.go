package model

import (
	"context"

	"github.com/google/uuid"
)

// SessionStore persists authenticated sessions keyed by an opaque token.
// Lifecycle: Create on login, Get on request, Destroy on logout. Entries
// expire server-side after the store's configured TTL.
type SessionStore interface {
	Create(ctx context.Context, session Session) (token string, err error)
	Get(ctx context.Context, token string) (Session, error)
	Destroy(ctx context.Context, token string) error
}

// Session is the public projection of a user held server-side while the
// user is logged in. It deliberately carries no password material.
type Session struct {
	UserID     uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Address    string    `json:"address"`
	Instagram  string    `json:"instagram"`
	Occupation string    `json:"occupation"`
	Pinterest  string    `json:"pinterest"`
	Bio        string    `json:"bio"`
	Picture    string    `json:"picture"`
}

// NewSession builds the session projection for a user.
func NewSession(user User) Session {
	return Session{
		UserID:     user.ID,
		Name:       user.Name,
		Username:   user.Username,
		Email:      user.Email,
		Role:       user.Role,
		Address:    user.Address,
		Instagram:  user.Instagram,
		Occupation: user.Occupation,
		Pinterest:  user.Pinterest,
		Bio:        user.Bio,
		Picture:    user.Picture,
	}
}

// IsAdmin reports whether the session carries the privileged role.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
