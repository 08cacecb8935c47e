package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetAll(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id uuid.UUID, fields UpdateUserFields) (User, error)
	Delete(ctx context.Context, id uuid.UUID) (User, error)
	AddLikedArticle(ctx context.Context, userID uuid.UUID, articleID uuid.UUID) ([]uuid.UUID, error)
	RemoveLikedArticle(ctx context.Context, userID uuid.UUID, articleID uuid.UUID) ([]uuid.UUID, error)
}

// User represents a stored user. The password hash is never serialized.
type User struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Username      string      `json:"username"`
	PasswordHash  string      `json:"-"`
	Role          string      `json:"role"`
	Active        bool        `json:"active"`
	CreatedAt     time.Time   `json:"created_at"`
	Address       string      `json:"address"`
	Instagram     string      `json:"instagram"`
	Occupation    string      `json:"occupation"`
	Pinterest     string      `json:"pinterest"`
	Bio           string      `json:"bio"`
	Picture       string      `json:"picture"`
	LikedArticles []uuid.UUID `json:"liked_articles"`
}

// RoleAdmin grants unrestricted article reads on the role-gated listing.
const RoleAdmin = "admin"

// CreateUserParams contains parameters to register a user. Password is
// plaintext here and must be hashed before it reaches the store.
type CreateUserParams struct {
	Name       string
	Email      string
	Username   string
	Password   string
	Role       string
	Active     bool
	Address    string
	Instagram  string
	Occupation string
	Pinterest  string
	Bio        string
	Picture    string
}

// UpdateUserParams is the editable subset replaced on update. Password is
// plaintext and re-hashed only when present.
type UpdateUserParams struct {
	Name       string
	Email      string
	Username   string
	Password   string
	Role       string
	Active     bool
	Address    string
	Instagram  string
	Occupation string
	Pinterest  string
	Bio        string
	Picture    string
}

// UpdateUserFields is the store-level form of an update. PasswordHash is
// set only when the update carried a new password.
type UpdateUserFields struct {
	Name         string
	Email        string
	Username     string
	PasswordHash *string
	Role         string
	Active       bool
	Address      string
	Instagram    string
	Occupation   string
	Pinterest    string
	Bio          string
	Picture      string
}
