package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ArticleStore defines persistence operations for articles.
type ArticleStore interface {
	Create(ctx context.Context, article Article) (Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (Article, error)
	GetAll(ctx context.Context) ([]Article, error)
	GetByAuthorID(ctx context.Context, authorID string) ([]Article, error)
	Search(ctx context.Context, filter ArticleFilter) ([]Article, error)
	IncrementLikedCount(ctx context.Context, id uuid.UUID) (Article, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateArticleParams) (Article, error)
	Delete(ctx context.Context, id uuid.UUID) (Article, error)
}

// Article represents a stored article.
type Article struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Materials      string    `json:"materials"`
	Body           string    `json:"body"`
	Image          string    `json:"image"`
	Keywords       string    `json:"keywords"`
	LikedCount     int       `json:"liked_count"`
	Summary        string    `json:"summary"`
	AuthorEmail    string    `json:"author_email"`
	AuthorName     string    `json:"author_name"`
	RealAuthorName string    `json:"real_author_name"`
	AuthorID       string    `json:"author_id"`
	Source         string    `json:"source"`
	PublishedAt    time.Time `json:"published_date"`
	Difficulty     string    `json:"difficulty"`
	Type           string    `json:"type"`
	Featured       bool      `json:"featured"`
}

// ArticleFilter holds the conjunctive search clauses. A nil field means
// the clause is absent from the query.
type ArticleFilter struct {
	Keywords   *string
	Difficulty *string
	Type       *string
}

// CreateArticleParams contains parameters to create an article.
type CreateArticleParams struct {
	Title          string
	Materials      string
	Body           string
	Image          string
	Keywords       string
	Summary        string
	AuthorEmail    string
	AuthorName     string
	RealAuthorName string
	AuthorID       string
	Source         string
	Difficulty     string
	Type           string
}

// UpdateArticleParams is the editable subset replaced on update. Fields
// outside this subset are never touched by an update.
type UpdateArticleParams struct {
	Title          string
	Body           string
	Keywords       string
	Summary        string
	Materials      string
	Image          string
	AuthorEmail    string
	AuthorName     string
	RealAuthorName string
	Source         string
	Difficulty     string
	Type           string
	Featured       bool
}
