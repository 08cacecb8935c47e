package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/abarbosa/redator-server/internal/model"
)

var _ model.ArticleStore = (*ArticleRepository)(nil)

const articleColumns = `id, title, materials, body, image, keywords, liked_count, summary,
		author_email, author_name, real_author_name, author_id, source,
		published_at, difficulty, type, featured`

type ArticleRepository struct {
	db *Connection
}

func NewArticleRepository(db *Connection) *ArticleRepository {
	return &ArticleRepository{
		db: db,
	}
}

func scanArticle(row pgx.Row) (model.Article, error) {
	var a model.Article
	err := row.Scan(
		&a.ID, &a.Title, &a.Materials, &a.Body, &a.Image, &a.Keywords, &a.LikedCount,
		&a.Summary, &a.AuthorEmail, &a.AuthorName, &a.RealAuthorName, &a.AuthorID,
		&a.Source, &a.PublishedAt, &a.Difficulty, &a.Type, &a.Featured,
	)
	return a, err
}

func collectArticles(rows pgx.Rows) ([]model.Article, error) {
	defer rows.Close()

	articles := []model.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read articles: %w", err)
	}

	return articles, nil
}

func (r *ArticleRepository) Create(ctx context.Context, article model.Article) (model.Article, error) {
	query := `INSERT INTO articles (id, title, materials, body, image, keywords, summary,
				author_email, author_name, real_author_name, author_id, source,
				difficulty, type)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			  RETURNING ` + articleColumns

	saved, err := scanArticle(r.db.QueryRow(ctx, query,
		article.ID, article.Title, article.Materials, article.Body, article.Image,
		article.Keywords, article.Summary, article.AuthorEmail, article.AuthorName,
		article.RealAuthorName, article.AuthorID, article.Source,
		article.Difficulty, article.Type,
	))
	if err != nil {
		return model.Article{}, fmt.Errorf("failed to create article: %w", err)
	}

	return saved, nil
}

func (r *ArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`

	article, err := scanArticle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Article{}, model.ErrNotFound
		}
		return model.Article{}, fmt.Errorf("failed to get article by id: %w", err)
	}

	return article, nil
}

func (r *ArticleRepository) GetAll(ctx context.Context) ([]model.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get articles: %w", err)
	}

	return collectArticles(rows)
}

func (r *ArticleRepository) GetByAuthorID(ctx context.Context, authorID string) ([]model.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE author_id = $1`

	rows, err := r.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get articles by author id: %w", err)
	}

	return collectArticles(rows)
}

// Search builds a conjunctive filter: each clause is included only when its
// parameter is present. The keyword clause is a token match against the
// text-indexed keywords column.
func (r *ArticleRepository) Search(ctx context.Context, filter model.ArticleFilter) ([]model.Article, error) {
	clauses := []string{}
	args := []any{}

	if filter.Keywords != nil {
		args = append(args, *filter.Keywords)
		clauses = append(clauses, fmt.Sprintf(
			"to_tsvector('simple', keywords) @@ plainto_tsquery('simple', $%d)", len(args)))
	}
	if filter.Difficulty != nil {
		args = append(args, *filter.Difficulty)
		clauses = append(clauses, fmt.Sprintf("difficulty = $%d", len(args)))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		clauses = append(clauses, fmt.Sprintf("type = $%d", len(args)))
	}

	query := `SELECT ` + articleColumns + ` FROM articles`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}

	return collectArticles(rows)
}

// IncrementLikedCount adds one to the liked counter in a single statement,
// so concurrent likes never lose an increment.
func (r *ArticleRepository) IncrementLikedCount(ctx context.Context, id uuid.UUID) (model.Article, error) {
	query := `UPDATE articles SET liked_count = liked_count + 1 WHERE id = $1
			  RETURNING ` + articleColumns

	article, err := scanArticle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Article{}, model.ErrNotFound
		}
		return model.Article{}, fmt.Errorf("failed to increment liked count: %w", err)
	}

	return article, nil
}

func (r *ArticleRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdateArticleParams) (model.Article, error) {
	query := `UPDATE articles SET
				title = $2, body = $3, keywords = $4, summary = $5, materials = $6,
				image = $7, author_email = $8, author_name = $9, real_author_name = $10,
				source = $11, difficulty = $12, type = $13, featured = $14
			  WHERE id = $1
			  RETURNING ` + articleColumns

	article, err := scanArticle(r.db.QueryRow(ctx, query,
		id, params.Title, params.Body, params.Keywords, params.Summary, params.Materials,
		params.Image, params.AuthorEmail, params.AuthorName, params.RealAuthorName,
		params.Source, params.Difficulty, params.Type, params.Featured,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Article{}, model.ErrNotFound
		}
		return model.Article{}, fmt.Errorf("failed to update article: %w", err)
	}

	return article, nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id uuid.UUID) (model.Article, error) {
	query := `DELETE FROM articles WHERE id = $1 RETURNING ` + articleColumns

	article, err := scanArticle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Article{}, model.ErrNotFound
		}
		return model.Article{}, fmt.Errorf("failed to delete article: %w", err)
	}

	return article, nil
}
