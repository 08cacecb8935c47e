package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/abarbosa/redator-server/internal/logger"
	"github.com/abarbosa/redator-server/internal/model"
)

type Article struct {
	articleStore model.ArticleStore
	logger       *logger.Logger
}

func NewArticle(articleStore model.ArticleStore, logger *logger.Logger) *Article {
	return &Article{
		articleStore: articleStore,
		logger:       logger,
	}
}

// normalizeCase upper-cases the first letter and lower-cases the rest.
func normalizeCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}

// Create persists a new article. Difficulty and type are required and are
// casing-normalized here; updates never re-apply the normalization.
func (s *Article) Create(ctx context.Context, params model.CreateArticleParams) (model.Article, error) {
	if params.Difficulty == "" {
		return model.Article{}, fmt.Errorf("%w: difficulty is required", model.ErrValidation)
	}
	if params.Type == "" {
		return model.Article{}, fmt.Errorf("%w: type is required", model.ErrValidation)
	}

	article := model.Article{
		ID:             uuid.New(),
		Title:          params.Title,
		Materials:      params.Materials,
		Body:           params.Body,
		Image:          params.Image,
		Keywords:       params.Keywords,
		Summary:        params.Summary,
		AuthorEmail:    params.AuthorEmail,
		AuthorName:     params.AuthorName,
		RealAuthorName: params.RealAuthorName,
		AuthorID:       params.AuthorID,
		Source:         params.Source,
		Difficulty:     normalizeCase(params.Difficulty),
		Type:           normalizeCase(params.Type),
	}

	saved, err := s.articleStore.Create(ctx, article)
	if err != nil {
		return model.Article{}, fmt.Errorf("failed to create article: %w", err)
	}

	s.logger.Info("Article service: article created",
		"article_id", saved.ID,
		"type", saved.Type,
		"difficulty", saved.Difficulty)

	return saved, nil
}

// Search returns articles matching the conjunction of the present filter
// clauses. No clauses means the full set.
func (s *Article) Search(ctx context.Context, filter model.ArticleFilter) ([]model.Article, error) {
	articles, err := s.articleStore.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}

	return articles, nil
}

func (s *Article) ListAll(ctx context.Context) ([]model.Article, error) {
	articles, err := s.articleStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get articles: %w", err)
	}

	return articles, nil
}

// ListForCaller returns every article for an admin session and only the
// caller's own articles otherwise.
func (s *Article) ListForCaller(ctx context.Context, session model.Session) ([]model.Article, error) {
	if session.IsAdmin() {
		return s.ListAll(ctx)
	}

	articles, err := s.articleStore.GetByAuthorID(ctx, session.UserID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get articles by author id: %w", err)
	}

	return articles, nil
}

// Like increments the liked counter and returns the updated article.
func (s *Article) Like(ctx context.Context, id uuid.UUID) (model.Article, error) {
	article, err := s.articleStore.IncrementLikedCount(ctx, id)
	if err != nil {
		return model.Article{}, fmt.Errorf("failed to like article: %w", err)
	}

	return article, nil
}

func (s *Article) GetByID(ctx context.Context, id uuid.UUID) (model.Article, error) {
	article, err := s.articleStore.GetByID(ctx, id)
	if err != nil {
		return model.Article{}, fmt.Errorf("failed to get article by id: %w", err)
	}

	return article, nil
}

func (s *Article) Update(ctx context.Context, id uuid.UUID, params model.UpdateArticleParams) (model.Article, error) {
	article, err := s.articleStore.Update(ctx, id, params)
	if err != nil {
		return model.Article{}, fmt.Errorf("failed to update article: %w", err)
	}

	s.logger.Info("Article service: article updated", "article_id", id)

	return article, nil
}

// Delete removes the article and returns it. Deletion does not touch any
// user's liked list; stale ids there are tolerated and unlike removes them.
func (s *Article) Delete(ctx context.Context, id uuid.UUID) (model.Article, error) {
	article, err := s.articleStore.Delete(ctx, id)
	if err != nil {
		return model.Article{}, fmt.Errorf("failed to delete article: %w", err)
	}

	s.logger.Info("Article service: article deleted", "article_id", id)

	return article, nil
}
