package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/abarbosa/redator-server/internal/logger"
	"github.com/abarbosa/redator-server/internal/model"
)

// ArticleService defines article operations used by the HTTP layer.
type ArticleService interface {
	Create(ctx context.Context, params model.CreateArticleParams) (model.Article, error)
	Search(ctx context.Context, filter model.ArticleFilter) ([]model.Article, error)
	ListAll(ctx context.Context) ([]model.Article, error)
	ListForCaller(ctx context.Context, session model.Session) ([]model.Article, error)
	Like(ctx context.Context, id uuid.UUID) (model.Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Article, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateArticleParams) (model.Article, error)
	Delete(ctx context.Context, id uuid.UUID) (model.Article, error)
}

// Article handles HTTP endpoints for articles.
type Article struct {
	articleService ArticleService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewArticle creates a new Article handler.
func NewArticle(articleService ArticleService, contextManager model.ContextManager, logger *logger.Logger) *Article {
	return &Article{
		articleService: articleService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// ArticleRequest is the request payload for article create and update.
type ArticleRequest struct {
	Title          string `json:"title"`
	Materials      string `json:"materials"`
	Body           string `json:"body"`
	Image          string `json:"image"`
	Keywords       string `json:"keywords"`
	Summary        string `json:"summary"`
	AuthorEmail    string `json:"author_email"`
	AuthorName     string `json:"author_name"`
	RealAuthorName string `json:"real_author_name"`
	AuthorID       string `json:"author_id"`
	Source         string `json:"source"`
	Difficulty     string `json:"difficulty"`
	Type           string `json:"type"`
	Featured       bool   `json:"featured"`
}

func (a *ArticleRequest) Bind(r *http.Request) error {
	return nil
}

func articleIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "articleID"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed article id", model.ErrInvalidID)
	}
	return id, nil
}

// Create handles POST /articles/cadastro.
func (h *Article) Create(w http.ResponseWriter, r *http.Request) {
	data := &ArticleRequest{}
	if err := render.Bind(r, data); err != nil {
		h.renderErr(w, r, errInvalidRequest(err))
		return
	}

	article, err := h.articleService.Create(r.Context(), model.CreateArticleParams{
		Title:          data.Title,
		Materials:      data.Materials,
		Body:           data.Body,
		Image:          data.Image,
		Keywords:       data.Keywords,
		Summary:        data.Summary,
		AuthorEmail:    data.AuthorEmail,
		AuthorName:     data.AuthorName,
		RealAuthorName: data.RealAuthorName,
		AuthorID:       data.AuthorID,
		Source:         data.Source,
		Difficulty:     data.Difficulty,
		Type:           data.Type,
	})
	if err != nil {
		h.logger.Error("Article handler: create failed", "error", err.Error())
		h.renderErr(w, r, badRequest(err))
		return
	}

	render.JSON(w, r, article)
}

// Search handles GET /articles/search. Each query parameter contributes a
// filter clause only when present.
func (h *Article) Search(w http.ResponseWriter, r *http.Request) {
	filter := model.ArticleFilter{}
	if v := r.URL.Query().Get("keywords"); v != "" {
		filter.Keywords = &v
	}
	if v := r.URL.Query().Get("difficulty"); v != "" {
		filter.Difficulty = &v
	}
	if v := r.URL.Query().Get("type"); v != "" {
		filter.Type = &v
	}

	articles, err := h.articleService.Search(r.Context(), filter)
	if err != nil {
		h.logger.Error("Article handler: search failed", "error", err.Error())
		h.renderErr(w, r, badRequest(err))
		return
	}

	render.JSON(w, r, articles)
}

// ListAll handles GET /articles/all.
func (h *Article) ListAll(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleService.ListAll(r.Context())
	if err != nil {
		h.logger.Error("Article handler: list failed", "error", err.Error())
		h.renderErr(w, r, badRequest(err))
		return
	}

	render.JSON(w, r, articles)
}

// ListForCaller handles GET /articles/. Admin sessions see everything,
// other sessions only their own articles. The route is session-gated by
// middleware.
func (h *Article) ListForCaller(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		h.renderErr(w, r, errUnauthorized("user not authenticated"))
		return
	}

	articles, err := h.articleService.ListForCaller(r.Context(), session)
	if err != nil {
		h.logger.Error("Article handler: caller list failed", "error", err.Error())
		h.renderErr(w, r, badRequest(err))
		return
	}

	render.JSON(w, r, articles)
}

// Like handles POST /articles/like/{articleID}.
func (h *Article) Like(w http.ResponseWriter, r *http.Request) {
	id, err := articleIDParam(r)
	if err != nil {
		h.renderErr(w, r, badRequest(err))
		return
	}

	article, err := h.articleService.Like(r.Context(), id)
	if err != nil {
		h.logger.Error("Article handler: like failed", "article_id", id, "error", err.Error())
		h.renderErr(w, r, badRequest(err))
		return
	}

	render.JSON(w, r, article)
}

// Get handles GET /articles/{articleID}. A malformed id is a validation
// failure, distinct from an absent article.
func (h *Article) Get(w http.ResponseWriter, r *http.Request) {
	id, err := articleIDParam(r)
	if err != nil {
		h.renderErr(w, r, badRequest(err))
		return
	}

	article, err := h.articleService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			h.renderErr(w, r, badRequest(errors.New("article not found")))
			return
		}
		h.logger.Error("Article handler: get failed", "article_id", id, "error", err.Error())
		h.renderErr(w, r, badRequest(err))
		return
	}

	render.JSON(w, r, article)
}

// Update handles PUT /articles/{articleID}. The editable subset is replaced
// wholesale; casing normalization is not re-applied on update.
func (h *Article) Update(w http.ResponseWriter, r *http.Request) {
	id, err := articleIDParam(r)
	if err != nil {
		h.renderErr(w, r, badRequest(err))
		return
	}

	data := &ArticleRequest{}
	if err := render.Bind(r, data); err != nil {
		h.renderErr(w, r, errInvalidRequest(err))
		return
	}

	article, err := h.articleService.Update(r.Context(), id, model.UpdateArticleParams{
		Title:          data.Title,
		Body:           data.Body,
		Keywords:       data.Keywords,
		Summary:        data.Summary,
		Materials:      data.Materials,
		Image:          data.Image,
		AuthorEmail:    data.AuthorEmail,
		AuthorName:     data.AuthorName,
		RealAuthorName: data.RealAuthorName,
		Source:         data.Source,
		Difficulty:     data.Difficulty,
		Type:           data.Type,
		Featured:       data.Featured,
	})
	if err != nil {
		h.logger.Error("Article handler: update failed", "article_id", id, "error", err.Error())
		h.renderErr(w, r, notFoundOr400(err, "article not found"))
		return
	}

	render.JSON(w, r, article)
}

// Delete handles DELETE /articles/delete/{articleID} and returns the
// deleted record.
func (h *Article) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := articleIDParam(r)
	if err != nil {
		h.renderErr(w, r, badRequest(err))
		return
	}

	article, err := h.articleService.Delete(r.Context(), id)
	if err != nil {
		h.logger.Error("Article handler: delete failed", "article_id", id, "error", err.Error())
		h.renderErr(w, r, badRequest(err))
		return
	}

	render.JSON(w, r, article)
}

func (h *Article) renderErr(w http.ResponseWriter, r *http.Request, e render.Renderer) {
	if err := render.Render(w, r, e); err != nil {
		h.logger.Error("Article handler: failed to render error", "error", err.Error())
	}
}
