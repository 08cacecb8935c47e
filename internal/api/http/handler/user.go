package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/abarbosa/redator-server/internal/logger"
	"github.com/abarbosa/redator-server/internal/model"
)

// UserService defines user and session operations used by the HTTP layer.
type UserService interface {
	Register(ctx context.Context, params model.CreateUserParams) (model.User, error)
	Login(ctx context.Context, username, password string) (model.Session, string, error)
	Logout(ctx context.Context, token string) error
	ListAll(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateUserParams) (model.User, error)
	Delete(ctx context.Context, id uuid.UUID) (model.User, error)
	LikeArticle(ctx context.Context, session model.Session, articleID uuid.UUID) ([]uuid.UUID, error)
	UnlikeArticle(ctx context.Context, session model.Session, articleID uuid.UUID) ([]uuid.UUID, error)
}

// SessionCookie describes how the session token travels to the client.
type SessionCookie struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// User handles HTTP endpoints for users and sessions.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	cookie         SessionCookie
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, cookie SessionCookie, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		cookie:         cookie,
		logger:         logger,
	}
}

// UserRequest is the request payload for user registration and update.
type UserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Active     bool   `json:"active"`
	Address    string `json:"address"`
	Instagram  string `json:"instagram"`
	Occupation string `json:"occupation"`
	Pinterest  string `json:"pinterest"`
	Bio        string `json:"bio"`
	Picture    string `json:"picture"`
}

func (u *UserRequest) Bind(r *http.Request) error {
	return nil
}

// LoginRequest is the request payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (l *LoginRequest) Bind(r *http.Request) error {
	return nil
}

func (h *User) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cookie.Secure,
		Expires:  time.Now().Add(h.cookie.TTL),
	})
}

func (h *User) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cookie.Secure,
		MaxAge:   -1,
	})
}

func userIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed user id", model.ErrInvalidID)
	}
	return id, nil
}

// Register handles POST /users/cadastro.
func (h *User) Register(w http.ResponseWriter, r *http.Request) {
	data := &UserRequest{}
	if err := render.Bind(r, data); err != nil {
		h.renderErr(w, r, errInvalidRequest(err))
		return
	}

	user, err := h.userService.Register(r.Context(), model.CreateUserParams{
		Name:       data.Name,
		Email:      data.Email,
		Username:   data.Username,
		Password:   data.Password,
		Role:       data.Role,
		Active:     data.Active,
		Address:    data.Address,
		Instagram:  data.Instagram,
		Occupation: data.Occupation,
		Pinterest:  data.Pinterest,
		Bio:        data.Bio,
		Picture:    data.Picture,
	})
	if err != nil {
		h.logger.Error("User handler: register failed", "username", data.Username, "error", err.Error())
		h.renderErr(w, r, badRequest(err))
		return
	}

	render.JSON(w, r, user)
}

// Login handles POST /users/login. On success it sets the session cookie.
// Unknown user, inactive account and wrong password all answer 401.
func (h *User) Login(w http.ResponseWriter, r *http.Request) {
	data := &LoginRequest{}
	if err := render.Bind(r, data); err != nil {
		h.renderErr(w, r, errInvalidRequest(err))
		return
	}

	session, token, err := h.userService.Login(r.Context(), data.Username, data.Password)
	if err != nil {
		if errors.Is(err, model.ErrUnauthorized) {
			h.renderErr(w, r, errUnauthorized("invalid credentials"))
			return
		}
		h.logger.Error("User handler: login failed", "username", data.Username, "error", err.Error())
		h.renderErr(w, r, errInternal(err))
		return
	}

	h.setSessionCookie(w, token)
	render.JSON(w, r, session)
}

// CurrentSession handles GET /users/session. It answers with the session
// projection or an explicit null, never an error for anonymous callers.
func (h *User) CurrentSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		render.JSON(w, r, map[string]any{"user": nil})
		return
	}

	render.JSON(w, r, map[string]any{"user": session})
}

// Logout handles POST /users/logout.
func (h *User) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(h.cookie.Name)
	if err == nil && cookie.Value != "" {
		if err := h.userService.Logout(r.Context(), cookie.Value); err != nil {
			h.logger.Error("User handler: logout failed", "error", err.Error())
			h.renderErr(w, r, errInternal(err))
			return
		}
	}

	h.clearSessionCookie(w)
	render.JSON(w, r, map[string]string{"message": "logout successful"})
}

// ListAll handles GET /users/getAll. Password hashes are never serialized.
func (h *User) ListAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListAll(r.Context())
	if err != nil {
		h.logger.Error("User handler: list failed", "error", err.Error())
		h.renderErr(w, r, badRequest(err))
		return
	}

	render.JSON(w, r, users)
}

// Get handles GET /users/{userID}.
func (h *User) Get(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		h.renderErr(w, r, badRequest(err))
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			h.renderErr(w, r, badRequest(errors.New("user not found")))
			return
		}
		h.logger.Error("User handler: get failed", "user_id", id, "error", err.Error())
		h.renderErr(w, r, badRequest(err))
		return
	}

	render.JSON(w, r, user)
}

// Update handles PUT /users/{userID}.
func (h *User) Update(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		h.renderErr(w, r, badRequest(err))
		return
	}

	data := &UserRequest{}
	if err := render.Bind(r, data); err != nil {
		h.renderErr(w, r, errInvalidRequest(err))
		return
	}

	user, err := h.userService.Update(r.Context(), id, model.UpdateUserParams{
		Name:       data.Name,
		Email:      data.Email,
		Username:   data.Username,
		Password:   data.Password,
		Role:       data.Role,
		Active:     data.Active,
		Address:    data.Address,
		Instagram:  data.Instagram,
		Occupation: data.Occupation,
		Pinterest:  data.Pinterest,
		Bio:        data.Bio,
		Picture:    data.Picture,
	})
	if err != nil {
		h.logger.Error("User handler: update failed", "user_id", id, "error", err.Error())
		h.renderErr(w, r, notFoundOr400(err, "user not found"))
		return
	}

	render.JSON(w, r, user)
}

// Delete handles DELETE /users/{userID} and returns the deleted record.
func (h *User) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		h.renderErr(w, r, badRequest(err))
		return
	}

	user, err := h.userService.Delete(r.Context(), id)
	if err != nil {
		h.logger.Error("User handler: delete failed", "user_id", id, "error", err.Error())
		h.renderErr(w, r, badRequest(err))
		return
	}

	render.JSON(w, r, user)
}

// LikeArticle handles POST /users/likeArticle/{articleID}. The route is
// session-gated by middleware; a duplicate like answers 400.
func (h *User) LikeArticle(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		h.renderErr(w, r, errUnauthorized("user not authenticated"))
		return
	}

	articleID, err := articleIDParam(r)
	if err != nil {
		h.renderErr(w, r, badRequest(err))
		return
	}

	liked, err := h.userService.LikeArticle(r.Context(), session, articleID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			h.renderErr(w, r, errNotFound("user not found"))
		case errors.Is(err, model.ErrAlreadyLiked):
			h.renderErr(w, r, badRequest(model.ErrAlreadyLiked))
		default:
			h.logger.Error("User handler: like failed",
				"user_id", session.UserID,
				"article_id", articleID,
				"error", err.Error())
			h.renderErr(w, r, errInternal(err))
		}
		return
	}

	render.JSON(w, r, map[string]any{"liked_articles": liked})
}

// UnlikeArticle handles POST /users/unlikeArticle/{articleID}. Removal is
// idempotent; unliking an absent article is a no-op.
func (h *User) UnlikeArticle(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		h.renderErr(w, r, errUnauthorized("user not authenticated"))
		return
	}

	articleID, err := articleIDParam(r)
	if err != nil {
		h.renderErr(w, r, badRequest(err))
		return
	}

	liked, err := h.userService.UnlikeArticle(r.Context(), session, articleID)
	if err != nil {
		h.logger.Error("User handler: unlike failed",
			"user_id", session.UserID,
			"article_id", articleID,
			"error", err.Error())
		h.renderErr(w, r, errInternal(err))
		return
	}

	render.JSON(w, r, map[string]any{"liked_articles": liked})
}

func (h *User) renderErr(w http.ResponseWriter, r *http.Request, e render.Renderer) {
	if err := render.Render(w, r, e); err != nil {
		h.logger.Error("User handler: failed to render error", "error", err.Error())
	}
}
