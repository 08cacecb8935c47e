package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/abarbosa/redator-server/internal/api/http/context"
	"github.com/abarbosa/redator-server/internal/logger"
	"github.com/abarbosa/redator-server/internal/model"
)

// MockUserService mocks the UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, username, password string) (model.Session, string, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(model.Session), args.String(1), args.Error(2)
}

func (m *MockUserService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockUserService) ListAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id uuid.UUID, params model.UpdateUserParams) (model.User, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) LikeArticle(ctx context.Context, session model.Session, articleID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, session, articleID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockUserService) UnlikeArticle(ctx context.Context, session model.Session, articleID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, session, articleID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

var testCookie = SessionCookie{Name: "redator_session", TTL: time.Hour}

func newUserRouter(service UserService) http.Handler {
	h := NewUser(service, httpctx.NewManager(), testCookie, logger.New(0))

	r := chi.NewRouter()
	r.Post("/users/cadastro", h.Register)
	r.Post("/users/login", h.Login)
	r.Get("/users/session", h.CurrentSession)
	r.Post("/users/logout", h.Logout)
	r.Get("/users/getAll", h.ListAll)
	r.Get("/users/{userID}", h.Get)
	r.Put("/users/{userID}", h.Update)
	r.Delete("/users/{userID}", h.Delete)
	r.Post("/users/likeArticle/{articleID}", h.LikeArticle)
	r.Post("/users/unlikeArticle/{articleID}", h.UnlikeArticle)
	return r
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("response never carries the password", func(t *testing.T) {
		service := &MockUserService{}
		service.On("Register", mock.Anything, mock.MatchedBy(func(p model.CreateUserParams) bool {
			return p.Username == "ana" && p.Password == "segredo123"
		})).Return(model.User{
			ID:           uuid.New(),
			Username:     "ana",
			PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
			Active:       true,
		}, nil)

		body := `{"username":"ana","password":"segredo123","active":true}`
		req := httptest.NewRequest(http.MethodPost, "/users/cadastro", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		newUserRouter(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "segredo123")
		assert.NotContains(t, rec.Body.String(), "$2a$10$")
		service.AssertExpectations(t)
	})

	t.Run("store failure answers 400", func(t *testing.T) {
		service := &MockUserService{}
		service.On("Register", mock.Anything, mock.Anything).
			Return(model.User{}, errors.New("duplicate username"))

		body := `{"username":"ana"}`
		req := httptest.NewRequest(http.MethodPost, "/users/cadastro", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		newUserRouter(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertExpectations(t)
	})
}

func TestUserHandler_Login(t *testing.T) {
	userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	tests := []struct {
		name       string
		mockSetup  func(*MockUserService)
		wantStatus int
		wantCookie bool
	}{
		{
			name: "successful login sets the session cookie",
			mockSetup: func(service *MockUserService) {
				service.On("Login", mock.Anything, "ana", "segredo123").
					Return(model.Session{UserID: userID, Username: "ana"}, "token-1", nil)
			},
			wantStatus: http.StatusOK,
			wantCookie: true,
		},
		{
			name: "bad credentials answer 401",
			mockSetup: func(service *MockUserService) {
				service.On("Login", mock.Anything, "ana", "segredo123").
					Return(model.Session{}, "", model.ErrUnauthorized)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "store failure answers 500",
			mockSetup: func(service *MockUserService) {
				service.On("Login", mock.Anything, "ana", "segredo123").
					Return(model.Session{}, "", errors.New("redis down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &MockUserService{}
			tt.mockSetup(service)

			body := `{"username":"ana","password":"segredo123"}`
			req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			newUserRouter(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			cookies := rec.Result().Cookies()
			if tt.wantCookie {
				require.Len(t, cookies, 1)
				assert.Equal(t, "redator_session", cookies[0].Name)
				assert.Equal(t, "token-1", cookies[0].Value)
				assert.True(t, cookies[0].HttpOnly)
			} else {
				assert.Empty(t, cookies)
			}

			service.AssertExpectations(t)
		})
	}
}

func TestUserHandler_CurrentSession(t *testing.T) {
	t.Run("authenticated caller gets the projection", func(t *testing.T) {
		session := model.Session{UserID: uuid.New(), Username: "ana"}
		service := &MockUserService{}

		req := httptest.NewRequest(http.MethodGet, "/users/session", nil)
		ctx := httpctx.NewManager().SetSessionToContext(req.Context(), session)
		rec := httptest.NewRecorder()

		newUserRouter(service).ServeHTTP(rec, req.WithContext(ctx))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			User *model.Session `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.User)
		assert.Equal(t, "ana", resp.User.Username)
	})

	t.Run("anonymous caller gets null, not an error", func(t *testing.T) {
		service := &MockUserService{}

		req := httptest.NewRequest(http.MethodGet, "/users/session", nil)
		rec := httptest.NewRecorder()

		newUserRouter(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			User *model.Session `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Nil(t, resp.User)
	})
}

func TestUserHandler_Logout(t *testing.T) {
	t.Run("destroys the session and clears the cookie", func(t *testing.T) {
		service := &MockUserService{}
		service.On("Logout", mock.Anything, "token-1").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/users/logout", nil)
		req.AddCookie(&http.Cookie{Name: "redator_session", Value: "token-1"})
		rec := httptest.NewRecorder()

		newUserRouter(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
		service.AssertExpectations(t)
	})

	t.Run("session store failure answers 500", func(t *testing.T) {
		service := &MockUserService{}
		service.On("Logout", mock.Anything, "token-1").Return(errors.New("redis down"))

		req := httptest.NewRequest(http.MethodPost, "/users/logout", nil)
		req.AddCookie(&http.Cookie{Name: "redator_session", Value: "token-1"})
		rec := httptest.NewRecorder()

		newUserRouter(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		service.AssertExpectations(t)
	})

	t.Run("no cookie still succeeds", func(t *testing.T) {
		service := &MockUserService{}

		req := httptest.NewRequest(http.MethodPost, "/users/logout", nil)
		rec := httptest.NewRecorder()

		newUserRouter(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		service.AssertExpectations(t)
	})
}

func TestUserHandler_Update(t *testing.T) {
	userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	tests := []struct {
		name       string
		mockErr    error
		wantStatus int
	}{
		{
			name:       "successful update",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing user answers 404",
			mockErr:    model.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "other failures answer 400",
			mockErr:    errors.New("database error"),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &MockUserService{}
			service.On("Update", mock.Anything, userID, mock.MatchedBy(func(p model.UpdateUserParams) bool {
				return p.Name == "Ana Maria"
			})).Return(model.User{ID: userID, Name: "Ana Maria"}, tt.mockErr)

			body := `{"name":"Ana Maria"}`
			req := httptest.NewRequest(http.MethodPut, "/users/"+userID.String(), strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			newUserRouter(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			service.AssertExpectations(t)
		})
	}
}

func TestUserHandler_LikeArticle(t *testing.T) {
	userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	articleID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440001")
	session := model.Session{UserID: userID}

	tests := []struct {
		name       string
		mockSetup  func(*MockUserService)
		wantStatus int
	}{
		{
			name: "first like returns updated list",
			mockSetup: func(service *MockUserService) {
				service.On("LikeArticle", mock.Anything, session, articleID).
					Return([]uuid.UUID{articleID}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "duplicate like answers 400",
			mockSetup: func(service *MockUserService) {
				service.On("LikeArticle", mock.Anything, session, articleID).
					Return([]uuid.UUID(nil), model.ErrAlreadyLiked)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing user answers 404",
			mockSetup: func(service *MockUserService) {
				service.On("LikeArticle", mock.Anything, session, articleID).
					Return([]uuid.UUID(nil), model.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "store failure answers 500",
			mockSetup: func(service *MockUserService) {
				service.On("LikeArticle", mock.Anything, session, articleID).
					Return([]uuid.UUID(nil), errors.New("database error"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &MockUserService{}
			tt.mockSetup(service)

			req := httptest.NewRequest(http.MethodPost, "/users/likeArticle/"+articleID.String(), nil)
			ctx := httpctx.NewManager().SetSessionToContext(req.Context(), session)
			rec := httptest.NewRecorder()

			newUserRouter(service).ServeHTTP(rec, req.WithContext(ctx))

			assert.Equal(t, tt.wantStatus, rec.Code)
			service.AssertExpectations(t)
		})
	}

	t.Run("anonymous request is rejected", func(t *testing.T) {
		service := &MockUserService{}

		req := httptest.NewRequest(http.MethodPost, "/users/likeArticle/"+articleID.String(), nil)
		rec := httptest.NewRecorder()

		newUserRouter(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		service.AssertExpectations(t)
	})
}

func TestUserHandler_UnlikeArticle(t *testing.T) {
	userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	articleID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440001")
	session := model.Session{UserID: userID}

	service := &MockUserService{}
	service.On("UnlikeArticle", mock.Anything, session, articleID).
		Return([]uuid.UUID{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/users/unlikeArticle/"+articleID.String(), nil)
	ctx := httpctx.NewManager().SetSessionToContext(req.Context(), session)
	rec := httptest.NewRecorder()

	newUserRouter(service).ServeHTTP(rec, req.WithContext(ctx))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		LikedArticles []uuid.UUID `json:"liked_articles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.LikedArticles)
	service.AssertExpectations(t)
}
