package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/abarbosa/redator-server/internal/api/http/context"
	"github.com/abarbosa/redator-server/internal/logger"
	"github.com/abarbosa/redator-server/internal/mocks"
	"github.com/abarbosa/redator-server/internal/model"
)

const cookieName = "redator_session"

func TestSession_Load(t *testing.T) {
	manager := httpctx.NewManager()
	session := model.Session{UserID: uuid.New(), Username: "ana"}

	tests := []struct {
		name        string
		cookie      *http.Cookie
		mockSetup   func(*mocks.SessionStore)
		wantSession bool
	}{
		{
			name:   "valid cookie injects session",
			cookie: &http.Cookie{Name: cookieName, Value: "token-1"},
			mockSetup: func(store *mocks.SessionStore) {
				store.On("Get", mock.Anything, "token-1").Return(session, nil)
			},
			wantSession: true,
		},
		{
			name:      "no cookie passes through anonymously",
			mockSetup: func(store *mocks.SessionStore) {},
		},
		{
			name:   "unknown token passes through anonymously",
			cookie: &http.Cookie{Name: cookieName, Value: "stale"},
			mockSetup: func(store *mocks.SessionStore) {
				store.On("Get", mock.Anything, "stale").Return(model.Session{}, model.ErrNoSession)
			},
		},
		{
			name:   "store failure passes through anonymously",
			cookie: &http.Cookie{Name: cookieName, Value: "token-1"},
			mockSetup: func(store *mocks.SessionStore) {
				store.On("Get", mock.Anything, "token-1").Return(model.Session{}, errors.New("redis down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mocks.SessionStore{}
			tt.mockSetup(store)

			mw := NewSession(store, manager, cookieName, logger.New(0))

			var gotSession model.Session
			var gotOK bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotSession, gotOK = manager.GetSessionFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()

			mw.Load(next).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantSession, gotOK)
			if tt.wantSession {
				assert.Equal(t, session, gotSession)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestSession_RequireSession(t *testing.T) {
	manager := httpctx.NewManager()
	mw := NewSession(&mocks.SessionStore{}, manager, cookieName, logger.New(0))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("authenticated request passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := manager.SetSessionToContext(req.Context(), model.Session{UserID: uuid.New()})
		rec := httptest.NewRecorder()

		mw.RequireSession(next).ServeHTTP(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("anonymous request is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		mw.RequireSession(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "user not authenticated")
	})
}
