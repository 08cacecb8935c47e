// Package mocks contains testify mocks for the store and storage
// interfaces shared between test packages.
package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/abarbosa/redator-server/internal/model"
)

// ArticleStore mocks model.ArticleStore.
type ArticleStore struct {
	mock.Mock
}

func (m *ArticleStore) Create(ctx context.Context, article model.Article) (model.Article, error) {
	args := m.Called(ctx, article)
	return args.Get(0).(model.Article), args.Error(1)
}

func (m *ArticleStore) GetByID(ctx context.Context, id uuid.UUID) (model.Article, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Article), args.Error(1)
}

func (m *ArticleStore) GetAll(ctx context.Context) ([]model.Article, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Article), args.Error(1)
}

func (m *ArticleStore) GetByAuthorID(ctx context.Context, authorID string) ([]model.Article, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).([]model.Article), args.Error(1)
}

func (m *ArticleStore) Search(ctx context.Context, filter model.ArticleFilter) ([]model.Article, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]model.Article), args.Error(1)
}

func (m *ArticleStore) IncrementLikedCount(ctx context.Context, id uuid.UUID) (model.Article, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Article), args.Error(1)
}

func (m *ArticleStore) Update(ctx context.Context, id uuid.UUID, params model.UpdateArticleParams) (model.Article, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.Article), args.Error(1)
}

func (m *ArticleStore) Delete(ctx context.Context, id uuid.UUID) (model.Article, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Article), args.Error(1)
}

// UserStore mocks model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *UserStore) Update(ctx context.Context, id uuid.UUID, fields model.UpdateUserFields) (model.User, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Delete(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) AddLikedArticle(ctx context.Context, userID uuid.UUID, articleID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID, articleID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *UserStore) RemoveLikedArticle(ctx context.Context, userID uuid.UUID, articleID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID, articleID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// SessionStore mocks model.SessionStore.
type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) Create(ctx context.Context, session model.Session) (string, error) {
	args := m.Called(ctx, session)
	return args.String(0), args.Error(1)
}

func (m *SessionStore) Get(ctx context.Context, token string) (model.Session, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *SessionStore) Destroy(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// Storage mocks model.Storage.
type Storage struct {
	mock.Mock
}

func (m *Storage) Upload(ctx context.Context, key, contentType string, reader io.Reader) error {
	args := m.Called(ctx, key, contentType, reader)
	return args.Error(0)
}

func (m *Storage) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(io.ReadCloser), args.String(1), args.Error(2)
}

func (m *Storage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *Storage) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
