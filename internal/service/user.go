package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/abarbosa/redator-server/internal/logger"
	"github.com/abarbosa/redator-server/internal/model"
)

type User struct {
	userStore    model.UserStore
	sessionStore model.SessionStore
	logger       *logger.Logger
}

func NewUser(userStore model.UserStore, sessionStore model.SessionStore, logger *logger.Logger) *User {
	return &User{
		userStore:    userStore,
		sessionStore: sessionStore,
		logger:       logger,
	}
}

// Register persists a new user. A supplied password is replaced by its
// bcrypt hash before it reaches the store; other fields pass through.
func (s *User) Register(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	s.logger.Debug("User service: registering user", "username", params.Username)

	user := model.User{
		ID:         uuid.New(),
		Name:       params.Name,
		Email:      params.Email,
		Username:   params.Username,
		Role:       params.Role,
		Active:     params.Active,
		Address:    params.Address,
		Instagram:  params.Instagram,
		Occupation: params.Occupation,
		Pinterest:  params.Pinterest,
		Bio:        params.Bio,
		Picture:    params.Picture,
	}

	if params.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	saved, err := s.userStore.Create(ctx, user)
	if err != nil {
		s.logger.Error("User service: failed to create user",
			"username", params.Username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user registered",
		"user_id", saved.ID,
		"username", saved.Username)

	return saved, nil
}

// Login verifies credentials against the stored hash and establishes a new
// session. Unknown username, inactive account and wrong password all fail
// with model.ErrUnauthorized.
func (s *User) Login(ctx context.Context, username, password string) (model.Session, string, error) {
	s.logger.Debug("User service: login attempt", "username", username)

	user, err := s.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return model.Session{}, "", model.ErrUnauthorized
	}
	if err != nil {
		return model.Session{}, "", fmt.Errorf("failed to get user by username: %w", err)
	}

	if !user.Active {
		s.logger.Info("User service: login rejected for inactive user", "username", username)
		return model.Session{}, "", model.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("User service: login rejected, password mismatch", "username", username)
		return model.Session{}, "", model.ErrUnauthorized
	}

	session := model.NewSession(user)
	token, err := s.sessionStore.Create(ctx, session)
	if err != nil {
		return model.Session{}, "", fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("User service: login succeeded",
		"user_id", user.ID,
		"username", username)

	return session, token, nil
}

// Logout destroys the session behind the token.
func (s *User) Logout(ctx context.Context, token string) error {
	if err := s.sessionStore.Destroy(ctx, token); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}

	return nil
}

func (s *User) ListAll(ctx context.Context) ([]model.User, error) {
	users, err := s.userStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return users, nil
}

func (s *User) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// Update replaces the editable subset, re-hashing the password only when a
// new plaintext password is present.
func (s *User) Update(ctx context.Context, id uuid.UUID, params model.UpdateUserParams) (model.User, error) {
	fields := model.UpdateUserFields{
		Name:       params.Name,
		Email:      params.Email,
		Username:   params.Username,
		Role:       params.Role,
		Active:     params.Active,
		Address:    params.Address,
		Instagram:  params.Instagram,
		Occupation: params.Occupation,
		Pinterest:  params.Pinterest,
		Bio:        params.Bio,
		Picture:    params.Picture,
	}

	if params.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashed := string(hash)
		fields.PasswordHash = &hashed
	}

	user, err := s.userStore.Update(ctx, id, fields)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: user updated", "user_id", id)

	return user, nil
}

func (s *User) Delete(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.Delete(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted", "user_id", id)

	return user, nil
}

// LikeArticle appends the article to the caller's liked list. The append is
// a single atomic store operation, so a duplicate like fails with
// model.ErrAlreadyLiked even under concurrent calls.
func (s *User) LikeArticle(ctx context.Context, session model.Session, articleID uuid.UUID) ([]uuid.UUID, error) {
	liked, err := s.userStore.AddLikedArticle(ctx, session.UserID, articleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrAlreadyLiked) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to add liked article: %w", err)
	}

	s.logger.Info("User service: article liked",
		"user_id", session.UserID,
		"article_id", articleID)

	return liked, nil
}

// UnlikeArticle removes the article from the caller's liked list. Removing
// an absent id is a no-op.
func (s *User) UnlikeArticle(ctx context.Context, session model.Session, articleID uuid.UUID) ([]uuid.UUID, error) {
	liked, err := s.userStore.RemoveLikedArticle(ctx, session.UserID, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove liked article: %w", err)
	}

	return liked, nil
}
