package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/abarbosa/redator-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id, name, email, username, password_hash, role, active, created_at,
		address, instagram, occupation, pinterest, bio, picture, liked_articles`

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Username, &u.PasswordHash, &u.Role, &u.Active,
		&u.CreatedAt, &u.Address, &u.Instagram, &u.Occupation, &u.Pinterest,
		&u.Bio, &u.Picture, &u.LikedArticles,
	)
	return u, err
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, name, email, username, password_hash, role, active,
				address, instagram, occupation, pinterest, bio, picture)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.Username, user.PasswordHash, user.Role,
		user.Active, user.Address, user.Instagram, user.Occupation, user.Pinterest,
		user.Bio, user.Picture,
	))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, fields model.UpdateUserFields) (model.User, error) {
	// COALESCE keeps the stored hash when no new password was supplied.
	query := `UPDATE users SET
				name = $2, email = $3, username = $4,
				password_hash = COALESCE($5, password_hash),
				role = $6, active = $7, address = $8, instagram = $9,
				occupation = $10, pinterest = $11, bio = $12, picture = $13
			  WHERE id = $1
			  RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query,
		id, fields.Name, fields.Email, fields.Username, fields.PasswordHash,
		fields.Role, fields.Active, fields.Address, fields.Instagram,
		fields.Occupation, fields.Pinterest, fields.Bio, fields.Picture,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `DELETE FROM users WHERE id = $1 RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to delete user: %w", err)
	}

	return user, nil
}

// AddLikedArticle appends articleID to the user's liked list in a single
// statement guarded against duplicates. Two concurrent calls for the same
// pair cannot both append.
func (r *UserRepository) AddLikedArticle(ctx context.Context, userID uuid.UUID, articleID uuid.UUID) ([]uuid.UUID, error) {
	query := `UPDATE users SET liked_articles = array_append(liked_articles, $2)
			  WHERE id = $1 AND NOT (liked_articles @> ARRAY[$2::uuid])
			  RETURNING liked_articles`

	var liked []uuid.UUID
	err := r.db.QueryRow(ctx, query, userID, articleID).Scan(&liked)
	if err == nil {
		return liked, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to add liked article: %w", err)
	}

	// No row updated: the user is missing or the article is already liked.
	checkQuery := `SELECT liked_articles @> ARRAY[$2::uuid] FROM users WHERE id = $1`
	var alreadyLiked bool
	err = r.db.QueryRow(ctx, checkQuery, userID, articleID).Scan(&alreadyLiked)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check liked articles: %w", err)
	}
	if alreadyLiked {
		return nil, model.ErrAlreadyLiked
	}

	return nil, model.ErrNotFound
}

// RemoveLikedArticle removes articleID from the user's liked list. Removing
// an absent id is a no-op returning the unchanged list.
func (r *UserRepository) RemoveLikedArticle(ctx context.Context, userID uuid.UUID, articleID uuid.UUID) ([]uuid.UUID, error) {
	query := `UPDATE users SET liked_articles = array_remove(liked_articles, $2)
			  WHERE id = $1
			  RETURNING liked_articles`

	var liked []uuid.UUID
	err := r.db.QueryRow(ctx, query, userID, articleID).Scan(&liked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to remove liked article: %w", err)
	}

	return liked, nil
}
