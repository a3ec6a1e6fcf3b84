package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pavlenkodm/movie-stats/internal/models"
	"github.com/pavlenkodm/movie-stats/internal/storage"
)

type UserReadRepository struct {
	store *storage.Storage
}

func NewUserReadRepository(store *storage.Storage) *UserReadRepository {
	return &UserReadRepository{store: store}
}

// GetByEmail returns the user with the given normalized email, or nil
// when no such user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE email = ?
		LIMIT 1
	`

	var user models.UserDB
	err := r.store.Get(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	store *storage.Storage
}

func NewUserWriteRepository(store *storage.Storage) *UserWriteRepository {
	return &UserWriteRepository{store: store}
}

// Save inserts a new user row. The email column carries a unique
// constraint; a concurrent duplicate surfaces as a duplicate-key error
// classifiable with storage.IsDuplicateKey.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string) error {
	const query = `
		INSERT INTO users (username, email, password_hash)
		VALUES (?, ?, ?)
	`

	_, err := r.store.Exec(ctx, query, username, email, passwordHash)
	return err
}
