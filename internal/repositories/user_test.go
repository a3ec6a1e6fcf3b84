package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pavlenkodm/movie-stats/internal/storage"
)

func TestUserRepositories(t *testing.T) {
	store, teardown := setupMySQLStorage(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(store)
	readRepo := NewUserReadRepository(store)
	ctx := context.Background()

	t.Run("SaveAndGetByEmail", func(t *testing.T) {
		err := writeRepo.Save(ctx, "alice", "alice@example.com", "hashed-password")
		assert.NoError(t, err)

		user, err := readRepo.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "hashed-password", user.PasswordHash)
		assert.NotZero(t, user.ID)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("GetByEmailMissingReturnsNil", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "ghost@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("DuplicateEmailIsClassified", func(t *testing.T) {
		err := writeRepo.Save(ctx, "bob", "bob@example.com", "hash1")
		assert.NoError(t, err)

		err = writeRepo.Save(ctx, "bobby", "bob@example.com", "hash2")
		assert.Error(t, err)
		assert.True(t, storage.IsDuplicateKey(err))
	})
}
