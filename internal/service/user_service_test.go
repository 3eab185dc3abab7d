package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"evcharge/internal/apperrors"
	"evcharge/internal/models"
	"evcharge/internal/password"
)

func TestUserCreate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	hasher := password.NewBcryptHasher(4)
	svc := NewUserService(repo, hasher, zap.NewNop())

	t.Run("hashes the password and normalizes email", func(t *testing.T) {
		user, err := svc.Create(ctx, "  Admin@Example.COM ", "s3cret-pass", "Admin User", models.RoleBackoffice)
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", user.Email)
		assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
		assert.NoError(t, hasher.Compare(user.PasswordHash, "s3cret-pass"))
		assert.True(t, user.IsActive)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := svc.Create(ctx, "admin@example.com", "other-pass", "Second Admin", models.RoleBackoffice)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := svc.Create(ctx, "op@example.com", "pass", "Operator", models.Role("Superuser"))
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("rejects empty password", func(t *testing.T) {
		_, err := svc.Create(ctx, "op@example.com", "", "Operator", models.RoleStationOperator)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestUserUpdateKeepsPassword(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	hasher := password.NewBcryptHasher(4)
	svc := NewUserService(repo, hasher, zap.NewNop())

	user, err := svc.Create(ctx, "ops@example.com", "s3cret-pass", "Ops", models.RoleStationOperator)
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, user.ID, "ops@example.com", "Ops Renamed", models.RoleBackoffice, false))

	updated, err := svc.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ops Renamed", updated.FullName)
	assert.Equal(t, models.RoleBackoffice, updated.Role)
	assert.False(t, updated.IsActive)
	assert.NoError(t, hasher.Compare(updated.PasswordHash, "s3cret-pass"))
}

func TestEnsureSeedAdmin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewUserService(repo, password.NewBcryptHasher(4), zap.NewNop())

	require.NoError(t, svc.EnsureSeedAdmin(ctx, "admin@example.com", "s3cret-pass", "Administrator"))
	users, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleBackoffice, users[0].Role)

	// Second run is a no-op even with different credentials.
	require.NoError(t, svc.EnsureSeedAdmin(ctx, "other@example.com", "pass", "Other"))
	users, err = svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
