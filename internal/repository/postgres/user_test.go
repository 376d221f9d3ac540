package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/apperr"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
)

func newMockDB(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &userRepository{db: db}, mock
}

func TestUserRepositoryCreate(t *testing.T) {
	repo, mock := newMockDB(t)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("Admin", "admin@example.com", "$2a$12$hash", domain.UserRoleAdmin).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_on", "updated_on"}).AddRow(1, now, now))

		u := &domain.User{Name: "Admin", Email: "admin@example.com", PasswordHash: "$2a$12$hash", Role: domain.UserRoleAdmin}
		require.NoError(t, repo.Create(ctx, u))
		assert.Equal(t, int32(1), u.ID)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pq.Error{Code: uniqueViolation, Constraint: "users_email_unique"})

		err := repo.Create(ctx, &domain.User{Name: "Admin", Email: "admin@example.com"})
		require.Error(t, err)
		var de *apperr.DuplicateKeyError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "user", de.Entity)
		assert.Equal(t, "email", de.Field)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetByID(t *testing.T) {
	repo, mock := newMockDB(t)
	ctx := context.Background()
	now := time.Now()

	t.Run("ProjectionExcludesPasswordHash", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, email, role, created_on, updated_on FROM users`).
			WithArgs(int32(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role", "created_on", "updated_on"}).
				AddRow(1, "Admin", "admin@example.com", "admin", now, now))

		u, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, u.PasswordHash)
		assert.Equal(t, "admin@example.com", u.Email)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, email, role, created_on, updated_on FROM users`).
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role", "created_on", "updated_on"}))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetByEmailWithCredential(t *testing.T) {
	repo, mock := newMockDB(t)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`SELECT id, name, email, password_hash, role, created_on, updated_on`).
		WithArgs("admin@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "created_on", "updated_on"}).
			AddRow(1, "Admin", "admin@example.com", "$2a$12$hash", "admin", now, now))

	u, err := repo.GetByEmailWithCredential(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "$2a$12$hash", u.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryUpdatePassword(t *testing.T) {
	repo, mock := newMockDB(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users SET password_hash`).
			WithArgs("$2a$12$newhash", int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdatePassword(ctx, 1, "$2a$12$newhash"))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users SET password_hash`).
			WithArgs("$2a$12$newhash", int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdatePassword(ctx, 99, "$2a$12$newhash"), apperr.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
