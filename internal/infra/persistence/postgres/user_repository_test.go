package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"
)

func userRows(id uuid.UUID, email string, failedAttempts int, locked bool, lockTime *time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "email", "password_hash", "role",
		"failed_attempts", "account_locked", "lock_time", "created_at", "updated_at",
	}).AddRow(id, "Alice", email, "$2a$10$hash", "user",
		failedAttempts, locked, lockTime, time.Now(), time.Now())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewUserRepository(db)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("alice@example.com", 1).
		WillReturnRows(userRows(userID, "alice@example.com", 0, false, nil))

	user, err := repo.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.False(t, user.AccountLocked)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("ghost@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	require.ErrorIs(t, err, repository.ErrUserNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmailForUpdate_TakesRowLock(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewUserRepository(db)

	userID := uuid.New()
	lockTime := time.Now().Add(-time.Minute)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 .* FOR UPDATE`).
		WithArgs("alice@example.com", 1).
		WillReturnRows(userRows(userID, "alice@example.com", 5, true, &lockTime))

	user, err := repo.FindByEmailForUpdate(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.True(t, user.AccountLocked)
	assert.Equal(t, 5, user.FailedAttempts)
	require.NotNil(t, user.LockTime)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_PersistsLockoutReset(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewUserRepository(db)

	user := &entity.User{
		ID:             uuid.New(),
		Name:           "Alice",
		Email:          "alice@example.com",
		PasswordHash:   "$2a$10$hash",
		Role:           entity.RoleUser,
		FailedAttempts: 0,
		AccountLocked:  false,
		LockTime:       nil,
	}

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.User{ID: uuid.New()})
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}
