package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger/internal/domain/repository"
)

func TestNotificationRepository_FindUnreadByUserID(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewNotificationRepository(db)

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "message", "read", "created_at"}).
		AddRow(uuid.New(), userID, "Welcome", "Welcome to the ledger", false, time.Now()).
		AddRow(uuid.New(), userID, "Password reset", "Your password was changed", false, time.Now())

	mock.ExpectQuery(`SELECT \* FROM "notifications" WHERE user_id = \$1 AND read = false`).
		WithArgs(userID).
		WillReturnRows(rows)

	notifications, err := repo.FindUnreadByUserID(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, "Welcome", notifications[0].Title)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_MarkRead_NotFound(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewNotificationRepository(db)

	notificationID := uuid.New()
	mock.ExpectExec(`UPDATE "notifications" SET "read"=\$1`).
		WithArgs(true, notificationID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkRead(context.Background(), notificationID)
	require.ErrorIs(t, err, repository.ErrNotificationNotFound)
}

func TestNotificationRepository_MarkAllRead(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewNotificationRepository(db)

	userID := uuid.New()
	mock.ExpectExec(`UPDATE "notifications" SET "read"=\$1 WHERE user_id = \$2 AND read = false`).
		WithArgs(true, userID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.MarkAllRead(context.Background(), userID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
