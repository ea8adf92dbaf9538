package impl

import (
	"context"
	"testing"
	"time"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	mockRepo "ledger/internal/mocks/repository"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	userRepo         *mockRepo.MockUserRepository
	notificationRepo *mockRepo.MockNotificationRepository
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	service := NewNotificationService(NotificationServiceParams{
		UserRepo:         userRepo,
		NotificationRepo: notificationRepo,
		Logger:           newDiscardLogger(),
	})

	return notificationServiceFixtures{
		service:          service,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

func TestNotificationService_ListUnread_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}
	notifications := []*entity.Notification{
		{ID: uuid.New(), UserID: user.ID, Title: "Welcome", CreatedAt: time.Now()},
		{ID: uuid.New(), UserID: user.ID, Title: "Password changed", CreatedAt: time.Now().Add(-time.Hour)},
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.notificationRepo.EXPECT().FindUnreadByUserID(ctx, user.ID).Return(notifications, nil)

	found, err := fx.service.ListUnread(ctx, user.Email)

	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Welcome", found[0].Title)
}

func TestNotificationService_ListUnread_UnknownUser(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	found, err := fx.service.ListUnread(ctx, "nobody@example.com")

	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}
	notification := &entity.Notification{ID: uuid.New(), UserID: user.ID, Title: "Welcome"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.notificationRepo.EXPECT().FindNotificationByID(ctx, notification.ID).Return(notification, nil)
	fx.notificationRepo.EXPECT().MarkRead(ctx, notification.ID).Return(nil)

	err := fx.service.MarkRead(ctx, user.Email, notification.ID)

	require.NoError(t, err)
}

func TestNotificationService_MarkRead_OtherUsersNotification(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}
	foreign := &entity.Notification{ID: uuid.New(), UserID: uuid.New(), Title: "Welcome"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.notificationRepo.EXPECT().FindNotificationByID(ctx, foreign.ID).Return(foreign, nil)

	err := fx.service.MarkRead(ctx, user.Email, foreign.ID)

	// Ownership failures look identical to missing records.
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestNotificationService_MarkRead_UnknownNotification(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}
	missingID := uuid.New()

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, missingID).
		Return(nil, repository.ErrNotificationNotFound)

	err := fx.service.MarkRead(ctx, user.Email, missingID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestNotificationService_MarkAllRead_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.notificationRepo.EXPECT().MarkAllRead(ctx, user.ID).Return(nil)

	err := fx.service.MarkAllRead(ctx, user.Email)

	require.NoError(t, err)
}
