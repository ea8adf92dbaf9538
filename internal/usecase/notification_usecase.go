package usecase

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase exposes a user's in-app notification feed.
type NotificationUsecase interface {
	// ListUnread returns the user's unread notifications, newest first.
	ListUnread(ctx context.Context, email string) ([]*entity.Notification, error)

	// MarkRead marks one of the user's notifications as read. Notifications
	// belonging to other users are rejected.
	MarkRead(ctx context.Context, email string, notificationID uuid.UUID) error

	// MarkAllRead marks all of the user's unread notifications as read.
	MarkAllRead(ctx context.Context, email string) error
}
