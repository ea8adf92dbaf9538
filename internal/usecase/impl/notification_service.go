package impl

import (
	"context"
	"log/slog"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for notificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		userRepo:         params.UserRepo,
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *notificationService) resolveUser(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}

	return user, nil
}

// ListUnread returns the account's unread notifications, newest first.
func (srv *notificationService) ListUnread(ctx context.Context, email string) ([]*entity.Notification, error) {
	user, err := srv.resolveUser(ctx, email)
	if err != nil {
		return nil, err
	}

	notifications, err := srv.notificationRepo.FindUnreadByUserID(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkRead marks one of the account's notifications as read. A notification
// belonging to another account is reported as not found rather than forbidden,
// so IDs cannot be probed.
func (srv *notificationService) MarkRead(ctx context.Context, email string, notificationID uuid.UUID) error {
	user, err := srv.resolveUser(ctx, email)
	if err != nil {
		return err
	}

	notification, err := srv.notificationRepo.FindNotificationByID(ctx, notificationID)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to load notification")
	}

	if notification.UserID != user.ID {
		return domainerrors.ErrNotFound
	}

	if err := srv.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	srv.log(ctx).Debug("Notification marked read", slog.Any("notificationID", notificationID))

	return nil
}

// MarkAllRead marks every unread notification for the account as read.
func (srv *notificationService) MarkAllRead(ctx context.Context, email string) error {
	user, err := srv.resolveUser(ctx, email)
	if err != nil {
		return err
	}

	if err := srv.notificationRepo.MarkAllRead(ctx, user.ID); err != nil {
		return errors.Wrap(err, "failed to mark notifications read")
	}

	return nil
}
