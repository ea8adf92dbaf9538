package handler

import (
	"log/slog"
	"net/http"
	"time"

	"ledger/internal/delivery/http/response"
	"ledger/internal/domain/entity"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for in-app notification handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

type notificationView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func toNotificationViews(notifications []*entity.Notification) []notificationView {
	views := make([]notificationView, 0, len(notifications))
	for _, n := range notifications {
		views = append(views, notificationView{
			ID:        n.ID.String(),
			Title:     n.Title,
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		})
	}

	return views
}

func authenticatedEmail(c echo.Context) (string, bool) {
	email, ok := c.Get("userEmail").(string)

	return email, ok && email != ""
}

// ListUnread returns the authenticated account's unread notifications.
func (h *NotificationHandler) ListUnread(c echo.Context) error {
	email, ok := authenticatedEmail(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authenticated identity")
	}

	notifications, err := h.uc.ListUnread(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toNotificationViews(notifications), "Notifications retrieved successfully")
}

// MarkRead marks a single notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	email, ok := authenticatedEmail(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authenticated identity")
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification ID")
	}

	if err := h.uc.MarkRead(c.Request().Context(), email, notificationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification marked as read"}, "Notification marked as read")
}

// MarkAllRead marks every unread notification for the account as read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	email, ok := authenticatedEmail(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authenticated identity")
	}

	if err := h.uc.MarkAllRead(c.Request().Context(), email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "All notifications marked as read"}, "Notifications marked as read")
}
