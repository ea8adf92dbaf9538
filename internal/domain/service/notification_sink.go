package service

import (
	"context"

	"github.com/google/uuid"
)

// AccountEvent is a security-relevant account message delivered to a user as an
// in-app notification plus a best-effort email copy.
type AccountEvent struct {
	UserID  uuid.UUID // Addressee.
	Email   string    // Destination address for the email copy. Empty skips email.
	Title   string    // Headline / email subject.
	Message string    // Body.
}

// NotificationSink accepts account events for asynchronous delivery.
// Dispatch is fire-and-forget: it never blocks the caller and never surfaces a
// delivery failure into the primary operation. Delivery is best-effort,
// at-most-once; when the internal queue is full the event is dropped.
type NotificationSink interface {
	Dispatch(ctx context.Context, event AccountEvent)
}
