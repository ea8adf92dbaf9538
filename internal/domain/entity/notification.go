// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message shown to a user, written by the async
// notification sink alongside the best-effort email copy.
type Notification struct {
	ID        uuid.UUID // The unique ID for this notification.
	UserID    uuid.UUID // The user this notification is addressed to.
	Title     string    // Short headline, also used as the email subject.
	Message   string    // Full notification body.
	Read      bool      // Whether the user has read this notification.
	CreatedAt time.Time // Timestamp of when this notification was created.
}
