// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a long-lived, server-tracked session credential.
// It is rotated on every use: presenting a token revokes it and mints a
// replacement, so at most one live token exists per user at any instant.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw token value; the raw value never touches the database.
	ExpiresAt time.Time // The exact time when this refresh token expires.
	Revoked   bool      // Set on logout, rotation, or expiry detection. Kept as an audit trail.
	CreatedAt time.Time // Timestamp of when this session was created.
}

// Live reports whether the token is still usable: not revoked and not expired
// relative to the supplied clock reading.
func (t *RefreshToken) Live(now time.Time) bool {
	return !t.Revoked && t.ExpiresAt.After(now)
}
