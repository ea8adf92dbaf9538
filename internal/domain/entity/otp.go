// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetOtp is a short-lived, single-use challenge mailed to a user to
// authorize a password reset. Generating a new OTP supersedes any prior one for
// the same user, and a successful verification consumes it immediately.
type PasswordResetOtp struct {
	ID        uuid.UUID // The unique ID for this OTP record.
	UserID    uuid.UUID // The user this challenge belongs to.
	Code      string    // Six-digit, zero-padded numeric code delivered out-of-band.
	ExpiresAt time.Time // Creation time plus the fixed OTP lifetime (10 minutes).
	CreatedAt time.Time // Timestamp of when this OTP was generated.
}

// Expired reports whether the OTP's lifetime has elapsed at the supplied clock reading.
func (o *PasswordResetOtp) Expired(now time.Time) bool {
	return o.ExpiresAt.Before(now)
}
