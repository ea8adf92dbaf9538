// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single ledger account holder.
// Besides identity it carries the brute-force lockout state that the login attempt
// policy mutates on every failed or successful password check.
type User struct {
	ID             uuid.UUID  // The unique identifier for the user.
	Name           string     // The user's display name.
	Email          string     // The user's email, unique and used as the login identifier.
	PasswordHash   string     // The bcrypt hash of the user's password.
	Role           Role       // The user's role (user or admin).
	FailedAttempts int        // Consecutive failed login attempts since the last success.
	AccountLocked  bool       // Whether the account is currently locked out.
	LockTime       *time.Time // When the lock was applied. Set iff AccountLocked is true.
	CreatedAt      time.Time  // Timestamp of when this account was created.
	UpdatedAt      time.Time  // Timestamp of the last modification to this account.
}
