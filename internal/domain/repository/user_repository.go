// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence,
// including the lockout fields the login attempt policy mutates.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByEmailForUpdate retrieves a user by email while taking a row-level
	// lock on the user row. Callers must be inside a transaction; the lock
	// serializes concurrent read-then-write sequences over the same user's
	// lockout fields and refresh token set.
	FindByEmailForUpdate(ctx context.Context, email string) (*entity.User, error)

	// FindByIDForUpdate is FindByEmailForUpdate keyed by user ID.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}
