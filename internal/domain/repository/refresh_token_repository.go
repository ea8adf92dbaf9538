// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the interface for refresh token persistence.
// The single-live-token-per-user invariant is enforced by the use case layer:
// it deletes all prior tokens for a user (under that user's row lock) before
// inserting a replacement.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a refresh token record by its securely stored hash.
	// It returns the record regardless of revocation or expiry; liveness is the
	// caller's decision so that expired tokens can still be revoked for audit.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// FindLiveTokenByUserID retrieves the single live (not revoked, not expired)
	// refresh token for a user, or ErrRefreshTokenNotFound if none exists.
	FindLiveTokenByUserID(ctx context.Context, userID uuid.UUID) (*entity.RefreshToken, error)

	// RevokeRefreshToken marks a token as revoked. The record is kept as an
	// audit trail rather than hard-deleted. Revoking an already revoked token
	// is a no-op.
	RevokeRefreshToken(ctx context.Context, id uuid.UUID) error

	// DeleteRefreshTokensByUserID removes all refresh tokens for a specific user.
	// Called before inserting a replacement token to enforce the single active
	// session policy.
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error
}
