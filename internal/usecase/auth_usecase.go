// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ledger/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshInput carries the opaque refresh token value presented for rotation.
type RefreshInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token value to revoke.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated token pair after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // Access token lifetime in seconds.
	User         *entity.User
}

// RefreshOutput returns the rotated token pair.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // Access token lifetime in seconds.
}

// AuthUsecase defines the interface for account authentication and session
// lifecycle operations. This is the contract the delivery layer depends on.
type AuthUsecase interface {
	// Register creates a new account and emits a welcome notification.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials under the brute-force lockout policy and
	// returns an access token plus a refresh token. A live session keeps its
	// remaining lifetime; only the opaque token value is reissued.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Refresh rotates a live refresh token: the presented token is revoked and
	// a replacement is minted along with a fresh access token.
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)

	// Logout revokes the presented refresh token. It is idempotent: unknown,
	// expired, or already revoked tokens succeed without effect.
	Logout(ctx context.Context, input *LogoutInput) error

	// GetCurrentUser resolves the authenticated account by the email subject
	// extracted from a verified access token.
	GetCurrentUser(ctx context.Context, email string) (*entity.User, error)
}
