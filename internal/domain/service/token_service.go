package service

import "time"

// TokenService defines the interface for the stateless access-token issuer and
// for generating the opaque refresh-token values tracked server-side.
// Access tokens are trusted until natural expiry; there is no revocation list,
// so revoking a session at the refresh-token layer does not invalidate an
// already-issued access token.
type TokenService interface {
	// Issue mints a signed access token whose subject is the user's email.
	Issue(subjectEmail string) (string, error)

	// Validate verifies the token's signature and expiry and checks that its
	// subject matches expectedSubject.
	Validate(tokenString, expectedSubject string) (bool, error)

	// ExtractSubject verifies the token and returns its subject email.
	ExtractSubject(tokenString string) (string, error)

	// NewRefreshTokenValue generates a fresh high-entropy opaque refresh-token value.
	NewRefreshTokenValue() string

	// HashToken returns the hash under which a refresh-token value is stored.
	HashToken(value string) string

	// AccessTokenTTL returns the fixed access-token lifetime.
	AccessTokenTTL() time.Duration

	// RefreshTokenTTL returns the configured refresh-token lifetime.
	RefreshTokenTTL() time.Duration
}
