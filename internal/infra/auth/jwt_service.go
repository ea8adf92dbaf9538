// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ledger/config"
	"ledger/internal/domain/service"
	"ledger/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Access tokens are stateless HS256 JWTs keyed by the account email; refresh
// tokens are opaque random values the caller stores server-side by hash.
type jwtService struct {
	accessSecret string
	accessTTL    time.Duration
	refreshTTL   time.Duration
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    cfg.Auth.AccessTokenTTL,
		refreshTTL:   cfg.Auth.RefreshTokenTTL,
		now:          time.Now,
	}, nil
}

// Issue creates a signed access token whose subject is the account email.
func (s *jwtService) Issue(subjectEmail string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": subjectEmail,
		"iat": now.Unix(),
		"exp": now.Add(s.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}

	return signed, nil
}

// Validate reports whether the token is well formed, unexpired, and bound to
// the expected subject. Signature and expiry failures return an error;
// a subject mismatch returns false with no error.
func (s *jwtService) Validate(tokenString string, expectedSubject string) (bool, error) {
	subject, err := s.ExtractSubject(tokenString)
	if err != nil {
		return false, err
	}

	return subject == expectedSubject, nil
}

// ExtractSubject parses and verifies the token, returning its subject claim.
func (s *jwtService) ExtractSubject(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", errors.Wrap(err, "parse access token")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", errors.Wrap(err, "extract subject claim")
	}

	return subject, nil
}

// NewRefreshTokenValue mints an opaque refresh token value. Two joined UUIDs
// give 256 bits of randomness while staying URL safe.
func (s *jwtService) NewRefreshTokenValue() string {
	return uuid.NewString() + "-" + uuid.NewString()
}

// HashToken returns the hex encoded SHA-256 of a token value. Only hashes are
// persisted so a database leak does not expose live refresh tokens.
func (s *jwtService) HashToken(value string) string {
	sum := sha256.Sum256([]byte(value))

	return hex.EncodeToString(sum[:])
}

// AccessTokenTTL returns the configured lifetime for access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// RefreshTokenTTL returns the configured lifetime for refresh tokens.
func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}
