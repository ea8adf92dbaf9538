package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger/config"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 30 * 24 * time.Hour,
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{}

	_, err := NewJWTService(cfg)
	require.Error(t, err)
}

func TestJWTService_IssueAndExtractSubject(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.Issue("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.ExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", subject)
}

func TestJWTService_Validate(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.Issue("alice@example.com")
	require.NoError(t, err)

	ok, err := svc.Validate(token, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Validate(token, "mallory@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJWTService_Validate_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)

	issuedAt := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return issuedAt }
	token, err := svc.Issue("alice@example.com")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Validate(token, "alice@example.com")
	require.Error(t, err)
}

func TestJWTService_Validate_RejectsForeignSignature(t *testing.T) {
	svc := newTestJWTService(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "another-secret"
	otherCfg.Auth = &config.AuthConfig{AccessTokenTTL: 15 * time.Minute}
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.Issue("alice@example.com")
	require.NoError(t, err)

	_, err = svc.Validate(token, "alice@example.com")
	require.Error(t, err)
}

func TestJWTService_NewRefreshTokenValue_Unique(t *testing.T) {
	svc := newTestJWTService(t)

	seen := make(map[string]struct{})
	for range 32 {
		value := svc.NewRefreshTokenValue()
		require.NotEmpty(t, value)
		_, dup := seen[value]
		require.False(t, dup)
		seen[value] = struct{}{}
	}
}

func TestJWTService_HashToken_Deterministic(t *testing.T) {
	svc := newTestJWTService(t)

	value := svc.NewRefreshTokenValue()
	first := svc.HashToken(value)
	second := svc.HashToken(value)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, svc.HashToken(value+"x"))
}
