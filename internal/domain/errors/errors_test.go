package errors_test

import (
	"testing"

	domainerrors "ledger/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetails_MatchesCatalogEntry(t *testing.T) {
	detailed := domainerrors.ErrAccountLocked.WithDetails("try again in 30m0s")

	assert.True(t, errors.Is(detailed, domainerrors.ErrAccountLocked))
	assert.Equal(t, "try again in 30m0s", detailed.Details())
	assert.Equal(t, domainerrors.ErrAccountLocked.ErrorCode(), detailed.ErrorCode())
}

func TestBaseError_Is_DistinguishesErrorCodes(t *testing.T) {
	detailed := domainerrors.ErrAccountLocked.WithDetails("locked")

	assert.False(t, errors.Is(detailed, domainerrors.ErrInvalidCredentials))
	assert.False(t, errors.Is(detailed, errors.New("account is locked")))
}

func TestBaseError_Is_SurvivesWrapping(t *testing.T) {
	wrapped := errors.Wrap(domainerrors.ErrTokenExpired.WithDetails("rotated"), "refresh failed")

	assert.True(t, errors.Is(wrapped, domainerrors.ErrTokenExpired))
}
