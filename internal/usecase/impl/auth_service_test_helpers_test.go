package impl

import (
	"io"
	"log/slog"
	"time"

	"ledger/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(lockoutThreshold int, lockDuration time.Duration) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:       12,
			LockoutThreshold: lockoutThreshold,
			LockDuration:     lockDuration,
			AccessTokenTTL:   15 * time.Minute,
			RefreshTokenTTL:  30 * 24 * time.Hour,
		},
	}
}
