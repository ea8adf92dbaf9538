// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"

	"github.com/pkg/errors"
)

// lockoutPolicy is the brute-force failure-count state machine over a user's
// lockout fields. Callers must hold the user's row lock (FindByEmailForUpdate)
// so concurrent attempts never under-count failures.
type lockoutPolicy struct {
	threshold    int
	lockDuration time.Duration
	now          func() time.Time
}

func newLockoutPolicy(threshold int, lockDuration time.Duration) *lockoutPolicy {
	return &lockoutPolicy{
		threshold:    threshold,
		lockDuration: lockDuration,
		now:          time.Now,
	}
}

// tryAutoUnlock clears the lock lazily once the lock duration has elapsed.
// Returns true if the account is usable after the call.
func (p *lockoutPolicy) tryAutoUnlock(ctx context.Context, userRepo repository.UserRepository, user *entity.User) (bool, error) {
	if !user.AccountLocked {
		return true, nil
	}

	if user.LockTime == nil || p.now().Sub(*user.LockTime) < p.lockDuration {
		return false, nil
	}

	user.AccountLocked = false
	user.LockTime = nil
	user.FailedAttempts = 0
	if err := userRepo.Update(ctx, user); err != nil {
		return false, errors.Wrap(err, "failed to persist auto unlock")
	}

	return true, nil
}

// recordFailure increments the failure count and locks the account when the
// threshold is reached. A threshold of zero disables locking. Returns true if
// this failure caused the lock.
func (p *lockoutPolicy) recordFailure(ctx context.Context, userRepo repository.UserRepository, user *entity.User) (bool, error) {
	user.FailedAttempts++

	locked := false
	if p.threshold > 0 && user.FailedAttempts >= p.threshold {
		lockTime := p.now()
		user.AccountLocked = true
		user.LockTime = &lockTime
		locked = true
	}

	if err := userRepo.Update(ctx, user); err != nil {
		return false, errors.Wrap(err, "failed to persist login failure")
	}

	return locked, nil
}

// recordSuccess resets the failure count after a correct password.
func (p *lockoutPolicy) recordSuccess(ctx context.Context, userRepo repository.UserRepository, user *entity.User) error {
	if user.FailedAttempts == 0 {
		return nil
	}

	user.FailedAttempts = 0
	if err := userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to persist login success")
	}

	return nil
}

// remainingLock reports how much of the lock duration is left, floored at zero.
func (p *lockoutPolicy) remainingLock(user *entity.User) time.Duration {
	if user.LockTime == nil {
		return 0
	}

	remaining := p.lockDuration - p.now().Sub(*user.LockTime)
	if remaining < 0 {
		return 0
	}

	return remaining
}
