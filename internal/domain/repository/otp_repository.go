// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOtpNotFound is returned when no OTP matches the (code, user) pair.
var ErrOtpNotFound = errors.New("password reset otp not found")

// OtpRepository defines the interface for password-reset OTP persistence.
type OtpRepository interface {
	// CreateOtp persists a new OTP for a user.
	CreateOtp(ctx context.Context, otp *entity.PasswordResetOtp) error

	// FindOtpByCodeAndUserID retrieves the OTP matching the code and user, if any.
	FindOtpByCodeAndUserID(ctx context.Context, code string, userID uuid.UUID) (*entity.PasswordResetOtp, error)

	// DeleteOtp removes a single OTP record, consuming it.
	DeleteOtp(ctx context.Context, id uuid.UUID) error

	// DeleteOtpsByUserID removes all OTPs for a user. Called before generating a
	// new code so at most one active OTP exists per user.
	DeleteOtpsByUserID(ctx context.Context, userID uuid.UUID) error
}
