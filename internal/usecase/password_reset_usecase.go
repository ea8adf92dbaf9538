package usecase

import "context"

// ForgotPasswordInput identifies the account requesting a reset code.
type ForgotPasswordInput struct {
	Email string
}

// ResetPasswordInput carries the OTP challenge answer and the new password.
type ResetPasswordInput struct {
	Email       string
	Otp         string
	NewPassword string
}

// PasswordResetUsecase drives the two-step OTP password reset flow.
type PasswordResetUsecase interface {
	// ForgotPassword generates a fresh OTP for the account, superseding any
	// prior code, and emails it to the account address.
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error

	// ResetPassword verifies the OTP, consumes it, replaces the password, and
	// revokes every active session for the account.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
