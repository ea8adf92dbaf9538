package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"
	"ledger/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// otpLifetime is how long a password reset code stays valid.
const otpLifetime = 10 * time.Minute

// passwordResetService implements the PasswordResetUsecase interface.
type passwordResetService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	notifier  service.NotificationSink
	logger    *slog.Logger
}

// PasswordResetServiceParams holds dependencies for passwordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Notifier  service.NotificationSink
	Logger    *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	return &passwordResetService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		notifier:  params.Notifier,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ForgotPassword issues a fresh reset code for the account and dispatches it.
// Any previously issued code for the account becomes unusable.
func (srv *passwordResetService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	var event service.AccountEvent

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		otpRepo := repoFactory.OtpRepo()

		user, err := userRepo.FindByEmailForUpdate(ctx, input.Email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to load account")
		}

		if err := otpRepo.DeleteOtpsByUserID(ctx, user.ID); err != nil {
			return err
		}

		code, err := generateOtpCode()
		if err != nil {
			return errors.Wrap(err, "failed to generate reset code")
		}

		otp := &entity.PasswordResetOtp{
			UserID:    user.ID,
			Code:      code,
			ExpiresAt: time.Now().Add(otpLifetime),
		}
		if err := otpRepo.CreateOtp(ctx, otp); err != nil {
			return err
		}

		event = service.AccountEvent{
			UserID: user.ID,
			Email:  user.Email,
			Title:  "Password reset code",
			Message: fmt.Sprintf("Your password reset code is %s. It expires in %d minutes.",
				code, int(otpLifetime.Minutes())),
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Forgot password failed", slog.String("email", input.Email), slog.Any("error", err))

		return err
	}

	srv.notifier.Dispatch(ctx, event)

	srv.log(ctx).Info("Password reset code issued", slog.Any("userID", event.UserID))

	return nil
}

// ResetPassword consumes a valid reset code, replaces the account password,
// and revokes every refresh token so existing sessions end.
func (srv *passwordResetService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return err
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	var event service.AccountEvent

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		otpRepo := repoFactory.OtpRepo()
		tokenRepo := repoFactory.RefreshTokenRepo()

		user, err := userRepo.FindByEmailForUpdate(ctx, input.Email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to load account")
		}

		otp, err := otpRepo.FindOtpByCodeAndUserID(ctx, input.Otp, user.ID)
		if errors.Is(err, repository.ErrOtpNotFound) {
			return domainerrors.ErrInvalidToken
		}
		if err != nil {
			return errors.Wrap(err, "failed to look up reset code")
		}

		// An expired code is never consumable. It stays behind until the next
		// ForgotPassword call sweeps it.
		if otp.Expired(time.Now()) {
			return domainerrors.ErrInvalidToken.WithDetails("OTP expired")
		}

		// Single use: consume the code before touching the password.
		if err := otpRepo.DeleteOtp(ctx, otp.ID); err != nil {
			return err
		}

		user.PasswordHash = passwordHash
		if err := userRepo.Update(ctx, user); err != nil {
			return err
		}

		if err := tokenRepo.DeleteRefreshTokensByUserID(ctx, user.ID); err != nil {
			return err
		}

		event = service.AccountEvent{
			UserID:  user.ID,
			Email:   user.Email,
			Title:   "Password changed",
			Message: "Your password was changed. All active sessions have been signed out.",
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.String("email", input.Email), slog.Any("error", err))

		return err
	}

	srv.notifier.Dispatch(ctx, event)

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", event.UserID))

	return nil
}

// generateOtpCode produces a 6 digit zero padded numeric code.
func generateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
