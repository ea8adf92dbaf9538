package impl

import (
	"context"
	"regexp"
	"testing"
	"time"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"
	mockRepo "ledger/internal/mocks/repository"
	mockSvc "ledger/internal/mocks/service"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// passwordResetFixtures holds all test dependencies for password reset tests.
type passwordResetFixtures struct {
	service   usecase.PasswordResetUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockSvc.MockPasswordHasher
	notifier  *mockSvc.MockNotificationSink
}

func createTestPasswordResetService(t *testing.T) passwordResetFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	notifier := mockSvc.NewMockNotificationSink(t)

	service := NewPasswordResetService(PasswordResetServiceParams{
		TxManager: txManager,
		Hasher:    hasher,
		Notifier:  notifier,
		Logger:    newDiscardLogger(),
	})

	return passwordResetFixtures{
		service:   service,
		txManager: txManager,
		hasher:    hasher,
		notifier:  notifier,
	}
}

func TestPasswordResetService_ForgotPassword_IssuesCode(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}
	codePattern := regexp.MustCompile(`^\d{6}$`)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOtpRepo := mockRepo.NewMockOtpRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OtpRepo().Return(mockOtpRepo)

			mockUserRepo.EXPECT().FindByEmailForUpdate(ctx, user.Email).Return(user, nil)

			// Any prior code is swept so at most one is active.
			mockOtpRepo.EXPECT().DeleteOtpsByUserID(ctx, user.ID).Return(nil)
			mockOtpRepo.EXPECT().
				CreateOtp(ctx, mock.AnythingOfType("*entity.PasswordResetOtp")).
				Run(func(ctx context.Context, otp *entity.PasswordResetOtp) {
					assert.Equal(t, user.ID, otp.UserID)
					assert.Regexp(t, codePattern, otp.Code)
					assert.WithinDuration(t, time.Now().Add(10*time.Minute), otp.ExpiresAt, 5*time.Second)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.notifier.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("service.AccountEvent")).
		Run(func(ctx context.Context, event service.AccountEvent) {
			assert.Equal(t, user.Email, event.Email)
			assert.Regexp(t, `\d{6}`, event.Message)
		}).
		Return()

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: user.Email})

	require.NoError(t, err)
}

func TestPasswordResetService_ForgotPassword_UnknownEmail(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOtpRepo := mockRepo.NewMockOtpRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OtpRepo().Return(mockOtpRepo)

			mockUserRepo.EXPECT().
				FindByEmailForUpdate(ctx, "nobody@example.com").
				Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUserNotFound)

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "nobody@example.com"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestPasswordResetService_ResetPassword_Success(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", PasswordHash: "old-hash"}
	otp := &entity.PasswordResetOtp{
		ID:        uuid.New(),
		UserID:    user.ID,
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
	input := &usecase.ResetPasswordInput{
		Email:       user.Email,
		Otp:         otp.Code,
		NewPassword: "NewPassword123",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.NewPassword).Return(nil)
	fx.hasher.EXPECT().Hash(input.NewPassword).Return("new-hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOtpRepo := mockRepo.NewMockOtpRepository(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OtpRepo().Return(mockOtpRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockTokenRepo)

			mockUserRepo.EXPECT().FindByEmailForUpdate(ctx, user.Email).Return(user, nil)
			mockOtpRepo.EXPECT().FindOtpByCodeAndUserID(ctx, otp.Code, user.ID).Return(otp, nil)
			mockOtpRepo.EXPECT().DeleteOtp(ctx, otp.ID).Return(nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, updated *entity.User) {
					assert.Equal(t, "new-hash", updated.PasswordHash)
				}).
				Return(nil)

			// Every active session ends with the password change.
			mockTokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, user.ID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.notifier.EXPECT().Dispatch(ctx, mock.AnythingOfType("service.AccountEvent")).Return()

	err := fx.service.ResetPassword(ctx, input)

	require.NoError(t, err)
}

func TestPasswordResetService_ResetPassword_WrongCode(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}
	input := &usecase.ResetPasswordInput{
		Email:       user.Email,
		Otp:         "000000",
		NewPassword: "NewPassword123",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.NewPassword).Return(nil)
	fx.hasher.EXPECT().Hash(input.NewPassword).Return("new-hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOtpRepo := mockRepo.NewMockOtpRepository(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OtpRepo().Return(mockOtpRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockTokenRepo)

			mockUserRepo.EXPECT().FindByEmailForUpdate(ctx, user.Email).Return(user, nil)
			mockOtpRepo.EXPECT().
				FindOtpByCodeAndUserID(ctx, "000000", user.ID).
				Return(nil, repository.ErrOtpNotFound)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
		}).
		Return(domainerrors.ErrInvalidToken)

	err := fx.service.ResetPassword(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestPasswordResetService_ResetPassword_ExpiredCode(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}
	otp := &entity.PasswordResetOtp{
		ID:        uuid.New(),
		UserID:    user.ID,
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	input := &usecase.ResetPasswordInput{
		Email:       user.Email,
		Otp:         otp.Code,
		NewPassword: "NewPassword123",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.NewPassword).Return(nil)
	fx.hasher.EXPECT().Hash(input.NewPassword).Return("new-hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOtpRepo := mockRepo.NewMockOtpRepository(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OtpRepo().Return(mockOtpRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockTokenRepo)

			mockUserRepo.EXPECT().FindByEmailForUpdate(ctx, user.Email).Return(user, nil)
			mockOtpRepo.EXPECT().FindOtpByCodeAndUserID(ctx, otp.Code, user.ID).Return(otp, nil)

			err := fn(mockFactory)
			require.Error(t, err)
			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, domainerrors.ErrInvalidToken.ErrorCode(), appErr.ErrorCode())
			assert.Equal(t, "OTP expired", appErr.Details())
		}).
		Return(domainerrors.ErrInvalidToken.WithDetails("OTP expired"))

	err := fx.service.ResetPassword(ctx, input)

	require.Error(t, err)
}

func TestPasswordResetService_ResetPassword_WeakPassword(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	input := &usecase.ResetPasswordInput{
		Email:       "test@example.com",
		Otp:         "123456",
		NewPassword: "weak",
	}

	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.NewPassword).
		Return(domainerrors.ErrPasswordStrength)

	err := fx.service.ResetPassword(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestGenerateOtpCode_SixDigitsZeroPadded(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)

	for range 64 {
		code, err := generateOtpCode()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
	}
}
