package impl

import (
	"context"
	"testing"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"
	mockRepo "ledger/internal/mocks/repository"
	mockSvc "ledger/internal/mocks/service"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	notifier     *mockSvc.MockNotificationSink
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	notifier := mockSvc.NewMockNotificationSink(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Notifier:     notifier,
		Config:       newTestConfig(5, 30*time.Minute),
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		notifier:     notifier,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.notifier.EXPECT().Dispatch(ctx, mock.AnythingOfType("service.AccountEvent")).Return()

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "test@example.com", Password: "Password123"}
	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockTokenRepo)

			mockUserRepo.EXPECT().FindByEmailForUpdate(ctx, input.Email).Return(user, nil)
			fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)

			fx.tokenService.EXPECT().NewRefreshTokenValue().Return("raw-refresh-value")
			fx.tokenService.EXPECT().HashToken("raw-refresh-value").Return("refresh-hash")
			fx.tokenService.EXPECT().RefreshTokenTTL().Return(30 * 24 * time.Hour)

			mockTokenRepo.EXPECT().
				FindLiveTokenByUserID(ctx, user.ID).
				Return(nil, repository.ErrRefreshTokenNotFound)
			mockTokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, user.ID).Return(nil)
			mockTokenRepo.EXPECT().
				CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Run(func(ctx context.Context, token *entity.RefreshToken) {
					assert.Equal(t, user.ID, token.UserID)
					assert.Equal(t, "refresh-hash", token.TokenHash)
				}).
				Return(nil)

			fx.tokenService.EXPECT().Issue(user.Email).Return("access-token", nil)
			fx.tokenService.EXPECT().AccessTokenTTL().Return(15 * time.Minute)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "raw-refresh-value", output.RefreshToken)
	assert.Equal(t, int64(900), output.ExpiresIn)
}

func TestAuthService_Login_KeepsLiveSessionLifetime(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "test@example.com", Password: "Password123"}
	user := &entity.User{ID: uuid.New(), Email: input.Email, PasswordHash: "hashed_password"}
	liveExpiry := time.Now().Add(12 * 24 * time.Hour).Truncate(time.Second)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockTokenRepo)

			mockUserRepo.EXPECT().FindByEmailForUpdate(ctx, input.Email).Return(user, nil)
			fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)

			fx.tokenService.EXPECT().NewRefreshTokenValue().Return("raw-refresh-value")
			fx.tokenService.EXPECT().HashToken("raw-refresh-value").Return("refresh-hash")

			mockTokenRepo.EXPECT().
				FindLiveTokenByUserID(ctx, user.ID).
				Return(&entity.RefreshToken{
					ID:        uuid.New(),
					UserID:    user.ID,
					TokenHash: "old-hash",
					ExpiresAt: liveExpiry,
				}, nil)
			mockTokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, user.ID).Return(nil)
			mockTokenRepo.EXPECT().
				CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Run(func(ctx context.Context, token *entity.RefreshToken) {
					assert.True(t, token.ExpiresAt.Equal(liveExpiry))
				}).
				Return(nil)

			fx.tokenService.EXPECT().Issue(user.Email).Return("access-token", nil)
			fx.tokenService.EXPECT().AccessTokenTTL().Return(15 * time.Minute)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "raw-refresh-value", output.RefreshToken)
}

func TestAuthService_Login_AutoUnlockAfterLockDuration(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "test@example.com", Password: "Password123"}
	lockTime := time.Now().Add(-time.Hour)
	user := &entity.User{
		ID:             uuid.New(),
		Email:          input.Email,
		PasswordHash:   "hashed_password",
		FailedAttempts: 5,
		AccountLocked:  true,
		LockTime:       &lockTime,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockTokenRepo)

			mockUserRepo.EXPECT().FindByEmailForUpdate(ctx, input.Email).Return(user, nil)

			// The lazy unlock clears all lockout state in one write.
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, updated *entity.User) {
					assert.False(t, updated.AccountLocked)
					assert.Nil(t, updated.LockTime)
					assert.Zero(t, updated.FailedAttempts)
				}).
				Return(nil)

			fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)

			fx.tokenService.EXPECT().NewRefreshTokenValue().Return("raw-refresh-value")
			fx.tokenService.EXPECT().HashToken("raw-refresh-value").Return("refresh-hash")
			fx.tokenService.EXPECT().RefreshTokenTTL().Return(30 * 24 * time.Hour)

			mockTokenRepo.EXPECT().
				FindLiveTokenByUserID(ctx, user.ID).
				Return(nil, repository.ErrRefreshTokenNotFound)
			mockTokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, user.ID).Return(nil)
			mockTokenRepo.EXPECT().
				CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Return(nil)

			fx.tokenService.EXPECT().Issue(user.Email).Return("access-token", nil)
			fx.tokenService.EXPECT().AccessTokenTTL().Return(15 * time.Minute)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RefreshInput{RefreshToken: "raw-old-value"}
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com"}
	oldToken := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: "old-hash",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	fx.tokenService.EXPECT().HashToken("raw-old-value").Return("old-hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockTokenRepo)

			mockTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "old-hash").Return(oldToken, nil)
			mockUserRepo.EXPECT().FindByIDForUpdate(ctx, userID).Return(user, nil)

			mockTokenRepo.EXPECT().RevokeRefreshToken(ctx, oldToken.ID).Return(nil)

			fx.tokenService.EXPECT().NewRefreshTokenValue().Return("raw-new-value")
			fx.tokenService.EXPECT().HashToken("raw-new-value").Return("new-hash")
			fx.tokenService.EXPECT().RefreshTokenTTL().Return(30 * 24 * time.Hour)

			mockTokenRepo.EXPECT().
				CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Run(func(ctx context.Context, token *entity.RefreshToken) {
					assert.Equal(t, "new-hash", token.TokenHash)
					assert.Equal(t, userID, token.UserID)
				}).
				Return(nil)

			fx.tokenService.EXPECT().Issue(user.Email).Return("access-token", nil)
			fx.tokenService.EXPECT().AccessTokenTTL().Return(15 * time.Minute)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Refresh(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "raw-new-value", output.RefreshToken)
	assert.Equal(t, int64(900), output.ExpiresIn)
}

func TestAuthService_Logout_RevokesLiveToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	token := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		TokenHash: "live-hash",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	fx.tokenService.EXPECT().HashToken("raw-value").Return("live-hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockTokenRepo)

			mockTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "live-hash").Return(token, nil)
			mockTokenRepo.EXPECT().RevokeRefreshToken(ctx, token.ID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "raw-value"})

	require.NoError(t, err)
}

func TestAuthService_GetCurrentUser_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", Name: "Test User"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	found, err := fx.service.GetCurrentUser(ctx, user.Email)

	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, user.Name, found.Name)
}
