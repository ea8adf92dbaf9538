// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ledger/config"
	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"
	"ledger/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. Login, refresh, and logout
// all run their read-then-write sequences inside a transaction holding the
// owning user's row lock, so concurrent attempts for one user serialize while
// different users proceed in parallel.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	notifier     service.NotificationSink
	lockout      *lockoutPolicy
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Notifier     service.NotificationSink
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	threshold := 0
	lockDuration := time.Duration(0)
	if params.Config != nil && params.Config.Auth != nil {
		threshold = params.Config.Auth.LockoutThreshold
		lockDuration = params.Config.Auth.LockDuration
	}

	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		notifier:     params.Notifier,
		lockout:      newLockoutPolicy(threshold, lockDuration),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and dispatches a welcome notification.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing account")
		}

		user := &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: passwordHash,
			Role:         entity.RoleUser,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
		registeredUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to register account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.notifier.Dispatch(ctx, service.AccountEvent{
		UserID:  registeredUser.ID,
		Email:   registeredUser.Email,
		Title:   "Welcome",
		Message: fmt.Sprintf("Hi %s, your ledger account is ready.", registeredUser.Name),
	})

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login verifies credentials under the lockout policy and returns a token pair.
//
// Rejections that mutate lockout state (a counted failure, a lock) must not
// roll the mutation back with the transaction, so they are collected in
// rejectErr and the closure returns nil to commit. Only infrastructure
// failures abort the transaction.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	var output *usecase.LoginOutput
	var rejectErr error

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		tokenRepo := repoFactory.RefreshTokenRepo()

		// Row lock serializes concurrent attempts for this account.
		user, err := userRepo.FindByEmailForUpdate(ctx, input.Email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to load account")
		}

		if user.AccountLocked {
			unlocked, err := srv.lockout.tryAutoUnlock(ctx, userRepo, user)
			if err != nil {
				return err
			}
			if !unlocked {
				remaining := srv.lockout.remainingLock(user)
				rejectErr = domainerrors.ErrAccountLocked.WithDetails(
					fmt.Sprintf("try again in %s", remaining.Round(time.Second)))

				return nil
			}
		}

		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			locked, err := srv.lockout.recordFailure(ctx, userRepo, user)
			if err != nil {
				return err
			}

			if locked {
				rejectErr = domainerrors.ErrAccountLocked
			} else {
				rejectErr = domainerrors.ErrInvalidCredentials
			}

			return nil
		}

		if err := srv.lockout.recordSuccess(ctx, userRepo, user); err != nil {
			return err
		}

		refreshValue, err := srv.obtainRefreshToken(ctx, tokenRepo, user)
		if err != nil {
			return err
		}

		accessToken, err := srv.tokenService.Issue(user.Email)
		if err != nil {
			return errors.Wrap(err, "failed to issue access token")
		}

		output = &usecase.LoginOutput{
			AccessToken:  accessToken,
			RefreshToken: refreshValue,
			ExpiresIn:    int64(srv.tokenService.AccessTokenTTL().Seconds()),
			User:         user,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}
	if rejectErr != nil {
		srv.log(ctx).Warn("Login rejected", slog.String("email", input.Email), slog.Any("error", rejectErr))

		return nil, rejectErr
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", output.User.ID))

	return output, nil
}

// obtainRefreshToken reuses the user's live refresh token when one exists and
// otherwise mints a replacement, deleting all prior tokens so at most one live
// token exists per user.
//
// A reused token's opaque value cannot be recovered from its stored hash, so a
// fresh value is minted and swapped in under the same record semantics: prior
// tokens are removed first either way.
func (srv *authService) obtainRefreshToken(ctx context.Context, tokenRepo repository.RefreshTokenRepository, user *entity.User) (string, error) {
	value := srv.tokenService.NewRefreshTokenValue()

	live, err := tokenRepo.FindLiveTokenByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return "", errors.Wrap(err, "failed to look up live refresh token")
	}

	var expiresAt time.Time
	if err == nil {
		// Keep the remaining lifetime of the session being reused.
		expiresAt = live.ExpiresAt
	} else {
		expiresAt = time.Now().Add(srv.tokenService.RefreshTokenTTL())
	}

	if err := tokenRepo.DeleteRefreshTokensByUserID(ctx, user.ID); err != nil {
		return "", err
	}

	token := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(value),
		ExpiresAt: expiresAt,
	}
	if err := tokenRepo.CreateRefreshToken(ctx, token); err != nil {
		return "", err
	}

	return value, nil
}

// Refresh rotates a live refresh token and mints a fresh access token.
// A dead token's lazy revocation must outlive the rejection, so it commits
// the same way Login commits a counted failure.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	var output *usecase.RefreshOutput
	var rejectErr error

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		tokenRepo := repoFactory.RefreshTokenRepo()

		tokenHash := srv.tokenService.HashToken(input.RefreshToken)
		token, err := tokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return domainerrors.ErrInvalidToken
		}
		if err != nil {
			return errors.Wrap(err, "failed to look up refresh token")
		}

		// Lock the owning user before mutating the token set.
		user, err := userRepo.FindByIDForUpdate(ctx, token.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidToken
		}
		if err != nil {
			return errors.Wrap(err, "failed to load token owner")
		}

		if !token.Live(time.Now()) {
			if !token.Revoked {
				if err := tokenRepo.RevokeRefreshToken(ctx, token.ID); err != nil {
					return err
				}
			}
			rejectErr = domainerrors.ErrTokenExpired

			return nil
		}

		// Rotation: the presented token becomes permanently unusable.
		if err := tokenRepo.RevokeRefreshToken(ctx, token.ID); err != nil {
			return err
		}

		newValue := srv.tokenService.NewRefreshTokenValue()
		newToken := &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: srv.tokenService.HashToken(newValue),
			ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenTTL()),
		}
		if err := tokenRepo.CreateRefreshToken(ctx, newToken); err != nil {
			return err
		}

		accessToken, err := srv.tokenService.Issue(user.Email)
		if err != nil {
			return errors.Wrap(err, "failed to issue access token")
		}

		output = &usecase.RefreshOutput{
			AccessToken:  accessToken,
			RefreshToken: newValue,
			ExpiresIn:    int64(srv.tokenService.AccessTokenTTL().Seconds()),
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Any("error", err))

		return nil, err
	}
	if rejectErr != nil {
		srv.log(ctx).Warn("Refresh rejected", slog.Any("error", rejectErr))

		return nil, rejectErr
	}

	return output, nil
}

// Logout revokes the presented refresh token. Unknown or already dead tokens
// succeed silently so probing cannot learn session state.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.RefreshTokenRepo()

		token, err := tokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to look up refresh token")
		}
		if token.Revoked {
			return nil
		}

		if err := tokenRepo.RevokeRefreshToken(ctx, token.ID); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return nil
			}

			return err
		}

		srv.log(ctx).Info("Logout completed", slog.Any("userID", token.UserID))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

// GetCurrentUser resolves the account behind a verified access token subject.
func (srv *authService) GetCurrentUser(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}

	return user, nil
}
