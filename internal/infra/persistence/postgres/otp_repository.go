// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// otpRepository implements the repository.OtpRepository interface using GORM.
type otpRepository struct {
	db *gorm.DB
}

// NewOtpRepository is the constructor for otpRepository.
func NewOtpRepository(db *gorm.DB) repository.OtpRepository {
	return &otpRepository{db: db}
}

// CreateOtp persists a new password-reset OTP.
func (repo *otpRepository) CreateOtp(ctx context.Context, otp *entity.PasswordResetOtp) error {
	otpM := fromOtpDomain(otp)

	if err := repo.db.WithContext(ctx).Create(otpM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("otp references unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create otp")
	}

	otp.ID = otpM.ID
	otp.CreatedAt = otpM.CreatedAt

	return nil
}

// FindOtpByCodeAndUserID retrieves the OTP matching the code and user, if any.
func (repo *otpRepository) FindOtpByCodeAndUserID(ctx context.Context, code string, userID uuid.UUID) (*entity.PasswordResetOtp, error) {
	var otpM model.PasswordResetOtpModel

	if err := repo.db.WithContext(ctx).
		Where("code = ? AND user_id = ?", code, userID).
		First(&otpM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOtpNotFound
		}

		return nil, errors.Wrap(err, "failed to find otp by code and user")
	}

	return toOtpDomain(&otpM), nil
}

// DeleteOtp removes a single OTP record, consuming it.
func (repo *otpRepository) DeleteOtp(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PasswordResetOtpModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete otp")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOtpNotFound
	}

	return nil
}

// DeleteOtpsByUserID removes all OTPs for a user so that at most one active
// code exists after a new one is generated.
func (repo *otpRepository) DeleteOtpsByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.PasswordResetOtpModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete otps by user")
	}

	return nil
}

// --- Mapper Functions ---

func toOtpDomain(data *model.PasswordResetOtpModel) *entity.PasswordResetOtp {
	if data == nil {
		return nil
	}

	return &entity.PasswordResetOtp{
		ID:        data.ID,
		UserID:    data.UserID,
		Code:      data.Code,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromOtpDomain(data *entity.PasswordResetOtp) *model.PasswordResetOtpModel {
	if data == nil {
		return nil
	}

	return &model.PasswordResetOtpModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Code:      data.Code,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
