package model

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetOtpModel mirrors the 'password_reset_otps' table.
// At most one live OTP exists per user; generation deletes any prior rows.
type PasswordResetOtpModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Code      string    `gorm:"type:varchar(6);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PasswordResetOtpModel) TableName() string {
	return "password_reset_otps"
}
