package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v4().
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	Role           string    `gorm:"type:varchar(20);not null;default:'user'"`
	FailedAttempts int       `gorm:"not null;default:0"`
	AccountLocked  bool      `gorm:"not null;default:false"`
	LockTime       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	RefreshTokens []RefreshTokenModel     `gorm:"foreignKey:UserID"`
	ResetOtps     []PasswordResetOtpModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
