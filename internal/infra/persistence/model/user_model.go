package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email            string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name             string     `gorm:"type:varchar(255);not null"`
	CurrentRole      string     `gorm:"type:varchar(20);not null;default:'Conductor'"`
	IsPremium        bool       `gorm:"not null;default:false"`
	PremiumStartedAt *time.Time `gorm:"type:date"`
	PremiumExpiresAt *time.Time `gorm:"type:date"`
	DeviceToken      string     `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
