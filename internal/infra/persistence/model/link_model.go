package model

import (
	"time"

	"github.com/google/uuid"
)

// ManagerDriverLinkModel is the GORM-specific struct for the
// 'manager_driver_links' table. Unique per (manager, driver) pair.
type ManagerDriverLinkModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ManagerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_links_manager_driver"`
	DriverID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_links_manager_driver"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ManagerDriverLinkModel) TableName() string {
	return "manager_driver_links"
}

// LinkCodeModel is the GORM-specific struct for the 'link_codes' table.
// Rows are deleted on redemption.
type LinkCodeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ManagerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Code      string    `gorm:"type:varchar(16);not null;uniqueIndex"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (LinkCodeModel) TableName() string {
	return "link_codes"
}
