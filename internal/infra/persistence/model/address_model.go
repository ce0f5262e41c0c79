package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// One row per deliverable unit, deduplicated by unit hash.
type AddressModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	GeocodeEntryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Street         string    `gorm:"type:varchar(255);not null"`
	Number         string    `gorm:"type:varchar(20);not null"`
	Floor          string    `gorm:"type:varchar(20)"`
	Apartment      string    `gorm:"type:varchar(20)"`
	City           string    `gorm:"type:varchar(100);not null"`
	Region         string    `gorm:"type:varchar(100);not null"`
	Country        string    `gorm:"type:varchar(100);not null"`
	PostalCode     string    `gorm:"type:varchar(20)"`
	NormalizedText string    `gorm:"type:text;not null"`
	UnitHash       string    `gorm:"type:char(64);not null;uniqueIndex"`
	BuildingHash   string    `gorm:"type:char(64);not null;index"`
	PackageCount   int       `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
