package model

import (
	"time"

	"github.com/google/uuid"
)

// GeocodeEntryModel is the GORM-specific struct for the 'geocode_entries'
// table: the permanent geocode cache, one row per building hash.
type GeocodeEntryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	BuildingHash string    `gorm:"type:char(64);not null;uniqueIndex"`
	Latitude     float64   `gorm:"type:decimal(10,8);not null"`
	Longitude    float64   `gorm:"type:decimal(11,8);not null"`
	Provider     string    `gorm:"type:varchar(50);not null"`
	RawResponse  []byte    `gorm:"type:jsonb"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (GeocodeEntryModel) TableName() string {
	return "geocode_entries"
}
