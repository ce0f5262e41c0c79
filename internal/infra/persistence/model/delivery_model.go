package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliveryModel is the GORM-specific struct for the 'deliveries' table.
type DeliveryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	DriverID     uuid.UUID `gorm:"type:uuid;not null;index"`
	AddressID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pendiente';index"`
	Notes        string    `gorm:"type:text"`
	Modifiable   bool      `gorm:"not null;default:true"`
	PackageCount int       `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}

// RouteDeliveryModel is the GORM-specific struct for the 'route_deliveries'
// table, binding a route, a delivery and the stop it is served from.
type RouteDeliveryModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	RouteID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_route_deliveries_route_delivery"`
	DeliveryID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_route_deliveries_route_delivery"`
	RouteStopID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pendiente'"`
	FailureReason string    `gorm:"type:text"`
	AssignedAt    *time.Time
	AttemptedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (RouteDeliveryModel) TableName() string {
	return "route_deliveries"
}

// DeliveryAttemptModel is the GORM-specific struct for the
// 'delivery_attempts' table. Rows are append-only.
type DeliveryAttemptModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	DeliveryID      uuid.UUID `gorm:"type:uuid;not null;index"`
	RouteDeliveryID uuid.UUID `gorm:"type:uuid;not null;index"`
	DriverID        uuid.UUID `gorm:"type:uuid;not null;index"`
	PreviousStatus  string    `gorm:"type:varchar(20);not null"`
	NewStatus       string    `gorm:"type:varchar(20);not null"`
	Reason          string    `gorm:"type:text"`
	Latitude        *float64  `gorm:"type:decimal(10,8)"`
	Longitude       *float64  `gorm:"type:decimal(11,8)"`
	AttachmentKeys  []byte    `gorm:"type:jsonb"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryAttemptModel) TableName() string {
	return "delivery_attempts"
}

// BeforeUpdate blocks updates: attempt rows are immutable once written.
func (DeliveryAttemptModel) BeforeUpdate(_ *gorm.DB) error {
	return gorm.ErrInvalidData
}
