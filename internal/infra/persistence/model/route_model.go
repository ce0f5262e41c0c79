package model

import (
	"time"

	"github.com/google/uuid"
)

// RouteModel is the GORM-specific struct for the 'routes' table.
type RouteModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CreatedBy       *uuid.UUID `gorm:"type:uuid;index"`
	AssignedTo      *uuid.UUID `gorm:"type:uuid;index"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pendiente';index"`
	TotalDistanceM  float64    `gorm:"not null;default:0"`
	TotalDurationS  float64    `gorm:"not null;default:0"`
	EncodedPolyline string     `gorm:"type:text"`
	ReadOnly        bool       `gorm:"not null;default:false"`
	AssignedAt      *time.Time
	FinishedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (RouteModel) TableName() string {
	return "routes"
}

// RouteStopModel is the GORM-specific struct for the 'route_stops' table.
// StopOrder is 1-based and unique within a route.
type RouteStopModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	RouteID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_route_stops_route_order"`
	GeocodeEntryID uuid.UUID `gorm:"type:uuid;not null;index"`
	StopOrder      int       `gorm:"not null;uniqueIndex:idx_route_stops_route_order"`
	DistancePrevM  *float64
	DurationPrevS  *float64
	Visited        bool `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (RouteStopModel) TableName() string {
	return "route_stops"
}

// RouteLocationModel is the GORM-specific struct for the 'route_locations'
// table. One row per route, overwritten on every position report.
type RouteLocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	RouteID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null"`
	Longitude float64   `gorm:"type:decimal(11,8);not null"`
	Provider  string    `gorm:"type:varchar(50);not null;default:'gps'"`
	Accuracy  *float64
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RouteLocationModel) TableName() string {
	return "route_locations"
}
