package entity

import (
	"time"

	"github.com/google/uuid"
)

// GeocodeEntry caches the coordinates the external provider returned for one
// building. Keyed by building hash, created lazily on the first miss and
// immutable afterwards; entries never expire.
type GeocodeEntry struct {
	ID           uuid.UUID // The unique identifier for the cache entry.
	BuildingHash string    // Building hash the entry is keyed by; unique.
	Latitude     float64   // Geocoded latitude.
	Longitude    float64   // Geocoded longitude.
	Provider     string    // Name of the provider that produced the coordinates.
	RawResponse  []byte    // Raw provider response body, kept for auditing.
	CreatedAt    time.Time // Timestamp of creation.
}
