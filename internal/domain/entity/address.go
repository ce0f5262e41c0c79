package entity

import (
	"time"

	"github.com/google/uuid"
)

// AddressComponents is the structured form of a street address as returned by
// the geocoding provider's component breakdown. All hashing operates on these
// fields so that formatting noise in the display text never splits a building
// into two identities.
type AddressComponents struct {
	Route      string `json:"route"`                       // Street name.
	Number     string `json:"street_number"`               // Street number.
	Locality   string `json:"locality"`                    // City or town.
	Region     string `json:"administrative_area_level_1"` // Province or state.
	Country    string `json:"country"`                     // Country name.
	PostalCode string `json:"postal_code"`                 // Postal code, optional.
}

// Address is a physical delivery unit: one building plus an optional
// floor/apartment. Two ingested entries with the same unit hash are the same
// Address and are never duplicated. Immutable after creation except for its
// linkage to a geocode cache entry.
type Address struct {
	ID             uuid.UUID // The unique identifier for the address.
	GeocodeEntryID uuid.UUID // The geocode cache entry shared by every unit in this building.
	Street         string    // Street name.
	Number         string    // Street number.
	Floor          string    // Floor, empty when not applicable.
	Apartment      string    // Apartment, empty when not applicable.
	City           string    // City or town.
	Region         string    // Province or state.
	Country        string    // Country name.
	PostalCode     string    // Postal code, may be empty.
	NormalizedText string    // Provider-formatted display address.
	UnitHash       string    // Content hash including floor/apartment; globally unique.
	BuildingHash   string    // Content hash excluding floor/apartment; shared by all units of a building.
	PackageCount   int       // Number of packages expected at this unit.
	CreatedAt      time.Time // Timestamp of first sighting.
	UpdatedAt      time.Time // Timestamp of the last modification.
}
