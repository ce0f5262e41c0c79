package entity

import (
	"time"

	"github.com/google/uuid"
)

// ManagerDriverLink associates a manager with a driver they coordinate.
// Unique per (manager, driver) pair. The Active flag exists for soft
// revocation, but unlinking hard-deletes the row; the flag is kept for
// compatibility with the original data model.
type ManagerDriverLink struct {
	ID        uuid.UUID // The unique identifier for the link.
	ManagerID uuid.UUID // The manager side of the association.
	DriverID  uuid.UUID // The driver side of the association.
	Active    bool      // Whether the association is in force.
	CreatedAt time.Time // Timestamp of association.
}

// LinkCode is a short-lived, single-use code a manager issues so a driver can
// link to them. Deleted immediately upon successful redemption.
type LinkCode struct {
	ID        uuid.UUID // The unique identifier for the code record.
	ManagerID uuid.UUID // Manager that issued the code.
	Code      string    // 8-character uppercase alphanumeric value; unique.
	CreatedAt time.Time // Timestamp of issuance.
	ExpiresAt time.Time // Moment after which the code can no longer be redeemed.
}

// IsExpired reports whether the code is past its expiry.
func (c *LinkCode) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
