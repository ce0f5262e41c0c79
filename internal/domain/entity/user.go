package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. The same person may operate as a driver or
// as a manager depending on the currently selected role; manager features
// additionally require an active premium subscription.
type User struct {
	ID               uuid.UUID  // The unique identifier for the user.
	Email            string     // Primary contact email, used as the login identifier.
	Name             string     // Display name.
	CurrentRole      Role       // The role the user is currently operating under.
	IsPremium        bool       // Whether the user has ever activated a premium plan.
	PremiumStartedAt *time.Time // Start of the current premium window, nil when never activated.
	PremiumExpiresAt *time.Time // End of the current premium window, nil when never activated.
	DeviceToken      string     // Push notification token of the user's registered device, empty when none.
	CreatedAt        time.Time  // Timestamp of account creation.
	UpdatedAt        time.Time  // Timestamp of the last modification.
}

// HasRole reports whether the user currently operates under the given role.
func (u *User) HasRole(role Role) bool {
	return u.CurrentRole == role
}

// HasActivePremium reports whether the premium plan is currently in force.
// The expiry date is inclusive, matching calendar-day subscription windows.
func (u *User) HasActivePremium(now time.Time) bool {
	if !u.IsPremium || u.PremiumExpiresAt == nil {
		return false
	}

	return !now.Truncate(24 * time.Hour).After(*u.PremiumExpiresAt)
}
