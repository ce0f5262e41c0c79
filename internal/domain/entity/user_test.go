package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleConductor, ParseRole("conductor"))
	assert.Equal(t, RoleGestor, ParseRole("GESTOR"))
	assert.Equal(t, RoleGestor, ParseRole(" Gestor "))
	assert.Equal(t, Role(""), ParseRole("admin"))
}

func TestUser_HasActivePremium(t *testing.T) {
	now := time.Now()

	never := &User{}
	assert.False(t, never.HasActivePremium(now))

	expiry := now.Add(24 * time.Hour)
	active := &User{IsPremium: true, PremiumExpiresAt: &expiry}
	assert.True(t, active.HasActivePremium(now))

	// The expiry date is inclusive at day granularity.
	sameDay := now.Truncate(24 * time.Hour)
	boundary := &User{IsPremium: true, PremiumExpiresAt: &sameDay}
	assert.True(t, boundary.HasActivePremium(now))

	past := now.Add(-48 * time.Hour)
	lapsed := &User{IsPremium: true, PremiumExpiresAt: &past}
	assert.False(t, lapsed.HasActivePremium(now))

	flagWithoutWindow := &User{IsPremium: true}
	assert.False(t, flagWithoutWindow.HasActivePremium(now))
}
