package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRouteStatus_Transitions(t *testing.T) {
	tests := []struct {
		status    RouteStatus
		canAssign bool
		canStart  bool
		canFinish bool
	}{
		{RouteStatusPending, true, true, false},
		{RouteStatusAssigned, false, true, false},
		{RouteStatusInProgress, false, false, true},
		{RouteStatusFinished, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.canAssign, tt.status.CanAssign())
			assert.Equal(t, tt.canStart, tt.status.CanStart())
			assert.Equal(t, tt.canFinish, tt.status.CanFinish())
		})
	}
}

func TestRouteStatus_IsValid(t *testing.T) {
	assert.True(t, RouteStatusPending.IsValid())
	assert.True(t, RouteStatusFinished.IsValid())
	assert.False(t, RouteStatus("entregada").IsValid())
	assert.False(t, RouteStatus("").IsValid())
}

func TestRoute_CanBeStartedBy(t *testing.T) {
	creator := uuid.New()
	driver := uuid.New()
	stranger := uuid.New()

	assigned := &Route{CreatedBy: creator, AssignedTo: driver, Status: RouteStatusAssigned}
	assert.True(t, assigned.CanBeStartedBy(driver))
	assert.True(t, assigned.CanBeStartedBy(creator))
	assert.False(t, assigned.CanBeStartedBy(stranger))

	// A self-created route can be started without ever being assigned.
	selfOwned := &Route{CreatedBy: creator, Status: RouteStatusPending}
	assert.True(t, selfOwned.CanBeStartedBy(creator))
	assert.False(t, selfOwned.CanBeStartedBy(stranger))

	unattributed := &Route{Status: RouteStatusPending}
	assert.False(t, unattributed.CanBeStartedBy(stranger))
}

func TestRoute_IsAssigned(t *testing.T) {
	assert.False(t, (&Route{}).IsAssigned())
	assert.True(t, (&Route{AssignedTo: uuid.New()}).IsAssigned())
}
