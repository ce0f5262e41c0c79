package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDeliveryStatus(t *testing.T) {
	assert.Equal(t, DeliveryStatusPending, ParseDeliveryStatus("pendiente"))
	assert.Equal(t, DeliveryStatusFinished, ParseDeliveryStatus("FINALIZADA"))
	assert.Equal(t, DeliveryStatusFailed, ParseDeliveryStatus("  Fallida  "))
	assert.Equal(t, DeliveryStatus(""), ParseDeliveryStatus("entregada"))
	assert.Equal(t, DeliveryStatus(""), ParseDeliveryStatus(""))
}

func TestDeliveryStatus_IsTerminal(t *testing.T) {
	// Only finalizada freezes the delivery; a failed one may be retried.
	assert.True(t, DeliveryStatusFinished.IsTerminal())
	assert.False(t, DeliveryStatusFailed.IsTerminal())
	assert.False(t, DeliveryStatusPending.IsTerminal())
}

func TestDeliveryStatus_IsValid(t *testing.T) {
	assert.True(t, DeliveryStatusPending.IsValid())
	assert.True(t, DeliveryStatusFailed.IsValid())
	assert.False(t, DeliveryStatus("en_camino").IsValid())
}
