// Package service defines interfaces for external collaborators the use case
// layer depends on: geocoding, route planning, notifications, events, QR
// rendering and attachment storage.
package service

import "context"

// GeocodeResult is the provider's answer for one formatted address.
type GeocodeResult struct {
	Latitude    float64
	Longitude   float64
	Provider    string
	RawResponse []byte
}

// Geocoder resolves a formatted address string to coordinates through an
// external provider. Failures surface as the typed geocoding error; the
// caller decides about caching.
type Geocoder interface {
	Geocode(ctx context.Context, formattedAddress string) (*GeocodeResult, error)
}
