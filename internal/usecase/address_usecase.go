// Package usecase defines the application's use case interfaces and their
// input/output types. Implementations live in impl.
package usecase

import (
	"context"

	"ruteando/internal/domain/entity"
)

// IngestAddressItem is one raw address in an ingestion batch. Components carry
// the structured breakdown the mobile client obtained from the geocoding
// provider's autocomplete; floor and apartment identify the unit.
type IngestAddressItem struct {
	Components     entity.AddressComponents `json:"components" validate:"required"`
	Floor          string                   `json:"floor"`
	Apartment      string                   `json:"apartment"`
	NormalizedText string                   `json:"normalized_text"`
	PackageCount   int                      `json:"package_count" validate:"omitempty,min=1"`
}

// IngestAddressesInput is a batch of raw addresses to resolve.
type IngestAddressesInput struct {
	Items []IngestAddressItem `json:"items" validate:"required,min=1,dive"`
}

// ResolvedAddress is one successfully resolved deliverable unit.
type ResolvedAddress struct {
	Address   *entity.Address `json:"address"`
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
}

// IngestError records why one batch item could not be resolved. The batch
// continues past item failures.
type IngestError struct {
	Index   int    `json:"index"`
	Address string `json:"address"`
	Message string `json:"message"`
}

// IngestAddressesResult is the partial-success outcome of a batch.
type IngestAddressesResult struct {
	Resolved []ResolvedAddress `json:"resolved"`
	Errors   []IngestError     `json:"errors"`
}

// AddressUsecase defines the address ingestion use cases.
type AddressUsecase interface {
	// IngestAddresses resolves a batch of raw addresses into deduplicated,
	// geocoded deliverable units. Items sharing a unit hash are merged with
	// their package counts summed; buildings are geocoded at most once.
	IngestAddresses(ctx context.Context, input *IngestAddressesInput) (*IngestAddressesResult, error)
}
