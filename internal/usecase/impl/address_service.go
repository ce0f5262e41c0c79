// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"ruteando/internal/domain/entity"
	"ruteando/internal/domain/repository"
	"ruteando/internal/domain/service"
	"ruteando/internal/errors"
	"ruteando/internal/usecase"
)

type addressService struct {
	txManager   repository.TransactionManager
	geocodeRepo repository.GeocodeRepository
	geocoder    service.Geocoder
	logger      *slog.Logger

	// leases serializes geocoding per building hash so a burst of items for
	// the same building issues at most one provider call.
	leases sync.Map
}

// NewAddressService creates a new address ingestion service instance
func NewAddressService(
	txManager repository.TransactionManager,
	geocodeRepo repository.GeocodeRepository,
	geocoder service.Geocoder,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		txManager:   txManager,
		geocodeRepo: geocodeRepo,
		geocoder:    geocoder,
		logger:      logger,
	}
}

// ingestGroup is one deduplicated unit within a batch.
type ingestGroup struct {
	item         usecase.IngestAddressItem
	unitHash     string
	buildingHash string
	packageCount int
	firstIndex   int
}

// IngestAddresses resolves a batch of raw addresses into deduplicated,
// geocoded deliverable units.
func (s *addressService) IngestAddresses(ctx context.Context, input *usecase.IngestAddressesInput) (*usecase.IngestAddressesResult, error) {
	groups := groupByUnitHash(input.Items)

	result := &usecase.IngestAddressesResult{
		Resolved: make([]usecase.ResolvedAddress, 0, len(groups)),
		Errors:   make([]usecase.IngestError, 0),
	}

	for _, group := range groups {
		address, entry, err := s.resolveGroup(ctx, group)
		if err != nil {
			s.logger.Warn("address ingestion item failed",
				slog.Int("index", group.firstIndex),
				slog.String("error", err.Error()),
			)
			result.Errors = append(result.Errors, usecase.IngestError{
				Index:   group.firstIndex,
				Address: formatBuildingAddress(group.item.Components),
				Message: err.Error(),
			})

			continue
		}

		result.Resolved = append(result.Resolved, usecase.ResolvedAddress{
			Address:   address,
			Latitude:  entry.Latitude,
			Longitude: entry.Longitude,
		})
	}

	return result, nil
}

// groupByUnitHash merges batch items that name the same deliverable unit,
// summing package counts and keeping first-appearance order.
func groupByUnitHash(items []usecase.IngestAddressItem) []*ingestGroup {
	byHash := make(map[string]*ingestGroup, len(items))
	ordered := make([]*ingestGroup, 0, len(items))

	for i, item := range items {
		count := item.PackageCount
		if count <= 0 {
			count = 1
		}

		unitHash := entity.UnitHash(item.Components, item.Floor, item.Apartment)
		if group, ok := byHash[unitHash]; ok {
			group.packageCount += count

			continue
		}

		group := &ingestGroup{
			item:         item,
			unitHash:     unitHash,
			buildingHash: entity.BuildingHash(item.Components),
			packageCount: count,
			firstIndex:   i,
		}
		byHash[unitHash] = group
		ordered = append(ordered, group)
	}

	return ordered
}

// resolveGroup looks up or creates the geocode cache entry and the address
// row for one deduplicated unit.
func (s *addressService) resolveGroup(ctx context.Context, group *ingestGroup) (*entity.Address, *entity.GeocodeEntry, error) {
	mu := s.buildingLease(group.buildingHash)
	mu.Lock()
	defer mu.Unlock()

	entry, err := s.geocodeRepo.FindByBuildingHash(ctx, group.buildingHash)
	newEntry := false
	switch {
	case err == nil:
		// Cache hit, no provider call.
	case errors.Is(err, repository.ErrGeocodeEntryNotFound):
		geocoded, gerr := s.geocoder.Geocode(ctx, formatBuildingAddress(group.item.Components))
		if gerr != nil {
			return nil, nil, gerr
		}

		entry = &entity.GeocodeEntry{
			BuildingHash: group.buildingHash,
			Latitude:     geocoded.Latitude,
			Longitude:    geocoded.Longitude,
			Provider:     geocoded.Provider,
			RawResponse:  geocoded.RawResponse,
		}
		newEntry = true
	default:
		return nil, nil, err
	}

	var address *entity.Address
	txErr := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		geocodeRepo := factory.NewGeocodeRepository()
		addressRepo := factory.NewAddressRepository()

		if newEntry {
			if err := geocodeRepo.Create(ctx, entry); err != nil {
				return err
			}
		}

		existing, err := addressRepo.FindByUnitHash(ctx, group.unitHash)
		if err == nil {
			updated := existing.PackageCount + group.packageCount
			if err := addressRepo.UpdatePackageCount(ctx, existing.ID, updated); err != nil {
				return err
			}
			existing.PackageCount = updated
			address = existing

			return nil
		}
		if !errors.Is(err, repository.ErrAddressNotFound) {
			return err
		}

		address = &entity.Address{
			GeocodeEntryID: entry.ID,
			Street:         group.item.Components.Route,
			Number:         group.item.Components.Number,
			Floor:          group.item.Floor,
			Apartment:      group.item.Apartment,
			City:           group.item.Components.Locality,
			Region:         group.item.Components.Region,
			Country:        group.item.Components.Country,
			PostalCode:     group.item.Components.PostalCode,
			NormalizedText: normalizedTextOrDefault(group.item),
			UnitHash:       group.unitHash,
			BuildingHash:   group.buildingHash,
			PackageCount:   group.packageCount,
		}

		return addressRepo.Create(ctx, address)
	})
	if txErr != nil {
		return nil, nil, txErr
	}

	return address, entry, nil
}

func (s *addressService) buildingLease(buildingHash string) *sync.Mutex {
	mu, _ := s.leases.LoadOrStore(buildingHash, &sync.Mutex{})

	return mu.(*sync.Mutex)
}

// formatBuildingAddress builds the building-level provider query string.
func formatBuildingAddress(c entity.AddressComponents) string {
	return fmt.Sprintf("%s %s, %s, %s, %s", c.Route, c.Number, c.Locality, c.Region, c.Country)
}

func normalizedTextOrDefault(item usecase.IngestAddressItem) string {
	if item.NormalizedText != "" {
		return item.NormalizedText
	}

	return formatBuildingAddress(item.Components)
}
