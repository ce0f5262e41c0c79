package impl

import (
	"context"
	"testing"

	"ruteando/internal/domain/entity"
	domainerrors "ruteando/internal/domain/errors"
	"ruteando/internal/domain/repository"
	"ruteando/internal/domain/service"
	mockRepo "ruteando/internal/mocks/repository"
	mockService "ruteando/internal/mocks/service"
	"ruteando/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testComponents() entity.AddressComponents {
	return entity.AddressComponents{
		Route:    "Av. Corrientes",
		Number:   "1234",
		Locality: "Buenos Aires",
		Region:   "CABA",
		Country:  "Argentina",
	}
}

func TestAddressService_IngestAddresses_CacheHit(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockGeocodeRepo := mockRepo.NewMockGeocodeRepository(t)
	mockGeocoder := mockService.NewMockGeocoder(t)
	svc := NewAddressService(mockTx, mockGeocodeRepo, mockGeocoder, newDiscardLogger())

	ctx := context.Background()
	item := usecase.IngestAddressItem{
		Components:   testComponents(),
		Floor:        "3",
		Apartment:    "B",
		PackageCount: 2,
	}
	buildingHash := entity.BuildingHash(item.Components)
	unitHash := entity.UnitHash(item.Components, item.Floor, item.Apartment)

	entry := &entity.GeocodeEntry{
		ID:           uuid.New(),
		BuildingHash: buildingHash,
		Latitude:     -34.6037,
		Longitude:    -58.3816,
	}

	// Cached building: the geocoder must never be called.
	mockGeocodeRepo.EXPECT().
		FindByBuildingHash(ctx, buildingHash).
		Return(entry, nil)

	txGeocodeRepo := mockRepo.NewMockGeocodeRepository(t)
	txAddressRepo := mockRepo.NewMockAddressRepository(t)
	txAddressRepo.EXPECT().
		FindByUnitHash(ctx, unitHash).
		Return(nil, repository.ErrAddressNotFound)
	txAddressRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil)

	stubTransaction(t, mockTx, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewGeocodeRepository().Return(txGeocodeRepo)
		factory.EXPECT().NewAddressRepository().Return(txAddressRepo)
	})

	result, err := svc.IngestAddresses(ctx, &usecase.IngestAddressesInput{
		Items: []usecase.IngestAddressItem{item},
	})
	require.NoError(t, err)
	require.Len(t, result.Resolved, 1)
	assert.Empty(t, result.Errors)

	resolved := result.Resolved[0]
	assert.Equal(t, entry.Latitude, resolved.Latitude)
	assert.Equal(t, entry.Longitude, resolved.Longitude)
	assert.Equal(t, entry.ID, resolved.Address.GeocodeEntryID)
	assert.Equal(t, unitHash, resolved.Address.UnitHash)
	assert.Equal(t, 2, resolved.Address.PackageCount)
	assert.Equal(t, "3", resolved.Address.Floor)
	assert.Equal(t, "B", resolved.Address.Apartment)
}

func TestAddressService_IngestAddresses_CacheMiss(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockGeocodeRepo := mockRepo.NewMockGeocodeRepository(t)
	mockGeocoder := mockService.NewMockGeocoder(t)
	svc := NewAddressService(mockTx, mockGeocodeRepo, mockGeocoder, newDiscardLogger())

	ctx := context.Background()
	item := usecase.IngestAddressItem{Components: testComponents()}
	buildingHash := entity.BuildingHash(item.Components)

	mockGeocodeRepo.EXPECT().
		FindByBuildingHash(ctx, buildingHash).
		Return(nil, repository.ErrGeocodeEntryNotFound)

	mockGeocoder.EXPECT().
		Geocode(ctx, "Av. Corrientes 1234, Buenos Aires, CABA, Argentina").
		Return(&service.GeocodeResult{
			Latitude:    -34.6037,
			Longitude:   -58.3816,
			Provider:    "google",
			RawResponse: []byte(`{"status":"OK"}`),
		}, nil)

	entryID := uuid.New()
	txGeocodeRepo := mockRepo.NewMockGeocodeRepository(t)
	txGeocodeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.GeocodeEntry")).
		Run(func(_ context.Context, entry *entity.GeocodeEntry) {
			entry.ID = entryID
		}).
		Return(nil)

	var created *entity.Address
	txAddressRepo := mockRepo.NewMockAddressRepository(t)
	txAddressRepo.EXPECT().
		FindByUnitHash(ctx, entity.UnitHash(item.Components, "", "")).
		Return(nil, repository.ErrAddressNotFound)
	txAddressRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Address")).
		Run(func(_ context.Context, address *entity.Address) {
			created = address
		}).
		Return(nil)

	stubTransaction(t, mockTx, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewGeocodeRepository().Return(txGeocodeRepo)
		factory.EXPECT().NewAddressRepository().Return(txAddressRepo)
	})

	result, err := svc.IngestAddresses(ctx, &usecase.IngestAddressesInput{
		Items: []usecase.IngestAddressItem{item},
	})
	require.NoError(t, err)
	require.Len(t, result.Resolved, 1)

	require.NotNil(t, created)
	assert.Equal(t, entryID, created.GeocodeEntryID)
	// An item without a package count resolves to one package.
	assert.Equal(t, 1, created.PackageCount)
	assert.Equal(t, "Av. Corrientes 1234, Buenos Aires, CABA, Argentina", created.NormalizedText)
}

func TestAddressService_IngestAddresses_MergesDuplicateUnits(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockGeocodeRepo := mockRepo.NewMockGeocodeRepository(t)
	mockGeocoder := mockService.NewMockGeocoder(t)
	svc := NewAddressService(mockTx, mockGeocodeRepo, mockGeocoder, newDiscardLogger())

	ctx := context.Background()
	first := usecase.IngestAddressItem{Components: testComponents(), Floor: "3", Apartment: "B", PackageCount: 3}
	second := usecase.IngestAddressItem{Components: testComponents(), Floor: "3", Apartment: "B"}
	buildingHash := entity.BuildingHash(first.Components)

	entry := &entity.GeocodeEntry{ID: uuid.New(), BuildingHash: buildingHash}

	// One group, one cache lookup.
	mockGeocodeRepo.EXPECT().
		FindByBuildingHash(ctx, buildingHash).
		Return(entry, nil).
		Once()

	var created *entity.Address
	txGeocodeRepo := mockRepo.NewMockGeocodeRepository(t)
	txAddressRepo := mockRepo.NewMockAddressRepository(t)
	txAddressRepo.EXPECT().
		FindByUnitHash(ctx, entity.UnitHash(first.Components, "3", "B")).
		Return(nil, repository.ErrAddressNotFound)
	txAddressRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Address")).
		Run(func(_ context.Context, address *entity.Address) {
			created = address
		}).
		Return(nil)

	stubTransaction(t, mockTx, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewGeocodeRepository().Return(txGeocodeRepo)
		factory.EXPECT().NewAddressRepository().Return(txAddressRepo)
	})

	result, err := svc.IngestAddresses(ctx, &usecase.IngestAddressesInput{
		Items: []usecase.IngestAddressItem{first, second},
	})
	require.NoError(t, err)
	require.Len(t, result.Resolved, 1)

	// 3 declared packages plus 1 defaulted.
	require.NotNil(t, created)
	assert.Equal(t, 4, created.PackageCount)
}

func TestAddressService_IngestAddresses_ExistingAddressAccumulates(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockGeocodeRepo := mockRepo.NewMockGeocodeRepository(t)
	mockGeocoder := mockService.NewMockGeocoder(t)
	svc := NewAddressService(mockTx, mockGeocodeRepo, mockGeocoder, newDiscardLogger())

	ctx := context.Background()
	item := usecase.IngestAddressItem{Components: testComponents(), PackageCount: 2}
	buildingHash := entity.BuildingHash(item.Components)
	unitHash := entity.UnitHash(item.Components, "", "")

	entry := &entity.GeocodeEntry{ID: uuid.New(), BuildingHash: buildingHash}
	existing := &entity.Address{
		ID:             uuid.New(),
		GeocodeEntryID: entry.ID,
		UnitHash:       unitHash,
		PackageCount:   4,
	}

	mockGeocodeRepo.EXPECT().
		FindByBuildingHash(ctx, buildingHash).
		Return(entry, nil)

	txGeocodeRepo := mockRepo.NewMockGeocodeRepository(t)
	txAddressRepo := mockRepo.NewMockAddressRepository(t)
	txAddressRepo.EXPECT().
		FindByUnitHash(ctx, unitHash).
		Return(existing, nil)
	txAddressRepo.EXPECT().
		UpdatePackageCount(ctx, existing.ID, 6).
		Return(nil)

	stubTransaction(t, mockTx, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewGeocodeRepository().Return(txGeocodeRepo)
		factory.EXPECT().NewAddressRepository().Return(txAddressRepo)
	})

	result, err := svc.IngestAddresses(ctx, &usecase.IngestAddressesInput{
		Items: []usecase.IngestAddressItem{item},
	})
	require.NoError(t, err)
	require.Len(t, result.Resolved, 1)
	assert.Equal(t, 6, result.Resolved[0].Address.PackageCount)
	assert.Equal(t, existing.ID, result.Resolved[0].Address.ID)
}

func TestAddressService_IngestAddresses_ContinuesPastItemFailure(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockGeocodeRepo := mockRepo.NewMockGeocodeRepository(t)
	mockGeocoder := mockService.NewMockGeocoder(t)
	svc := NewAddressService(mockTx, mockGeocodeRepo, mockGeocoder, newDiscardLogger())

	ctx := context.Background()
	failing := usecase.IngestAddressItem{Components: testComponents()}
	okComponents := testComponents()
	okComponents.Number = "5678"
	succeeding := usecase.IngestAddressItem{Components: okComponents}

	failingHash := entity.BuildingHash(failing.Components)
	okHash := entity.BuildingHash(succeeding.Components)

	mockGeocodeRepo.EXPECT().
		FindByBuildingHash(ctx, failingHash).
		Return(nil, repository.ErrGeocodeEntryNotFound)
	mockGeocoder.EXPECT().
		Geocode(ctx, "Av. Corrientes 1234, Buenos Aires, CABA, Argentina").
		Return(nil, domainerrors.ErrGeocodingFailed)

	entry := &entity.GeocodeEntry{ID: uuid.New(), BuildingHash: okHash}
	mockGeocodeRepo.EXPECT().
		FindByBuildingHash(ctx, okHash).
		Return(entry, nil)

	txGeocodeRepo := mockRepo.NewMockGeocodeRepository(t)
	txAddressRepo := mockRepo.NewMockAddressRepository(t)
	txAddressRepo.EXPECT().
		FindByUnitHash(ctx, entity.UnitHash(okComponents, "", "")).
		Return(nil, repository.ErrAddressNotFound)
	txAddressRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil)

	stubTransaction(t, mockTx, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewGeocodeRepository().Return(txGeocodeRepo)
		factory.EXPECT().NewAddressRepository().Return(txAddressRepo)
	})

	result, err := svc.IngestAddresses(ctx, &usecase.IngestAddressesInput{
		Items: []usecase.IngestAddressItem{failing, succeeding},
	})
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, 0, result.Errors[0].Index)
	assert.Equal(t, "Av. Corrientes 1234, Buenos Aires, CABA, Argentina", result.Errors[0].Address)

	require.Len(t, result.Resolved, 1)
	assert.Equal(t, "5678", result.Resolved[0].Address.Number)
}
