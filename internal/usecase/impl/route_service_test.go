package impl

import (
	"context"
	"math"
	"testing"

	"ruteando/internal/domain/entity"
	domainerrors "ruteando/internal/domain/errors"
	"ruteando/internal/domain/repository"
	"ruteando/internal/domain/service"
	mockRepo "ruteando/internal/mocks/repository"
	mockService "ruteando/internal/mocks/service"
	"ruteando/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routeServiceFixture struct {
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	addressRepo *mockRepo.MockAddressRepository
	geocodeRepo *mockRepo.MockGeocodeRepository
	routeRepo   *mockRepo.MockRouteRepository
	linkRepo    *mockRepo.MockLinkRepository
	planner     *mockService.MockRoutePlanner
	service     usecase.RouteUsecase
}

func newRouteServiceFixture(t *testing.T) *routeServiceFixture {
	f := &routeServiceFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		addressRepo: mockRepo.NewMockAddressRepository(t),
		geocodeRepo: mockRepo.NewMockGeocodeRepository(t),
		routeRepo:   mockRepo.NewMockRouteRepository(t),
		linkRepo:    mockRepo.NewMockLinkRepository(t),
		planner:     mockService.NewMockRoutePlanner(t),
	}
	f.service = NewRouteService(
		f.txManager, f.userRepo, f.addressRepo, f.geocodeRepo, f.routeRepo,
		f.linkRepo, f.planner, nil, nil, newTestConfig(), newDiscardLogger(),
	)

	return f
}

func TestRouteService_PlanRoute_Success(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	entryA := uuid.New()
	entryB := uuid.New()
	addr1 := &entity.Address{ID: uuid.New(), GeocodeEntryID: entryA}
	addr2 := &entity.Address{ID: uuid.New(), GeocodeEntryID: entryB}
	addr3 := &entity.Address{ID: uuid.New(), GeocodeEntryID: entryA}

	input := &usecase.PlanRouteInput{AddressIDs: []uuid.UUID{addr1.ID, addr2.ID, addr3.ID}}

	// Repositories return rows in arbitrary order; the plan must follow the
	// request order.
	f.addressRepo.EXPECT().
		FindByIDs(ctx, input.AddressIDs).
		Return([]*entity.Address{addr3, addr2, addr1}, nil)

	f.geocodeRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{entryA, entryB}).
		Return([]*entity.GeocodeEntry{
			{ID: entryB, Latitude: -34.6090, Longitude: -58.3920},
			{ID: entryA, Latitude: -34.6037, Longitude: -58.3816},
		}, nil)

	f.planner.EXPECT().
		ComputeRoute(ctx, []orb.Point{{-58.3816, -34.6037}, {-58.3920, -34.6090}}).
		Return(&service.PlannedRoute{
			TotalDistanceM:  1350,
			TotalDurationS:  240,
			EncodedPolyline: "abc123",
			Legs:            []service.PlannedLeg{{DistanceM: 1350, DurationS: 240}},
		}, nil)

	txRouteRepo := mockRepo.NewMockRouteRepository(t)
	txRouteRepo.EXPECT().
		CreateRoute(ctx, mock.AnythingOfType("*entity.Route"), mock.AnythingOfType("[]*entity.RouteStop")).
		Return(nil)

	stubTransaction(t, f.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewRouteRepository().Return(txRouteRepo)
	})

	result, err := f.service.PlanRoute(ctx, userID, input)
	require.NoError(t, err)

	assert.Equal(t, entity.RouteStatusPending, result.Route.Status)
	assert.Equal(t, userID, result.Route.CreatedBy)
	assert.Equal(t, "abc123", result.Route.EncodedPolyline)
	assert.InDelta(t, 1350, result.Route.TotalDistanceM, 0.01)

	require.Len(t, result.Stops, 2)
	assert.Equal(t, entryA, result.Stops[0].GeocodeEntryID)
	assert.Equal(t, 1, result.Stops[0].Order)
	assert.Nil(t, result.Stops[0].DistancePrevM)
	assert.Equal(t, entryB, result.Stops[1].GeocodeEntryID)
	assert.Equal(t, 2, result.Stops[1].Order)
	require.NotNil(t, result.Stops[1].DistancePrevM)
	assert.InDelta(t, 1350, *result.Stops[1].DistancePrevM, 0.01)
}

func TestRouteService_PlanRoute_NotEnoughAddresses(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	input := &usecase.PlanRouteInput{AddressIDs: []uuid.UUID{uuid.New(), uuid.New()}}

	f.addressRepo.EXPECT().
		FindByIDs(ctx, input.AddressIDs).
		Return([]*entity.Address{{ID: input.AddressIDs[0]}}, nil)

	result, err := f.service.PlanRoute(ctx, uuid.New(), input)
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrNotEnoughAddresses, err)
}

func TestRouteService_PlanRoute_NotEnoughUniquePoints(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()

	// Two units of the same building collapse into a single stop.
	entryID := uuid.New()
	addr1 := &entity.Address{ID: uuid.New(), GeocodeEntryID: entryID}
	addr2 := &entity.Address{ID: uuid.New(), GeocodeEntryID: entryID}
	input := &usecase.PlanRouteInput{AddressIDs: []uuid.UUID{addr1.ID, addr2.ID}}

	f.addressRepo.EXPECT().
		FindByIDs(ctx, input.AddressIDs).
		Return([]*entity.Address{addr1, addr2}, nil)

	result, err := f.service.PlanRoute(ctx, uuid.New(), input)
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrNotEnoughUniquePoints, err)
}

func TestRouteService_AssignRoute_Success(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	manager := newTestManager()
	driver := newTestDriver()
	routeID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, manager.ID).Return(manager, nil)
	f.userRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)
	f.linkRepo.EXPECT().HasActiveLink(ctx, manager.ID, driver.ID).Return(true, nil)
	f.routeRepo.EXPECT().
		FindRouteByID(ctx, routeID).
		Return(&entity.Route{ID: routeID, CreatedBy: manager.ID, Status: entity.RouteStatusPending}, nil)
	f.routeRepo.EXPECT().
		UpdateRoute(ctx, mock.AnythingOfType("*entity.Route")).
		Return(nil)

	route, err := f.service.AssignRoute(ctx, manager.ID, routeID, driver.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.RouteStatusAssigned, route.Status)
	assert.Equal(t, driver.ID, route.AssignedTo)
	assert.True(t, route.ReadOnly)
	assert.NotNil(t, route.AssignedAt)
}

func TestRouteService_AssignRoute_ManagerOnly(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()

	// A gestor without active premium cannot assign.
	lapsed := newTestManager()
	lapsed.IsPremium = false
	lapsed.PremiumExpiresAt = nil

	f.userRepo.EXPECT().FindByID(ctx, lapsed.ID).Return(lapsed, nil)

	route, err := f.service.AssignRoute(ctx, lapsed.ID, uuid.New(), uuid.New())
	assert.Nil(t, route)
	assert.Equal(t, domainerrors.ErrManagerOnly, err)
}

func TestRouteService_AssignRoute_DriverNotLinked(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	manager := newTestManager()
	driver := newTestDriver()

	f.userRepo.EXPECT().FindByID(ctx, manager.ID).Return(manager, nil)
	f.userRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)
	f.linkRepo.EXPECT().HasActiveLink(ctx, manager.ID, driver.ID).Return(false, nil)

	route, err := f.service.AssignRoute(ctx, manager.ID, uuid.New(), driver.ID)
	assert.Nil(t, route)
	assert.Equal(t, domainerrors.ErrDriverNotLinked, err)
}

func TestRouteService_AssignRoute_SameDriverIdempotent(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	manager := newTestManager()
	driver := newTestDriver()
	routeID := uuid.New()

	existing := &entity.Route{
		ID:         routeID,
		CreatedBy:  manager.ID,
		AssignedTo: driver.ID,
		Status:     entity.RouteStatusAssigned,
	}

	f.userRepo.EXPECT().FindByID(ctx, manager.ID).Return(manager, nil)
	f.userRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)
	f.linkRepo.EXPECT().HasActiveLink(ctx, manager.ID, driver.ID).Return(true, nil)
	f.routeRepo.EXPECT().FindRouteByID(ctx, routeID).Return(existing, nil)

	// No UpdateRoute call: repeating the assignment is a no-op.
	route, err := f.service.AssignRoute(ctx, manager.ID, routeID, driver.ID)
	require.NoError(t, err)
	assert.Equal(t, existing, route)
}

func TestRouteService_AssignRoute_AlreadyAssigned(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	manager := newTestManager()
	driver := newTestDriver()
	routeID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, manager.ID).Return(manager, nil)
	f.userRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)
	f.linkRepo.EXPECT().HasActiveLink(ctx, manager.ID, driver.ID).Return(true, nil)
	f.routeRepo.EXPECT().
		FindRouteByID(ctx, routeID).
		Return(&entity.Route{ID: routeID, AssignedTo: uuid.New(), Status: entity.RouteStatusAssigned}, nil)

	route, err := f.service.AssignRoute(ctx, manager.ID, routeID, driver.ID)
	assert.Nil(t, route)
	assert.Equal(t, domainerrors.ErrRouteAlreadyAssigned, err)
}

func TestRouteService_StartRoute_Success(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	driver := newTestDriver()
	routeID := uuid.New()

	route := &entity.Route{ID: routeID, CreatedBy: driver.ID, Status: entity.RouteStatusPending}
	stopA := &entity.RouteStop{ID: uuid.New(), RouteID: routeID, GeocodeEntryID: uuid.New(), Order: 1}
	stopB := &entity.RouteStop{ID: uuid.New(), RouteID: routeID, GeocodeEntryID: uuid.New(), Order: 2}

	addr1 := &entity.Address{ID: uuid.New(), GeocodeEntryID: stopA.GeocodeEntryID, PackageCount: 2}
	addr2 := &entity.Address{ID: uuid.New(), GeocodeEntryID: stopA.GeocodeEntryID, PackageCount: 1}
	addr3 := &entity.Address{ID: uuid.New(), GeocodeEntryID: stopB.GeocodeEntryID, PackageCount: 5}

	f.userRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)
	f.routeRepo.EXPECT().FindRouteByID(ctx, routeID).Return(route, nil)

	txRouteRepo := mockRepo.NewMockRouteRepository(t)
	txAddressRepo := mockRepo.NewMockAddressRepository(t)
	txDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)

	txRouteRepo.EXPECT().
		FindStopsByRoute(ctx, routeID).
		Return([]*entity.RouteStop{stopA, stopB}, nil)
	txAddressRepo.EXPECT().
		FindByGeocodeEntryID(ctx, stopA.GeocodeEntryID).
		Return([]*entity.Address{addr1, addr2}, nil)
	txAddressRepo.EXPECT().
		FindByGeocodeEntryID(ctx, stopB.GeocodeEntryID).
		Return([]*entity.Address{addr3}, nil)

	txDeliveryRepo.EXPECT().
		CreateDelivery(ctx, mock.AnythingOfType("*entity.Delivery")).
		Run(func(_ context.Context, delivery *entity.Delivery) {
			delivery.ID = uuid.New()
		}).
		Return(nil)

	var links []*entity.RouteDelivery
	txDeliveryRepo.EXPECT().
		CreateRouteDelivery(ctx, mock.AnythingOfType("*entity.RouteDelivery")).
		Run(func(_ context.Context, link *entity.RouteDelivery) {
			links = append(links, link)
		}).
		Return(nil)

	txRouteRepo.EXPECT().
		UpdateRoute(ctx, mock.AnythingOfType("*entity.Route")).
		Return(nil)

	stubTransaction(t, f.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewRouteRepository().Return(txRouteRepo)
		factory.EXPECT().NewAddressRepository().Return(txAddressRepo)
		factory.EXPECT().NewDeliveryRepository().Return(txDeliveryRepo)
	})

	result, err := f.service.StartRoute(ctx, driver.ID, routeID)
	require.NoError(t, err)

	assert.Equal(t, 3, result.DeliveriesCreated)
	assert.Equal(t, entity.RouteStatusInProgress, result.Route.Status)
	assert.Equal(t, driver.ID, result.Route.AssignedTo)
	assert.NotNil(t, result.Route.AssignedAt)

	require.Len(t, links, 3)
	assert.Equal(t, stopA.ID, links[0].RouteStopID)
	assert.Equal(t, stopB.ID, links[2].RouteStopID)
	for _, link := range links {
		assert.Equal(t, entity.DeliveryStatusPending, link.Status)
		assert.NotNil(t, link.AssignedAt)
	}
}

func TestRouteService_StartRoute_DriverOnly(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	manager := newTestManager()

	f.userRepo.EXPECT().FindByID(ctx, manager.ID).Return(manager, nil)

	result, err := f.service.StartRoute(ctx, manager.ID, uuid.New())
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrDriverOnly, err)
}

func TestRouteService_StartRoute_NotStartable(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	driver := newTestDriver()
	routeID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)
	f.routeRepo.EXPECT().
		FindRouteByID(ctx, routeID).
		Return(&entity.Route{ID: routeID, AssignedTo: driver.ID, Status: entity.RouteStatusInProgress}, nil)

	result, err := f.service.StartRoute(ctx, driver.ID, routeID)
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrRouteNotStartable, err)
}

func TestRouteService_StartRoute_NotOwner(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	driver := newTestDriver()
	routeID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)
	f.routeRepo.EXPECT().
		FindRouteByID(ctx, routeID).
		Return(&entity.Route{
			ID:         routeID,
			CreatedBy:  uuid.New(),
			AssignedTo: uuid.New(),
			Status:     entity.RouteStatusAssigned,
		}, nil)

	result, err := f.service.StartRoute(ctx, driver.ID, routeID)
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrNotRouteOwner, err)
}

func TestRouteService_FinishRoute_Success(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	driver := newTestDriver()
	routeID := uuid.New()

	route := &entity.Route{ID: routeID, AssignedTo: driver.ID, Status: entity.RouteStatusInProgress}
	d1 := &entity.Delivery{ID: uuid.New(), DriverID: driver.ID, Status: entity.DeliveryStatusPending}
	d2 := &entity.Delivery{ID: uuid.New(), DriverID: driver.ID, Status: entity.DeliveryStatusPending}
	l1 := &entity.RouteDelivery{ID: uuid.New(), RouteID: routeID, DeliveryID: d1.ID, Status: entity.DeliveryStatusPending}
	l2 := &entity.RouteDelivery{ID: uuid.New(), RouteID: routeID, DeliveryID: d2.ID, Status: entity.DeliveryStatusPending}

	f.userRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)
	f.routeRepo.EXPECT().FindRouteByID(ctx, routeID).Return(route, nil)

	txRouteRepo := mockRepo.NewMockRouteRepository(t)
	txDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)

	txDeliveryRepo.EXPECT().
		FindPendingDeliveriesByRoute(ctx, routeID).
		Return([]*entity.Delivery{d1, d2}, []*entity.RouteDelivery{l1, l2}, nil)
	txDeliveryRepo.EXPECT().
		UpdateDelivery(ctx, mock.AnythingOfType("*entity.Delivery")).
		Return(nil)
	txDeliveryRepo.EXPECT().
		UpdateRouteDelivery(ctx, mock.AnythingOfType("*entity.RouteDelivery")).
		Return(nil)
	txRouteRepo.EXPECT().
		UpdateRoute(ctx, mock.AnythingOfType("*entity.Route")).
		Return(nil)

	stubTransaction(t, f.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewRouteRepository().Return(txRouteRepo)
		factory.EXPECT().NewDeliveryRepository().Return(txDeliveryRepo)
	})

	result, err := f.service.FinishRoute(ctx, driver.ID, routeID)
	require.NoError(t, err)

	assert.Equal(t, 2, result.FailedCount)
	assert.Equal(t, entity.RouteStatusFinished, result.Route.Status)
	assert.NotNil(t, result.Route.FinishedAt)

	assert.Equal(t, entity.DeliveryStatusFailed, d1.Status)
	assert.Equal(t, entity.DeliveryStatusFailed, l1.Status)
	assert.Equal(t, "No entregado al finalizar la ruta", l1.FailureReason)
	assert.NotNil(t, l1.AttemptedAt)
}

func TestRouteService_FinishRoute_NotOwner(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	driver := newTestDriver()
	routeID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)
	f.routeRepo.EXPECT().
		FindRouteByID(ctx, routeID).
		Return(&entity.Route{ID: routeID, AssignedTo: uuid.New(), Status: entity.RouteStatusInProgress}, nil)

	result, err := f.service.FinishRoute(ctx, driver.ID, routeID)
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrNotRouteOwner, err)
}

func TestRouteService_FinishRoute_NotActive(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	driver := newTestDriver()
	routeID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)
	f.routeRepo.EXPECT().
		FindRouteByID(ctx, routeID).
		Return(&entity.Route{ID: routeID, AssignedTo: driver.ID, Status: entity.RouteStatusAssigned}, nil)

	result, err := f.service.FinishRoute(ctx, driver.ID, routeID)
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrRouteNotActive, err)
}

func TestRouteService_CheckProximity_NotActive(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	driver := newTestDriver()
	routeID := uuid.New()

	f.routeRepo.EXPECT().
		FindRouteByID(ctx, routeID).
		Return(&entity.Route{ID: routeID, AssignedTo: driver.ID, Status: entity.RouteStatusAssigned}, nil)

	result, err := f.service.CheckProximity(ctx, driver.ID, routeID, &usecase.ProximityInput{})
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrRouteNotActive, err)
}

func TestRouteService_CheckProximity_RouteComplete(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	driver := newTestDriver()
	routeID := uuid.New()

	f.routeRepo.EXPECT().
		FindRouteByID(ctx, routeID).
		Return(&entity.Route{ID: routeID, AssignedTo: driver.ID, Status: entity.RouteStatusInProgress}, nil)
	f.routeRepo.EXPECT().
		UpsertRouteLocation(ctx, mock.AnythingOfType("*entity.RouteLocation")).
		Return(nil)
	f.routeRepo.EXPECT().
		FindFirstUnvisitedStop(ctx, routeID).
		Return(nil, repository.ErrRouteStopNotFound)

	result, err := f.service.CheckProximity(ctx, driver.ID, routeID, &usecase.ProximityInput{
		Latitude:  -34.6037,
		Longitude: -58.3816,
	})
	require.NoError(t, err)
	assert.True(t, result.RouteComplete)
	assert.False(t, result.Visited)
}

func TestRouteService_CheckProximity_WithinThreshold(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	driver := newTestDriver()
	routeID := uuid.New()

	stop := &entity.RouteStop{ID: uuid.New(), RouteID: routeID, GeocodeEntryID: uuid.New(), Order: 2}
	entry := &entity.GeocodeEntry{ID: stop.GeocodeEntryID, Latitude: -34.6037, Longitude: -58.3816}

	f.routeRepo.EXPECT().
		FindRouteByID(ctx, routeID).
		Return(&entity.Route{ID: routeID, AssignedTo: driver.ID, Status: entity.RouteStatusInProgress}, nil)

	var location *entity.RouteLocation
	f.routeRepo.EXPECT().
		UpsertRouteLocation(ctx, mock.AnythingOfType("*entity.RouteLocation")).
		Run(func(_ context.Context, loc *entity.RouteLocation) {
			location = loc
		}).
		Return(nil)
	f.routeRepo.EXPECT().
		FindFirstUnvisitedStop(ctx, routeID).
		Return(stop, nil)
	f.geocodeRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{stop.GeocodeEntryID}).
		Return([]*entity.GeocodeEntry{entry}, nil)
	f.routeRepo.EXPECT().
		MarkStopVisited(ctx, stop.ID).
		Return(nil)

	// Reporting the stop's own coordinates: distance zero, inside the 50 m
	// inclusive threshold.
	result, err := f.service.CheckProximity(ctx, driver.ID, routeID, &usecase.ProximityInput{
		Latitude:  entry.Latitude,
		Longitude: entry.Longitude,
	})
	require.NoError(t, err)

	assert.False(t, result.RouteComplete)
	assert.Equal(t, stop.ID, result.StopID)
	assert.Equal(t, 2, result.StopOrder)
	assert.True(t, result.WithinThreshold)
	assert.True(t, result.Visited)
	assert.InDelta(t, 0, result.DistanceM, 0.01)

	require.NotNil(t, location)
	assert.Equal(t, routeID, location.RouteID)
	assert.Equal(t, "gps", location.Provider)
}

func TestRouteService_CheckProximity_OutsideThreshold(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	driver := newTestDriver()
	routeID := uuid.New()

	stop := &entity.RouteStop{ID: uuid.New(), RouteID: routeID, GeocodeEntryID: uuid.New(), Order: 1}
	entry := &entity.GeocodeEntry{ID: stop.GeocodeEntryID, Latitude: -34.6037, Longitude: -58.3816}

	f.routeRepo.EXPECT().
		FindRouteByID(ctx, routeID).
		Return(&entity.Route{ID: routeID, AssignedTo: driver.ID, Status: entity.RouteStatusInProgress}, nil)
	f.routeRepo.EXPECT().
		UpsertRouteLocation(ctx, mock.AnythingOfType("*entity.RouteLocation")).
		Return(nil)
	f.routeRepo.EXPECT().
		FindFirstUnvisitedStop(ctx, routeID).
		Return(stop, nil)
	f.geocodeRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{stop.GeocodeEntryID}).
		Return([]*entity.GeocodeEntry{entry}, nil)

	// Roughly a kilometer north of the stop: no visit is recorded.
	result, err := f.service.CheckProximity(ctx, driver.ID, routeID, &usecase.ProximityInput{
		Latitude:  entry.Latitude + 0.01,
		Longitude: entry.Longitude,
	})
	require.NoError(t, err)

	assert.False(t, result.Visited)
	assert.False(t, result.WithinThreshold)
	assert.Greater(t, result.DistanceM, 50.0)
}

func TestRouteService_CheckProximity_AtThreshold(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	driver := newTestDriver()
	routeID := uuid.New()

	stop := &entity.RouteStop{ID: uuid.New(), RouteID: routeID, GeocodeEntryID: uuid.New(), Order: 1}
	entry := &entity.GeocodeEntry{ID: stop.GeocodeEntryID, Latitude: -34.6037, Longitude: -58.3816}

	f.routeRepo.EXPECT().
		FindRouteByID(ctx, routeID).
		Return(&entity.Route{ID: routeID, AssignedTo: driver.ID, Status: entity.RouteStatusInProgress}, nil)
	f.routeRepo.EXPECT().
		UpsertRouteLocation(ctx, mock.AnythingOfType("*entity.RouteLocation")).
		Return(nil)
	f.routeRepo.EXPECT().
		FindFirstUnvisitedStop(ctx, routeID).
		Return(stop, nil)
	f.geocodeRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{stop.GeocodeEntryID}).
		Return([]*entity.GeocodeEntry{entry}, nil)
	f.routeRepo.EXPECT().
		MarkStopVisited(ctx, stop.ID).
		Return(nil)

	// Exactly at the 50 m boundary, moving straight north. The threshold is
	// inclusive, so the visit must be recorded.
	metersPerDegree := 6371000.0 * math.Pi / 180.0
	result, err := f.service.CheckProximity(ctx, driver.ID, routeID, &usecase.ProximityInput{
		Latitude:  entry.Latitude + 49.9999999/metersPerDegree,
		Longitude: entry.Longitude,
	})
	require.NoError(t, err)

	assert.True(t, result.WithinThreshold)
	assert.True(t, result.Visited)
	assert.InDelta(t, 50.0, result.DistanceM, 0.01)
	assert.InDelta(t, 50.0, result.ThresholdM, 0.001)
}

func TestRouteService_CheckProximity_JustBeyondThreshold(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	driver := newTestDriver()
	routeID := uuid.New()

	stop := &entity.RouteStop{ID: uuid.New(), RouteID: routeID, GeocodeEntryID: uuid.New(), Order: 1}
	entry := &entity.GeocodeEntry{ID: stop.GeocodeEntryID, Latitude: -34.6037, Longitude: -58.3816}

	f.routeRepo.EXPECT().
		FindRouteByID(ctx, routeID).
		Return(&entity.Route{ID: routeID, AssignedTo: driver.ID, Status: entity.RouteStatusInProgress}, nil)
	f.routeRepo.EXPECT().
		UpsertRouteLocation(ctx, mock.AnythingOfType("*entity.RouteLocation")).
		Return(nil)
	f.routeRepo.EXPECT().
		FindFirstUnvisitedStop(ctx, routeID).
		Return(stop, nil)
	f.geocodeRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{stop.GeocodeEntryID}).
		Return([]*entity.GeocodeEntry{entry}, nil)

	// 50.003 m away: the reported distance rounds to 50.00 but the raw
	// distance decides, so no visit is recorded. MarkStopVisited carries no
	// expectation, any call fails the test.
	metersPerDegree := 6371000.0 * math.Pi / 180.0
	result, err := f.service.CheckProximity(ctx, driver.ID, routeID, &usecase.ProximityInput{
		Latitude:  entry.Latitude + 50.003/metersPerDegree,
		Longitude: entry.Longitude,
	})
	require.NoError(t, err)

	assert.False(t, result.WithinThreshold)
	assert.False(t, result.Visited)
	assert.InDelta(t, 50.0, result.DistanceM, 0.01)
}

func TestRouteService_GetRoute(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	routeID := uuid.New()

	route := &entity.Route{ID: routeID, Status: entity.RouteStatusPending}
	stops := []*entity.RouteStop{{ID: uuid.New(), RouteID: routeID, Order: 1}}

	f.routeRepo.EXPECT().FindRouteByID(ctx, routeID).Return(route, nil)
	f.routeRepo.EXPECT().FindStopsByRoute(ctx, routeID).Return(stops, nil)

	result, err := f.service.GetRoute(ctx, routeID)
	require.NoError(t, err)
	assert.Equal(t, route, result.Route)
	assert.Equal(t, stops, result.Stops)
}

func TestRouteService_GetRoute_NotFound(t *testing.T) {
	f := newRouteServiceFixture(t)
	ctx := context.Background()
	routeID := uuid.New()

	f.routeRepo.EXPECT().FindRouteByID(ctx, routeID).Return(nil, repository.ErrRouteNotFound)

	result, err := f.service.GetRoute(ctx, routeID)
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrRouteNotFound, err)
}
