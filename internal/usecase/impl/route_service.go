package impl

import (
	"context"
	"log/slog"
	"time"

	"ruteando/config"
	"ruteando/internal/domain/entity"
	domainerrors "ruteando/internal/domain/errors"
	"ruteando/internal/domain/lifecycle"
	"ruteando/internal/domain/repository"
	"ruteando/internal/domain/service"
	"ruteando/internal/errors"
	"ruteando/internal/geo"
	"ruteando/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

type routeService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	addressRepo repository.AddressRepository
	geocodeRepo repository.GeocodeRepository
	routeRepo   repository.RouteRepository
	linkRepo    repository.LinkRepository
	planner     service.RoutePlanner
	notifier    service.NotificationService
	publisher   service.EventPublisher
	config      *config.Config
	logger      *slog.Logger
}

// NewRouteService creates a new route lifecycle service instance
func NewRouteService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	addressRepo repository.AddressRepository,
	geocodeRepo repository.GeocodeRepository,
	routeRepo repository.RouteRepository,
	linkRepo repository.LinkRepository,
	planner service.RoutePlanner,
	notifier service.NotificationService,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RouteUsecase {
	return &routeService{
		txManager:   txManager,
		userRepo:    userRepo,
		addressRepo: addressRepo,
		geocodeRepo: geocodeRepo,
		routeRepo:   routeRepo,
		linkRepo:    linkRepo,
		planner:     planner,
		notifier:    notifier,
		publisher:   publisher,
		config:      cfg,
		logger:      logger,
	}
}

// PlanRoute computes a driving path through the buildings of the given
// addresses and persists the route in the pendiente state.
func (s *routeService) PlanRoute(ctx context.Context, userID uuid.UUID, input *usecase.PlanRouteInput) (*usecase.RouteWithStops, error) {
	addresses, err := s.addressRepo.FindByIDs(ctx, input.AddressIDs)
	if err != nil {
		return nil, err
	}
	if len(addresses) < 2 {
		return nil, domainerrors.ErrNotEnoughAddresses
	}

	// Restore request order; FindByIDs gives no ordering guarantee.
	byID := make(map[uuid.UUID]*entity.Address, len(addresses))
	for _, address := range addresses {
		byID[address.ID] = address
	}

	// One stop per building, first appearance wins.
	seen := make(map[uuid.UUID]bool)
	entryIDs := make([]uuid.UUID, 0, len(addresses))
	for _, id := range input.AddressIDs {
		address, ok := byID[id]
		if !ok {
			continue
		}
		if seen[address.GeocodeEntryID] {
			continue
		}
		seen[address.GeocodeEntryID] = true
		entryIDs = append(entryIDs, address.GeocodeEntryID)
	}

	if len(entryIDs) < 2 {
		return nil, domainerrors.ErrNotEnoughUniquePoints
	}

	entries, err := s.geocodeRepo.FindByIDs(ctx, entryIDs)
	if err != nil {
		return nil, err
	}
	entryByID := make(map[uuid.UUID]*entity.GeocodeEntry, len(entries))
	for _, entry := range entries {
		entryByID[entry.ID] = entry
	}

	points := make([]orb.Point, 0, len(entryIDs))
	for _, entryID := range entryIDs {
		entry, ok := entryByID[entryID]
		if !ok {
			return nil, domainerrors.ErrInternalError.WrapMessage("geocode entry missing for planned stop")
		}
		points = append(points, orb.Point{entry.Longitude, entry.Latitude})
	}

	planned, err := s.planner.ComputeRoute(ctx, points)
	if err != nil {
		return nil, err
	}

	route := &entity.Route{
		CreatedBy:       userID,
		Status:          entity.RouteStatusPending,
		TotalDistanceM:  planned.TotalDistanceM,
		TotalDurationS:  planned.TotalDurationS,
		EncodedPolyline: planned.EncodedPolyline,
	}

	stops := make([]*entity.RouteStop, 0, len(entryIDs))
	for i, entryID := range entryIDs {
		stop := &entity.RouteStop{
			GeocodeEntryID: entryID,
			Order:          i + 1,
		}
		if i > 0 && i-1 < len(planned.Legs) {
			leg := planned.Legs[i-1]
			distance := leg.DistanceM
			duration := leg.DurationS
			stop.DistancePrevM = &distance
			stop.DurationPrevS = &duration
		}
		stops = append(stops, stop)
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewRouteRepository().CreateRoute(ctx, route, stops)
	})
	if err != nil {
		return nil, err
	}

	return &usecase.RouteWithStops{Route: route, Stops: stops}, nil
}

// AssignRoute hands a pending route to a linked driver.
func (s *routeService) AssignRoute(ctx context.Context, managerID, routeID, driverID uuid.UUID) (*entity.Route, error) {
	manager, err := s.findUser(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if !manager.HasRole(entity.RoleGestor) || !manager.HasActivePremium(time.Now()) {
		return nil, domainerrors.ErrManagerOnly
	}

	driver, err := s.findUser(ctx, driverID)
	if err != nil {
		return nil, err
	}

	linked, err := s.linkRepo.HasActiveLink(ctx, managerID, driverID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, domainerrors.ErrDriverNotLinked
	}

	route, err := s.findRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}

	// Re-assigning to the same driver is a no-op.
	if route.Status == entity.RouteStatusAssigned && route.AssignedTo == driverID {
		return route, nil
	}
	if !route.Status.CanAssign() {
		return nil, domainerrors.ErrRouteAlreadyAssigned
	}

	now := time.Now()
	route.Status = entity.RouteStatusAssigned
	route.AssignedTo = driverID
	route.CreatedBy = managerID
	route.ReadOnly = true
	route.AssignedAt = &now

	if err := s.routeRepo.UpdateRoute(ctx, route); err != nil {
		return nil, err
	}

	s.notifyAssignment(driver, route)

	return route, nil
}

// StartRoute transitions the route to en_curso and materializes one delivery
// per deliverable unit of every stop.
func (s *routeService) StartRoute(ctx context.Context, driverID, routeID uuid.UUID) (*usecase.StartRouteResult, error) {
	driver, err := s.findUser(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if !driver.HasRole(entity.RoleConductor) {
		return nil, domainerrors.ErrDriverOnly
	}

	route, err := s.findRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}
	if !route.Status.CanStart() {
		return nil, domainerrors.ErrRouteNotStartable
	}
	if !route.CanBeStartedBy(driverID) {
		return nil, domainerrors.ErrNotRouteOwner
	}

	now := time.Now()
	created := 0

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		routeRepo := factory.NewRouteRepository()
		addressRepo := factory.NewAddressRepository()
		deliveryRepo := factory.NewDeliveryRepository()

		stops, err := routeRepo.FindStopsByRoute(ctx, routeID)
		if err != nil {
			return err
		}

		for _, stop := range stops {
			addresses, err := addressRepo.FindByGeocodeEntryID(ctx, stop.GeocodeEntryID)
			if err != nil {
				return err
			}

			for _, address := range addresses {
				delivery := &entity.Delivery{
					DriverID:     driverID,
					AddressID:    address.ID,
					Status:       entity.DeliveryStatusPending,
					Modifiable:   false,
					PackageCount: address.PackageCount,
				}
				if err := deliveryRepo.CreateDelivery(ctx, delivery); err != nil {
					return err
				}

				link := &entity.RouteDelivery{
					RouteID:     routeID,
					DeliveryID:  delivery.ID,
					RouteStopID: stop.ID,
					Status:      entity.DeliveryStatusPending,
					AssignedAt:  &now,
				}
				if err := deliveryRepo.CreateRouteDelivery(ctx, link); err != nil {
					return err
				}

				created++
			}
		}

		route.Status = entity.RouteStatusInProgress
		if !route.IsAssigned() {
			route.AssignedTo = driverID
			route.AssignedAt = &now
		}

		return routeRepo.UpdateRoute(ctx, route)
	})
	if err != nil {
		return nil, err
	}

	return &usecase.StartRouteResult{Route: route, DeliveriesCreated: created}, nil
}

// FinishRoute transitions the route to finalizada, failing every delivery
// still pending.
func (s *routeService) FinishRoute(ctx context.Context, driverID, routeID uuid.UUID) (*usecase.FinishRouteResult, error) {
	driver, err := s.findUser(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if !driver.HasRole(entity.RoleConductor) {
		return nil, domainerrors.ErrDriverOnly
	}

	route, err := s.findRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}
	if route.AssignedTo != driverID {
		return nil, domainerrors.ErrNotRouteOwner
	}
	if !route.Status.CanFinish() {
		return nil, domainerrors.ErrRouteNotActive
	}

	now := time.Now()
	failed := 0

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		routeRepo := factory.NewRouteRepository()
		deliveryRepo := factory.NewDeliveryRepository()

		deliveries, links, err := deliveryRepo.FindPendingDeliveriesByRoute(ctx, routeID)
		if err != nil {
			return err
		}

		for i, delivery := range deliveries {
			delivery.Status = entity.DeliveryStatusFailed
			if err := deliveryRepo.UpdateDelivery(ctx, delivery); err != nil {
				return err
			}

			link := links[i]
			link.Status = entity.DeliveryStatusFailed
			link.FailureReason = "No entregado al finalizar la ruta"
			link.AttemptedAt = &now
			if err := deliveryRepo.UpdateRouteDelivery(ctx, link); err != nil {
				return err
			}

			failed++
		}

		route.Status = entity.RouteStatusFinished
		route.FinishedAt = &now

		return routeRepo.UpdateRoute(ctx, route)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(&service.DeliveryEvent{
		Type:        service.EventRouteFinished,
		RouteID:     routeID.String(),
		DriverID:    driverID.String(),
		FailedCount: failed,
		OccurredAt:  now.UTC().Format(time.RFC3339),
	})

	return &usecase.FinishRouteResult{Route: route, FailedCount: failed}, nil
}

// CheckProximity measures the driver's distance to the next unvisited stop
// and auto-confirms the visit inside the configured threshold.
func (s *routeService) CheckProximity(ctx context.Context, driverID, routeID uuid.UUID, input *usecase.ProximityInput) (*usecase.ProximityResult, error) {
	route, err := s.findRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}
	if route.Status != entity.RouteStatusInProgress {
		return nil, domainerrors.ErrRouteNotActive
	}
	if route.AssignedTo != driverID {
		return nil, domainerrors.ErrNotRouteOwner
	}

	if err := s.routeRepo.UpsertRouteLocation(ctx, &entity.RouteLocation{
		RouteID:   routeID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Provider:  "gps",
		Accuracy:  input.Accuracy,
		UpdatedAt: time.Now(),
	}); err != nil {
		return nil, err
	}

	stop, err := s.routeRepo.FindFirstUnvisitedStop(ctx, routeID)
	if err != nil {
		if errors.Is(err, repository.ErrRouteStopNotFound) {
			return &usecase.ProximityResult{RouteComplete: true}, nil
		}

		return nil, err
	}

	entries, err := s.geocodeRepo.FindByIDs(ctx, []uuid.UUID{stop.GeocodeEntryID})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domainerrors.ErrInternalError.WrapMessage("stop references missing geocode entry")
	}
	entry := entries[0]

	distance := geo.DistanceM(
		orb.Point{input.Longitude, input.Latitude},
		orb.Point{entry.Longitude, entry.Latitude},
	)

	// Threshold is inclusive; the raw distance decides, rounding is only
	// for the reported value.
	within := distance <= s.config.Delivery.ProximityThresholdM
	if within {
		if err := s.routeRepo.MarkStopVisited(ctx, stop.ID); err != nil {
			return nil, err
		}
	}

	return &usecase.ProximityResult{
		StopID:          stop.ID,
		StopOrder:       stop.Order,
		DistanceM:       geo.Round2(distance),
		ThresholdM:      s.config.Delivery.ProximityThresholdM,
		WithinThreshold: within,
		Visited:         within,
	}, nil
}

// GetRoute retrieves a route with its ordered stops.
func (s *routeService) GetRoute(ctx context.Context, routeID uuid.UUID) (*usecase.RouteWithStops, error) {
	route, err := s.findRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}

	stops, err := s.routeRepo.FindStopsByRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}

	return &usecase.RouteWithStops{Route: route, Stops: stops}, nil
}

func (s *routeService) findUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

func (s *routeService) findRoute(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	route, err := s.routeRepo.FindRouteByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return nil, domainerrors.ErrRouteNotFound
		}

		return nil, err
	}

	return route, nil
}

// notifyAssignment pushes the assignment to the driver's device without
// blocking the request path.
func (s *routeService) notifyAssignment(driver *entity.User, route *entity.Route) {
	if s.notifier == nil || driver.DeviceToken == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		err := s.notifier.SendSingleNotification(ctx, driver.DeviceToken,
			"Nueva ruta asignada",
			"Se te ha asignado una nueva ruta de reparto",
			map[string]string{"route_id": route.ID.String()},
		)
		if err != nil {
			s.logger.Warn("assignment notification failed",
				slog.String("route_id", route.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}()
}

// publishEvent emits a delivery event without blocking the request path.
func (s *routeService) publishEvent(event *service.DeliveryEvent) {
	if s.publisher == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		if err := s.publisher.PublishDeliveryEvent(ctx, event); err != nil {
			s.logger.Warn("event publish failed",
				slog.String("type", event.Type),
				slog.String("error", err.Error()),
			)
		}
	}()
}
