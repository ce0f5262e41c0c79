package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"ruteando/internal/domain/entity"
	domainerrors "ruteando/internal/domain/errors"
	"ruteando/internal/domain/lifecycle"
	"ruteando/internal/domain/repository"
	"ruteando/internal/domain/service"
	"ruteando/internal/errors"
	"ruteando/internal/usecase"

	"github.com/google/uuid"
)

const historyDateLayout = "2006-01-02"

type deliveryService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	deliveryRepo repository.DeliveryRepository
	linkRepo     repository.LinkRepository
	attachments  service.AttachmentStorage
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewDeliveryService creates a new delivery tracking service instance
func NewDeliveryService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	deliveryRepo repository.DeliveryRepository,
	linkRepo repository.LinkRepository,
	attachments service.AttachmentStorage,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.DeliveryUsecase {
	return &deliveryService{
		txManager:    txManager,
		userRepo:     userRepo,
		deliveryRepo: deliveryRepo,
		linkRepo:     linkRepo,
		attachments:  attachments,
		publisher:    publisher,
		logger:       logger,
	}
}

// RecordAttempt appends an immutable attempt record and updates the delivery
// and its route link in one transaction.
func (s *deliveryService) RecordAttempt(ctx context.Context, driverID uuid.UUID, input *usecase.RecordAttemptInput) (*usecase.AttemptResult, error) {
	newStatus := entity.ParseDeliveryStatus(input.NewStatus)
	if !newStatus.IsValid() {
		return nil, domainerrors.ErrInvalidDeliveryStatus
	}

	var (
		attempt  *entity.DeliveryAttempt
		delivery *entity.Delivery
		link     *entity.RouteDelivery
	)

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		deliveryRepo := factory.NewDeliveryRepository()

		var err error
		link, err = deliveryRepo.FindRouteDeliveryByID(ctx, input.RouteDeliveryID)
		if err != nil {
			if errors.Is(err, repository.ErrRouteDeliveryNotFound) {
				return domainerrors.ErrRouteDeliveryNotFound
			}

			return err
		}

		delivery, err = deliveryRepo.FindDeliveryByID(ctx, link.DeliveryID)
		if err != nil {
			return err
		}

		if delivery.DriverID != driverID {
			return domainerrors.ErrNotDeliveryOwner
		}
		if delivery.Status.IsTerminal() {
			return domainerrors.ErrDeliveryFinalized
		}

		now := time.Now()
		previous := delivery.Status

		attempt = &entity.DeliveryAttempt{
			DeliveryID:      delivery.ID,
			RouteDeliveryID: link.ID,
			DriverID:        driverID,
			PreviousStatus:  previous,
			NewStatus:       newStatus,
			Reason:          input.Reason,
			Location:        input.Location,
			AttachmentKeys:  input.AttachmentKeys,
		}
		if err := deliveryRepo.CreateAttempt(ctx, attempt); err != nil {
			return err
		}

		delivery.Status = newStatus
		if err := deliveryRepo.UpdateDelivery(ctx, delivery); err != nil {
			return err
		}

		link.Status = newStatus
		link.AttemptedAt = &now
		if newStatus == entity.DeliveryStatusFailed {
			link.FailureReason = input.Reason
		}

		return deliveryRepo.UpdateRouteDelivery(ctx, link)
	})
	if err != nil {
		return nil, err
	}

	s.publishAttempt(attempt, link)

	return &usecase.AttemptResult{Attempt: attempt, Delivery: delivery, Link: link}, nil
}

// History lists deliveries visible to the acting user under the role rules.
func (s *deliveryService) History(ctx context.Context, userID uuid.UUID, input *usecase.HistoryInput) ([]*entity.Delivery, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	filter, err := buildHistoryFilter(input)
	if err != nil {
		return nil, err
	}

	switch {
	case user.HasRole(entity.RoleConductor):
		return s.deliveryRepo.FindDeliveriesByDriver(ctx, userID, filter)

	case user.HasRole(entity.RoleGestor):
		if input.DriverID == nil {
			return nil, domainerrors.ErrMissingFields.WrapMessage("driver_id is required for managers")
		}

		linked, err := s.linkRepo.HasActiveLink(ctx, userID, *input.DriverID)
		if err != nil {
			return nil, err
		}
		if !linked {
			return nil, domainerrors.ErrDriverNotLinked
		}

		return s.deliveryRepo.FindDeliveriesByDriverAndRouteCreator(ctx, *input.DriverID, userID, filter)

	default:
		return nil, domainerrors.ErrInvalidRole
	}
}

// UploadAttachment stores attempt evidence and returns its storage key.
func (s *deliveryService) UploadAttachment(ctx context.Context, driverID uuid.UUID, filename, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", domainerrors.ErrMissingFields.WrapMessage("attachment body is empty")
	}

	key := fmt.Sprintf("adjuntos/%s/%s%s", driverID, uuid.NewString(), sanitizeExtension(filename))

	storedKey, err := s.attachments.Save(ctx, key, contentType, data)
	if err != nil {
		return "", domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return storedKey, nil
}

// buildHistoryFilter parses the optional status and date bounds.
func buildHistoryFilter(input *usecase.HistoryInput) (repository.HistoryFilter, error) {
	var filter repository.HistoryFilter

	if input.Status != "" {
		status := entity.ParseDeliveryStatus(input.Status)
		if !status.IsValid() {
			return filter, domainerrors.ErrInvalidDeliveryStatus
		}
		filter.Status = &status
	}

	if input.DateFrom != "" {
		from, err := time.Parse(historyDateLayout, input.DateFrom)
		if err != nil {
			return filter, domainerrors.ErrInvalidDateFormat
		}
		filter.DateFrom = &from
	}

	if input.DateTo != "" {
		to, err := time.Parse(historyDateLayout, input.DateTo)
		if err != nil {
			return filter, domainerrors.ErrInvalidDateFormat
		}
		filter.DateTo = &to
	}

	return filter, nil
}

// sanitizeExtension keeps only a safe file extension from the client name.
func sanitizeExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" || len(ext) > 8 || strings.ContainsAny(ext, "/\\") {
		return ""
	}

	return ext
}

// publishAttempt emits a delivery event without blocking the request path.
func (s *deliveryService) publishAttempt(attempt *entity.DeliveryAttempt, link *entity.RouteDelivery) {
	if s.publisher == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		event := &service.DeliveryEvent{
			Type:       service.EventAttemptRecorded,
			RouteID:    link.RouteID.String(),
			DeliveryID: attempt.DeliveryID.String(),
			DriverID:   attempt.DriverID.String(),
			NewStatus:  attempt.NewStatus.String(),
			OccurredAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.publisher.PublishDeliveryEvent(ctx, event); err != nil {
			s.logger.Warn("event publish failed",
				slog.String("type", event.Type),
				slog.String("error", err.Error()),
			)
		}
	}()
}
