package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"ruteando/internal/domain/entity"
	domainerrors "ruteando/internal/domain/errors"
	"ruteando/internal/domain/repository"
	mockRepo "ruteando/internal/mocks/repository"
	mockService "ruteando/internal/mocks/service"
	"ruteando/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deliveryServiceFixture struct {
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	deliveryRepo *mockRepo.MockDeliveryRepository
	linkRepo     *mockRepo.MockLinkRepository
	attachments  *mockService.MockAttachmentStorage
	service      usecase.DeliveryUsecase
}

func newDeliveryServiceFixture(t *testing.T) *deliveryServiceFixture {
	f := &deliveryServiceFixture{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		deliveryRepo: mockRepo.NewMockDeliveryRepository(t),
		linkRepo:     mockRepo.NewMockLinkRepository(t),
		attachments:  mockService.NewMockAttachmentStorage(t),
	}
	f.service = NewDeliveryService(
		f.txManager, f.userRepo, f.deliveryRepo, f.linkRepo,
		f.attachments, nil, newDiscardLogger(),
	)

	return f
}

func TestDeliveryService_RecordAttempt_Success(t *testing.T) {
	f := newDeliveryServiceFixture(t)
	ctx := context.Background()
	driverID := uuid.New()

	link := &entity.RouteDelivery{
		ID:         uuid.New(),
		RouteID:    uuid.New(),
		DeliveryID: uuid.New(),
		Status:     entity.DeliveryStatusPending,
	}
	delivery := &entity.Delivery{
		ID:       link.DeliveryID,
		DriverID: driverID,
		Status:   entity.DeliveryStatusPending,
	}

	input := &usecase.RecordAttemptInput{
		RouteDeliveryID: link.ID,
		NewStatus:       "fallida",
		Reason:          "Cliente ausente",
		Location:        &entity.GPSPoint{Lat: -34.6037, Lng: -58.3816},
		AttachmentKeys:  []string{"adjuntos/foto.jpg"},
	}

	txDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	txDeliveryRepo.EXPECT().FindRouteDeliveryByID(ctx, link.ID).Return(link, nil)
	txDeliveryRepo.EXPECT().FindDeliveryByID(ctx, link.DeliveryID).Return(delivery, nil)
	txDeliveryRepo.EXPECT().
		CreateAttempt(ctx, mock.AnythingOfType("*entity.DeliveryAttempt")).
		Run(func(_ context.Context, attempt *entity.DeliveryAttempt) {
			attempt.ID = uuid.New()
		}).
		Return(nil)
	txDeliveryRepo.EXPECT().
		UpdateDelivery(ctx, mock.AnythingOfType("*entity.Delivery")).
		Return(nil)
	txDeliveryRepo.EXPECT().
		UpdateRouteDelivery(ctx, mock.AnythingOfType("*entity.RouteDelivery")).
		Return(nil)

	stubTransaction(t, f.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewDeliveryRepository().Return(txDeliveryRepo)
	})

	result, err := f.service.RecordAttempt(ctx, driverID, input)
	require.NoError(t, err)

	assert.Equal(t, entity.DeliveryStatusPending, result.Attempt.PreviousStatus)
	assert.Equal(t, entity.DeliveryStatusFailed, result.Attempt.NewStatus)
	assert.Equal(t, input.AttachmentKeys, result.Attempt.AttachmentKeys)
	assert.Equal(t, entity.DeliveryStatusFailed, result.Delivery.Status)
	assert.Equal(t, entity.DeliveryStatusFailed, result.Link.Status)
	assert.Equal(t, "Cliente ausente", result.Link.FailureReason)
	assert.NotNil(t, result.Link.AttemptedAt)
}

func TestDeliveryService_RecordAttempt_InvalidStatus(t *testing.T) {
	f := newDeliveryServiceFixture(t)
	ctx := context.Background()

	result, err := f.service.RecordAttempt(ctx, uuid.New(), &usecase.RecordAttemptInput{
		RouteDeliveryID: uuid.New(),
		NewStatus:       "entregada",
	})
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrInvalidDeliveryStatus, err)
}

func TestDeliveryService_RecordAttempt_LinkNotFound(t *testing.T) {
	f := newDeliveryServiceFixture(t)
	ctx := context.Background()
	linkID := uuid.New()

	txDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	txDeliveryRepo.EXPECT().
		FindRouteDeliveryByID(ctx, linkID).
		Return(nil, repository.ErrRouteDeliveryNotFound)

	stubTransaction(t, f.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewDeliveryRepository().Return(txDeliveryRepo)
	})

	result, err := f.service.RecordAttempt(ctx, uuid.New(), &usecase.RecordAttemptInput{
		RouteDeliveryID: linkID,
		NewStatus:       "finalizada",
	})
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrRouteDeliveryNotFound, err)
}

func TestDeliveryService_RecordAttempt_NotOwner(t *testing.T) {
	f := newDeliveryServiceFixture(t)
	ctx := context.Background()

	link := &entity.RouteDelivery{ID: uuid.New(), DeliveryID: uuid.New()}
	delivery := &entity.Delivery{
		ID:       link.DeliveryID,
		DriverID: uuid.New(),
		Status:   entity.DeliveryStatusPending,
	}

	txDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	txDeliveryRepo.EXPECT().FindRouteDeliveryByID(ctx, link.ID).Return(link, nil)
	txDeliveryRepo.EXPECT().FindDeliveryByID(ctx, link.DeliveryID).Return(delivery, nil)

	stubTransaction(t, f.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewDeliveryRepository().Return(txDeliveryRepo)
	})

	result, err := f.service.RecordAttempt(ctx, uuid.New(), &usecase.RecordAttemptInput{
		RouteDeliveryID: link.ID,
		NewStatus:       "finalizada",
	})
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrNotDeliveryOwner, err)
}

func TestDeliveryService_RecordAttempt_Finalized(t *testing.T) {
	f := newDeliveryServiceFixture(t)
	ctx := context.Background()
	driverID := uuid.New()

	link := &entity.RouteDelivery{ID: uuid.New(), DeliveryID: uuid.New()}
	delivery := &entity.Delivery{
		ID:       link.DeliveryID,
		DriverID: driverID,
		Status:   entity.DeliveryStatusFinished,
	}

	txDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	txDeliveryRepo.EXPECT().FindRouteDeliveryByID(ctx, link.ID).Return(link, nil)
	txDeliveryRepo.EXPECT().FindDeliveryByID(ctx, link.DeliveryID).Return(delivery, nil)

	stubTransaction(t, f.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewDeliveryRepository().Return(txDeliveryRepo)
	})

	// A finalized delivery rejects further attempts; a failed one would not.
	result, err := f.service.RecordAttempt(ctx, driverID, &usecase.RecordAttemptInput{
		RouteDeliveryID: link.ID,
		NewStatus:       "fallida",
	})
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrDeliveryFinalized, err)
}

func TestDeliveryService_History_Driver(t *testing.T) {
	f := newDeliveryServiceFixture(t)
	ctx := context.Background()
	driver := newTestDriver()

	status := entity.DeliveryStatusFinished
	from, _ := time.Parse("2006-01-02", "2026-08-01")
	to, _ := time.Parse("2006-01-02", "2026-08-28")
	expectedFilter := repository.HistoryFilter{Status: &status, DateFrom: &from, DateTo: &to}

	deliveries := []*entity.Delivery{{ID: uuid.New(), DriverID: driver.ID}}

	f.userRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)
	f.deliveryRepo.EXPECT().
		FindDeliveriesByDriver(ctx, driver.ID, expectedFilter).
		Return(deliveries, nil)

	result, err := f.service.History(ctx, driver.ID, &usecase.HistoryInput{
		Status:   "Finalizada",
		DateFrom: "2026-08-01",
		DateTo:   "2026-08-28",
	})
	require.NoError(t, err)
	assert.Equal(t, deliveries, result)
}

func TestDeliveryService_History_ManagerRequiresDriverID(t *testing.T) {
	f := newDeliveryServiceFixture(t)
	ctx := context.Background()
	manager := newTestManager()

	f.userRepo.EXPECT().FindByID(ctx, manager.ID).Return(manager, nil)

	result, err := f.service.History(ctx, manager.ID, &usecase.HistoryInput{})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func TestDeliveryService_History_ManagerLinkedDriver(t *testing.T) {
	f := newDeliveryServiceFixture(t)
	ctx := context.Background()
	manager := newTestManager()
	driverID := uuid.New()

	deliveries := []*entity.Delivery{{ID: uuid.New(), DriverID: driverID}}

	f.userRepo.EXPECT().FindByID(ctx, manager.ID).Return(manager, nil)
	f.linkRepo.EXPECT().HasActiveLink(ctx, manager.ID, driverID).Return(true, nil)
	f.deliveryRepo.EXPECT().
		FindDeliveriesByDriverAndRouteCreator(ctx, driverID, manager.ID, repository.HistoryFilter{}).
		Return(deliveries, nil)

	result, err := f.service.History(ctx, manager.ID, &usecase.HistoryInput{DriverID: &driverID})
	require.NoError(t, err)
	assert.Equal(t, deliveries, result)
}

func TestDeliveryService_History_ManagerNotLinked(t *testing.T) {
	f := newDeliveryServiceFixture(t)
	ctx := context.Background()
	manager := newTestManager()
	driverID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, manager.ID).Return(manager, nil)
	f.linkRepo.EXPECT().HasActiveLink(ctx, manager.ID, driverID).Return(false, nil)

	result, err := f.service.History(ctx, manager.ID, &usecase.HistoryInput{DriverID: &driverID})
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrDriverNotLinked, err)
}

func TestDeliveryService_History_InvalidRole(t *testing.T) {
	f := newDeliveryServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	result, err := f.service.History(ctx, userID, &usecase.HistoryInput{})
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrInvalidRole, err)
}

func TestDeliveryService_History_InvalidDate(t *testing.T) {
	f := newDeliveryServiceFixture(t)
	ctx := context.Background()
	driver := newTestDriver()

	f.userRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)

	result, err := f.service.History(ctx, driver.ID, &usecase.HistoryInput{DateFrom: "28-08-2026"})
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrInvalidDateFormat, err)
}

func TestDeliveryService_UploadAttachment_Success(t *testing.T) {
	f := newDeliveryServiceFixture(t)
	ctx := context.Background()
	driverID := uuid.New()
	data := []byte("jpeg bytes")

	var storedKey string
	f.attachments.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/jpeg", data).
		RunAndReturn(func(_ context.Context, key, _ string, _ []byte) (string, error) {
			storedKey = key

			return key, nil
		})

	key, err := f.service.UploadAttachment(ctx, driverID, "Foto Entrega.JPG", "image/jpeg", data)
	require.NoError(t, err)

	assert.Equal(t, storedKey, key)
	assert.True(t, strings.HasPrefix(key, "adjuntos/"+driverID.String()+"/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
}

func TestDeliveryService_UploadAttachment_EmptyBody(t *testing.T) {
	f := newDeliveryServiceFixture(t)
	ctx := context.Background()

	key, err := f.service.UploadAttachment(ctx, uuid.New(), "foto.jpg", "image/jpeg", nil)
	assert.Empty(t, key)
	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func TestSanitizeExtension(t *testing.T) {
	assert.Equal(t, ".jpg", sanitizeExtension("foto.JPG"))
	assert.Equal(t, ".png", sanitizeExtension("firma.png"))
	assert.Equal(t, "", sanitizeExtension("sinextension"))
	assert.Equal(t, "", sanitizeExtension("raro.extensionlarga"))
}
