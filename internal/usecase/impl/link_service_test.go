package impl

import (
	"context"
	"errors"
	"regexp"
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

type linkServiceFixture struct {
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	linkRepo  *mockRepo.MockLinkRepository
	qrService *mockService.MockQRCodeService
	service   usecase.LinkUsecase
}

func newLinkServiceFixture(t *testing.T) *linkServiceFixture {
	f := &linkServiceFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		linkRepo:  mockRepo.NewMockLinkRepository(t),
		qrService: mockService.NewMockQRCodeService(t),
	}
	f.service = NewLinkService(
		f.txManager, f.userRepo, f.linkRepo, f.qrService,
		newTestConfig(), newDiscardLogger(),
	)

	return f
}

func TestLinkService_GenerateLinkCode_Success(t *testing.T) {
	f := newLinkServiceFixture(t)
	ctx := context.Background()
	manager := newTestManager()

	f.userRepo.EXPECT().FindByID(ctx, manager.ID).Return(manager, nil)
	f.linkRepo.EXPECT().
		CreateCode(ctx, mock.AnythingOfType("*entity.LinkCode")).
		Run(func(_ context.Context, code *entity.LinkCode) {
			code.ID = uuid.New()
		}).
		Return(nil)
	f.qrService.EXPECT().
		GenerateLinkCodeQR(mock.AnythingOfType("string")).
		Return([]byte("png-bytes"), nil)

	output, err := f.service.GenerateLinkCode(ctx, manager.ID)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{8}$`), output.Code)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), output.ExpiresAt, time.Minute)
	assert.Equal(t, []byte("png-bytes"), output.QRCodePNG)
}

func TestLinkService_GenerateLinkCode_ManagerOnly(t *testing.T) {
	f := newLinkServiceFixture(t)
	ctx := context.Background()
	driver := newTestDriver()

	f.userRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)

	output, err := f.service.GenerateLinkCode(ctx, driver.ID)
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrManagerOnly, err)
}

func TestLinkService_GenerateLinkCode_RetriesOnCollision(t *testing.T) {
	f := newLinkServiceFixture(t)
	ctx := context.Background()
	manager := newTestManager()

	f.userRepo.EXPECT().FindByID(ctx, manager.ID).Return(manager, nil)

	// First draw collides with an existing code value.
	f.linkRepo.EXPECT().
		CreateCode(ctx, mock.AnythingOfType("*entity.LinkCode")).
		Return(domainerrors.ErrValidationFailed).
		Once()
	f.linkRepo.EXPECT().
		CreateCode(ctx, mock.AnythingOfType("*entity.LinkCode")).
		Return(nil).
		Once()
	f.qrService.EXPECT().
		GenerateLinkCodeQR(mock.AnythingOfType("string")).
		Return([]byte("png"), nil)

	output, err := f.service.GenerateLinkCode(ctx, manager.ID)
	require.NoError(t, err)
	assert.Len(t, output.Code, 8)
}

func TestLinkService_GenerateLinkCode_QRFailureTolerated(t *testing.T) {
	f := newLinkServiceFixture(t)
	ctx := context.Background()
	manager := newTestManager()

	f.userRepo.EXPECT().FindByID(ctx, manager.ID).Return(manager, nil)
	f.linkRepo.EXPECT().
		CreateCode(ctx, mock.AnythingOfType("*entity.LinkCode")).
		Return(nil)
	f.qrService.EXPECT().
		GenerateLinkCodeQR(mock.AnythingOfType("string")).
		Return(nil, errors.New("encoder failure"))

	// The code is still usable without its QR rendering.
	output, err := f.service.GenerateLinkCode(ctx, manager.ID)
	require.NoError(t, err)
	assert.Len(t, output.Code, 8)
	assert.Empty(t, output.QRCodePNG)
}

func TestLinkService_RedeemLinkCode_Success(t *testing.T) {
	f := newLinkServiceFixture(t)
	ctx := context.Background()
	driver := newTestDriver()
	managerID := uuid.New()

	code := &entity.LinkCode{
		ID:        uuid.New(),
		ManagerID: managerID,
		Code:      "ABCD1234",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	f.userRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)

	txLinkRepo := mockRepo.NewMockLinkRepository(t)
	txLinkRepo.EXPECT().FindCodeByValue(ctx, "ABCD1234").Return(code, nil)
	txLinkRepo.EXPECT().
		FindLink(ctx, managerID, driver.ID).
		Return(nil, repository.ErrLinkNotFound)
	txLinkRepo.EXPECT().
		CreateLink(ctx, mock.AnythingOfType("*entity.ManagerDriverLink")).
		Run(func(_ context.Context, link *entity.ManagerDriverLink) {
			link.ID = uuid.New()
		}).
		Return(nil)
	txLinkRepo.EXPECT().DeleteCode(ctx, code.ID).Return(nil)

	stubTransaction(t, f.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewLinkRepository().Return(txLinkRepo)
	})

	link, err := f.service.RedeemLinkCode(ctx, driver.ID, "ABCD1234")
	require.NoError(t, err)

	assert.Equal(t, managerID, link.ManagerID)
	assert.Equal(t, driver.ID, link.DriverID)
	assert.True(t, link.Active)
}

func TestLinkService_RedeemLinkCode_DriverOnly(t *testing.T) {
	f := newLinkServiceFixture(t)
	ctx := context.Background()
	manager := newTestManager()

	f.userRepo.EXPECT().FindByID(ctx, manager.ID).Return(manager, nil)

	link, err := f.service.RedeemLinkCode(ctx, manager.ID, "ABCD1234")
	assert.Nil(t, link)
	assert.Equal(t, domainerrors.ErrDriverOnly, err)
}

func TestLinkService_RedeemLinkCode_NotFound(t *testing.T) {
	f := newLinkServiceFixture(t)
	ctx := context.Background()
	driver := newTestDriver()

	f.userRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)

	txLinkRepo := mockRepo.NewMockLinkRepository(t)
	txLinkRepo.EXPECT().
		FindCodeByValue(ctx, "NOEXISTE").
		Return(nil, repository.ErrLinkCodeNotFound)

	stubTransaction(t, f.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewLinkRepository().Return(txLinkRepo)
	})

	link, err := f.service.RedeemLinkCode(ctx, driver.ID, "NOEXISTE")
	assert.Nil(t, link)
	assert.Equal(t, domainerrors.ErrLinkCodeNotFound, err)
}

func TestLinkService_RedeemLinkCode_Expired(t *testing.T) {
	f := newLinkServiceFixture(t)
	ctx := context.Background()
	driver := newTestDriver()

	code := &entity.LinkCode{
		ID:        uuid.New(),
		ManagerID: uuid.New(),
		Code:      "VIEJO123",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	f.userRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)

	txLinkRepo := mockRepo.NewMockLinkRepository(t)
	txLinkRepo.EXPECT().FindCodeByValue(ctx, "VIEJO123").Return(code, nil)
	// Expired rows are removed on discovery.
	txLinkRepo.EXPECT().DeleteCode(ctx, code.ID).Return(nil)

	stubTransaction(t, f.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewLinkRepository().Return(txLinkRepo)
	})

	link, err := f.service.RedeemLinkCode(ctx, driver.ID, "VIEJO123")
	assert.Nil(t, link)
	assert.Equal(t, domainerrors.ErrLinkCodeExpired, err)
}

func TestLinkService_RedeemLinkCode_AlreadyLinked(t *testing.T) {
	f := newLinkServiceFixture(t)
	ctx := context.Background()
	driver := newTestDriver()
	managerID := uuid.New()

	code := &entity.LinkCode{
		ID:        uuid.New(),
		ManagerID: managerID,
		Code:      "ABCD1234",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	existing := &entity.ManagerDriverLink{
		ID:        uuid.New(),
		ManagerID: managerID,
		DriverID:  driver.ID,
		Active:    true,
	}

	f.userRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)

	txLinkRepo := mockRepo.NewMockLinkRepository(t)
	txLinkRepo.EXPECT().FindCodeByValue(ctx, "ABCD1234").Return(code, nil)
	txLinkRepo.EXPECT().FindLink(ctx, managerID, driver.ID).Return(existing, nil)
	txLinkRepo.EXPECT().DeleteCode(ctx, code.ID).Return(nil)

	stubTransaction(t, f.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewLinkRepository().Return(txLinkRepo)
	})

	// The code is consumed and the existing link returned unchanged.
	link, err := f.service.RedeemLinkCode(ctx, driver.ID, "ABCD1234")
	require.NoError(t, err)
	assert.Equal(t, existing, link)
}

func TestLinkService_Unlink_Success(t *testing.T) {
	f := newLinkServiceFixture(t)
	ctx := context.Background()
	manager := newTestManager()
	driverID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, manager.ID).Return(manager, nil)
	f.linkRepo.EXPECT().DeleteLink(ctx, manager.ID, driverID).Return(nil)

	err := f.service.Unlink(ctx, manager.ID, driverID)
	require.NoError(t, err)
}

func TestLinkService_Unlink_NotFound(t *testing.T) {
	f := newLinkServiceFixture(t)
	ctx := context.Background()
	manager := newTestManager()
	driverID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, manager.ID).Return(manager, nil)
	f.linkRepo.EXPECT().
		DeleteLink(ctx, manager.ID, driverID).
		Return(repository.ErrLinkNotFound)

	err := f.service.Unlink(ctx, manager.ID, driverID)
	assert.Equal(t, domainerrors.ErrLinkNotFound, err)
}

func TestLinkService_Unlink_ManagerOnly(t *testing.T) {
	f := newLinkServiceFixture(t)
	ctx := context.Background()

	lapsed := newTestManager()
	lapsed.PremiumExpiresAt = nil

	f.userRepo.EXPECT().FindByID(ctx, lapsed.ID).Return(lapsed, nil)

	err := f.service.Unlink(ctx, lapsed.ID, uuid.New())
	assert.Equal(t, domainerrors.ErrManagerOnly, err)
}
