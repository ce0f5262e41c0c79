package impl

import (
	"context"
	"testing"

	"ruteando/internal/domain/entity"
	domainerrors "ruteando/internal/domain/errors"
	"ruteando/internal/domain/repository"
	mockRepo "ruteando/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetProfile(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(mockUserRepo)

	ctx := context.Background()
	driver := newTestDriver()

	mockUserRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)

	user, err := svc.GetProfile(ctx, driver.ID)
	require.NoError(t, err)
	assert.Equal(t, driver, user)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(mockUserRepo)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := svc.GetProfile(ctx, userID)
	assert.Nil(t, user)
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}

func TestUserService_SwitchRole_Success(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(mockUserRepo)

	ctx := context.Background()
	user := newTestManager()
	user.CurrentRole = entity.RoleConductor

	mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	updated, err := svc.SwitchRole(ctx, user.ID, "gestor")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleGestor, updated.CurrentRole)
}

func TestUserService_SwitchRole_InvalidRole(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(mockUserRepo)

	user, err := svc.SwitchRole(context.Background(), uuid.New(), "admin")
	assert.Nil(t, user)
	assert.Equal(t, domainerrors.ErrInvalidRole, err)
}

func TestUserService_SwitchRole_PremiumRequired(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(mockUserRepo)

	ctx := context.Background()
	driver := newTestDriver()

	mockUserRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)

	user, err := svc.SwitchRole(ctx, driver.ID, "gestor")
	assert.Nil(t, user)
	assert.Equal(t, domainerrors.ErrPremiumRequired, err)
}

func TestUserService_SwitchRole_SameRoleNoop(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(mockUserRepo)

	ctx := context.Background()
	driver := newTestDriver()

	mockUserRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)

	// No Update call: the role is already in force.
	user, err := svc.SwitchRole(ctx, driver.ID, "conductor")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleConductor, user.CurrentRole)
}
