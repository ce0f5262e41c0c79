package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"ruteando/config"
	"ruteando/internal/domain/entity"
	"ruteando/internal/domain/repository"
	mockRepo "ruteando/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// newDiscardLogger returns a logger that discards all output during tests.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Delivery.ProximityThresholdM = 50
	cfg.Linking.CodeTTL = 30 * time.Minute
	cfg.Linking.CodeLength = 8

	return cfg
}

// newTestManager builds a gestor with an active premium subscription.
func newTestManager() *entity.User {
	expiry := time.Now().Add(30 * 24 * time.Hour)

	return &entity.User{
		ID:               uuid.New(),
		Email:            "gestor@example.com",
		Name:             "Gestor de Prueba",
		CurrentRole:      entity.RoleGestor,
		IsPremium:        true,
		PremiumExpiresAt: &expiry,
	}
}

func newTestDriver() *entity.User {
	return &entity.User{
		ID:          uuid.New(),
		Email:       "conductor@example.com",
		Name:        "Conductor de Prueba",
		CurrentRole: entity.RoleConductor,
	}
}

// stubTransaction makes the transaction manager run the callback against a
// mock factory configured by setup, propagating the callback's error.
func stubTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}
