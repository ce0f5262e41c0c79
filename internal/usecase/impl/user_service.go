package impl

import (
	"context"
	"time"

	"ruteando/internal/domain/entity"
	domainerrors "ruteando/internal/domain/errors"
	"ruteando/internal/domain/repository"
	"ruteando/internal/errors"
	"ruteando/internal/usecase"

	"github.com/google/uuid"
)

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new account service instance
func NewUserService(userRepo repository.UserRepository) usecase.UserUsecase {
	return &userService{userRepo: userRepo}
}

// GetProfile retrieves the acting user's account.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

// SwitchRole changes the role the user operates under.
func (s *userService) SwitchRole(ctx context.Context, userID uuid.UUID, role string) (*entity.User, error) {
	parsed := entity.ParseRole(role)
	if !parsed.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if parsed == entity.RoleGestor && !user.HasActivePremium(time.Now()) {
		return nil, domainerrors.ErrPremiumRequired
	}

	if user.CurrentRole == parsed {
		return user, nil
	}

	user.CurrentRole = parsed
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
