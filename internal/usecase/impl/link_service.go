package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"time"

	"ruteando/config"
	"ruteando/internal/domain/entity"
	domainerrors "ruteando/internal/domain/errors"
	"ruteando/internal/domain/repository"
	"ruteando/internal/domain/service"
	"ruteando/internal/errors"
	"ruteando/internal/usecase"

	"github.com/google/uuid"
)

// linkCodeAlphabet excludes nothing: the original surface issues plain
// uppercase alphanumerics.
const linkCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const linkCodeCreateRetries = 3

type linkService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	linkRepo  repository.LinkRepository
	qrService service.QRCodeService
	config    *config.Config
	logger    *slog.Logger
}

// NewLinkService creates a new manager-driver linking service instance
func NewLinkService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	linkRepo repository.LinkRepository,
	qrService service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LinkUsecase {
	return &linkService{
		txManager: txManager,
		userRepo:  userRepo,
		linkRepo:  linkRepo,
		qrService: qrService,
		config:    cfg,
		logger:    logger,
	}
}

// GenerateLinkCode issues a short-lived single-use code for a manager.
func (s *linkService) GenerateLinkCode(ctx context.Context, managerID uuid.UUID) (*usecase.LinkCodeOutput, error) {
	manager, err := s.findUser(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if !manager.HasRole(entity.RoleGestor) || !manager.HasActivePremium(time.Now()) {
		return nil, domainerrors.ErrManagerOnly
	}

	expiresAt := time.Now().Add(s.config.Linking.CodeTTL)

	var code *entity.LinkCode
	for attempt := 0; attempt < linkCodeCreateRetries; attempt++ {
		value, err := randomLinkCode(s.config.Linking.CodeLength)
		if err != nil {
			return nil, err
		}

		code = &entity.LinkCode{
			ManagerID: managerID,
			Code:      value,
			ExpiresAt: expiresAt,
		}
		if err := s.linkRepo.CreateCode(ctx, code); err != nil {
			// Value collision: try a fresh code.
			if errors.Is(err, domainerrors.ErrValidationFailed) && attempt < linkCodeCreateRetries-1 {
				continue
			}

			return nil, err
		}

		break
	}

	output := &usecase.LinkCodeOutput{
		Code:      code.Code,
		ExpiresAt: code.ExpiresAt,
	}

	if s.qrService != nil {
		png, err := s.qrService.GenerateLinkCodeQR(code.Code)
		if err != nil {
			s.logger.Warn("link code QR generation failed",
				slog.String("error", err.Error()),
			)
		} else {
			output.QRCodePNG = png
		}
	}

	return output, nil
}

// RedeemLinkCode consumes a code and links the driver to its issuing manager.
func (s *linkService) RedeemLinkCode(ctx context.Context, driverID uuid.UUID, codeValue string) (*entity.ManagerDriverLink, error) {
	driver, err := s.findUser(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if !driver.HasRole(entity.RoleConductor) {
		return nil, domainerrors.ErrDriverOnly
	}

	var link *entity.ManagerDriverLink

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		linkRepo := factory.NewLinkRepository()

		code, err := linkRepo.FindCodeByValue(ctx, codeValue)
		if err != nil {
			if errors.Is(err, repository.ErrLinkCodeNotFound) {
				return domainerrors.ErrLinkCodeNotFound
			}

			return err
		}

		if code.IsExpired(time.Now()) {
			// Dead code rows are removed eagerly.
			if err := linkRepo.DeleteCode(ctx, code.ID); err != nil {
				return err
			}

			return domainerrors.ErrLinkCodeExpired
		}

		existing, err := linkRepo.FindLink(ctx, code.ManagerID, driverID)
		if err == nil {
			// Already linked: consume the code, succeed without changes.
			link = existing

			return linkRepo.DeleteCode(ctx, code.ID)
		}
		if !errors.Is(err, repository.ErrLinkNotFound) {
			return err
		}

		link = &entity.ManagerDriverLink{
			ManagerID: code.ManagerID,
			DriverID:  driverID,
			Active:    true,
		}
		if err := linkRepo.CreateLink(ctx, link); err != nil {
			return err
		}

		return linkRepo.DeleteCode(ctx, code.ID)
	})
	if err != nil {
		return nil, err
	}

	return link, nil
}

// Unlink removes the association between a manager and a driver.
func (s *linkService) Unlink(ctx context.Context, managerID, driverID uuid.UUID) error {
	manager, err := s.findUser(ctx, managerID)
	if err != nil {
		return err
	}
	if !manager.HasRole(entity.RoleGestor) || !manager.HasActivePremium(time.Now()) {
		return domainerrors.ErrManagerOnly
	}

	if err := s.linkRepo.DeleteLink(ctx, managerID, driverID); err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return domainerrors.ErrLinkNotFound
		}

		return err
	}

	return nil
}

func (s *linkService) findUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

// randomLinkCode draws a fixed-length uppercase alphanumeric code from
// crypto/rand.
func randomLinkCode(length int) (string, error) {
	buf := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(linkCodeAlphabet)))

	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", errors.Wrap(err, "failed to draw random code character")
		}
		buf[i] = linkCodeAlphabet[n.Int64()]
	}

	return string(buf), nil
}
