package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"ruteando/config"
	"ruteando/internal/delivery"
	deliveryhttp "ruteando/internal/delivery/http"
	"ruteando/internal/delivery/http/middleware"
	"ruteando/internal/delivery/http/router/handler"
	"ruteando/internal/domain/service"
	"ruteando/internal/infra/google"
	logs "ruteando/internal/infra/log"
	"ruteando/internal/infra/notification"
	"ruteando/internal/infra/persistence/postgres"
	"ruteando/internal/infra/pubsub"
	"ruteando/internal/infra/qrcode"
	"ruteando/internal/infra/storage"
	"ruteando/internal/usecase/impl"

	"go.uber.org/fx"
)

// defaultAttachmentsBucket receives attempt evidence when no bucket is
// configured, keeping local development free of cloud credentials.
const defaultAttachmentsBucket = "file:///tmp/ruteando-adjuntos"

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAddressRepository,
			postgres.NewGeocodeRepository,
			postgres.NewRouteRepository,
			postgres.NewDeliveryRepository,
			postgres.NewLinkRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newGeocoder,
			newRoutePlanner,
			newFirebaseService,
			newQRCodeService,
			newAttachmentStorage,
		),
	)
}

// newGeocoder creates the Google Geocoding client with the configured timeout
func newGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	httpClient := &http.Client{Timeout: cfg.Maps.Timeout}

	return google.NewGeocodingClient(cfg.Maps.APIKey, cfg.Maps.GeocodingURL, httpClient, logger)
}

// newRoutePlanner creates the Google Routes client with the configured timeout
func newRoutePlanner(cfg *config.Config, logger *slog.Logger) service.RoutePlanner {
	httpClient := &http.Client{Timeout: cfg.Maps.Timeout}

	return google.NewRoutesClient(cfg.Maps.APIKey, cfg.Maps.RoutesURL, httpClient, logger)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newAttachmentStorage opens the attempt evidence bucket and closes it on
// shutdown
func newAttachmentStorage(lc fx.Lifecycle, ctx context.Context, cfg *config.Config) (service.AttachmentStorage, error) {
	bucketURL := defaultAttachmentsBucket
	if cfg.Attachments != nil && cfg.Attachments.BucketURL != "" {
		bucketURL = cfg.Attachments.BucketURL
	}

	store, err := storage.NewBlobStorage(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open attachments bucket: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAddressService,
			impl.NewRouteService,
			impl.NewDeliveryService,
			impl.NewLinkService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewAddressHandler,
			handler.NewRouteHandler,
			handler.NewDeliveryHandler,
			handler.NewLinkHandler,
			handler.NewUserHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				deliveryhttp.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
