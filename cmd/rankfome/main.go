package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/MatheusHenriquePrates/rankfome-backend/config"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/delivery"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/delivery/http"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/delivery/http/middleware"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/delivery/http/router/handler"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/service"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/infra/auth"
	logs "github.com/MatheusHenriquePrates/rankfome-backend/internal/infra/log"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/infra/persistence/postgres"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/infra/pubsub"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/infra/qrcode"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/infra/storage"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/usecase/impl"
)

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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewStoreRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			storage.NewBlobImageStorage,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewStoreService,
			impl.NewProductService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewStoreHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewUploadHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
